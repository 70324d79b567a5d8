package auth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/auth"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := testutil.NewApp(t)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{
			name:       "valid",
			body:       map[string]string{"email": "Jane@Example.com", "password": "password123", "name": "Jane"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate email differs only in case",
			body:       map[string]string{"email": "jane@example.com", "password": "password123", "name": "Jane 2"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       map[string]string{"email": "short@example.com", "password": "123", "name": "Short"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       map[string]string{"email": "not-an-email", "password": "password123", "name": "Bad"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       map[string]string{"email": "noname@example.com", "password": "password123"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.Do(t, http.MethodPost, "/auth/register", "", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	var stored models.User
	require.NoError(t, app.DB.Where("email = ?", "jane@example.com").First(&stored).Error)
	assert.True(t, stored.IsActive)
	assert.False(t, stored.IsSuperuser)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NotContains(t, app.Do(t, http.MethodGet, "/users/1", "", nil).Body.String(), stored.Password)
}

func TestRegisterAliasAndSuperuserEmail(t *testing.T) {
	app := testutil.NewApp(t)

	rec := app.Do(t, http.MethodPost, "/users", "", map[string]string{
		"email": "admin@example.com", "password": "password123", "name": "Admin",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	testutil.DecodeData(t, rec, &user)
	assert.True(t, user.IsSuperuser)
}

func TestLogin(t *testing.T) {
	app := testutil.NewApp(t)
	_, _ = app.CreateUser(t, "a@example.com", "A")

	t.Run("json credentials", func(t *testing.T) {
		rec := app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "A@example.com", "password": testutil.Password})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var tokens auth.TokenResponse
		testutil.DecodeData(t, rec, &tokens)
		assert.Equal(t, "bearer", tokens.TokenType)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("password form", func(t *testing.T) {
		form := url.Values{"username": {"a@example.com"}, "password": {testutil.Password}}
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := app.Serve(req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("users alias", func(t *testing.T) {
		form := url.Values{"username": {"a@example.com"}, "password": {testutil.Password}}
		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := app.Serve(req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var tokens auth.TokenResponse
		testutil.DecodeData(t, rec, &tokens)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@example.com", "password": "nope-nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "ghost@example.com", "password": testutil.Password})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("inactive user", func(t *testing.T) {
		require.NoError(t, app.DB.Model(&models.User{}).Where("email = ?", "a@example.com").Update("is_active", false).Error)
		rec := app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@example.com", "password": testutil.Password})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshRotatesAndLogoutRevokes(t *testing.T) {
	app := testutil.NewApp(t)
	_, _ = app.CreateUser(t, "r@example.com", "R")

	rec := app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "r@example.com", "password": testutil.Password})
	require.Equal(t, http.StatusOK, rec.Code)
	var first auth.TokenResponse
	testutil.DecodeData(t, rec, &first)

	// An access token is not accepted as a refresh token.
	rec = app.Do(t, http.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": first.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.Do(t, http.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": first.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var second auth.TokenResponse
	testutil.DecodeData(t, rec, &second)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated token cannot be reused.
	rec = app.Do(t, http.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": first.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.Do(t, http.MethodPost, "/auth/logout", second.AccessToken, map[string]string{"refresh_token": second.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.Do(t, http.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": second.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// staleTokenRepo keeps answering lookups with the row as it was first read,
// the way a concurrent request that read before the other one committed would.
type staleTokenRepo struct {
	auth.AuthRepository
	snapshot *models.RefreshToken
}

func (r *staleTokenRepo) GetRefreshToken(tok string) (*models.RefreshToken, error) {
	if r.snapshot == nil {
		rt, err := r.AuthRepository.GetRefreshToken(tok)
		if err != nil || rt == nil {
			return rt, err
		}
		r.snapshot = rt
	}
	cp := *r.snapshot
	return &cp, nil
}

func TestRefreshTokenIsSingleUseAfterStaleRead(t *testing.T) {
	app := testutil.NewApp(t)
	_, _ = app.CreateUser(t, "race@example.com", "Race")

	rec := app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "race@example.com", "password": testutil.Password})
	require.Equal(t, http.StatusOK, rec.Code)
	var tokens auth.TokenResponse
	testutil.DecodeData(t, rec, &tokens)

	repo := &staleTokenRepo{AuthRepository: auth.NewAuthRepository(app.DB)}
	controller := auth.NewAuthController(repo, app.Config, logger.Nop())
	r := gin.New()
	r.POST("/refresh", controller.RefreshToken)

	refresh := func() int {
		body := strings.NewReader(`{"refresh_token":"` + tokens.RefreshToken + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/refresh", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, refresh())
	require.NotNil(t, repo.snapshot)
	assert.False(t, repo.snapshot.Revoked, "second request still sees the unrevoked row")
	assert.Equal(t, http.StatusUnauthorized, refresh())

	var live int64
	require.NoError(t, app.DB.Model(&models.RefreshToken{}).Where("revoked = ?", false).Count(&live).Error)
	assert.Equal(t, int64(1), live, "only one rotated token was issued")
}

func TestLogoutRequiresToken(t *testing.T) {
	app := testutil.NewApp(t)
	rec := app.Do(t, http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
