// Package testutil wires the full router against an in-memory sqlite
// database for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/database"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const Password = "password123"

var dbSeq atomic.Int64

type App struct {
	DB     *gorm.DB
	Router *gin.Engine
	Config *config.Config
}

// Envelope mirrors the success/error bodies written by pkg/responses.
type Envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Code       int             `json:"code"`
	Data       json.RawMessage `json:"data"`
	Details    json.RawMessage `json:"details"`
	Pagination struct {
		TotalItems int64 `json:"total_items"`
		TotalPages int   `json:"total_pages"`
	} `json:"pagination"`
}

func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.App.UploadDir = t.TempDir()
	cfg.App.MaxUploadSizeMB = 1
	cfg.App.SuperuserEmails = []string{"admin@example.com"}
	cfg.DB.Driver = config.DriverSQLite
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))
	cfg.JWT.AccessTokenSecret = "test-access-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 15
	cfg.JWT.RefreshTokenSecret = "test-refresh-secret"
	cfg.JWT.RefreshTokenExpiryDays = 1
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

// NewApp builds a migrated database and the full router.
func NewApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := NewConfig(t)
	db, err := config.ConnectDB(*cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &App{
		DB:     db,
		Router: routes.SetupRoutes(db, cfg, logger.Nop()),
		Config: cfg,
	}
}

// Do sends a JSON request through the router. body may be nil.
func (a *App) Do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.Serve(req)
}

func (a *App) Serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// CreateUser registers a user through the API and logs in, returning its id and access token.
func (a *App) CreateUser(t *testing.T, email, name string) (uint, string) {
	t.Helper()
	rec := a.Do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email": email, "password": Password, "name": name,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	DecodeData(t, rec, &user)
	return user.ID, a.Login(t, email)
}

func (a *App) Login(t *testing.T, email string) string {
	t.Helper()
	rec := a.Do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": Password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	DecodeData(t, rec, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	return tokens.AccessToken
}

// CreateSkill inserts a skill row directly.
func (a *App) CreateSkill(t *testing.T, name, category string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name, Category: category}
	require.NoError(t, a.DB.Create(&skill).Error)
	return skill
}

// AddUserSkill inserts a user_skills row directly.
func (a *App) AddUserSkill(t *testing.T, userID, skillID uint, role string) models.UserSkill {
	t.Helper()
	us := models.UserSkill{UserID: userID, SkillID: skillID, Role: role}
	require.NoError(t, a.DB.Create(&us).Error)
	return us
}

// Decode unmarshals the whole response body.
func Decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

// DecodeData unmarshals the "data" field of a success envelope into v.
func DecodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	env := Decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, v), string(env.Data))
}
