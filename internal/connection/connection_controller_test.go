package connection_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/connection"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, app *testutil.App, token string, recipientID uint) (int, models.Connection) {
	t.Helper()
	rec := app.Do(t, http.MethodPost, "/connections", token, map[string]uint{"recipient_id": recipientID})
	var conn models.Connection
	if rec.Code == http.StatusCreated {
		testutil.DecodeData(t, rec, &conn)
	}
	return rec.Code, conn
}

func notifications(t *testing.T, app *testutil.App, userID uint, kind string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, app.DB.Model(&models.Notification{}).Where("user_id = ? AND type = ?", userID, kind).Count(&count).Error)
	return count
}

func TestSendRequest(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, bobTok := app.CreateUser(t, "bob@example.com", "Bob")
	carolID, _ := app.CreateUser(t, "carol@example.com", "Carol")
	require.NoError(t, app.DB.Model(&models.User{}).Where("id = ?", carolID).Update("is_active", false).Error)

	code, conn := request(t, app, aliceTok, bobID)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, models.ConnectionPending, conn.Status)
	assert.Equal(t, aliceID, conn.RequesterID)
	require.NotNil(t, conn.Recipient)
	assert.Equal(t, "Bob", conn.Recipient.Name)
	assert.Equal(t, int64(1), notifications(t, app, bobID, models.NotificationConnectionRequest))

	tests := []struct {
		name       string
		token      string
		target     uint
		wantStatus int
		wantMsg    string
	}{
		{name: "self", token: aliceTok, target: aliceID, wantStatus: http.StatusBadRequest},
		{name: "unknown user", token: aliceTok, target: 999, wantStatus: http.StatusNotFound},
		{name: "inactive user", token: aliceTok, target: carolID, wantStatus: http.StatusNotFound},
		{name: "repeat", token: aliceTok, target: bobID, wantStatus: http.StatusBadRequest, wantMsg: "Connection request already pending"},
		{name: "reverse direction", token: bobTok, target: aliceID, wantStatus: http.StatusBadRequest, wantMsg: "Connection request already pending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.Do(t, http.MethodPost, "/connections", tt.token, map[string]uint{"recipient_id": tt.target})
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, testutil.Decode(t, rec).Message)
			}
		})
	}

	var rows int64
	app.DB.Model(&models.Connection{}).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestRespondAndRemove(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, bobTok := app.CreateUser(t, "bob@example.com", "Bob")
	_, carolTok := app.CreateUser(t, "carol@example.com", "Carol")

	_, conn := request(t, app, aliceTok, bobID)
	path := fmt.Sprintf("/connections/%d", conn.ID)

	assert.Equal(t, http.StatusForbidden, app.Do(t, http.MethodPut, path, aliceTok, map[string]string{"status": "accepted"}).Code)
	assert.Equal(t, http.StatusBadRequest, app.Do(t, http.MethodPut, path, bobTok, map[string]string{"status": "pending"}).Code)
	assert.Equal(t, http.StatusBadRequest, app.Do(t, http.MethodDelete, path, bobTok, nil).Code, "pending cannot be removed")

	rec := app.Do(t, http.MethodGet, "/connections/requests", bobTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []models.Connection
	testutil.DecodeData(t, rec, &pending)
	require.Len(t, pending, 1)

	rec = app.Do(t, http.MethodPut, path, bobTok, map[string]string{"status": "accepted"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(1), notifications(t, app, aliceID, models.NotificationConnectionAccepted))

	rec = app.Do(t, http.MethodPut, path, bobTok, map[string]string{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "already decided")

	code, _ := request(t, app, bobTok, aliceID)
	assert.Equal(t, http.StatusBadRequest, code)

	for _, tc := range []struct {
		token string
		want  int
	}{{aliceTok, 1}, {bobTok, 1}, {carolTok, 0}} {
		rec = app.Do(t, http.MethodGet, "/connections?type=accepted", tc.token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var accepted []models.Connection
		testutil.DecodeData(t, rec, &accepted)
		assert.Len(t, accepted, tc.want)
	}

	assert.Equal(t, http.StatusForbidden, app.Do(t, http.MethodDelete, path, carolTok, nil).Code)
	assert.Equal(t, http.StatusNoContent, app.Do(t, http.MethodDelete, path, bobTok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodDelete, path, aliceTok, nil).Code)

	code, _ = request(t, app, bobTok, aliceID)
	assert.Equal(t, http.StatusCreated, code, "pair is free again after removal")
}

func TestRejectedRequestCanBeReopened(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, bobTok := app.CreateUser(t, "bob@example.com", "Bob")

	_, conn := request(t, app, aliceTok, bobID)
	rec := app.Do(t, http.MethodPut, fmt.Sprintf("/connections/%d", conn.ID), bobTok, map[string]string{"status": "rejected"})
	require.Equal(t, http.StatusOK, rec.Code)

	code, reopened := request(t, app, bobTok, aliceID)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, conn.ID, reopened.ID)
	assert.Equal(t, bobID, reopened.RequesterID)
	assert.Equal(t, aliceID, reopened.RecipientID)
	assert.Equal(t, models.ConnectionPending, reopened.Status)
	assert.Equal(t, int64(1), notifications(t, app, aliceID, models.NotificationConnectionRequest))

	rec = app.Do(t, http.MethodGet, "/connections?type=sent", bobTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sent []models.Connection
	testutil.DecodeData(t, rec, &sent)
	require.Len(t, sent, 1)

	assert.Equal(t, http.StatusBadRequest, app.Do(t, http.MethodGet, "/connections?type=weird", bobTok, nil).Code)
}

func TestCancelRequest(t *testing.T) {
	app := testutil.NewApp(t)
	_, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, bobTok := app.CreateUser(t, "bob@example.com", "Bob")

	_, conn := request(t, app, aliceTok, bobID)
	path := fmt.Sprintf("/connections/%d/cancel", conn.ID)

	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodDelete, path, bobTok, nil).Code, "only the requester can cancel")
	assert.Equal(t, http.StatusNoContent, app.Do(t, http.MethodDelete, path, aliceTok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodDelete, path, aliceTok, nil).Code)
}

// blindRepo never sees an existing pair, as a request racing another one would.
type blindRepo struct {
	connection.ConnectionRepository
}

func (blindRepo) FindBetween(a, b uint) (*models.Connection, error) { return nil, nil }

func (r blindRepo) WithTransaction(fn func(connection.ConnectionRepository) error) error {
	return r.ConnectionRepository.WithTransaction(func(tx connection.ConnectionRepository) error {
		return fn(blindRepo{tx})
	})
}

func TestConcurrentDuplicateRequestIsRejected(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, bobTok := app.CreateUser(t, "bob@example.com", "Bob")

	controller := connection.NewConnectionController(blindRepo{connection.NewConnectionRepository(app.DB)}, app.Config, logger.Nop())
	r := gin.New()
	r.POST("/connections", middleware.AuthMiddleware(app.Config.JWT.AccessTokenSecret, app.DB), controller.SendRequest)
	racing := *app
	racing.Router = r

	code, _ := request(t, &racing, aliceTok, bobID)
	require.Equal(t, http.StatusCreated, code)
	code, _ = request(t, &racing, bobTok, aliceID)
	assert.Equal(t, http.StatusBadRequest, code)

	var count int64
	require.NoError(t, app.DB.Model(&models.Connection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), notifications(t, app, bobID, string(models.NotificationConnectionRequest)))
}
