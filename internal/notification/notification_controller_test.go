package notification_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/notification"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func unreadCount(t *testing.T, app *testutil.App, token string) int64 {
	t.Helper()
	rec := app.Do(t, http.MethodGet, "/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Count int64 `json:"count"`
	}
	testutil.DecodeData(t, rec, &body)
	return body.Count
}

func TestNotificationInbox(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, bobTok := app.CreateUser(t, "bob@example.com", "Bob")

	related := uint(7)
	for i := 0; i < 3; i++ {
		require.NoError(t, notification.Notify(app.DB, aliceID, models.NotificationMessage, fmt.Sprintf("msg %d", i), &related))
	}
	require.NoError(t, notification.Notify(app.DB, bobID, models.NotificationMessage, "for bob", nil))

	assert.Equal(t, int64(3), unreadCount(t, app, aliceTok))

	rec := app.Do(t, http.MethodGet, "/notifications?pageSize=2", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page []models.Notification
	testutil.DecodeData(t, rec, &page)
	require.Len(t, page, 2)
	assert.Equal(t, "msg 2", page[0].Content, "newest first")
	assert.Equal(t, int64(3), testutil.Decode(t, rec).Pagination.TotalItems)

	bobsNote := func() models.Notification {
		var n models.Notification
		require.NoError(t, app.DB.Where("user_id = ?", bobID).First(&n).Error)
		return n
	}()
	path := fmt.Sprintf("/notifications/%d/read", bobsNote.ID)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodPut, path, aliceTok, nil).Code, "cannot touch another user's notification")
	assert.Equal(t, http.StatusNoContent, app.Do(t, http.MethodPut, path, bobTok, nil).Code)
	assert.Equal(t, int64(0), unreadCount(t, app, bobTok))

	require.Equal(t, http.StatusNoContent, app.Do(t, http.MethodPut, fmt.Sprintf("/notifications/%d/read", page[0].ID), aliceTok, nil).Code)
	rec = app.Do(t, http.MethodGet, "/notifications?unread=true", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var unread []models.Notification
	testutil.DecodeData(t, rec, &unread)
	assert.Len(t, unread, 2)

	require.Equal(t, http.StatusNoContent, app.Do(t, http.MethodPut, "/notifications/read-all", aliceTok, nil).Code)
	assert.Equal(t, int64(0), unreadCount(t, app, aliceTok))

	assert.Equal(t, http.StatusUnauthorized, app.Do(t, http.MethodGet, "/notifications", "", nil).Code)
}

func TestNotifyRollsBackWithTransaction(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, _ := app.CreateUser(t, "alice@example.com", "Alice")

	err := app.DB.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, notification.Notify(tx, aliceID, models.NotificationConnectionRequest, "pending", nil))
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	var count int64
	app.DB.Model(&models.Notification{}).Where("user_id = ?", aliceID).Count(&count)
	assert.Zero(t, count)
}
