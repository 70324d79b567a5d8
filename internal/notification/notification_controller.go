package notification

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	repo   NotificationRepository
	config *config.Config
	log    *logger.Logger
}

func NewNotificationController(repo NotificationRepository, cfg *config.Config, log *logger.Logger) *NotificationController {
	return &NotificationController{repo: repo, config: cfg, log: log}
}

// ListNotifications godoc
// @Summary List my notifications
// @Tags Notifications
// @Produce json
// @Param unread query boolean false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Notification}
// @Failure 401 {object} responses.ErrorResponse
// @Router /notifications [get]
// @Security BearerAuth
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	page, pageSize := common.ParsePagination(c, common.DefaultPageSize)

	items, total, err := nc.repo.ListForUser(userID, unreadOnly, page, pageSize)
	if err != nil {
		nc.log.Error("list notifications", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve notifications")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Notifications retrieved", items, total, page, pageSize)
}

// UnreadCount godoc
// @Summary Count my unread notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /notifications/unread-count [get]
// @Security BearerAuth
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	count, err := nc.repo.CountUnread(userID)
	if err != nil {
		nc.log.Error("count unread notifications", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to count notifications")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"count": count})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Param notification_id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Router /notifications/{notification_id}/read [put]
// @Security BearerAuth
func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	id, err := common.ParseIDParam(c, "notification_id")
	if err != nil {
		responses.BadRequest(c, "Invalid notification ID")
		return
	}

	found, err := nc.repo.MarkRead(id, userID)
	if err != nil {
		nc.log.Error("mark notification read", "notification_id", id, "error", err)
		responses.InternalServerError(c, "Failed to update notification")
		return
	}
	if !found {
		responses.NotFound(c, "Notification")
		return
	}
	responses.NoContent(c)
}

// MarkAllRead godoc
// @Summary Mark all my notifications as read
// @Tags Notifications
// @Success 204
// @Router /notifications/read-all [put]
// @Security BearerAuth
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	if err := nc.repo.MarkAllRead(userID); err != nil {
		nc.log.Error("mark all notifications read", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to update notifications")
		return
	}
	responses.NoContent(c)
}
