package notification

import (
	"fmt"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	ListForUser(userID uint, unreadOnly bool, page, pageSize int) ([]models.Notification, int64, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id, userID uint) (bool, error)
	MarkAllRead(userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Notify stores a notification for userID. Callers pass their transaction
// handle so the notification commits or rolls back with the triggering change.
func Notify(db *gorm.DB, userID uint, notificationType, content string, relatedEntityID *uint) error {
	n := models.Notification{
		UserID:          userID,
		Type:            notificationType,
		Content:         content,
		RelatedEntityID: relatedEntityID,
	}
	if err := db.Create(&n).Error; err != nil {
		return fmt.Errorf("create %s notification: %w", notificationType, err)
	}
	return nil
}

func (r *notificationRepository) ListForUser(userID uint, unreadOnly bool, page, pageSize int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead returns false when the notification does not exist or belongs to someone else.
func (r *notificationRepository) MarkRead(id, userID uint) (bool, error) {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
