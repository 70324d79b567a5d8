package messaging

import (
	"errors"
	"time"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/notification"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessagingRepository interface {
	GetConversation(id uint) (*models.Conversation, error)
	FindOrCreateConversation(a, b uint) (*models.Conversation, bool, error)
	ListConversations(userID uint) ([]models.Conversation, error)
	CreateMessage(msg *models.Message) error
	TouchConversation(id uint, at time.Time) error
	ListMessages(conversationID uint) ([]models.Message, error)
	MarkRead(conversationID, readerID uint) error
	GetActiveUser(id uint) (*models.User, error)
	Notify(userID uint, notificationType, content string, relatedID uint) error
	WithTransaction(fn func(MessagingRepository) error) error
}

type messagingRepository struct {
	db *gorm.DB
}

func NewMessagingRepository(db *gorm.DB) MessagingRepository {
	return &messagingRepository{db: db}
}

func (r *messagingRepository) WithTransaction(fn func(MessagingRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&messagingRepository{db: tx})
	})
}

func (r *messagingRepository) GetConversation(id uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.Preload("User1").Preload("User2").First(&conv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// FindOrCreateConversation returns the conversation for the unordered pair and
// whether it was created by this call.
func (r *messagingRepository) FindOrCreateConversation(a, b uint) (*models.Conversation, bool, error) {
	var conv models.Conversation
	err := r.db.Where("pair_key = ?", models.PairKey(a, b)).First(&conv).Error
	if err == nil {
		return &conv, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	low, high := a, b
	if low > high {
		low, high = high, low
	}
	conv = models.Conversation{User1ID: low, User2ID: high, PairKey: models.PairKey(a, b)}
	if err := r.db.Omit(clause.Associations).Create(&conv).Error; err != nil {
		return nil, false, err
	}
	return &conv, true, nil
}

// ListConversations attaches the latest message of each conversation.
func (r *messagingRepository) ListConversations(userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.Preload("User1").Preload("User2").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC, id DESC").
		Find(&convs).Error
	if err != nil || len(convs) == 0 {
		return convs, err
	}

	ids := make([]uint, len(convs))
	for i := range convs {
		ids[i] = convs[i].ID
	}
	latest := r.db.Model(&models.Message{}).
		Select("MAX(id)").
		Where("conversation_id IN ?", ids).
		Group("conversation_id")

	var lastMessages []models.Message
	if err := r.db.Where("id IN (?)", latest).Find(&lastMessages).Error; err != nil {
		return nil, err
	}
	byConversation := make(map[uint]*models.Message, len(lastMessages))
	for i := range lastMessages {
		byConversation[lastMessages[i].ConversationID] = &lastMessages[i]
	}
	for i := range convs {
		convs[i].LastMessage = byConversation[convs[i].ID]
	}
	return convs, nil
}

func (r *messagingRepository) CreateMessage(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *messagingRepository) TouchConversation(id uint, at time.Time) error {
	return r.db.Model(&models.Conversation{}).Where("id = ?", id).UpdateColumn("updated_at", at).Error
}

func (r *messagingRepository) ListMessages(conversationID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("sent_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// MarkRead flags every message in the conversation that readerID did not send.
func (r *messagingRepository) MarkRead(conversationID, readerID uint) error {
	return r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}

func (r *messagingRepository) GetActiveUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *messagingRepository) Notify(userID uint, notificationType, content string, relatedID uint) error {
	return notification.Notify(r.db, userID, notificationType, content, &relatedID)
}
