package models

import "time"

type Conversation struct {
	BaseModel
	User1ID     uint     `gorm:"not null;index" json:"user1_id"`
	User2ID     uint     `gorm:"not null;index" json:"user2_id"`
	PairKey     string   `gorm:"not null;uniqueIndex" json:"-"`
	User1       *User    `gorm:"foreignKey:User1ID" json:"user1,omitempty"`
	User2       *User    `gorm:"foreignKey:User2ID" json:"user2,omitempty"`
	LastMessage *Message `gorm:"-" json:"last_message,omitempty"`
}

// HasParticipant reports whether userID belongs to the conversation.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// Other returns the participant that is not userID.
func (c *Conversation) Other(userID uint) uint {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

type Message struct {
	BaseModel
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint      `gorm:"not null;index" json:"sender_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	SentAt         time.Time `gorm:"not null;index" json:"sent_at"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
}
