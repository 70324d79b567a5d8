package models

const (
	NotificationConnectionRequest  = "connection_request"
	NotificationConnectionAccepted = "connection_accepted"
	NotificationSessionRequest     = "session_request"
	NotificationMessage            = "message"
)

type Notification struct {
	BaseModel
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	Type            string `gorm:"not null;size:50" json:"type"`
	Content         string `gorm:"not null" json:"content"`
	IsRead          bool   `gorm:"not null;default:false;index" json:"is_read"`
	RelatedEntityID *uint  `json:"related_entity_id,omitempty"`
}
