package models

import "time"

type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionAccepted  SessionStatus = "accepted"
	SessionRejected  SessionStatus = "rejected"
	SessionCancelled SessionStatus = "cancelled"
	SessionCompleted SessionStatus = "completed"
)

type Session struct {
	BaseModel
	RequesterID uint          `gorm:"not null;index" json:"requester_id"`
	ProviderID  uint          `gorm:"not null;index" json:"provider_id"`
	SkillID     uint          `gorm:"not null;index" json:"skill_id"`
	StartTime   time.Time     `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time     `gorm:"not null" json:"end_time"`
	Status      SessionStatus `gorm:"not null;size:20;default:pending" json:"status"`
	Notes       string        `json:"notes"`
	Requester   *User         `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Provider    *User         `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Skill       *Skill        `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// Involves reports whether userID is the requester or the provider.
func (s *Session) Involves(userID uint) bool {
	return s.RequesterID == userID || s.ProviderID == userID
}

// Counterpart returns the other participant.
func (s *Session) Counterpart(userID uint) uint {
	if s.ProviderID == userID {
		return s.RequesterID
	}
	return s.ProviderID
}
