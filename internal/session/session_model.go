package session

import "time"

type CreateSessionRequest struct {
	ProviderID uint      `json:"provider_id" binding:"required"`
	SkillID    uint      `json:"skill_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required" example:"2026-01-02T15:00:00Z"`
	EndTime    time.Time `json:"end_time" binding:"required,gtfield=StartTime" example:"2026-01-02T16:00:00Z"`
	Notes      string    `json:"notes" binding:"omitempty,max=1000"`
}

const (
	RoleProvider  = "provider"
	RoleRequester = "requester"
)
