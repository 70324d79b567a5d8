package user

import "github.com/DhavalSuthar-24/skillswap/internal/models"

type UpdateUserRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	IntroLine       *string `json:"intro_line,omitempty" binding:"omitempty,max=255"`
	ProfilePhotoURL *string `json:"profile_photo_url,omitempty" binding:"omitempty,max=500"`
	LocationCity    *string `json:"location_city,omitempty" binding:"omitempty,max=100"`
	LocationCountry *string `json:"location_country,omitempty" binding:"omitempty,max=100"`
	WhatsappNumber  *string `json:"whatsapp_number,omitempty" binding:"omitempty,max=30"`
	Password        *string `json:"password,omitempty" binding:"omitempty,min=8,max=72"`
}

type AvailabilityRequest struct {
	Availability models.Availability `json:"availability" binding:"required"`
}

type CompletionResponse struct {
	Percentage int      `json:"percentage"`
	Missing    []string `json:"missing"`
}

const (
	StatusNone            = "none"
	StatusSelf            = "self"
	StatusPendingSent     = "pending_sent"
	StatusPendingReceived = "pending_received"
)

type ProfileStats struct {
	Views         int64   `json:"views"`
	Connections   int64   `json:"connections"`
	Reviews       int64   `json:"reviews"`
	AverageRating float64 `json:"average_rating"`
}

type ProfileResponse struct {
	User             models.User            `json:"user"`
	TeachSkills      []models.UserSkill     `json:"teach_skills"`
	LearnSkills      []models.UserSkill     `json:"learn_skills"`
	Portfolio        []models.PortfolioItem `json:"portfolio"`
	ConnectionStatus string                 `json:"connection_status"`
	ConnectionID     *uint                  `json:"connection_id,omitempty"`
	Stats            ProfileStats           `json:"stats"`
}

type DashboardResponse struct {
	PendingRequests     int64         `json:"pending_requests"`
	Connections         int64         `json:"connections"`
	ProfileViews        int64         `json:"profile_views"`
	UpcomingSessions    int64         `json:"upcoming_sessions"`
	UnreadNotifications int64         `json:"unread_notifications"`
	SuggestedMentors    []models.User `json:"suggested_mentors"`
}

type SaveToggleResponse struct {
	Saved bool `json:"saved"`
}

// connectionStatus describes the relation of viewerID to the owner of a profile.
func connectionStatus(viewerID uint, conn *models.Connection) string {
	if conn == nil {
		return StatusNone
	}
	if conn.Status == models.ConnectionPending {
		if conn.RequesterID == viewerID {
			return StatusPendingSent
		}
		return StatusPendingReceived
	}
	return string(conn.Status)
}

// profileCompletion scores the five profile sections a complete profile fills in.
func profileCompletion(u *models.User, skillCount int64) CompletionResponse {
	checks := []struct {
		name string
		ok   bool
	}{
		{"profile_photo", u.ProfilePhotoURL != ""},
		{"intro_line", u.IntroLine != ""},
		{"location", u.LocationCity != "" || u.LocationCountry != ""},
		{"whatsapp", u.WhatsappNumber != ""},
		{"skills", skillCount > 0},
	}
	resp := CompletionResponse{Missing: []string{}}
	filled := 0
	for _, c := range checks {
		if c.ok {
			filled++
		} else {
			resp.Missing = append(resp.Missing, c.name)
		}
	}
	resp.Percentage = filled * 100 / len(checks)
	return resp
}
