package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email           string                           `gorm:"uniqueIndex;not null" json:"email"`
	Password        string                           `gorm:"not null" json:"-"`
	Name            string                           `gorm:"not null" json:"name"`
	IntroLine       string                           `json:"intro_line"`
	ProfilePhotoURL string                           `json:"profile_photo_url"`
	LocationCity    string                           `gorm:"index" json:"location_city"`
	LocationCountry string                           `json:"location_country"`
	WhatsappNumber  string                           `json:"whatsapp_number"`
	IsActive        bool                             `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser     bool                             `gorm:"not null;default:false" json:"is_superuser"`
	Availability    datatypes.JSONType[Availability] `json:"availability"`
}

type RefreshToken struct {
	BaseModel
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
}

// SavedUser is a bookmark of another user's profile.
type SavedUser struct {
	BaseModel
	UserID      uint  `gorm:"not null;uniqueIndex:idx_saved_pair" json:"user_id"`
	SavedUserID uint  `gorm:"not null;uniqueIndex:idx_saved_pair" json:"saved_user_id"`
	SavedUser   *User `gorm:"foreignKey:SavedUserID" json:"saved_user,omitempty"`
}

type ProfileView struct {
	BaseModel
	ViewerID uint      `gorm:"not null;index" json:"viewer_id"`
	ViewedID uint      `gorm:"not null;index" json:"viewed_id"`
	ViewedAt time.Time `gorm:"not null;index" json:"viewed_at"`
	Viewer   *User     `gorm:"foreignKey:ViewerID" json:"viewer,omitempty"`
}
