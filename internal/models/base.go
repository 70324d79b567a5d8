package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BaseModel replaces gorm.Model so the JSON field names match the rest of the API.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PairKey identifies an unordered pair of users. PairKey(a, b) == PairKey(b, a).
func PairKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
