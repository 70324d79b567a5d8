package models

const (
	ReportPending   = "pending"
	ReportReviewed  = "reviewed"
	ReportDismissed = "dismissed"
)

type Report struct {
	BaseModel
	ReporterID uint   `gorm:"not null;index" json:"reporter_id"`
	ReportedID uint   `gorm:"not null;index" json:"reported_id"`
	Reason     string `gorm:"not null" json:"reason"`
	Details    string `json:"details"`
	Status     string `gorm:"not null;size:20;default:pending" json:"status"`
}
