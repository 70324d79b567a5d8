package models

const (
	PortfolioProject     = "project"
	PortfolioCertificate = "certificate"
	PortfolioWorkSample  = "work_sample"
	PortfolioOther       = "other"
)

type PortfolioItem struct {
	BaseModel
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ItemType    string `gorm:"not null;size:20;index" json:"item_type"`
	MediaURL    string `json:"media_url"`
	LinkURL     string `json:"link_url"`
}
