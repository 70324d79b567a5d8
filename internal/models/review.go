package models

type Review struct {
	BaseModel
	AuthorID  uint   `gorm:"not null;uniqueIndex:idx_review_pair" json:"author_id"`
	SubjectID uint   `gorm:"not null;uniqueIndex:idx_review_pair;index" json:"subject_id"`
	Rating    int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `json:"comment"`
	Author    *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
