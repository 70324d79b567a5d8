package review

import (
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Create(r *models.Review) error
	Exists(authorID, subjectID uint) (bool, error)
	ListForSubject(subjectID uint, page, pageSize int) ([]models.Review, int64, error)
	ActiveUserExists(id uint) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	if err := r.db.Omit(clause.Associations).Create(review).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(review, review.ID).Error
}

func (r *reviewRepository) Exists(authorID, subjectID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("author_id = ? AND subject_id = ?", authorID, subjectID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) ListForSubject(subjectID uint, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := r.db.Model(&models.Review{}).Where("subject_id = ?", subjectID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) ActiveUserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ? AND is_active = ?", id, true).Count(&count).Error
	return count > 0, err
}
