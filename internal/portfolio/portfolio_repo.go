package portfolio

import (
	"errors"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"gorm.io/gorm"
)

type PortfolioRepository interface {
	Create(item *models.PortfolioItem) error
	GetByID(id uint) (*models.PortfolioItem, error)
	Update(item *models.PortfolioItem) error
	Delete(item *models.PortfolioItem) error
	ListForUser(userID uint, itemType string) ([]models.PortfolioItem, error)
	ActiveUserExists(userID uint) (bool, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *portfolioRepository) GetByID(id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) Update(item *models.PortfolioItem) error {
	return r.db.Save(item).Error
}

func (r *portfolioRepository) Delete(item *models.PortfolioItem) error {
	return r.db.Unscoped().Delete(item).Error
}

func (r *portfolioRepository) ListForUser(userID uint, itemType string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	query := r.db.Where("user_id = ?", userID)
	if itemType != "" {
		query = query.Where("item_type = ?", itemType)
	}
	err := query.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *portfolioRepository) ActiveUserExists(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ? AND is_active = ?", userID, true).Count(&count).Error
	return count > 0, err
}
