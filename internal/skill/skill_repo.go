package skill

import (
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository interface {
	Create(skill *models.Skill) error
	GetByID(id uint) (*models.Skill, error)
	FindByNameUnscoped(name string) (*models.Skill, error)
	Reactivate(skill *models.Skill) error
	List(name, category string, page, pageSize int) ([]models.Skill, int64, error)
	Categories() ([]string, error)
	Suggestions(query string, limit int) ([]models.Skill, error)
	SoftDelete(id uint) (bool, error)

	FindFollow(userID, skillID uint) (*models.SkillFollow, error)
	CreateFollow(follow *models.SkillFollow) error
	DeleteFollow(follow *models.SkillFollow) error
	ListFollowed(userID uint) ([]models.Skill, error)

	WithTransaction(txFunc func(SkillRepository) error) error
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *skillRepository) GetByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// FindByNameUnscoped also returns soft-deleted rows.
func (r *skillRepository) FindByNameUnscoped(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Unscoped().Where("name = ?", name).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// Reactivate clears deleted_at and stores the new category and description.
func (r *skillRepository) Reactivate(skill *models.Skill) error {
	err := r.db.Unscoped().Model(skill).Updates(map[string]interface{}{
		"deleted_at":  nil,
		"category":    skill.Category,
		"description": skill.Description,
	}).Error
	if err != nil {
		return err
	}
	skill.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (r *skillRepository) List(name, category string, page, pageSize int) ([]models.Skill, int64, error) {
	var skills []models.Skill
	var total int64

	query := r.db.Model(&models.Skill{})
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where("name LIKE ? ESCAPE '\\'", "%"+utils.EscapeLike(strings.ToLower(name))+"%")
	}
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("LOWER(category) LIKE ? ESCAPE '\\'", "%"+utils.EscapeLike(strings.ToLower(category))+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&skills).Error
	return skills, total, err
}

func (r *skillRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Skill{}).
		Where("category <> ?", "").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Suggestions matches names containing query, prefix matches first.
func (r *skillRepository) Suggestions(query string, limit int) ([]models.Skill, error) {
	q := utils.EscapeLike(strings.ToLower(strings.TrimSpace(query)))
	var skills []models.Skill
	err := r.db.
		Where("name LIKE ? ESCAPE '\\'", "%"+q+"%").
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN name LIKE ? ESCAPE '\\' THEN 0 ELSE 1 END, name ASC",
			Vars:               []interface{}{q + "%"},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&skills).Error
	return skills, err
}

func (r *skillRepository) SoftDelete(id uint) (bool, error) {
	res := r.db.Delete(&models.Skill{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *skillRepository) FindFollow(userID, skillID uint) (*models.SkillFollow, error) {
	var follow models.SkillFollow
	if err := r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

func (r *skillRepository) CreateFollow(follow *models.SkillFollow) error {
	return r.db.Create(follow).Error
}

func (r *skillRepository) DeleteFollow(follow *models.SkillFollow) error {
	return r.db.Unscoped().Delete(follow).Error
}

func (r *skillRepository) ListFollowed(userID uint) ([]models.Skill, error) {
	followed := r.db.Model(&models.SkillFollow{}).Select("skill_id").Where("user_id = ?", userID)
	var skills []models.Skill
	err := r.db.Where("id IN (?)", followed).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) WithTransaction(txFunc func(SkillRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&skillRepository{db: tx})
	})
}
