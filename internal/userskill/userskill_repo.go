package userskill

import (
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSkillRepository interface {
	Create(us *models.UserSkill) error
	GetByID(id uint) (*models.UserSkill, error)
	Exists(userID, skillID uint, role string, excludeID uint) (bool, error)
	Update(us *models.UserSkill) error
	Delete(us *models.UserSkill) error
	ListForUser(userID uint, role string) ([]models.UserSkill, error)
	Mentors(skillID *uint, city string, page, pageSize int) ([]models.UserSkill, int64, error)
	SkillExists(skillID uint) (bool, error)
	ActiveUserExists(userID uint) (bool, error)
}

type userSkillRepository struct {
	db *gorm.DB
}

func NewUserSkillRepository(db *gorm.DB) UserSkillRepository {
	return &userSkillRepository{db: db}
}

func (r *userSkillRepository) Create(us *models.UserSkill) error {
	if err := r.db.Omit(clause.Associations).Create(us).Error; err != nil {
		return err
	}
	return r.db.Preload("Skill").First(us, us.ID).Error
}

func (r *userSkillRepository) GetByID(id uint) (*models.UserSkill, error) {
	var us models.UserSkill
	if err := r.db.Preload("Skill").First(&us, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &us, nil
}

func (r *userSkillRepository) Exists(userID, skillID uint, role string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.UserSkill{}).
		Where("user_id = ? AND skill_id = ? AND role = ?", userID, skillID, role)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *userSkillRepository) Update(us *models.UserSkill) error {
	return r.db.Omit(clause.Associations).Save(us).Error
}

// Delete removes the row for good so the same (user, skill, role) can be declared again.
func (r *userSkillRepository) Delete(us *models.UserSkill) error {
	return r.db.Unscoped().Delete(us).Error
}

func (r *userSkillRepository) ListForUser(userID uint, role string) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	query := r.db.Preload("Skill").Where("user_id = ?", userID)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	err := query.Order("id ASC").Find(&skills).Error
	return skills, err
}

// Mentors lists teach declarations of active users, optionally narrowed to a skill and city.
func (r *userSkillRepository) Mentors(skillID *uint, city string, page, pageSize int) ([]models.UserSkill, int64, error) {
	var rows []models.UserSkill
	var total int64

	query := r.db.Model(&models.UserSkill{}).
		Joins("JOIN users ON users.id = user_skills.user_id AND users.is_active = ? AND users.deleted_at IS NULL", true).
		Where("user_skills.role = ?", models.RoleTeach)
	if skillID != nil {
		query = query.Where("user_skills.skill_id = ?", *skillID)
	}
	if city = strings.TrimSpace(city); city != "" {
		query = query.Where("LOWER(users.location_city) LIKE ? ESCAPE '\\'", "%"+utils.EscapeLike(strings.ToLower(city))+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("User").Preload("Skill").
		Order("user_skills.id ASC").
		Offset(common.Offset(page, pageSize)).Limit(pageSize).
		Find(&rows).Error
	return rows, total, err
}

func (r *userSkillRepository) SkillExists(skillID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("id = ?", skillID).Count(&count).Error
	return count > 0, err
}

func (r *userSkillRepository) ActiveUserExists(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ? AND is_active = ?", userID, true).Count(&count).Error
	return count > 0, err
}
