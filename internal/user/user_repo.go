package user

import (
	"errors"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetActiveByID(id uint) (*models.User, error)
	List(page, pageSize int) ([]models.User, int64, error)
	Search(name, city string, skillID *uint, page, pageSize int) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateAvailability(userID uint, availability models.Availability) error
	Deactivate(userID uint) error

	CountUserSkills(userID uint) (int64, error)
	UserSkills(userID uint) ([]models.UserSkill, error)
	Portfolio(userID uint) ([]models.PortfolioItem, error)
	SuggestedMentors(userID uint, limit int) ([]models.User, error)

	ConnectionBetween(a, b uint) (*models.Connection, error)
	CountAcceptedConnections(userID uint) (int64, error)
	CountPendingReceived(userID uint) (int64, error)
	CountUpcomingSessions(userID uint, now time.Time) (int64, error)
	CountUnreadNotifications(userID uint) (int64, error)
	ReviewStats(userID uint) (count int64, average float64, err error)

	RecordProfileView(viewerID, viewedID uint) error
	CountProfileViews(userID uint) (int64, error)
	RecentProfileViews(userID uint, limit int) ([]models.ProfileView, error)

	FindSaved(userID, savedUserID uint) (*models.SavedUser, error)
	CreateSaved(saved *models.SavedUser) error
	DeleteSaved(saved *models.SavedUser) error
	ListSaved(userID uint) ([]models.SavedUser, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetActiveByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("is_active = ?", true).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(page, pageSize int) ([]models.User, int64, error) {
	return r.paginate(r.db.Model(&models.User{}).Where("is_active = ?", true), page, pageSize)
}

func (r *userRepository) Search(name, city string, skillID *uint, page, pageSize int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).Where("is_active = ?", true)
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", "%"+utils.EscapeLike(strings.ToLower(name))+"%")
	}
	if city = strings.TrimSpace(city); city != "" {
		query = query.Where("LOWER(location_city) LIKE ? ESCAPE '\\'", "%"+utils.EscapeLike(strings.ToLower(city))+"%")
	}
	if skillID != nil {
		sub := r.db.Model(&models.UserSkill{}).Select("user_id").Where("skill_id = ?", *skillID)
		query = query.Where("id IN (?)", sub)
	}
	return r.paginate(query, page, pageSize)
}

func (r *userRepository) paginate(query *gorm.DB, page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("id ASC").Offset(offset).Limit(pageSize).Find(&users).Error
	return users, total, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) UpdateAvailability(userID uint, availability models.Availability) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("availability", datatypes.NewJSONType(availability)).Error
}

// Deactivate flips is_active and revokes every refresh token in one transaction.
func (r *userRepository) Deactivate(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.RefreshToken{}).
			Where("user_id = ? AND revoked = ?", userID, false).
			Update("revoked", true).Error
	})
}

func (r *userRepository) CountUserSkills(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserSkill{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) UserSkills(userID uint) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.Preload("Skill").Where("user_id = ?", userID).Order("id ASC").Find(&skills).Error
	return skills, err
}

func (r *userRepository) Portfolio(userID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

// SuggestedMentors returns active users, other than userID, who teach a skill userID wants to learn.
func (r *userRepository) SuggestedMentors(userID uint, limit int) ([]models.User, error) {
	learning := r.db.Model(&models.UserSkill{}).
		Select("skill_id").
		Where("user_id = ? AND role = ?", userID, models.RoleLearn)
	teachers := r.db.Model(&models.UserSkill{}).
		Select("user_id").
		Where("role = ? AND skill_id IN (?)", models.RoleTeach, learning)

	var users []models.User
	err := r.db.
		Where("id IN (?) AND id <> ? AND is_active = ?", teachers, userID, true).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) ConnectionBetween(a, b uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.Where("pair_key = ?", models.PairKey(a, b)).First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

func (r *userRepository) CountAcceptedConnections(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, models.ConnectionAccepted).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountPendingReceived(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("recipient_id = ? AND status = ?", userID, models.ConnectionPending).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountUpcomingSessions(userID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Session{}).
		Where("(requester_id = ? OR provider_id = ?) AND start_time > ?", userID, userID, now).
		Where("status IN ?", []models.SessionStatus{models.SessionPending, models.SessionAccepted}).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountUnreadNotifications(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *userRepository) ReviewStats(userID uint) (int64, float64, error) {
	var row struct {
		Count   int64
		Average *float64
	}
	err := r.db.Model(&models.Review{}).
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Where("subject_id = ?", userID).
		Scan(&row).Error
	if err != nil || row.Average == nil {
		return row.Count, 0, err
	}
	return row.Count, *row.Average, nil
}

func (r *userRepository) RecordProfileView(viewerID, viewedID uint) error {
	return r.db.Create(&models.ProfileView{
		ViewerID: viewerID,
		ViewedID: viewedID,
		ViewedAt: time.Now().UTC(),
	}).Error
}

func (r *userRepository) CountProfileViews(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProfileView{}).Where("viewed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) RecentProfileViews(userID uint, limit int) ([]models.ProfileView, error) {
	var views []models.ProfileView
	err := r.db.Preload("Viewer").
		Where("viewed_id = ?", userID).
		Order("viewed_at DESC, id DESC").
		Limit(limit).
		Find(&views).Error
	return views, err
}

func (r *userRepository) FindSaved(userID, savedUserID uint) (*models.SavedUser, error) {
	var saved models.SavedUser
	if err := r.db.Where("user_id = ? AND saved_user_id = ?", userID, savedUserID).First(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &saved, nil
}

func (r *userRepository) CreateSaved(saved *models.SavedUser) error {
	return r.db.Create(saved).Error
}

// DeleteSaved removes the row for good so the pair can be saved again.
func (r *userRepository) DeleteSaved(saved *models.SavedUser) error {
	return r.db.Unscoped().Delete(saved).Error
}

func (r *userRepository) ListSaved(userID uint) ([]models.SavedUser, error) {
	var saved []models.SavedUser
	err := r.db.Preload("SavedUser").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&saved).Error
	return saved, err
}
