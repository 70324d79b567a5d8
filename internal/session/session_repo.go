package session

import (
	"errors"
	"time"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/notification"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Create(s *models.Session) error
	GetByID(id uint) (*models.Session, error)
	UpdateStatus(s *models.Session, status models.SessionStatus) error
	ListForUser(userID uint, status models.SessionStatus, role string) ([]models.Session, error)
	HasOverlap(participants []uint, start, end time.Time) (bool, error)
	GetActiveUser(id uint) (*models.User, error)
	GetSkill(id uint) (*models.Skill, error)
	Notify(userID uint, notificationType, content string, relatedID uint) error
	WithTransaction(fn func(SessionRepository) error) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) WithTransaction(fn func(SessionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&sessionRepository{db: tx})
	})
}

func (r *sessionRepository) withRelations() *gorm.DB {
	return r.db.Preload("Requester").Preload("Provider").Preload("Skill")
}

func (r *sessionRepository) Create(s *models.Session) error {
	return r.db.Omit(clause.Associations).Create(s).Error
}

func (r *sessionRepository) GetByID(id uint) (*models.Session, error) {
	var s models.Session
	if err := r.withRelations().First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// UpdateStatus only writes when the row still holds the status s was read with.
func (r *sessionRepository) UpdateStatus(s *models.Session, status models.SessionStatus) error {
	res := r.db.Model(&models.Session{}).
		Where("id = ? AND status = ?", s.ID, s.Status).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	s.Status = status
	return nil
}

func (r *sessionRepository) ListForUser(userID uint, status models.SessionStatus, role string) ([]models.Session, error) {
	var sessions []models.Session
	query := r.withRelations()
	switch role {
	case RoleProvider:
		query = query.Where("provider_id = ?", userID)
	case RoleRequester:
		query = query.Where("requester_id = ?", userID)
	default:
		query = query.Where("provider_id = ? OR requester_id = ?", userID, userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("start_time ASC, id ASC").Find(&sessions).Error
	return sessions, err
}

// HasOverlap reports whether any non-cancelled session involving one of the
// participants intersects the half-open interval [start, end).
func (r *sessionRepository) HasOverlap(participants []uint, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Session{}).
		Where("status <> ?", models.SessionCancelled).
		Where("provider_id IN ? OR requester_id IN ?", participants, participants).
		Where("end_time > ? AND start_time < ?", start, end).
		Count(&count).Error
	return count > 0, err
}

func (r *sessionRepository) GetActiveUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *sessionRepository) GetSkill(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

func (r *sessionRepository) Notify(userID uint, notificationType, content string, relatedID uint) error {
	return notification.Notify(r.db, userID, notificationType, content, &relatedID)
}
