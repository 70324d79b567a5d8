package connection

import (
	"errors"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/notification"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConnectionRepository interface {
	GetByID(id uint) (*models.Connection, error)
	FindBetween(a, b uint) (*models.Connection, error)
	Create(conn *models.Connection) error
	Save(conn *models.Connection) error
	Delete(conn *models.Connection) error
	ListAccepted(userID uint) ([]models.Connection, error)
	ListReceived(userID uint) ([]models.Connection, error)
	ListSent(userID uint) ([]models.Connection, error)
	GetActiveUser(id uint) (*models.User, error)
	Notify(userID uint, notificationType, content string, relatedID uint) error
	WithTransaction(fn func(ConnectionRepository) error) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) WithTransaction(fn func(ConnectionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&connectionRepository{db: tx})
	})
}

func (r *connectionRepository) withUsers() *gorm.DB {
	return r.db.Preload("Requester").Preload("Recipient")
}

func (r *connectionRepository) GetByID(id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.withUsers().First(&conn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

// FindBetween looks the pair up in either direction.
func (r *connectionRepository) FindBetween(a, b uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.Where("pair_key = ?", models.PairKey(a, b)).First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) Create(conn *models.Connection) error {
	conn.PairKey = models.PairKey(conn.RequesterID, conn.RecipientID)
	return r.db.Omit(clause.Associations).Create(conn).Error
}

func (r *connectionRepository) Save(conn *models.Connection) error {
	conn.PairKey = models.PairKey(conn.RequesterID, conn.RecipientID)
	return r.db.Omit(clause.Associations).Save(conn).Error
}

func (r *connectionRepository) Delete(conn *models.Connection) error {
	return r.db.Unscoped().Delete(conn).Error
}

func (r *connectionRepository) ListAccepted(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.withUsers().
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, models.ConnectionAccepted).
		Order("updated_at DESC").
		Find(&conns).Error
	return conns, err
}

func (r *connectionRepository) ListReceived(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.withUsers().
		Where("recipient_id = ? AND status = ?", userID, models.ConnectionPending).
		Order("created_at DESC").
		Find(&conns).Error
	return conns, err
}

func (r *connectionRepository) ListSent(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.withUsers().
		Where("requester_id = ? AND status = ?", userID, models.ConnectionPending).
		Order("created_at DESC").
		Find(&conns).Error
	return conns, err
}

func (r *connectionRepository) GetActiveUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *connectionRepository) Notify(userID uint, notificationType, content string, relatedID uint) error {
	return notification.Notify(r.db, userID, notificationType, content, &relatedID)
}
