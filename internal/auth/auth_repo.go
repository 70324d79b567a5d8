package auth

import (
	"errors"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"gorm.io/gorm"
)

type AuthRepository interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error

	SaveRefreshToken(token *models.RefreshToken) error
	GetRefreshToken(token string) (*models.RefreshToken, error)
	RevokeRefreshToken(userID uint, token string) (bool, error)
	RevokeAllRefreshTokens(userID uint) error

	WithTransaction(txFunc func(AuthRepository) error) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *authRepository) SaveRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *authRepository) GetRefreshToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.Where("token = ?", token).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken reports whether this call was the one that revoked the token.
func (r *authRepository) RevokeRefreshToken(userID uint, token string) (bool, error) {
	res := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND token = ? AND revoked = ?", userID, token, false).
		Update("revoked", true)
	return res.RowsAffected > 0, res.Error
}

func (r *authRepository) RevokeAllRefreshTokens(userID uint) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

func (r *authRepository) WithTransaction(txFunc func(AuthRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&authRepository{db: tx})
	})
}
