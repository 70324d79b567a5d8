package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserIDKey = "auth_user_id"
	AuthUserKey   = "auth_user"
)

// AuthMiddleware requires a valid bearer access token belonging to an active user.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		user, err := resolveUser(authHeader, jwtSecret, db)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}

		c.Set(AuthUserIDKey, user.ID)
		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is present and
// lets anonymous requests through untouched.
func OptionalAuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if user, err := resolveUser(authHeader, jwtSecret, db); err == nil {
				c.Set(AuthUserIDKey, user.ID)
				c.Set(AuthUserKey, user)
			}
		}
		c.Next()
	}
}

var (
	errBadHeader    = errors.New("invalid Authorization header format, expected: Bearer <token>")
	errUserInactive = errors.New("user not found or inactive")
)

func resolveUser(authHeader, jwtSecret string, db *gorm.DB) (*models.User, error) {
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
		return nil, errBadHeader
	}

	claims, err := token.ValidateJWT(bearerToken[1], jwtSecret, token.TypeAccess)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	var user models.User
	if err := db.Where("id = ? AND is_active = ?", claims.UserID, true).First(&user).Error; err != nil {
		return nil, errUserInactive
	}
	return &user, nil
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}

// GetCurrentUser returns the user loaded by AuthMiddleware.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
