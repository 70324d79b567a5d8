package auth

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/token"
	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"github.com/DhavalSuthar-24/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

var errTokenAlreadyUsed = errors.New("refresh token already used")

type AuthController struct {
	repo   AuthRepository
	config *config.Config
	log    *logger.Logger
}

func NewAuthController(repo AuthRepository, cfg *config.Config, log *logger.Logger) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

// issueTokens creates an access/refresh pair and stores the refresh token through repo,
// which may be a transactional repository.
func (ac *AuthController) issueTokens(repo AuthRepository, userID uint) (*TokenResponse, error) {
	accessToken, err := token.GenerateAccessToken(userID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(userID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return nil, fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().UTC().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}
	if err := repo.SaveRefreshToken(refreshToken); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		TokenType:    "bearer",
		ExpiresIn:    ac.config.JWT.AccessTokenExpiryMinutes * 60,
	}, nil
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new account. The email is stored lowercased and must be unique.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=models.User}
// @Failure      400   {object} responses.ErrorResponse "Validation error or email already registered"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := ac.repo.GetUserByEmail(email)
	if err != nil {
		ac.log.Error("lookup user by email", "error", err)
		responses.InternalServerError(c, "Failed to register user")
		return
	}
	if existing != nil {
		responses.BadRequest(c, "Email already registered")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password, ac.config.Auth.BcryptCost)
	if err != nil {
		ac.log.Error("hash password", "error", err)
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	newUser := &models.User{
		Email:           email,
		Password:        hashedPassword,
		Name:            strings.TrimSpace(req.Name),
		IntroLine:       req.IntroLine,
		ProfilePhotoURL: req.ProfilePhotoURL,
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		WhatsappNumber:  req.WhatsappNumber,
		IsActive:        true,
		IsSuperuser:     ac.config.IsSuperuserEmail(email),
		Availability:    datatypes.NewJSONType(models.Availability{}),
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		ac.log.Error("create user", "email", email, "error", err)
		responses.InternalServerError(c, "User creation failed")
		return
	}

	ac.log.Info("user registered", "user_id", newUser.ID)
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", newUser)
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for an access and a refresh token. Accepts JSON or the OAuth2 password form.
// @Tags         Auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} responses.SuccessResponse{data=TokenResponse}
// @Failure      400  {object} responses.ErrorResponse "Validation error or inactive user"
// @Failure      401  {object} responses.ErrorResponse "Incorrect email or password"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	user, err := ac.repo.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		ac.log.Error("lookup user by email", "error", err)
		responses.InternalServerError(c, "Login failed")
		return
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		responses.Unauthorized(c, "Incorrect email or password")
		return
	}
	if !user.IsActive {
		responses.BadRequest(c, "Inactive user")
		return
	}

	tokens, err := ac.issueTokens(ac.repo, user.ID)
	if err != nil {
		ac.log.Error("issue tokens", "user_id", user.ID, "error", err)
		responses.InternalServerError(c, "Login failed")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", tokens)
}

// RefreshToken godoc
// @Summary      Refresh tokens
// @Description  Rotate a refresh token. The presented token is revoked and a new pair is issued.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object} responses.SuccessResponse{data=TokenResponse}
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/refresh [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.config.JWT.RefreshTokenSecret, token.TypeRefresh)
	if err != nil {
		responses.Unauthorized(c, "Invalid refresh token")
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		ac.log.Error("lookup refresh token", "error", err)
		responses.InternalServerError(c, "Token refresh failed")
		return
	}
	if stored == nil || stored.Revoked || stored.UserID != claims.UserID || stored.ExpiresAt.Before(time.Now()) {
		responses.Unauthorized(c, "Invalid refresh token")
		return
	}

	user, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		ac.log.Error("lookup user", "user_id", claims.UserID, "error", err)
		responses.InternalServerError(c, "Token refresh failed")
		return
	}
	if user == nil || !user.IsActive {
		responses.Unauthorized(c, "User not found or inactive")
		return
	}

	var tokens *TokenResponse
	err = ac.repo.WithTransaction(func(tx AuthRepository) error {
		revoked, err := tx.RevokeRefreshToken(user.ID, req.RefreshToken)
		if err != nil {
			return err
		}
		if !revoked {
			return errTokenAlreadyUsed
		}
		tokens, err = ac.issueTokens(tx, user.ID)
		return err
	})
	if errors.Is(err, errTokenAlreadyUsed) {
		responses.Unauthorized(c, "Invalid refresh token")
		return
	}
	if err != nil {
		ac.log.Error("rotate refresh token", "user_id", user.ID, "error", err)
		responses.InternalServerError(c, "Token refresh failed")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", tokens)
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke one refresh token, or all of the caller's refresh tokens.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body  LogoutRequest  false  "Token to revoke"
// @Success      200  {object} responses.SuccessResponse
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	switch {
	case req.InvalidateAllSessions || req.RefreshToken == "":
		err = ac.repo.RevokeAllRefreshTokens(userID)
	default:
		_, err = ac.repo.RevokeRefreshToken(userID, req.RefreshToken)
	}
	if err != nil {
		ac.log.Error("revoke refresh tokens", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Logout failed")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}
