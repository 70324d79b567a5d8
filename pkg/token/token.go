package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	issuer = "skillswap"
)

// Claims defines the structure of the JWT claims the API issues.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
// expectedType must match the token_type claim so a refresh token cannot
// stand in for an access token and vice versa.
func ValidateJWT(tokenString, secretKey, expectedType string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.New("token is not yet valid")
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("token signature is invalid")
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.UserID == 0 {
		return nil, errors.New("user_id claim is missing or zero")
	}
	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("expected %s token, got %q", expectedType, claims.TokenType)
	}

	return claims, nil
}

// GenerateAccessToken issues a short lived bearer token.
func GenerateAccessToken(userID uint, secretKey string, expiryMinutes int) (string, error) {
	return generate(userID, TypeAccess, secretKey, time.Duration(expiryMinutes)*time.Minute)
}

// GenerateRefreshToken issues a long lived token meant to be stored server side.
func GenerateRefreshToken(userID uint, secretKey string, expiryDays int) (string, error) {
	return generate(userID, TypeRefresh, secretKey, time.Duration(expiryDays)*24*time.Hour)
}

func generate(userID uint, tokenType, secretKey string, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", errors.New("jwt secret key is empty")
	}
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
