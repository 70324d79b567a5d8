package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken(42, "secret", 5)
	require.NoError(t, err)

	claims, err := ValidateJWT(tok, "secret", TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, TypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWTRejects(t *testing.T) {
	access, err := GenerateAccessToken(1, "secret", 5)
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken(1, "secret", 1)
	require.NoError(t, err)

	expiredClaims := &Claims{
		UserID:    1,
		TokenType: TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		secret   string
		wantType string
	}{
		{name: "empty token", token: "", secret: "secret", wantType: TypeAccess},
		{name: "wrong secret", token: access, secret: "other", wantType: TypeAccess},
		{name: "refresh used as access", token: refresh, secret: "secret", wantType: TypeAccess},
		{name: "access used as refresh", token: access, secret: "secret", wantType: TypeRefresh},
		{name: "expired", token: expired, secret: "secret", wantType: TypeAccess},
		{name: "garbage", token: "not.a.jwt", secret: "secret", wantType: TypeAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, tt.secret, tt.wantType)
			assert.Error(t, err)
		})
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	a, err := GenerateRefreshToken(7, "secret", 1)
	require.NoError(t, err)
	b, err := GenerateRefreshToken(7, "secret", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
