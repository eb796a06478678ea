package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret, "festeros")

	tests := []struct {
		name           string
		accountID      string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			accountID:      "acc-1",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token is still signed",
			accountID:      "acc-1",
			expirationTime: time.Now().Add(-time.Hour),
		},
		{
			name:           "Empty account id",
			accountID:      "",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.accountID, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, "festeros")

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("acc-1", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("acc-1", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				other := NewJWTService("other-secret", "festeros")
				token, _ := other.GenerateJWT("acc-1", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Other issuer",
			setup: func() string {
				other := NewJWTService(testSecret, "someone-else")
				token, _ := other.GenerateJWT("acc-1", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing account id",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "festeros",
				})
				tokenString, _ := token.SignedString([]byte(testSecret))
				return tokenString
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "acc-1", claims.AccountID)
			}
		})
	}
}
