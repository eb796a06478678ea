package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:     "Valid Password",
			password: "securepassword",
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, tt.password, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashedPassword, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		expectMatch bool
	}{
		{
			name:        "Matching Password",
			password:    "securepassword",
			expectMatch: true,
		},
		{
			name:        "Non-Matching Password",
			password:    "wrongpassword",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := hashService.ComparePassword(hashedPassword, tt.password)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}

func TestNewHashService_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
}

func TestNewHashServiceCost(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
	}{
		{name: "Zero falls back to default", cost: 0, wantCost: bcrypt.DefaultCost},
		{name: "Explicit cost kept", cost: bcrypt.MinCost, wantCost: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashService := NewHashService(tt.cost)
			assert.Equal(t, tt.wantCost, hashService.cost)

			hashedPassword, err := hashService.HashPassword("securepassword")
			assert.NoError(t, err)
			cost, err := bcrypt.Cost([]byte(hashedPassword))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}
