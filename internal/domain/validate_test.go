package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberNormalize(t *testing.T) {
	m := Member{
		GivenName:        "  Ana ",
		FirstFamilyName:  " García",
		SecondFamilyName: ptr("   "),
		Email:            ptr(" Ana@Example.COM "),
		Phone:            ptr(""),
	}
	m.Normalize()

	assert.Equal(t, "Ana", m.GivenName)
	assert.Equal(t, "García", m.FirstFamilyName)
	assert.Nil(t, m.SecondFamilyName)
	assert.Equal(t, ptr("ana@example.com"), m.Email)
	assert.Nil(t, m.Phone)
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{name: "zero", amount: 0},
		{name: "positive", amount: 12.5},
		{name: "negative", amount: -0.01, wantErr: true},
		{name: "not a number", amount: math.NaN(), wantErr: true},
		{name: "infinite", amount: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayment(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), "amount_paid")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.NoError(t, ValidateRole(RoleMember))
	assert.ErrorIs(t, ValidateRole(""), ErrValidation)
	assert.ErrorIs(t, ValidateRole("owner"), ErrValidation)
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{name: "valid", email: "ana@example.com", password: "longenough"},
		{name: "missing email", email: "", password: "longenough", wantErr: "email"},
		{name: "malformed email", email: "ana@", password: "longenough", wantErr: "email"},
		{name: "short password", email: "ana@example.com", password: "short", wantErr: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.email, tt.password)
			if tt.wantErr != "" {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
