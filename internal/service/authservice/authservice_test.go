package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockMemberRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(accountRepo, memberRepo, hashService, jwtService, time.Hour)
	service.newID = func() string { return "acc-1" }
	return service, accountRepo, memberRepo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, accountRepo, memberRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name            string
		email           string
		password        string
		prepareMock     func()
		expectedAccount *domain.Account
		expectedError   error
	}{
		{
			name:     "Successful registration",
			email:    " Ana@Example.com ",
			password: "testpassword",
			prepareMock: func() {
				memberRepo.EXPECT().ExistsByEmail(context.Background(), "ana@example.com").Return(true, nil)
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				accountRepo.EXPECT().CreateAndLink(context.Background(), gomock.Any()).Return(int64(1), nil)
			},
			expectedAccount: &domain.Account{
				ID:           "acc-1",
				Email:        "ana@example.com",
				PasswordHash: "hashedpassword",
				DisplayName:  ptr("Ana"),
				Role:         domain.RoleMember,
			},
		},
		{
			name:     "Email not in roster",
			email:    "stranger@example.com",
			password: "testpassword",
			prepareMock: func() {
				memberRepo.EXPECT().ExistsByEmail(context.Background(), "stranger@example.com").Return(false, nil)
			},
			expectedError: domain.ErrNotAMember,
		},
		{
			name:     "Account already exists",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				memberRepo.EXPECT().ExistsByEmail(context.Background(), "ana@example.com").Return(true, nil)
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(&domain.Account{ID: "acc-0"}, nil)
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name:          "Short password",
			email:         "ana@example.com",
			password:      "short",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Malformed email",
			email:         "ana",
			password:      "testpassword",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Error hashing password",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				memberRepo.EXPECT().ExistsByEmail(context.Background(), "ana@example.com").Return(true, nil)
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating account",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				memberRepo.EXPECT().ExistsByEmail(context.Background(), "ana@example.com").Return(true, nil)
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				accountRepo.EXPECT().CreateAndLink(context.Background(), gomock.Any()).Return(int64(0), errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Register(context.Background(), tt.email, tt.password, "Ana")

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrValidation) {
					assert.ErrorIs(t, err, domain.ErrValidation)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, account)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAccount, account)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, accountRepo, _, passwordHasher, _ := NewMock(t)
	stored := &domain.Account{ID: "acc-1", Email: "ana@example.com", PasswordHash: "hashedpassword", Role: domain.RoleMember}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func() {
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name:     "Unknown email",
			password: "testpassword",
			prepareMock: func() {
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "wrongpassword",
			prepareMock: func() {
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Store failure",
			password: "testpassword",
			prepareMock: func() {
				accountRepo.EXPECT().GetByEmail(context.Background(), "ana@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Authenticate(context.Background(), "ANA@example.com", tt.password)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, account)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, stored, account)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("acc-1", gomock.Any()).DoAndReturn(func(id string, exp time.Time) (string, error) {
					assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
					return "token", nil
				})
			},
			expectedToken: "token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("acc-1", gomock.Any()).Return("", errors.New("signing error"))
			},
			expectedError: errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken("acc-1")

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}

func TestResolveCaller(t *testing.T) {
	service, accountRepo, _, _, _ := NewMock(t)

	accountRepo.EXPECT().GetByID(context.Background(), "acc-1").Return(&domain.Account{ID: "acc-1", Role: domain.RoleAdmin}, nil)
	accountRepo.EXPECT().GetByID(context.Background(), "gone").Return(nil, nil)
	accountRepo.EXPECT().GetByID(context.Background(), "acc-2").Return(nil, errors.New("database error"))

	caller, err := service.ResolveCaller(context.Background(), "acc-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.Caller{AccountID: "acc-1", Role: domain.RoleAdmin}, caller)

	_, err = service.ResolveCaller(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.ResolveCaller(context.Background(), "acc-2")
	assert.EqualError(t, err, "database error")
}

func ptr[T any](v T) *T { return &v }
