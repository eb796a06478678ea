package rosterservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/festeros/internal/domain"
)

var (
	admin  = domain.Caller{AccountID: "acc-admin", Role: domain.RoleAdmin}
	member = domain.Caller{AccountID: "acc-member", Role: domain.RoleMember}
)

func ptr[T any](v T) *T { return &v }

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockAccountRepo) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)

	service := New(memberRepo, accountRepo)
	service.newID = func() string { return "m-new" }
	return service, memberRepo, accountRepo
}

func TestAdminOnlyOperationsRejectMembers(t *testing.T) {
	// No repository expectations: any store call fails the test.
	service, _, _ := NewMock(t)
	ctx := context.Background()

	for _, caller := range []domain.Caller{member, {}} {
		_, err := service.ListMembers(ctx, caller)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)

		_, err = service.GetMember(ctx, caller, "m1")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)

		_, err = service.CreateMember(ctx, caller, domain.Member{GivenName: "Ana", FirstFamilyName: "Alonso"})
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)

		_, err = service.UpdateMember(ctx, caller, "m1", domain.Member{GivenName: "Ana", FirstFamilyName: "Alonso"})
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)

		assert.ErrorIs(t, service.DeleteMember(ctx, caller, "m1"), domain.ErrPermissionDenied)

		_, err = service.ListAccounts(ctx, caller)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)

		assert.ErrorIs(t, service.UpdateAccountRole(ctx, caller, "acc-1", domain.RoleAdmin), domain.ErrPermissionDenied)
	}
}

func TestListMembers(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expected    []domain.Member
	}{
		{
			name: "Sorted by family name then given name",
			prepareMock: func() {
				memberRepo.EXPECT().List(gomock.Any()).Return([]domain.Member{
					{ID: "m3", GivenName: "Pau", FirstFamilyName: "soler"},
					{ID: "m2", GivenName: "Luis", FirstFamilyName: "Alonso"},
					{ID: "m1", GivenName: "Ana", FirstFamilyName: "Alonso"},
				}, nil)
			},
			expected: []domain.Member{
				{ID: "m1", GivenName: "Ana", FirstFamilyName: "Alonso"},
				{ID: "m2", GivenName: "Luis", FirstFamilyName: "Alonso"},
				{ID: "m3", GivenName: "Pau", FirstFamilyName: "soler"},
			},
		},
		{
			name: "Store failure yields empty roster",
			prepareMock: func() {
				memberRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expected: []domain.Member{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.ListMembers(context.Background(), admin)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetMember(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	memberRepo.EXPECT().GetByID(gomock.Any(), "m1").Return(&domain.Member{ID: "m1"}, nil)
	memberRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	found, err := service.GetMember(context.Background(), admin, "m1")
	assert.NoError(t, err)
	assert.Equal(t, "m1", found.ID)

	_, err = service.GetMember(context.Background(), admin, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateMember(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		input         domain.Member
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Blank optional fields stored as null",
			input: domain.Member{
				GivenName: "  Ana ", FirstFamilyName: "Alonso", SecondFamilyName: ptr("  "),
				Email: ptr(" Ana@Example.com "), Phone: ptr(""), AccountID: ptr("acc-9"),
			},
			prepareMock: func() {
				memberRepo.EXPECT().Create(gomock.Any(), &domain.Member{
					ID: "m-new", GivenName: "Ana", FirstFamilyName: "Alonso", Email: ptr("ana@example.com"),
				}).DoAndReturn(func(ctx context.Context, m *domain.Member) (*domain.Member, error) {
					return m, nil
				})
			},
		},
		{
			name:          "Missing given name",
			input:         domain.Member{GivenName: "   ", FirstFamilyName: "Alonso"},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Malformed email",
			input:         domain.Member{GivenName: "Ana", FirstFamilyName: "Alonso", Email: ptr("not-an-email")},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Duplicate email",
			input: domain.Member{GivenName: "Ana", FirstFamilyName: "Alonso", Email: ptr("ana@example.com")},
			prepareMock: func() {
				memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEmailTaken)
			},
			expectedError: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.CreateMember(context.Background(), admin, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "m-new", result.ID)
			assert.Nil(t, result.AccountID)
		})
	}
}

func TestUpdateMember(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	memberRepo.EXPECT().Update(gomock.Any(), &domain.Member{ID: "m1", GivenName: "Ana", FirstFamilyName: "Alonso"}).
		Return(&domain.Member{ID: "m1", AccountID: ptr("acc-1"), GivenName: "Ana", FirstFamilyName: "Alonso"}, nil)
	memberRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)

	updated, err := service.UpdateMember(context.Background(), admin, "m1", domain.Member{GivenName: "Ana", FirstFamilyName: "Alonso"})
	assert.NoError(t, err)
	assert.Equal(t, ptr("acc-1"), updated.AccountID)

	_, err = service.UpdateMember(context.Background(), admin, "m2", domain.Member{GivenName: "Ana", FirstFamilyName: "Alonso"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMember(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		repoErr       error
		expectedError error
	}{
		{name: "Deleted"},
		{name: "Member has assignments", repoErr: domain.ErrMemberHasAssignments, expectedError: domain.ErrMemberHasAssignments},
		{name: "Member not found", repoErr: domain.ErrNotFound, expectedError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberRepo.EXPECT().Delete(gomock.Any(), "m1").Return(tt.repoErr)
			err := service.DeleteMember(context.Background(), admin, "m1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListAccounts(t *testing.T) {
	service, _, accountRepo := NewMock(t)

	accountRepo.EXPECT().List(gomock.Any()).Return([]domain.Account{{ID: "acc-1"}}, nil)
	accountRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))

	accounts, err := service.ListAccounts(context.Background(), admin)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)

	accounts, err = service.ListAccounts(context.Background(), admin)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Account{}, accounts)
}

func TestUpdateAccountRole(t *testing.T) {
	service, _, accountRepo := NewMock(t)

	tests := []struct {
		name          string
		role          domain.Role
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Promoted to admin",
			role: domain.RoleAdmin,
			prepareMock: func() {
				accountRepo.EXPECT().UpdateRole(gomock.Any(), "acc-1", domain.RoleAdmin).Return(nil)
			},
		},
		{
			name:          "Unknown role",
			role:          domain.Role("treasurer"),
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Account not found",
			role: domain.RoleMember,
			prepareMock: func() {
				accountRepo.EXPECT().UpdateRole(gomock.Any(), "acc-1", domain.RoleMember).Return(domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.UpdateAccountRole(context.Background(), admin, "acc-1", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetMyMember(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	memberRepo.EXPECT().GetByAccountID(gomock.Any(), "acc-member").Return(&domain.Member{ID: "m1"}, nil)
	memberRepo.EXPECT().GetByAccountID(gomock.Any(), "acc-member").Return(nil, nil)

	found, err := service.GetMyMember(context.Background(), member)
	assert.NoError(t, err)
	assert.Equal(t, "m1", found.ID)

	_, err = service.GetMyMember(context.Background(), member)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.GetMyMember(context.Background(), domain.Caller{})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
