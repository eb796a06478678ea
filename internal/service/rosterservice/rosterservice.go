package rosterservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
)

//go:generate mockgen -destination=mock_rosterservice.go -package=rosterservice github.com/GlebRadaev/festeros/internal/service/rosterservice MemberRepo,AccountRepo

type MemberRepo interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByAccountID(ctx context.Context, accountID string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}

type AccountRepo interface {
	List(ctx context.Context) ([]domain.Account, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}

type Service struct {
	memberRepo  MemberRepo
	accountRepo AccountRepo
	newID       func() string
}

func New(memberRepo MemberRepo, accountRepo AccountRepo) *Service {
	return &Service{
		memberRepo:  memberRepo,
		accountRepo: accountRepo,
		newID:       uuid.NewString,
	}
}

// ListMembers is a best-effort read: a store failure yields an empty roster.
func (s *Service) ListMembers(ctx context.Context, caller domain.Caller) ([]domain.Member, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return []domain.Member{}, nil
	}
	domain.SortMembers(members)
	return members, nil
}

func (s *Service) GetMember(ctx context.Context, caller domain.Caller, id string) (*domain.Member, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get member", zap.String("member_id", id), zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	return member, nil
}

func (s *Service) CreateMember(ctx context.Context, caller domain.Caller, input domain.Member) (*domain.Member, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.ID = s.newID()
	input.AccountID = nil

	member, err := s.memberRepo.Create(ctx, &input)
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	zap.L().Info("member created", zap.String("member_id", member.ID))
	return member, nil
}

// UpdateMember replaces the personal data of a member. The account link is
// never changed here.
func (s *Service) UpdateMember(ctx context.Context, caller domain.Caller, id string, input domain.Member) (*domain.Member, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.ID = id

	member, err := s.memberRepo.Update(ctx, &input)
	if err != nil {
		zap.L().Error("can't update member", zap.String("member_id", id), zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, caller domain.Caller, id string) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete member", zap.String("member_id", id), zap.Error(err))
		return err
	}
	zap.L().Info("member deleted", zap.String("member_id", id))
	return nil
}

// ListAccounts is a best-effort read like ListMembers.
func (s *Service) ListAccounts(ctx context.Context, caller domain.Caller) ([]domain.Account, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *Service) UpdateAccountRole(ctx context.Context, caller domain.Caller, accountID string, role domain.Role) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if err := domain.ValidateRole(role); err != nil {
		return err
	}
	if err := s.accountRepo.UpdateRole(ctx, accountID, role); err != nil {
		zap.L().Error("can't update account role", zap.String("account_id", accountID), zap.Error(err))
		return err
	}
	zap.L().Info("account role updated", zap.String("account_id", accountID), zap.String("role", string(role)))
	return nil
}

// GetMyMember returns the member linked to the caller's account.
func (s *Service) GetMyMember(ctx context.Context, caller domain.Caller) (*domain.Member, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrPermissionDenied
	}
	member, err := s.memberRepo.GetByAccountID(ctx, caller.AccountID)
	if err != nil {
		zap.L().Error("can't get member by account", zap.String("account_id", caller.AccountID), zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	return member, nil
}
