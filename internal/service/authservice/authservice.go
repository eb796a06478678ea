package authservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/pkg/auth"
)

//go:generate mockgen -destination=mock_authservice.go -package=authservice github.com/GlebRadaev/festeros/internal/service/authservice AccountRepo,MemberRepo

type AccountRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	CreateAndLink(ctx context.Context, account *domain.Account) (int64, error)
}

type MemberRepo interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type Service struct {
	accountRepo AccountRepo
	memberRepo  MemberRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	newID       func() string
}

func New(accountRepo AccountRepo, memberRepo MemberRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		newID:       uuid.NewString,
	}
}

// Register creates a member account. Only emails present in the roster may
// sign up, and the new account is linked to those roster entries.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := domain.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	isMember, err := s.memberRepo.ExistsByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't check roster email", zap.Error(err))
		return nil, err
	}
	if !isMember {
		zap.L().Info("sign-up rejected, email not in roster", zap.String("email", email))
		return nil, domain.ErrNotAMember
	}

	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	account := &domain.Account{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleMember,
	}
	if name := strings.TrimSpace(displayName); name != "" {
		account.DisplayName = &name
	}

	linked, err := s.accountRepo.CreateAndLink(ctx, account)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account registered", zap.String("email", email), zap.Int64("linked_members", linked))
	return account, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if account == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("account authenticated", zap.String("email", email))
	return account, nil
}

func (s *Service) GenerateToken(accountID string) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(accountID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ResolveCaller loads the account's current role. It runs on every request
// so a revoked admin loses access immediately.
func (s *Service) ResolveCaller(ctx context.Context, accountID string) (domain.Caller, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Caller{}, err
	}
	if account == nil {
		return domain.Caller{}, domain.ErrNotFound
	}
	return domain.Caller{AccountID: account.ID, Role: account.Role}, nil
}
