package service

import (
	"time"

	"github.com/GlebRadaev/festeros/internal/handlers/auth"
	"github.com/GlebRadaev/festeros/internal/handlers/lottery"
	"github.com/GlebRadaev/festeros/internal/handlers/members"

	pkgauth "github.com/GlebRadaev/festeros/pkg/auth"

	"github.com/GlebRadaev/festeros/internal/repo"
	authservice "github.com/GlebRadaev/festeros/internal/service/authservice"
	lotteryservice "github.com/GlebRadaev/festeros/internal/service/lotteryservice"
	rosterservice "github.com/GlebRadaev/festeros/internal/service/rosterservice"
)

type Services struct {
	AuthService    auth.Service
	RosterService  members.Service
	LotteryService lottery.Service

	// Tokens and CallerResolver back the authentication middleware.
	Tokens         pkgauth.JWTServiceInterface
	CallerResolver pkgauth.CallerResolver
}

func New(repo *repo.Repositories, tokens pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	authService := authservice.New(repo.AccountRepo, repo.MemberRepo, pkgauth.NewHashService(0), tokens, tokenTTL)
	rosterService := rosterservice.New(repo.MemberRepo, repo.AccountRepo)
	lotteryService := lotteryservice.New(repo.DrawRepo, repo.AssignmentRepo, repo.MemberRepo)

	return &Services{
		AuthService:    authService,
		RosterService:  rosterService,
		LotteryService: lotteryService,
		Tokens:         tokens,
		CallerResolver: authService,
	}
}
