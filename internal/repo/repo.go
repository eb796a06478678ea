package repo

import (
	"github.com/GlebRadaev/festeros/internal/pg"
	accountrepo "github.com/GlebRadaev/festeros/internal/repo/account-repo"
	assignmentrepo "github.com/GlebRadaev/festeros/internal/repo/assignment-repo"
	drawrepo "github.com/GlebRadaev/festeros/internal/repo/draw-repo"
	memberrepo "github.com/GlebRadaev/festeros/internal/repo/member-repo"
	"github.com/GlebRadaev/festeros/internal/service/authservice"
	"github.com/GlebRadaev/festeros/internal/service/lotteryservice"
	"github.com/GlebRadaev/festeros/internal/service/rosterservice"
)

// MemberRepo serves the roster, the ledger and sign-up.
type MemberRepo interface {
	rosterservice.MemberRepo
	authservice.MemberRepo
}

type AccountRepo interface {
	rosterservice.AccountRepo
	authservice.AccountRepo
}

type Repositories struct {
	MemberRepo     MemberRepo
	AccountRepo    AccountRepo
	DrawRepo       lotteryservice.DrawRepo
	AssignmentRepo lotteryservice.AssignmentRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		MemberRepo:     memberrepo.New(conn),
		AccountRepo:    accountrepo.New(conn, txManager),
		DrawRepo:       drawrepo.New(conn, txManager),
		AssignmentRepo: assignmentrepo.New(conn),
	}
}
