package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/festeros/internal/pg"
	"github.com/GlebRadaev/festeros/internal/repo"
	"github.com/GlebRadaev/festeros/internal/service/authservice"
	"github.com/GlebRadaev/festeros/internal/service/lotteryservice"
	"github.com/GlebRadaev/festeros/internal/service/rosterservice"
	"github.com/GlebRadaev/festeros/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	tokens := auth.NewMockJWTServiceInterface(ctrl)

	services := New(repos, tokens, time.Hour)

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &rosterservice.Service{}, services.RosterService)
	assert.IsType(t, &lotteryservice.Service{}, services.LotteryService)
	assert.Same(t, tokens, services.Tokens)
	assert.Same(t, services.AuthService, services.CallerResolver)
}
