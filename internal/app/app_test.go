package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/festeros/internal/config"
	"github.com/GlebRadaev/festeros/internal/handlers"
	"github.com/GlebRadaev/festeros/internal/pg"
	"github.com/GlebRadaev/festeros/internal/repo"
	"github.com/GlebRadaev/festeros/internal/service"
	"github.com/GlebRadaev/festeros/pkg/auth"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	_, cancel := context.WithCancel(context.Background())

	var g errgroup.Group
	g.Go(func() error {
		return fmt.Errorf("mock error")
	})
	s.app.group = &g

	err := s.app.Wait(cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NothingStarted() {
	_, cancel := context.WithCancel(context.Background())

	s.NoError(s.app.Wait(cancel))
}

func (s *ApplicationSuite) TestHTTPServerStopsOnCancel() {
	ctrl := gomock.NewController(s.T())
	mockDB, err := pgxmock.NewPool()
	s.Require().NoError(err)
	defer mockDB.Close()

	addr := freeAddr(s.T())
	s.app.cfg = &config.Config{Address: addr}
	s.app.repo = repo.New(mockDB, pg.NewMockTXManager(ctrl))
	s.app.srv = service.New(s.app.repo, auth.NewJWTService("secret", tokenIssuer), time.Hour)
	s.app.api = handlers.New(s.app.srv)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startHTTPServer(ctx)

	s.Eventually(func() bool {
		resp, err := http.Get("http://" + addr + "/api/me/member")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusUnauthorized
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	s.NoError(s.app.Wait(cancel))
}

func (s *ApplicationSuite) TestHTTPServerListenFailure() {
	ctrl := gomock.NewController(s.T())
	mockDB, err := pgxmock.NewPool()
	s.Require().NoError(err)
	defer mockDB.Close()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer busy.Close()

	s.app.cfg = &config.Config{Address: busy.Addr().String()}
	s.app.repo = repo.New(mockDB, pg.NewMockTXManager(ctrl))
	s.app.srv = service.New(s.app.repo, auth.NewJWTService("secret", tokenIssuer), time.Hour)
	s.app.api = handlers.New(s.app.srv)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startHTTPServer(ctx)

	err = s.app.Wait(cancel)
	s.Require().Error(err)
	s.Contains(err.Error(), "http server exited with error")
}

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	return l.Addr().String()
}
