package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/coopportal/internal/config"
	"github.com/GlebRadaev/coopportal/internal/handlers"
	"github.com/GlebRadaev/coopportal/internal/handlers/auth"
	"github.com/GlebRadaev/coopportal/internal/handlers/health"
	"github.com/GlebRadaev/coopportal/internal/handlers/ledger"
	"github.com/GlebRadaev/coopportal/internal/handlers/loans"
	"github.com/GlebRadaev/coopportal/internal/handlers/members"
	"github.com/GlebRadaev/coopportal/internal/handlers/membership"
	"github.com/GlebRadaev/coopportal/internal/handlers/payments"
	"github.com/GlebRadaev/coopportal/internal/handlers/users"
	"github.com/GlebRadaev/coopportal/internal/service"
	pkgauth "github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/upload"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
)

type ApplicationSuite struct {
	suite.Suite
	app  *Application
	ctrl *gomock.Controller
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.ctrl = gomock.NewController(s.T())
}

func (s *ApplicationSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ApplicationSuite) withHandlers() {
	s.app.cfg = &config.Config{
		Address:      "127.0.0.1:0",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
	}
	s.app.api = handlers.New(&service.Services{
		AuthService:       auth.NewMockService(s.ctrl),
		MembershipService: membership.NewMockService(s.ctrl),
		LoanService:       loans.NewMockService(s.ctrl),
		UserService:       users.NewMockService(s.ctrl),
		MemberService:     members.NewMockService(s.ctrl),
		PaymentService:    payments.NewMockService(s.ctrl),
		LedgerService:     ledger.NewMockService(s.ctrl),
	}, handlers.Options{
		Uploader: upload.NewStore(s.T().TempDir(), 1024),
		JWT:      pkgauth.NewJWTService("secret"),
		DB:       health.NewMockPinger(s.ctrl),
	})
}

func (s *ApplicationSuite) TestNewServerUsesConfiguredTimeouts() {
	s.withHandlers()

	server := s.app.newServer()

	s.Equal("127.0.0.1:0", server.Addr)
	s.Equal(time.Second, server.ReadTimeout)
	s.Equal(2*time.Second, server.WriteTimeout)
	s.NotNil(server.Handler)
}

func (s *ApplicationSuite) TestGracefulShutdown() {
	s.withHandlers()
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.startHTTPServer(ctx))
	time.AfterFunc(50*time.Millisecond, cancel)

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
