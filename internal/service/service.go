package service

import (
	"time"

	"github.com/GlebRadaev/coopportal/internal/handlers/auth"
	"github.com/GlebRadaev/coopportal/internal/handlers/ledger"
	"github.com/GlebRadaev/coopportal/internal/handlers/loans"
	"github.com/GlebRadaev/coopportal/internal/handlers/members"
	"github.com/GlebRadaev/coopportal/internal/handlers/membership"
	"github.com/GlebRadaev/coopportal/internal/handlers/payments"
	"github.com/GlebRadaev/coopportal/internal/handlers/users"

	pkgauth "github.com/GlebRadaev/coopportal/pkg/auth"

	"github.com/GlebRadaev/coopportal/internal/repo"
	"github.com/GlebRadaev/coopportal/internal/service/authservice"
	"github.com/GlebRadaev/coopportal/internal/service/ledgerservice"
	"github.com/GlebRadaev/coopportal/internal/service/loanservice"
	"github.com/GlebRadaev/coopportal/internal/service/memberservice"
	"github.com/GlebRadaev/coopportal/internal/service/membershipservice"
	"github.com/GlebRadaev/coopportal/internal/service/paymentservice"
	"github.com/GlebRadaev/coopportal/internal/service/userservice"
)

type Services struct {
	AuthService       auth.Service
	MembershipService membership.Service
	LoanService       loans.Service
	UserService       users.Service
	MemberService     members.Service
	PaymentService    payments.Service
	LedgerService     ledger.Service

	// Principals backs the per-request account check in the auth middleware.
	Principals pkgauth.PrincipalResolver
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	hashService := &pkgauth.HashService{}
	authService := authservice.New(repo.MemberAuth, repo.StaffAuth, hashService, jwtService, tokenTTL)

	return &Services{
		AuthService:       authService,
		MembershipService: membershipservice.New(repo.MembershipRepo),
		LoanService:       loanservice.New(repo.LoanRepo),
		UserService:       userservice.New(repo.UserRepo, hashService),
		MemberService:     memberservice.New(repo.MemberRepo, hashService),
		PaymentService:    paymentservice.New(repo.PaymentRepo, repo.LoanOwnership),
		LedgerService:     ledgerservice.New(repo.LedgerRepo),
		Principals:        authService,
	}
}
