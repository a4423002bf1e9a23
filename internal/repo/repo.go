package repo

import (
	"github.com/GlebRadaev/coopportal/internal/pg"
	ledgerrepo "github.com/GlebRadaev/coopportal/internal/repo/ledger-repo"
	loanrepo "github.com/GlebRadaev/coopportal/internal/repo/loan-repo"
	memberrepo "github.com/GlebRadaev/coopportal/internal/repo/member-repo"
	membershiprepo "github.com/GlebRadaev/coopportal/internal/repo/membership-repo"
	paymentrepo "github.com/GlebRadaev/coopportal/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/coopportal/internal/repo/user-repo"
	"github.com/GlebRadaev/coopportal/internal/service/authservice"
	"github.com/GlebRadaev/coopportal/internal/service/ledgerservice"
	"github.com/GlebRadaev/coopportal/internal/service/loanservice"
	"github.com/GlebRadaev/coopportal/internal/service/memberservice"
	"github.com/GlebRadaev/coopportal/internal/service/membershipservice"
	"github.com/GlebRadaev/coopportal/internal/service/paymentservice"
	"github.com/GlebRadaev/coopportal/internal/service/userservice"
)

// Repositories exposes each store through the interface its consumer declares.
// One store may back several fields.
type Repositories struct {
	MembershipRepo membershipservice.Repo
	LoanRepo       loanservice.Repo
	MemberAuth     authservice.MemberRepo
	StaffAuth      authservice.StaffRepo
	UserRepo       userservice.Repo
	MemberRepo     memberservice.Repo
	PaymentRepo    paymentservice.Repo
	LoanOwnership  paymentservice.LoanRepo
	LedgerRepo     ledgerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	memberRepo := memberrepo.New(conn, txManager)
	ledgerRepo := ledgerrepo.New(conn)

	return &Repositories{
		MembershipRepo: membershiprepo.New(conn),
		LoanRepo:       loanrepo.New(conn),
		MemberAuth:     memberRepo,
		StaffAuth:      userRepo,
		UserRepo:       userRepo,
		MemberRepo:     memberRepo,
		PaymentRepo:    paymentrepo.New(conn, txManager),
		LoanOwnership:  ledgerRepo,
		LedgerRepo:     ledgerRepo,
	}
}
