package ledgerservice

import (
	"context"

	"github.com/GlebRadaev/coopportal/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

// TransactionLimit caps the member's transaction history listing.
const TransactionLimit = 100

type Repo interface {
	Accounts(ctx context.Context, memberID int) ([]domain.Account, error)
	Loans(ctx context.Context, memberID int) ([]domain.Loan, error)
	Transactions(ctx context.Context, memberID, limit int) ([]domain.Transaction, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Accounts(ctx context.Context, memberID int) ([]domain.Account, error) {
	return s.repo.Accounts(ctx, memberID)
}

func (s *Service) Loans(ctx context.Context, memberID int) ([]domain.Loan, error) {
	return s.repo.Loans(ctx, memberID)
}

func (s *Service) Transactions(ctx context.Context, memberID int) ([]domain.Transaction, error) {
	return s.repo.Transactions(ctx, memberID, TransactionLimit)
}
