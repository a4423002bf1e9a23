package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

// referenceAttempts bounds retries when a generated reference number collides.
const referenceAttempts = 3

type Repo interface {
	Create(ctx context.Context, p *domain.PaymentReference) error
	FindByID(ctx context.Context, id int) (*domain.PaymentReference, error)
	List(ctx context.Context, status domain.PaymentStatus) ([]domain.PaymentReference, error)
	ListByMember(ctx context.Context, memberID int) ([]domain.PaymentReference, error)
	Review(ctx context.Context, id int, to domain.PaymentStatus, reviewerID int, notes string, at time.Time) (*domain.PaymentReference, error)
}

type LoanRepo interface {
	OwnsLoan(ctx context.Context, memberID, loanID int) (bool, error)
}

var (
	ErrNotFound       = errors.New("payment reference not found")
	ErrInvalidAmount  = errors.New("amount must be greater than zero and at most 999999999999.99")
	ErrLoanNotOwned   = errors.New("loan does not belong to the member")
	ErrInvalidReview  = errors.New("payment reference is already reviewed")
	ErrStatusConflict = errors.New("payment reference was reviewed by someone else")
)

type Service struct {
	repo     Repo
	loanRepo LoanRepo
}

func New(repo Repo, loanRepo LoanRepo) *Service {
	return &Service{
		repo:     repo,
		loanRepo: loanRepo,
	}
}

// Submit records an uploaded proof of payment under a fresh Luhn-checked reference number.
func (s *Service) Submit(ctx context.Context, memberID int, loanID *int, amount float64, proofPath string) (*domain.PaymentReference, error) {
	if amount <= 0 || amount > domain.MaxAmount {
		return nil, ErrInvalidAmount
	}
	if loanID != nil {
		owned, err := s.loanRepo.OwnsLoan(ctx, memberID, *loanID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrLoanNotOwned
		}
	}

	p := &domain.PaymentReference{
		MemberID:  memberID,
		LoanID:    loanID,
		Amount:    amount,
		ProofPath: proofPath,
		Status:    domain.PaymentPending,
	}
	var err error
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		p.ReferenceNumber, err = validate.NewReferenceNumber(time.Now(), memberID)
		if err != nil {
			return nil, err
		}
		if !validate.IsLuna(p.ReferenceNumber) {
			return nil, fmt.Errorf("generated reference %q fails the check digit", p.ReferenceNumber)
		}
		err = s.repo.Create(ctx, p)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			break
		}
		zap.L().Warn("payment reference collision, retrying", zap.String("reference", p.ReferenceNumber))
	}
	if err != nil {
		zap.L().Error("can't create payment reference", zap.Int("member_id", memberID), zap.Error(err))
		return nil, fmt.Errorf("can't create payment reference: %w", err)
	}
	zap.L().Info("payment reference submitted", zap.Int("id", p.ID), zap.String("reference", p.ReferenceNumber))
	return p, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.PaymentReference, error) {
	var filter domain.PaymentStatus
	if status != "" {
		st, err := domain.ParsePaymentStatus(status)
		if err != nil {
			return nil, err
		}
		filter = st
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) ListForMember(ctx context.Context, memberID int) ([]domain.PaymentReference, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *Service) Review(ctx context.Context, id int, status string, reviewerID int, notes string) (*domain.PaymentReference, error) {
	to, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if !domain.CanReviewPayment(current.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidReview, current.Status, to)
	}

	reviewed, err := s.repo.Review(ctx, id, to, reviewerID, notes, time.Now())
	if err != nil {
		zap.L().Error("can't review payment reference", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if reviewed == nil {
		return nil, ErrStatusConflict
	}
	zap.L().Info("payment reference reviewed", zap.Int("id", id), zap.String("status", string(to)), zap.Int("reviewer", reviewerID))
	return reviewed, nil
}
