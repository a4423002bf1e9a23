package loanservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/loancalc"
	"go.uber.org/zap"
)

//go:generate mockgen -source=loanservice.go -destination=mock_loanservice.go -package=loanservice

type Repo interface {
	Create(ctx context.Context, app *domain.LoanApplication) error
	FindByID(ctx context.Context, id int) (*domain.LoanApplication, error)
	List(ctx context.Context, userID *int) ([]domain.LoanApplication, error)
	UpdateStatus(ctx context.Context, id int, review domain.Review) (*domain.LoanApplication, error)
}

var (
	ErrNotFound           = errors.New("loan application not found")
	ErrStatusConflict     = errors.New("loan application was updated by someone else")
	ErrInvalidApplication = errors.New("invalid loan application")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Submit stores a fresh application as pending. A zero term is filled in from
// the loan type.
func (s *Service) Submit(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error) {
	term, err := loancalc.TermForLoanType(app.LoanType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidApplication, err)
	}
	if app.TermMonths == 0 {
		app.TermMonths = term
	}
	if app.TermMonths < 1 || app.TermMonths > loancalc.MaxTermMonths {
		return nil, fmt.Errorf("%w: %w", ErrInvalidApplication, loancalc.ErrInvalidTerm)
	}

	app.Status = domain.StatusPending
	if err := s.repo.Create(ctx, app); err != nil {
		zap.L().Error("can't create loan application", zap.Error(err))
		return nil, err
	}
	zap.L().Info("loan application submitted", zap.Int("id", app.ID), zap.String("loan_type", app.LoanType))
	return app, nil
}

// List returns every application, or only userID's when it is set.
func (s *Service) List(ctx context.Context, userID *int) ([]domain.LoanApplication, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) ListForMember(ctx context.Context, memberID int) ([]domain.LoanApplication, error) {
	return s.repo.List(ctx, &memberID)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.LoanApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status string, reviewerID int, comments string) (*domain.LoanApplication, error) {
	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTransition(current.Status, to); err != nil {
		zap.L().Info("rejected loan transition",
			zap.Int("id", id), zap.String("from", string(current.Status)), zap.String("to", string(to)))
		return nil, err
	}

	review := domain.Review{From: current.Status, To: to, ReviewerID: reviewerID, Notes: comments, At: time.Now()}
	updated, err := s.repo.UpdateStatus(ctx, id, review)
	if err != nil {
		zap.L().Error("can't update loan application status", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrStatusConflict
	}
	zap.L().Info("loan application reviewed",
		zap.Int("id", id), zap.String("from", string(current.Status)), zap.String("to", string(to)), zap.Int("reviewer", reviewerID))
	return updated, nil
}
