package membershipservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=membershipservice.go -destination=mock_membershipservice.go -package=membershipservice

type Repo interface {
	Create(ctx context.Context, app *domain.MembershipApplication) error
	FindByID(ctx context.Context, id int) (*domain.MembershipApplication, error)
	List(ctx context.Context, status domain.Status) ([]domain.MembershipApplication, error)
	UpdateStatus(ctx context.Context, id int, review domain.Review, membershipNumber *string) (*domain.MembershipApplication, error)
}

var (
	ErrNotFound       = errors.New("membership application not found")
	ErrStatusConflict = errors.New("membership application was updated by someone else")
	ErrNumberTaken    = errors.New("membership number is already assigned to another application")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Submit stores a fresh application. Whatever status the caller set is replaced by pending.
func (s *Service) Submit(ctx context.Context, app *domain.MembershipApplication) (*domain.MembershipApplication, error) {
	app.Status = domain.StatusPending
	if err := s.repo.Create(ctx, app); err != nil {
		zap.L().Error("can't create membership application", zap.Error(err))
		return nil, err
	}
	zap.L().Info("membership application submitted", zap.Int("id", app.ID))
	return app, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.MembershipApplication, error) {
	var filter domain.Status
	if status != "" {
		st, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = st
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.MembershipApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

// UpdateStatus applies one reviewed transition. The membership number is only
// recorded when the application is approved.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string, reviewerID int, notes string, membershipNumber *string) (*domain.MembershipApplication, error) {
	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTransition(current.Status, to); err != nil {
		zap.L().Info("rejected membership transition",
			zap.Int("id", id), zap.String("from", string(current.Status)), zap.String("to", string(to)))
		return nil, err
	}

	if to != domain.StatusApproved || (membershipNumber != nil && *membershipNumber == "") {
		membershipNumber = nil
	}
	review := domain.Review{From: current.Status, To: to, ReviewerID: reviewerID, Notes: notes, At: time.Now()}

	updated, err := s.repo.UpdateStatus(ctx, id, review, membershipNumber)
	if errors.Is(err, domain.ErrAlreadyExists) {
		zap.L().Info("membership number already assigned", zap.Int("id", id), zap.Stringp("membership_number", membershipNumber))
		return nil, ErrNumberTaken
	}
	if err != nil {
		zap.L().Error("can't update membership application status", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrStatusConflict
	}
	zap.L().Info("membership application reviewed",
		zap.Int("id", id), zap.String("from", string(current.Status)), zap.String("to", string(to)), zap.Int("reviewer", reviewerID))
	return updated, nil
}
