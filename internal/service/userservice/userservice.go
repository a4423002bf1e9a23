package userservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	Create(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
	Deactivate(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailTaken  = errors.New("email already registered")
	ErrInvalidRole = errors.New("invalid role")
	ErrSelfAction  = errors.New("users can't deactivate or delete themselves")
)

type Service struct {
	repo        Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		repo:        repo,
		hashService: hashService,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.StaffUser, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, email, fullName, role, password string) (*domain.StaffUser, error) {
	r := domain.Role(role)
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.Create(ctx, &domain.StaffUser{
		Email:        email,
		FullName:     fullName,
		Role:         r,
		PasswordHash: hashedPassword,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created", zap.Int("id", user.ID), zap.String("role", role))
	return user, nil
}

func (s *Service) Deactivate(ctx context.Context, id, actorID int) error {
	if id == actorID {
		return ErrSelfAction
	}
	found, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	zap.L().Info("user deactivated", zap.Int("id", id), zap.Int("by", actorID))
	return nil
}

func (s *Service) Delete(ctx context.Context, id, actorID int) error {
	if id == actorID {
		return ErrSelfAction
	}
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	zap.L().Info("user deleted", zap.Int("id", id), zap.Int("by", actorID))
	return nil
}
