package memberservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=memberservice.go -destination=mock_memberservice.go -package=memberservice

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Repo interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	List(ctx context.Context, limit, offset int) ([]domain.Member, error)
	Count(ctx context.Context) (int, error)
	Deactivate(ctx context.Context, id int) (bool, error)
}

var (
	ErrNotFound     = errors.New("member not found")
	ErrMemberExists = errors.New("member number or email already registered")
)

type Page struct {
	Members    []domain.Member
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

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

// List clamps page to >= 1 and limit to [1, MaxLimit], DefaultLimit when unset.
func (s *Service) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var (
		members []domain.Member
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.repo.List(gctx, limit, (page-1)*limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load members page", zap.Int("page", page), zap.Error(err))
		return nil, err
	}

	return &Page{
		Members:    members,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (s *Service) Create(ctx context.Context, memberNumber string, email *string, fullName, password string) (*domain.Member, error) {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	if email != nil && *email == "" {
		email = nil
	}

	member, err := s.repo.Create(ctx, &domain.Member{
		MemberNumber: memberNumber,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashedPassword,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		zap.L().Info("member already exists", zap.String("member_number", memberNumber))
		return nil, ErrMemberExists
	}
	if err != nil {
		zap.L().Error("can't create member: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("member created", zap.Int("id", member.ID), zap.String("member_number", memberNumber))
	return member, nil
}

func (s *Service) Deactivate(ctx context.Context, id int) error {
	found, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	zap.L().Info("member deactivated", zap.Int("id", id))
	return nil
}
