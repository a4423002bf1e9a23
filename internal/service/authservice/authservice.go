package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type MemberRepo interface {
	FindByMemberNumber(ctx context.Context, memberNumber string) (*domain.Member, error)
	FindByID(ctx context.Context, id int) (*domain.Member, error)
}

type StaffRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	FindByID(ctx context.Context, id int) (*domain.StaffUser, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownPrincipal   = fmt.Errorf("%w or no longer exists", auth.ErrInactivePrincipal)
)

// dummyHash is compared against when the account does not exist, so a missing
// account costs the same bcrypt round as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Service struct {
	memberRepo  MemberRepo
	staffRepo   StaffRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(memberRepo MemberRepo, staffRepo StaffRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		memberRepo:  memberRepo,
		staffRepo:   staffRepo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) AuthenticateMember(ctx context.Context, memberNumber, password string) (*domain.Member, error) {
	member, err := s.memberRepo.FindByMemberNumber(ctx, memberNumber)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		s.hashService.ComparePassword(dummyHash, password)
		zap.L().Info("member login failed", zap.String("member_number", memberNumber))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, password); !ok {
		zap.L().Info("member login failed", zap.String("member_number", memberNumber))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("member successfully authenticated", zap.Int("id", member.ID))
	return member, nil
}

func (s *Service) AuthenticateStaff(ctx context.Context, email, password string) (*domain.StaffUser, error) {
	user, err := s.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		s.hashService.ComparePassword(dummyHash, password)
		zap.L().Info("staff login failed", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("staff login failed", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.Int("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *Service) GenerateToken(principal auth.Principal) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(principal, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) MemberProfile(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsActive {
		return nil, ErrUnknownPrincipal
	}
	return member, nil
}

func (s *Service) StaffProfile(ctx context.Context, id int) (*domain.StaffUser, error) {
	user, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnknownPrincipal
	}
	return user, nil
}

// ResolvePrincipal reloads the account behind a token. Staff get the role
// they hold now, not the one they logged in with.
func (s *Service) ResolvePrincipal(ctx context.Context, p auth.Principal) (auth.Principal, error) {
	switch p.Kind {
	case auth.KindMember:
		if _, err := s.MemberProfile(ctx, p.UserID); err != nil {
			return auth.Principal{}, err
		}
		return p, nil
	case auth.KindStaff:
		user, err := s.StaffProfile(ctx, p.UserID)
		if err != nil {
			return auth.Principal{}, err
		}
		if string(user.Role) != p.Role {
			zap.L().Info("staff role changed since login", zap.Int("id", user.ID), zap.String("role", string(user.Role)))
		}
		p.Role = string(user.Role)
		return p, nil
	}
	return auth.Principal{}, ErrUnknownPrincipal
}
