package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

const issuer = "coopportal"

// Principal kinds carried in the token.
const (
	KindMember = "member"
	KindStaff  = "staff"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(principal Principal, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Principal is who a token speaks for.
type Principal struct {
	UserID int    `json:"user_id"`
	Kind   string `json:"kind"`
	Role   string `json:"role,omitempty"`
}

type Claims struct {
	Principal
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(principal Principal, expirationTime time.Time) (string, error) {
	now := time.Now()
	claims := Claims{
		Principal: principal,
		StandardClaims: jwt.StandardClaims{
			Subject:   principal.Kind + ":" + strconv.Itoa(principal.UserID),
			IssuedAt:  now.Unix(),
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer || claims.ExpiresAt == 0 {
		return nil, ErrInvalidTokenClaims
	}
	if claims.Kind != KindMember && claims.Kind != KindStaff {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
