package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/coopportal/pkg/utils"
)

type ContextKey string

const PrincipalKey ContextKey = "principal"

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

// ErrInactivePrincipal is returned by resolvers for accounts that were
// deactivated or removed after the token was issued.
var ErrInactivePrincipal = errors.New("principal is inactive")

// PrincipalResolver reloads the account behind a token on every request.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, p Principal) (Principal, error)
}

type Middleware struct {
	jwtService JWTServiceInterface
	resolver   PrincipalResolver
}

func NewMiddleware(jwtService JWTServiceInterface) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// WithResolver makes Authenticate replace the token principal with the one
// the resolver returns, so role changes and deactivation apply immediately.
func (m *Middleware) WithResolver(resolver PrincipalResolver) *Middleware {
	m.resolver = resolver
	return m
}

// Authenticate rejects requests without a valid bearer token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		principal := claims.Principal
		if m.resolver != nil {
			principal, err = m.resolver.ResolvePrincipal(r.Context(), principal)
			if errors.Is(err, ErrInactivePrincipal) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				utils.RespondWithInternalError(w, r, err)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// RequireMember lets only member portal tokens through. Must run after Authenticate.
func RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok || p.Kind != KindMember {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff lets staff tokens through, limited to roles when any are given.
func RequireStaff(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok || p.Kind != KindStaff {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			if _, ok := allowed[p.Role]; len(allowed) > 0 && !ok {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
