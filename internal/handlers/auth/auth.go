package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/authservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"github.com/GlebRadaev/coopportal/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	AuthenticateMember(ctx context.Context, memberNumber, password string) (*domain.Member, error)
	AuthenticateStaff(ctx context.Context, email, password string) (*domain.StaffUser, error)
	GenerateToken(principal auth.Principal) (string, error)
	MemberProfile(ctx context.Context, id int) (*domain.Member, error)
	StaffProfile(ctx context.Context, id int) (*domain.StaffUser, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate a member or a staff user
//	@Description	Members log in with memberNumber, staff with email. The token is returned in the body and the Authorization header.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		principal auth.Principal
		profile   dto.Profile
	)
	switch {
	case req.MemberNumber != "":
		member, err := h.authService.AuthenticateMember(r.Context(), req.MemberNumber, req.Password)
		if err != nil {
			h.respondWithLoginError(w, r, err)
			return
		}
		principal = auth.Principal{UserID: member.ID, Kind: auth.KindMember}
		profile = memberProfile(member)
	case req.Email != "":
		user, err := h.authService.AuthenticateStaff(r.Context(), req.Email, req.Password)
		if err != nil {
			h.respondWithLoginError(w, r, err)
			return
		}
		principal = auth.Principal{UserID: user.ID, Kind: auth.KindStaff, Role: string(user.Role)}
		profile = staffProfile(user)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "memberNumber or email is required")
		return
	}

	token, err := h.authService.GenerateToken(principal)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    profile,
	})
}

// Me godoc
//
//	@Summary		Current principal
//	@Description	Returns the profile of the member or staff user the token was issued to
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponse
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile dto.Profile
	switch principal.Kind {
	case auth.KindMember:
		member, err := h.authService.MemberProfile(r.Context(), principal.UserID)
		if err != nil {
			h.respondWithProfileError(w, r, err)
			return
		}
		profile = memberProfile(member)
	case auth.KindStaff:
		user, err := h.authService.StaffProfile(r.Context(), principal.UserID)
		if err != nil {
			h.respondWithProfileError(w, r, err)
			return
		}
		profile = staffProfile(user)
	default:
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponse{Success: true, User: profile})
}

func (h *AuthHandler) respondWithLoginError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	utils.RespondWithInternalError(w, r, err)
}

func (h *AuthHandler) respondWithProfileError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, authservice.ErrUnknownPrincipal) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithInternalError(w, r, err)
}

func memberProfile(m *domain.Member) dto.Profile {
	return dto.Profile{
		ID:           m.ID,
		Kind:         auth.KindMember,
		MemberNumber: m.MemberNumber,
		Email:        m.Email,
		FullName:     m.FullName,
		CreatedAt:    m.CreatedAt,
	}
}

func staffProfile(u *domain.StaffUser) dto.Profile {
	email := u.Email
	return dto.Profile{
		ID:        u.ID,
		Kind:      auth.KindStaff,
		Email:     &email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
