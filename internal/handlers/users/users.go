package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/userservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	List(ctx context.Context) ([]domain.StaffUser, error)
	Create(ctx context.Context, email, fullName, role, password string) (*domain.StaffUser, error)
	Deactivate(ctx context.Context, id, actorID int) error
	Delete(ctx context.Context, id, actorID int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List godoc
//
//	@Summary	List staff users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UsersResponse
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUsers(list))
}

// Create godoc
//
//	@Summary	Create a staff user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateUserRequest	true	"New user"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.UserResponse
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	409	{object}	utils.Response	"Email already registered"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), req.Email, req.FullName, req.Role, req.Password)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.UserResponse{Success: true, User: dto.NewUser(*user)})
}

// Deactivate godoc
//
//	@Summary	Deactivate a staff user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	403	{object}	utils.Response	"Can't deactivate yourself"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users/{id}/deactivate [put]
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.userService.Deactivate, "User deactivated")
}

// Delete godoc
//
//	@Summary	Delete a staff user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	403	{object}	utils.Response	"Can't delete yourself"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.userService.Delete, "User deleted")
}

func (h *UserHandler) act(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id, actorID int) error, done string) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := fn(r.Context(), id, principal.UserID); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponse{Success: true, Message: done})
}

func (h *UserHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, userservice.ErrInvalidRole):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, userservice.ErrSelfAction):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, userservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrEmailTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithInternalError(w, r, err)
	}
}
