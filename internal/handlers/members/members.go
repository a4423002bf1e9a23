package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/memberservice"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=members

type Service interface {
	List(ctx context.Context, page, limit int) (*memberservice.Page, error)
	Create(ctx context.Context, memberNumber string, email *string, fullName, password string) (*domain.Member, error)
	Deactivate(ctx context.Context, id int) error
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// List godoc
//
//	@Summary		List member accounts
//	@Description	Paginated, newest first. limit defaults to 20 and is capped at 100.
//	@Tags			Members
//	@Produce		json
//	@Param			page	query	int	false	"Page, from 1"
//	@Param			limit	query	int	false	"Page size"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MembersPageResponse
//	@Failure		400	{object}	utils.Response	"Invalid page or limit"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	p, err := h.memberService.List(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMembersPage(p.Members, p.Page, p.Limit, p.Total, p.TotalPages))
}

// Create godoc
//
//	@Summary		Create a member portal login
//	@Description	Also opens the member's savings and share capital accounts
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateMemberRequest	true	"New member"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.MemberResponse
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		409	{object}	utils.Response	"Member number or email already registered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.memberService.Create(r.Context(), req.MemberNumber, req.Email, req.FullName, req.Password)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.MemberResponse{Success: true, Member: dto.NewMember(*member)})
}

// Deactivate godoc
//
//	@Summary	Deactivate a member portal login
//	@Tags		Members
//	@Produce	json
//	@Param		id	path	int	true	"Member id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members/{id}/deactivate [put]
func (h *MemberHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	if err := h.memberService.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, memberservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Member deactivated"})
}

// queryInt treats an absent parameter as zero, which the service replaces with its default.
func queryInt(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
