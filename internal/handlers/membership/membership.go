package membership

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/membershipservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/upload"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=membership.go -destination=mock_membership.go -package=membership

const uploadKind = "membership"

type Service interface {
	Submit(ctx context.Context, app *domain.MembershipApplication) (*domain.MembershipApplication, error)
	List(ctx context.Context, status string) ([]domain.MembershipApplication, error)
	Get(ctx context.Context, id int) (*domain.MembershipApplication, error)
	UpdateStatus(ctx context.Context, id int, status string, reviewerID int, notes string, membershipNumber *string) (*domain.MembershipApplication, error)
}

type Uploader interface {
	ParseForm(w http.ResponseWriter, r *http.Request) error
	Stage(kind string, files map[string]*multipart.FileHeader) (*upload.Batch, error)
}

type MembershipHandler struct {
	membershipService Service
	uploader          Uploader
}

func New(membershipService Service, uploader Uploader) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		uploader:          uploader,
	}
}

// Submit godoc
//
//	@Summary		Submit a membership application
//	@Description	Public landing page intake. Accepts up to two images: photo and valid_id.
//	@Tags			Membership
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			first_name		formData	string	true	"First name"
//	@Param			middle_name		formData	string	false	"Middle name"
//	@Param			last_name		formData	string	true	"Last name"
//	@Param			birth_date		formData	string	true	"Birth date, YYYY-MM-DD"
//	@Param			gender			formData	string	true	"male, female or other"
//	@Param			civil_status	formData	string	true	"single, married, widowed or separated"
//	@Param			contact_number	formData	string	true	"Contact number"
//	@Param			email			formData	string	true	"Email"
//	@Param			address			formData	string	true	"Address"
//	@Param			occupation		formData	string	true	"Occupation"
//	@Param			employer		formData	string	false	"Employer"
//	@Param			monthly_income	formData	number	false	"Monthly income"
//	@Param			tin				formData	string	false	"Tax identification number"
//	@Param			beneficiary		formData	string	false	"Beneficiary"
//	@Param			photo			formData	file	false	"Photo"
//	@Param			valid_id		formData	file	false	"Valid ID"
//	@Success		201				{object}	dto.SubmitResponse
//	@Failure		400				{object}	utils.Response	"Invalid form or attachment"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/membership-application [post]
func (h *MembershipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := h.uploader.ParseForm(w, r); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	form, badField := dto.MembershipFormFromRequest(r)
	if badField != "" {
		utils.RespondWithError(w, http.StatusBadRequest, badField+" must be a number")
		return
	}
	if err := validate.Struct(form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := h.uploader.Stage(uploadKind, upload.FormFiles(r, "photo", "valid_id"))
	if err != nil {
		if upload.Rejected(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithInternalError(w, r, err)
		return
	}
	defer batch.Release()

	app := form.Domain()
	app.PhotoPath = batch.Name("photo")
	app.ValidIDPath = batch.Name("valid_id")

	created, err := h.membershipService.Submit(r.Context(), app)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	batch.Commit()

	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitResponse{
		Success:       true,
		ApplicationID: created.ID,
		Message:       "Membership application submitted",
	})
}

// List godoc
//
//	@Summary		List membership applications
//	@Description	Newest first, optionally filtered by status
//	@Tags			Membership
//	@Produce		json
//	@Param			status	query	string	false	"Status filter"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MembershipApplicationsResponse
//	@Failure		400	{object}	utils.Response	"Unknown status"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/membership-applications [get]
func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.membershipService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMembershipApplications(apps))
}

// Get godoc
//
//	@Summary		Get a membership application
//	@Tags			Membership
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MembershipApplicationResponse
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/membership-applications/{id} [get]
func (h *MembershipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	app, err := h.membershipService.Get(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MembershipApplicationResponse{
		Success:     true,
		Application: dto.NewMembershipApplication(*app),
	})
}

// UpdateStatus godoc
//
//	@Summary		Review a membership application
//	@Description	Moves the application along the review lifecycle. Approval may record a membership number.
//	@Tags			Membership
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Application id"
//	@Param			request	body	dto.MembershipStatusRequest	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MembershipApplicationResponse
//	@Failure		400	{object}	utils.Response	"Invalid request body or status"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		409	{object}	utils.Response	"Illegal transition or concurrent update"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/membership-applications/{id}/status [put]
func (h *MembershipHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.MembershipStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.membershipService.UpdateStatus(r.Context(), id, req.Status, principal.UserID, req.ReviewNotes, req.MembershipNumber)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MembershipApplicationResponse{
		Success:     true,
		Application: dto.NewMembershipApplication(*app),
	})
}

func (h *MembershipHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, membershipservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, membershipservice.ErrStatusConflict),
		errors.Is(err, membershipservice.ErrNumberTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithInternalError(w, r, err)
	}
}
