package loans

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/loanservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/upload"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=loans.go -destination=mock_loans.go -package=loans

const uploadKind = "loans"

type Service interface {
	Submit(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error)
	List(ctx context.Context, userID *int) ([]domain.LoanApplication, error)
	ListForMember(ctx context.Context, memberID int) ([]domain.LoanApplication, error)
	Get(ctx context.Context, id int) (*domain.LoanApplication, error)
	UpdateStatus(ctx context.Context, id int, status string, reviewerID int, comments string) (*domain.LoanApplication, error)
}

type Uploader interface {
	ParseForm(w http.ResponseWriter, r *http.Request) error
	Stage(kind string, files map[string]*multipart.FileHeader) (*upload.Batch, error)
}

type LoanHandler struct {
	loanService Service
	uploader    Uploader
}

func New(loanService Service, uploader Uploader) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		uploader:    uploader,
	}
}

// Submit godoc
//
//	@Summary		Submit a loan application
//	@Description	Member portal intake. Accepts up to two images: payslip and valid_id. A missing term is taken from the loan type.
//	@Tags			Loans
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			loan_type		formData	string	true	"regular or emergency"
//	@Param			amount			formData	number	true	"Requested amount"
//	@Param			term_months		formData	int		false	"Term in months"
//	@Param			purpose			formData	string	true	"Purpose"
//	@Param			full_name		formData	string	true	"Full name"
//	@Param			contact_number	formData	string	true	"Contact number"
//	@Param			address			formData	string	true	"Address"
//	@Param			employer		formData	string	false	"Employer"
//	@Param			monthly_income	formData	number	false	"Monthly income"
//	@Param			co_maker_name	formData	string	false	"Co-maker"
//	@Param			payslip			formData	file	false	"Payslip"
//	@Param			valid_id		formData	file	false	"Valid ID"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SubmitResponse
//	@Failure		400	{object}	utils.Response	"Invalid form or attachment"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Members only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loan-application/submit [post]
func (h *LoanHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.uploader.ParseForm(w, r); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	form, badField := dto.LoanFormFromRequest(r)
	if badField != "" {
		utils.RespondWithError(w, http.StatusBadRequest, badField+" must be a number")
		return
	}
	if err := validate.Struct(form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := h.uploader.Stage(uploadKind, upload.FormFiles(r, "payslip", "valid_id"))
	if err != nil {
		if upload.Rejected(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithInternalError(w, r, err)
		return
	}
	defer batch.Release()

	app := form.Domain(principal.UserID)
	app.PayslipPath = batch.Name("payslip")
	app.ValidIDPath = batch.Name("valid_id")

	created, err := h.loanService.Submit(r.Context(), app)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	batch.Commit()

	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitResponse{
		Success:       true,
		ApplicationID: created.ID,
		Message:       "Loan application submitted",
	})
}

// List godoc
//
//	@Summary		List loan applications
//	@Description	Newest first, optionally limited to one submitting member
//	@Tags			Loans
//	@Produce		json
//	@Param			user_id	query	int	false	"Submitting member id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LoanApplicationsResponse
//	@Failure		400	{object}	utils.Response	"Invalid user_id"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loan-application/list [get]
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	var userID *int
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		userID = &id
	}

	apps, err := h.loanService.List(r.Context(), userID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanApplications(apps))
}

// ListOwn godoc
//
//	@Summary		List the member's own loan applications
//	@Tags			Member
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LoanApplicationsResponse
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/member/loan-applications [get]
func (h *LoanHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	apps, err := h.loanService.ListForMember(r.Context(), principal.UserID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanApplications(apps))
}

// Get godoc
//
//	@Summary		Get a loan application
//	@Description	Staff see every application, members only their own
//	@Tags			Loans
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LoanApplicationResponse
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loan-application/{id} [get]
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	app, err := h.loanService.Get(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	// members must not learn whether someone else's application exists
	if principal.Kind == auth.KindMember && (app.UserID == nil || *app.UserID != principal.UserID) {
		utils.RespondWithError(w, http.StatusNotFound, loanservice.ErrNotFound.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanApplicationResponse{
		Success:     true,
		Application: dto.NewLoanApplication(*app),
	})
}

// UpdateStatus godoc
//
//	@Summary		Review a loan application
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.LoanStatusRequest	true	"Application id and new status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LoanApplicationResponse
//	@Failure		400	{object}	utils.Response	"Invalid request body or status"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		409	{object}	utils.Response	"Illegal transition or concurrent update"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loan-application/update-status [put]
func (h *LoanHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.LoanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.loanService.UpdateStatus(r.Context(), req.ID, req.Status, principal.UserID, req.ReviewerComments)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanApplicationResponse{
		Success:     true,
		Application: dto.NewLoanApplication(*app),
	})
}

func (h *LoanHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownStatus), errors.Is(err, loanservice.ErrInvalidApplication):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, loanservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, loanservice.ErrStatusConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithInternalError(w, r, err)
	}
}
