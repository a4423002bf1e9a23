package payments

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/paymentservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/upload"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

const uploadKind = "payment"

type Service interface {
	Submit(ctx context.Context, memberID int, loanID *int, amount float64, proofPath string) (*domain.PaymentReference, error)
	List(ctx context.Context, status string) ([]domain.PaymentReference, error)
	ListForMember(ctx context.Context, memberID int) ([]domain.PaymentReference, error)
	Review(ctx context.Context, id int, status string, reviewerID int, notes string) (*domain.PaymentReference, error)
}

type Uploader interface {
	ParseForm(w http.ResponseWriter, r *http.Request) error
	Stage(kind string, files map[string]*multipart.FileHeader) (*upload.Batch, error)
}

type PaymentHandler struct {
	paymentService Service
	uploader       Uploader
}

func New(paymentService Service, uploader Uploader) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		uploader:       uploader,
	}
}

// Submit godoc
//
//	@Summary		Upload a proof of payment
//	@Description	Generates a Luhn-checked reference number. The proof must be an image.
//	@Tags			Payments
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			amount	formData	number	true	"Amount paid"
//	@Param			loan_id	formData	int		false	"Loan the payment is for"
//	@Param			proof	formData	file	true	"Proof of payment"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PaymentReferenceResponse
//	@Failure		400	{object}	utils.Response	"Invalid form or attachment"
//	@Failure		403	{object}	utils.Response	"Loan belongs to someone else"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/reference [post]
func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.uploader.ParseForm(w, r); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(r.FormValue("amount")), ",", ""), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be a number")
		return
	}
	var loanID *int
	if raw := strings.TrimSpace(r.FormValue("loan_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid loan_id")
			return
		}
		loanID = &id
	}
	files := upload.FormFiles(r, "proof")
	if files["proof"] == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "proof is required")
		return
	}

	batch, err := h.uploader.Stage(uploadKind, files)
	if err != nil {
		if upload.Rejected(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithInternalError(w, r, err)
		return
	}
	defer batch.Release()

	ref, err := h.paymentService.Submit(r.Context(), principal.UserID, loanID, amount, *batch.Name("proof"))
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	batch.Commit()

	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentReferenceResponse{
		Success:   true,
		Reference: dto.NewPaymentReference(*ref),
	})
}

// ListOwn godoc
//
//	@Summary	List the member's payment references
//	@Tags		Member
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PaymentReferencesResponse
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/member/payments [get]
func (h *PaymentHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	refs, err := h.paymentService.ListForMember(r.Context(), principal.UserID)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentReferences(refs))
}

// List godoc
//
//	@Summary	List payment references for review
//	@Tags		Payments
//	@Produce	json
//	@Param		status	query	string	false	"pending, confirmed or rejected"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PaymentReferencesResponse
//	@Failure	400	{object}	utils.Response	"Unknown status"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/payments/references [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	refs, err := h.paymentService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentReferences(refs))
}

// Review godoc
//
//	@Summary		Confirm or reject a payment reference
//	@Description	Confirmation books a loan_payment transaction and reduces the linked loan's balance
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Reference id"
//	@Param			request	body	dto.PaymentReviewRequest	true	"Decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentReferenceResponse
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		409	{object}	utils.Response	"Already reviewed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/references/{id}/status [put]
func (h *PaymentHandler) Review(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reference id")
		return
	}
	var req dto.PaymentReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ref, err := h.paymentService.Review(r.Context(), id, req.Status, principal.UserID, req.Notes)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentReferenceResponse{
		Success:   true,
		Reference: dto.NewPaymentReference(*ref),
	})
}

func (h *PaymentHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownStatus), errors.Is(err, paymentservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, paymentservice.ErrLoanNotOwned):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, paymentservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrInvalidReview), errors.Is(err, paymentservice.ErrStatusConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithInternalError(w, r, err)
	}
}
