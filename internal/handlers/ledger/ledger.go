package ledger

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type Service interface {
	Accounts(ctx context.Context, memberID int) ([]domain.Account, error)
	Loans(ctx context.Context, memberID int) ([]domain.Loan, error)
	Transactions(ctx context.Context, memberID int) ([]domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Accounts godoc
//
//	@Summary	Member's savings and share capital accounts
//	@Tags		Member
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.AccountsResponse
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/member/accounts [get]
func (h *LedgerHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberFromRequest(w, r)
	if !ok {
		return
	}
	accounts, err := h.ledgerService.Accounts(r.Context(), memberID)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccounts(accounts))
}

// Loans godoc
//
//	@Summary	Member's released loans
//	@Tags		Member
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.LoansResponse
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/member/loans [get]
func (h *LedgerHandler) Loans(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberFromRequest(w, r)
	if !ok {
		return
	}
	loans, err := h.ledgerService.Loans(r.Context(), memberID)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoans(loans))
}

// Transactions godoc
//
//	@Summary		Member's latest transactions
//	@Description	Newest first, at most 100
//	@Tags			Member
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionsResponse
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/member/transactions [get]
func (h *LedgerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberFromRequest(w, r)
	if !ok {
		return
	}
	txs, err := h.ledgerService.Transactions(r.Context(), memberID)
	if err != nil {
		utils.RespondWithInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactions(txs))
}

func memberFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok || principal.Kind != auth.KindMember {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return principal.UserID, true
}
