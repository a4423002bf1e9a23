package dto

import (
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
)

type Account struct {
	ID            int       `json:"id" example:"1"`
	AccountNumber string    `json:"account_number" example:"SA-M-0001"`
	AccountType   string    `json:"account_type" example:"savings"`
	Balance       float64   `json:"balance" example:"2500.5"`
	CreatedAt     time.Time `json:"created_at"`
}

type AccountsResponse struct {
	Success  bool      `json:"success" example:"true"`
	Accounts []Account `json:"accounts"`
}

func NewAccounts(accounts []domain.Account) AccountsResponse {
	out := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, Account{
			ID:            a.ID,
			AccountNumber: a.AccountNumber,
			AccountType:   a.AccountType,
			Balance:       a.Balance,
			CreatedAt:     a.CreatedAt,
		})
	}
	return AccountsResponse{Success: true, Accounts: out}
}

type Loan struct {
	ID                 int       `json:"id" example:"8"`
	ApplicationID      *int      `json:"application_id" example:"9"`
	Principal          float64   `json:"principal" example:"100000"`
	TermMonths         int       `json:"term_months" example:"12"`
	MonthlyPayment     float64   `json:"monthly_payment" example:"8884.88"`
	OutstandingBalance float64   `json:"outstanding_balance" example:"50000"`
	Status             string    `json:"status" example:"active"`
	ReleasedAt         time.Time `json:"released_at"`
}

type LoansResponse struct {
	Success bool   `json:"success" example:"true"`
	Loans   []Loan `json:"loans"`
}

func NewLoans(loans []domain.Loan) LoansResponse {
	out := make([]Loan, 0, len(loans))
	for _, l := range loans {
		out = append(out, Loan{
			ID:                 l.ID,
			ApplicationID:      l.ApplicationID,
			Principal:          l.Principal,
			TermMonths:         l.TermMonths,
			MonthlyPayment:     l.MonthlyPayment,
			OutstandingBalance: l.OutstandingBalance,
			Status:             l.Status,
			ReleasedAt:         l.ReleasedAt,
		})
	}
	return LoansResponse{Success: true, Loans: out}
}

type Transaction struct {
	ID          int       `json:"id" example:"5"`
	AccountID   *int      `json:"account_id"`
	LoanID      *int      `json:"loan_id" example:"8"`
	Type        string    `json:"type" example:"loan_payment"`
	Amount      float64   `json:"amount" example:"1500"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionsResponse struct {
	Success      bool          `json:"success" example:"true"`
	Transactions []Transaction `json:"transactions"`
}

func NewTransactions(txs []domain.Transaction) TransactionsResponse {
	out := make([]Transaction, 0, len(txs))
	for _, tr := range txs {
		out = append(out, Transaction{
			ID:          tr.ID,
			AccountID:   tr.AccountID,
			LoanID:      tr.LoanID,
			Type:        tr.Type,
			Amount:      tr.Amount,
			Description: tr.Description,
			CreatedAt:   tr.CreatedAt,
		})
	}
	return TransactionsResponse{Success: true, Transactions: out}
}
