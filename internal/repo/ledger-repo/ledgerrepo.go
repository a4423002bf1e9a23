package ledgerrepo

import (
	"context"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/pg"
	"go.uber.org/zap"
)

// Repository reads a member's accounts, loans and transactions.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Accounts(ctx context.Context, memberID int) ([]domain.Account, error) {
	query := `
        SELECT id, member_id, account_number, account_type, balance, created_at
        FROM accounts
        WHERE member_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.MemberID, &a.AccountNumber, &a.AccountType, &a.Balance, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *Repository) Loans(ctx context.Context, memberID int) ([]domain.Loan, error) {
	query := `
        SELECT id, member_id, application_id, principal, term_months, monthly_payment,
            outstanding_balance, status, released_at
        FROM loans
        WHERE member_id = $1
        ORDER BY released_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list loans", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(&l.ID, &l.MemberID, &l.ApplicationID, &l.Principal, &l.TermMonths, &l.MonthlyPayment,
			&l.OutstandingBalance, &l.Status, &l.ReleasedAt); err != nil {
			zap.L().Error("can't scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// Transactions returns at most limit entries, newest first.
func (r *Repository) Transactions(ctx context.Context, memberID, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, member_id, account_id, loan_id, type, amount, description, created_at
        FROM transactions
        WHERE member_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var tr domain.Transaction
		if err := rows.Scan(&tr.ID, &tr.MemberID, &tr.AccountID, &tr.LoanID, &tr.Type, &tr.Amount,
			&tr.Description, &tr.CreatedAt); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tr)
	}
	return txs, rows.Err()
}

// OwnsLoan reports whether the loan belongs to the member.
func (r *Repository) OwnsLoan(ctx context.Context, memberID, loanID int) (bool, error) {
	var owned bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM loans WHERE id = $1 AND member_id = $2)", loanID, memberID).Scan(&owned)
	if err != nil {
		zap.L().Error("can't check loan owner", zap.Int("loan_id", loanID), zap.Error(err))
		return false, err
	}
	return owned, nil
}
