package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func intPtr(i int) *int { return &i }

func TestRepository_Accounts(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE member_id = $1 ORDER BY id")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "account_number", "account_type", "balance", "created_at"}).
			AddRow(1, 3, "SA-M-0003", "savings", 2500.5, now).
			AddRow(2, 3, "SC-M-0003", "share_capital", 1000.0, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts")).
		WithArgs(4).
		WillReturnError(errors.New("database error"))

	accounts, err := repo.Accounts(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Account{
		{ID: 1, MemberID: 3, AccountNumber: "SA-M-0003", AccountType: "savings", Balance: 2500.5, CreatedAt: now},
		{ID: 2, MemberID: 3, AccountNumber: "SC-M-0003", AccountType: "share_capital", Balance: 1000.0, CreatedAt: now},
	}, accounts)

	_, err = repo.Accounts(context.Background(), 4)
	assert.Error(t, err)
}

func TestRepository_Loans(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE member_id = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "application_id", "principal", "term_months",
			"monthly_payment", "outstanding_balance", "status", "released_at"}).
			AddRow(8, 3, intPtr(4), 100000.0, 12, 8884.88, 50000.0, "active", now))

	loans, err := repo.Loans(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, intPtr(4), loans[0].ApplicationID)
	assert.Equal(t, 50000.0, loans[0].OutstandingBalance)
}

func TestRepository_Transactions(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE member_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2")).
		WithArgs(3, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "account_id", "loan_id", "type", "amount", "description", "created_at"}).
			AddRow(5, 3, (*int)(nil), intPtr(8), "loan_payment", 1500.0, "Payment 24101400000312344", now))

	txs, err := repo.Transactions(context.Background(), 3, 50)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Transaction{
		{ID: 5, MemberID: 3, LoanID: intPtr(8), Type: "loan_payment", Amount: 1500.0, Description: "Payment 24101400000312344", CreatedAt: now},
	}, txs)
}

func TestRepository_OwnsLoan(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM loans WHERE id = $1 AND member_id = $2)")).
		WithArgs(8, 3).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(8, 4).
		WillReturnError(errors.New("database error"))

	owned, err := repo.OwnsLoan(context.Background(), 3, 8)
	assert.NoError(t, err)
	assert.True(t, owned)

	_, err = repo.OwnsLoan(context.Background(), 4, 8)
	assert.Error(t, err)
}
