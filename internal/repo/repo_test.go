package repo

import (
	"testing"

	"github.com/GlebRadaev/coopportal/internal/pg"
	ledgerrepo "github.com/GlebRadaev/coopportal/internal/repo/ledger-repo"
	loanrepo "github.com/GlebRadaev/coopportal/internal/repo/loan-repo"
	memberrepo "github.com/GlebRadaev/coopportal/internal/repo/member-repo"
	membershiprepo "github.com/GlebRadaev/coopportal/internal/repo/membership-repo"
	paymentrepo "github.com/GlebRadaev/coopportal/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/coopportal/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	mockTxManager := pg.NewMockTXManager(ctrl)

	return New(mockDB, mockTxManager), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &membershiprepo.Repository{}, repo.MembershipRepo)
	assert.IsType(t, &loanrepo.Repository{}, repo.LoanRepo)
	assert.IsType(t, &memberrepo.Repository{}, repo.MemberAuth)
	assert.IsType(t, &memberrepo.Repository{}, repo.MemberRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.StaffAuth)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LoanOwnership)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)

	assert.Same(t, repo.MemberAuth, repo.MemberRepo)
	assert.Same(t, repo.StaffAuth, repo.UserRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
