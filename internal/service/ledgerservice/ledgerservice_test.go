package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().Accounts(gomock.Any(), 3).Return([]domain.Account{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().Loans(gomock.Any(), 3).Return([]domain.Loan{{ID: 8}}, nil)
	repo.EXPECT().Transactions(gomock.Any(), 3, TransactionLimit).Return(nil, errors.New("database error"))

	accounts, err := service.Accounts(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)

	loans, err := service.Loans(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 8, loans[0].ID)

	_, err = service.Transactions(context.Background(), 3)
	assert.EqualError(t, err, "database error")
}
