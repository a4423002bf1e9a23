package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/validate"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLoanRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	loanRepo := NewMockLoanRepo(ctrl)
	return New(repo, loanRepo), repo, loanRepo
}

func intPtr(i int) *int { return &i }

func TestSubmit(t *testing.T) {
	service, repo, loanRepo := NewMock(t)

	tests := []struct {
		name          string
		loanID        *int
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Reference generated for own loan",
			loanID: intPtr(8),
			amount: 1500,
			prepareMock: func() {
				loanRepo.EXPECT().OwnsLoan(gomock.Any(), 3, 8).Return(true, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.PaymentReference) error {
					assert.Equal(t, domain.PaymentPending, p.Status)
					assert.True(t, validate.IsLuna(p.ReferenceNumber))
					p.ID = 1
					return nil
				})
			},
		},
		{
			name:   "Collision is retried",
			amount: 1500,
			prepareMock: func() {
				gomock.InOrder(
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: reference", domain.ErrAlreadyExists)),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name:   "Persistent collisions give up",
			amount: 1500,
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: reference", domain.ErrAlreadyExists)).Times(referenceAttempts)
			},
			expectedError: domain.ErrAlreadyExists,
		},
		{
			name:          "Zero amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Amount beyond the money column",
			amount:        1e13,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Someone else's loan",
			loanID: intPtr(9),
			amount: 1500,
			prepareMock: func() {
				loanRepo.EXPECT().OwnsLoan(gomock.Any(), 3, 9).Return(false, nil)
			},
			expectedError: ErrLoanNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			p, err := service.Submit(context.Background(), 3, tt.loanID, tt.amount, "payment/proof.png")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, p.ReferenceNumber, 17)
			assert.Equal(t, "payment/proof.png", p.ProofPath)
		})
	}
}

func TestList(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().List(gomock.Any(), domain.PaymentStatus("")).Return([]domain.PaymentReference{{ID: 1}}, nil)
	repo.EXPECT().List(gomock.Any(), domain.PaymentConfirmed).Return([]domain.PaymentReference{}, nil)
	repo.EXPECT().ListByMember(gomock.Any(), 3).Return([]domain.PaymentReference{{ID: 1}}, nil)

	all, err := service.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	confirmed, err := service.List(context.Background(), "confirmed")
	assert.NoError(t, err)
	assert.Empty(t, confirmed)

	_, err = service.List(context.Background(), "approved")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)

	mine, err := service.ListForMember(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestReview(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Confirm pending",
			status: "confirmed",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.PaymentReference{ID: 1, Status: domain.PaymentPending}, nil)
				repo.EXPECT().Review(gomock.Any(), 1, domain.PaymentConfirmed, 2, "received", gomock.Any()).
					Return(&domain.PaymentReference{ID: 1, Status: domain.PaymentConfirmed}, nil)
			},
		},
		{
			name:   "Already confirmed",
			status: "rejected",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.PaymentReference{ID: 1, Status: domain.PaymentConfirmed}, nil)
			},
			expectedError: ErrInvalidReview,
		},
		{
			name:   "Back to pending",
			status: "pending",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.PaymentReference{ID: 1, Status: domain.PaymentPending}, nil)
			},
			expectedError: ErrInvalidReview,
		},
		{
			name:   "Not found",
			status: "confirmed",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "Concurrent review",
			status: "confirmed",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.PaymentReference{ID: 1, Status: domain.PaymentPending}, nil)
				repo.EXPECT().Review(gomock.Any(), 1, domain.PaymentConfirmed, 2, "received", gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrStatusConflict,
		},
		{
			name:   "Review fails",
			status: "confirmed",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.PaymentReference{ID: 1, Status: domain.PaymentPending}, nil)
				repo.EXPECT().Review(gomock.Any(), 1, domain.PaymentConfirmed, 2, "received", gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			p, err := service.Review(context.Background(), 1, tt.status, 2, "received")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, p)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.PaymentConfirmed, p.Status)
		})
	}
}
