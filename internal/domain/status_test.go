package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Status
		expectErr bool
	}{
		{name: "Pending", input: "pending", expected: StatusPending},
		{name: "Under review", input: "under_review", expected: StatusUnderReview},
		{name: "Cancelled", input: "cancelled", expected: StatusCancelled},
		{name: "Unknown", input: "archived", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
		{name: "Case sensitive", input: "APPROVED", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseStatus(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, st)
		})
	}
}

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusReturned, StatusCancelled}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusUnderReview}:  true,
		{StatusPending, StatusCancelled}:    true,
		{StatusUnderReview, StatusApproved}: true,
		{StatusUnderReview, StatusRejected}: true,
		{StatusUnderReview, StatusReturned}: true,
		{StatusReturned, StatusUnderReview}: true,
		{StatusReturned, StatusCancelled}:   true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[[2]Status{from, to}], CanTransition(from, to))
			})
		}
	}
}

func TestNothingReturnsToPending(t *testing.T) {
	for from := range transitions {
		err := ValidateTransition(from, StatusPending)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", from)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusReturned.Terminal())
	assert.False(t, Status("bogus").Terminal())
}

func TestPaymentReview(t *testing.T) {
	assert.True(t, CanReviewPayment(PaymentPending, PaymentConfirmed))
	assert.True(t, CanReviewPayment(PaymentPending, PaymentRejected))
	assert.False(t, CanReviewPayment(PaymentConfirmed, PaymentRejected))
	assert.False(t, CanReviewPayment(PaymentPending, PaymentPending))

	_, err := ParsePaymentStatus("refunded")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
