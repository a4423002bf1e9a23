package dto

import (
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
)

type PaymentReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected" example:"confirmed"`
	Notes  string `json:"notes" example:"Received at the cashier"`
}

type PaymentReference struct {
	ID              int        `json:"id" example:"1"`
	MemberID        int        `json:"member_id" example:"3"`
	LoanID          *int       `json:"loan_id" example:"8"`
	Amount          float64    `json:"amount" example:"1500"`
	ReferenceNumber string     `json:"reference_number" example:"24101400000312344"`
	ProofPath       string     `json:"proof_path" example:"payment/1728900000000000000-1a2b3c4d.png"`
	Status          string     `json:"status" example:"pending"`
	ReviewedBy      *int       `json:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	ReviewNotes     string     `json:"review_notes"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewPaymentReference(p domain.PaymentReference) PaymentReference {
	return PaymentReference{
		ID:              p.ID,
		MemberID:        p.MemberID,
		LoanID:          p.LoanID,
		Amount:          p.Amount,
		ReferenceNumber: p.ReferenceNumber,
		ProofPath:       p.ProofPath,
		Status:          string(p.Status),
		ReviewedBy:      p.ReviewedBy,
		ReviewedAt:      p.ReviewedAt,
		ReviewNotes:     p.ReviewNotes,
		CreatedAt:       p.CreatedAt,
	}
}

type PaymentReferenceResponse struct {
	Success   bool             `json:"success" example:"true"`
	Reference PaymentReference `json:"reference"`
}

type PaymentReferencesResponse struct {
	Success    bool               `json:"success" example:"true"`
	References []PaymentReference `json:"references"`
}

func NewPaymentReferences(refs []domain.PaymentReference) PaymentReferencesResponse {
	out := make([]PaymentReference, 0, len(refs))
	for _, p := range refs {
		out = append(out, NewPaymentReference(p))
	}
	return PaymentReferencesResponse{Success: true, References: out}
}
