package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

// PaymentResponse deliberately omits the raw provider payload; it is kept
// for audit in the item but never echoed to clients.
type PaymentResponse struct {
	ID                string     `json:"id"`
	CaseID            string     `json:"case_id"`
	Amount            float64    `json:"amount"`
	Concept           string     `json:"concept,omitempty"`
	Method            string     `json:"method,omitempty"`
	Status            string     `json:"status"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		CaseID:            p.CaseID,
		Amount:            p.Amount,
		Concept:           p.Concept,
		Method:            p.Method,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		PaidAt:            p.PaidAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromPayments(items []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPayment(p))
	}
	return out
}
