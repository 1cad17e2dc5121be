package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type QuoteResponse struct {
	ID              string     `json:"id"`
	CaseID          string     `json:"case_id"`
	Amount          float64    `json:"amount"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	SentAt          *time.Time `json:"sent_at,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		CaseID:          q.CaseID,
		Amount:          q.Amount,
		Description:     q.Description,
		Status:          string(q.Status),
		RejectionReason: q.RejectionReason,
		SentAt:          q.SentAt,
		DecidedAt:       q.DecidedAt,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
