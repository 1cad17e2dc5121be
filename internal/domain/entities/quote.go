package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (cotización).
//
// Transitions are enforced centrally by the workflow package:
//
//	borrador --enviar--> enviada --aprobar--> aprobada
//	enviada --rechazar(reason required)--> rechazada
type QuoteStatus string

const (
	QuoteStatusBorrador  QuoteStatus = "borrador"
	QuoteStatusEnviada   QuoteStatus = "enviada"
	QuoteStatusAprobada  QuoteStatus = "aprobada"
	QuoteStatusRechazada QuoteStatus = "rechazada"
)

// Quote is a commercial quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
type Quote struct {
	ID              string      `json:"id"`
	CaseID          string      `json:"case_id"`
	Amount          float64     `json:"amount"`
	Description     string      `json:"description"`
	Status          QuoteStatus `json:"status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	SentAt          *time.Time  `json:"sent_at,omitempty"`
	DecidedAt       *time.Time  `json:"decided_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
