package entities

import "time"

// DeliverableStatus represents the review lifecycle of a deliverable.
//
//	enviado --aprobar--> aprobado
//	enviado --rechazar(reason required)--> rechazado
type DeliverableStatus string

const (
	DeliverableStatusEnviado   DeliverableStatus = "enviado"
	DeliverableStatusAprobado  DeliverableStatus = "aprobado"
	DeliverableStatusRechazado DeliverableStatus = "rechazado"
)

// Deliverable is a phase-tagged work product submitted for review.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
type Deliverable struct {
	ID              string            `json:"id"`
	CaseID          string            `json:"case_id"`
	Phase           string            `json:"phase"`
	PhaseNumber     int               `json:"phase_number"`
	Title           string            `json:"title"`
	Version         int               `json:"version"`
	FileURL         string            `json:"file_url,omitempty"`
	Status          DeliverableStatus `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
