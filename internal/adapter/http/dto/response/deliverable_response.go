package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type DeliverableResponse struct {
	ID              string    `json:"id"`
	CaseID          string    `json:"case_id"`
	Phase           string    `json:"phase"`
	PhaseNumber     int       `json:"phase_number"`
	Title           string    `json:"title"`
	Version         int       `json:"version"`
	FileURL         string    `json:"file_url,omitempty"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromDeliverable(d entities.Deliverable) DeliverableResponse {
	return DeliverableResponse{
		ID:              d.ID,
		CaseID:          d.CaseID,
		Phase:           d.Phase,
		PhaseNumber:     d.PhaseNumber,
		Title:           d.Title,
		Version:         d.Version,
		FileURL:         d.FileURL,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDeliverables(items []entities.Deliverable) []DeliverableResponse {
	out := make([]DeliverableResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromDeliverable(d))
	}
	return out
}
