package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type HearingResponse struct {
	ID            string    `json:"id"`
	CaseID        string    `json:"case_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Location      string    `json:"location,omitempty"`
	Attendance    string    `json:"attendance,omitempty"`
	Result        string    `json:"result,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromHearing(h entities.Hearing) HearingResponse {
	return HearingResponse{
		ID:            h.ID,
		CaseID:        h.CaseID,
		ScheduledDate: h.ScheduledDate,
		Location:      h.Location,
		Attendance:    h.Attendance,
		Result:        h.Result,
		Notes:         h.Notes,
		Status:        string(h.Status),
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func FromHearings(items []entities.Hearing) []HearingResponse {
	out := make([]HearingResponse, 0, len(items))
	for _, h := range items {
		out = append(out, FromHearing(h))
	}
	return out
}
