package entities

import "time"

type HearingStatus string

const (
	HearingStatusPendiente HearingStatus = "pendiente"
	HearingStatusRealizada HearingStatus = "realizada"
	HearingStatusCancelada HearingStatus = "cancelada"
)

// Hearing is a scheduled court appearance tied to a case. Attendance and
// result are free-form updates; there is no gated state machine here.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
type Hearing struct {
	ID            string        `json:"id"`
	CaseID        string        `json:"case_id"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	Location      string        `json:"location,omitempty"`
	Attendance    string        `json:"attendance,omitempty"`
	Result        string        `json:"result,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Status        HearingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
