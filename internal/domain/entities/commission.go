package entities

import "time"

type CommissionStatus string

const (
	CommissionStatusPendiente CommissionStatus = "pendiente"
	CommissionStatusPagada    CommissionStatus = "pagada"
)

// Commission is a computed expert payout adjusted by the performance
// evaluation banding (see usecase.CommissionBanding).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (expert_id-index): expert_id
type Commission struct {
	ID                string           `json:"id"`
	CaseID            string           `json:"case_id"`
	ExpertID          string           `json:"expert_id"`
	BaseAmount        float64          `json:"base_amount"`
	BonusPercentage   float64          `json:"bonus_percentage"`
	PenaltyPercentage float64          `json:"penalty_percentage"`
	FinalAmount       float64          `json:"final_amount"`
	EvaluationScore   *float64         `json:"evaluation_score,omitempty"`
	Status            CommissionStatus `json:"status"`
	PaidAt            *time.Time       `json:"paid_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
