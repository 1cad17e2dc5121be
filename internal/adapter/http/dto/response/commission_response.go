package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type CommissionResponse struct {
	ID                string     `json:"id"`
	CaseID            string     `json:"case_id"`
	ExpertID          string     `json:"expert_id"`
	BaseAmount        float64    `json:"base_amount"`
	BonusPercentage   float64    `json:"bonus_percentage"`
	PenaltyPercentage float64    `json:"penalty_percentage"`
	FinalAmount       float64    `json:"final_amount"`
	EvaluationScore   *float64   `json:"evaluation_score,omitempty"`
	Status            string     `json:"status"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromCommission(c entities.Commission) CommissionResponse {
	return CommissionResponse{
		ID:                c.ID,
		CaseID:            c.CaseID,
		ExpertID:          c.ExpertID,
		BaseAmount:        c.BaseAmount,
		BonusPercentage:   c.BonusPercentage,
		PenaltyPercentage: c.PenaltyPercentage,
		FinalAmount:       c.FinalAmount,
		EvaluationScore:   c.EvaluationScore,
		Status:            string(c.Status),
		PaidAt:            c.PaidAt,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromCommissions(items []entities.Commission) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCommission(c))
	}
	return out
}
