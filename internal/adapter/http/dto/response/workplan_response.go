package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type WorkPlanResponse struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Methodology string    `json:"methodology"`
	Schedule    string    `json:"schedule"`
	Comments    string    `json:"comments,omitempty"`
	Version     int       `json:"version"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromWorkPlan(wp entities.WorkPlan) WorkPlanResponse {
	return WorkPlanResponse{
		ID:          wp.ID,
		CaseID:      wp.CaseID,
		Methodology: wp.Methodology,
		Schedule:    wp.Schedule,
		Comments:    wp.Comments,
		Version:     wp.Version,
		Status:      string(wp.Status),
		CreatedAt:   wp.CreatedAt,
		UpdatedAt:   wp.UpdatedAt,
	}
}
