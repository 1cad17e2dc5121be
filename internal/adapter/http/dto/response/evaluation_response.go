package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type EvaluationResponse struct {
	ID                 string    `json:"id"`
	CaseID             string    `json:"case_id"`
	ExpertID           string    `json:"expert_id"`
	QualityScore       int       `json:"quality_score"`
	TimelinessScore    int       `json:"timeliness_score"`
	CommunicationScore int       `json:"communication_score"`
	FinalScore         float64   `json:"final_score"`
	Comments           string    `json:"comments,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromEvaluation(e entities.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:                 e.ID,
		CaseID:             e.CaseID,
		ExpertID:           e.ExpertID,
		QualityScore:       e.QualityScore,
		TimelinessScore:    e.TimelinessScore,
		CommunicationScore: e.CommunicationScore,
		FinalScore:         e.FinalScore,
		Comments:           e.Comments,
		CreatedAt:          e.CreatedAt,
	}
}
