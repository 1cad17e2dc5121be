package entities

import "time"

// Evaluation is the terminal performance record for an expert on a case.
// The three scores are 1-5 integers; FinalScore is their mean rounded to
// one decimal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
type Evaluation struct {
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
