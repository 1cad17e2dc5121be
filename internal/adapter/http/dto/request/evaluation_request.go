package request

type CreateEvaluationRequest struct {
	ExpertID           string `json:"expert_id" binding:"required"`
	QualityScore       int    `json:"quality_score" binding:"required"`
	TimelinessScore    int    `json:"timeliness_score" binding:"required"`
	CommunicationScore int    `json:"communication_score" binding:"required"`
	Comments           string `json:"comments"`
}
