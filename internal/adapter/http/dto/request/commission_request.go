package request

type CreateCommissionRequest struct {
	CaseID     string  `json:"case_id" binding:"required"`
	ExpertID   string  `json:"expert_id" binding:"required"`
	BaseAmount float64 `json:"base_amount" binding:"required"`
}
