package request

type CreateWorkPlanRequest struct {
	Methodology string `json:"methodology" binding:"required"`
	Schedule    string `json:"schedule" binding:"required"`
}

type UpdateWorkPlanRequest struct {
	Methodology string `json:"methodology" binding:"required"`
	Schedule    string `json:"schedule" binding:"required"`
}

type RejectWorkPlanRequest struct {
	Comments string `json:"comments"`
}
