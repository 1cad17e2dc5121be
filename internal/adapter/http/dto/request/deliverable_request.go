package request

type CreateDeliverableRequest struct {
	Phase       string `json:"phase" binding:"required"`
	PhaseNumber int    `json:"phase_number" binding:"required"`
	Title       string `json:"title" binding:"required"`
	FileURL     string `json:"file_url"`
}

type ReviewDeliverableRequest struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}
