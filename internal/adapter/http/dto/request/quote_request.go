package request

type CreateQuoteRequest struct {
	CaseID      string  `json:"case_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}
