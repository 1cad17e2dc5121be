package request

type PutSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
