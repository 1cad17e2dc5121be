package request

import "encoding/json"

type CreatePaymentRequest struct {
	Amount  float64 `json:"amount" binding:"required"`
	Concept string  `json:"concept"`
	Method  string  `json:"method"`
}

// CollectPaymentRequest carries an opaque gateway payload that is forwarded
// to Mercado Pago after the use case enriches it with the persisted amount.
type CollectPaymentRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
