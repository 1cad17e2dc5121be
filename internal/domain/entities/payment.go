package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusPagado    PaymentStatus = "pagado"
	PaymentStatusCancelado PaymentStatus = "cancelado"
)

// Payment is a client payment recorded against a case.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit when the payment is collected through Mercado Pago.
type Payment struct {
	ID                 string          `json:"id"`
	CaseID             string          `json:"case_id"`
	Amount             float64         `json:"amount"`
	Concept            string          `json:"concept,omitempty"`
	Method             string          `json:"method,omitempty"`
	Status             PaymentStatus   `json:"status"`
	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
