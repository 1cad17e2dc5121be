package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"peritaje_crm/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway collects client payments through the Mercado Pago SDK.
// With PAYMENT_GATEWAY_MOCK enabled it approves everything locally, which is
// what dev and CI environments run with.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if mockEnabled() {
		log.Printf("[payments][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	log.Printf("[payments][gateway] mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.createMock(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payments][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payments][gateway] create failed err=%v", err)
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[payments][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, raw, nil
}

// createMock echoes the request payload back as an approved payment.
func (g *MercadoPagoGateway) createMock(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	log.Printf("[payments][gateway] mock create success provider_payment_id=%s", id)
	return id, "approved", raw, nil
}

func mockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
