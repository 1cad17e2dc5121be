package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentCaseID = errors.New("invalid case id")
	ErrInvalidPaymentAmount = errors.New("payment amount is required")
	ErrPaymentNotPending    = errors.New("payment is not pending")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IPaymentUseCase exposes client payment operations. Payments are recorded
// pendiente; Collect optionally pushes the charge through the configured
// gateway and marks the payment pagado with the provider payload attached.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, caseID string, amount float64, concept, method string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Payment, error)
	Collect(ctx context.Context, id string, gatewayPayload json.RawMessage) (entities.Payment, error)
	Cancel(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, caseID string, amount float64, concept, method string) (entities.Payment, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Payment{}, ErrInvalidPaymentCaseID
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:        uuid.NewString(),
		CaseID:    caseID,
		Amount:    amount,
		Concept:   strings.TrimSpace(concept),
		Method:    strings.TrimSpace(method),
		Status:    entities.PaymentStatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByCaseID(ctx context.Context, caseID string) ([]entities.Payment, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, ErrInvalidPaymentCaseID
	}
	return u.repo.ListByCaseID(ctx, caseID)
}

// Collect charges the pending payment through the external gateway. The
// amount sent to the provider is always the persisted one, never whatever
// the caller put in the payload.
func (u *PaymentUseCase) Collect(ctx context.Context, id string, gatewayPayload json.RawMessage) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPendiente {
		log.Printf("[payment][usecase] collect refused payment_id=%s status=%s", p.ID, p.Status)
		return entities.Payment{}, ErrPaymentNotPending
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}

	if len(gatewayPayload) == 0 || !json.Valid(gatewayPayload) {
		gatewayPayload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(gatewayPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = p.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Pago caso %s", p.CaseID)
		}
		reqMap["transaction_amount"] = p.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			gatewayPayload = b
		}
	}

	log.Printf("[payment][usecase] calling payment gateway payment_id=%s amount=%.2f", p.ID, p.Amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, gatewayPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerPaymentID, providerStatus)

	updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.PaymentStatusPagado, providerPaymentID, providerResp)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, nil
}

func (u *PaymentUseCase) Cancel(ctx context.Context, id string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPendiente {
		return entities.Payment{}, ErrPaymentNotPending
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.PaymentStatusCancelado, "", nil)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, nil
}
