package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/domain/workflow"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteCaseID  = errors.New("invalid case id")
	ErrInvalidQuoteAmount  = errors.New("invalid quote amount")
	ErrQuotePrecondition   = errors.New("quote status does not allow this action")
	ErrQuoteReasonRequired = errors.New("rejection reason is required")
)

// IQuoteUseCase exposes quote operations.
//
// Send/Approve/Reject drive the quote state machine; the current persisted
// status is re-read before every transition and a mismatch fails without
// writing anything. Two racing transitions can still both observe the same
// source status (last write wins); see the workflow package notes.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, caseID string, amount float64, description string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string, reason string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, caseID string, amount float64, description string) (entities.Quote, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Quote{}, ErrInvalidQuoteCaseID
	}
	if amount <= 0 {
		return entities.Quote{}, ErrInvalidQuoteAmount
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		CaseID:      caseID,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Status:      entities.QuoteStatusBorrador,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByCaseID(ctx context.Context, caseID string) ([]entities.Quote, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, ErrInvalidQuoteCaseID
	}
	return u.repo.ListByCaseID(ctx, caseID)
}

func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, workflow.ActionEnviar, "")
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, workflow.ActionAprobar, "")
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string, reason string) (entities.Quote, error) {
	return u.transition(ctx, id, workflow.ActionRechazar, reason)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, action workflow.Action, reason string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	next, err := workflow.QuoteMachine.Next(string(q.Status), action, reason)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrReasonRequired):
			return entities.Quote{}, ErrQuoteReasonRequired
		default:
			return entities.Quote{}, ErrQuotePrecondition
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, entities.QuoteStatus(next), strings.TrimSpace(reason))
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}
