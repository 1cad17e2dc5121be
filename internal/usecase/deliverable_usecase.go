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
	ErrDeliverableNotFound       = errors.New("deliverable not found")
	ErrInvalidDeliverableID      = errors.New("invalid deliverable id")
	ErrInvalidDeliverableCaseID  = errors.New("invalid case id")
	ErrInvalidDeliverableInput   = errors.New("phase, phase number and title are required")
	ErrInvalidReviewDecision     = errors.New("decision must be aprobar or rechazar")
	ErrDeliverablePrecondition   = errors.New("deliverable status does not allow review")
	ErrDeliverableReasonRequired = errors.New("rejection reason is required")
)

// ReviewDecision is the verb carried by PUT /deliverables/:id/review.
type ReviewDecision string

const (
	ReviewApprove ReviewDecision = "aprobar"
	ReviewReject  ReviewDecision = "rechazar"
)

// IDeliverableUseCase exposes deliverable operations. Deliverables are
// created directly in enviado and reviewed exactly once per version.
type IDeliverableUseCase interface {
	CreateDeliverable(ctx context.Context, caseID, phase string, phaseNumber int, title, fileURL string) (entities.Deliverable, error)
	GetByID(ctx context.Context, id string) (entities.Deliverable, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Deliverable, error)
	Review(ctx context.Context, id string, decision ReviewDecision, reason string) (entities.Deliverable, error)
}

type DeliverableUseCase struct {
	repo interfaces.IDeliverableRepository
}

var _ IDeliverableUseCase = (*DeliverableUseCase)(nil)

func NewDeliverableUseCase(repo interfaces.IDeliverableRepository) *DeliverableUseCase {
	return &DeliverableUseCase{repo: repo}
}

func (u *DeliverableUseCase) CreateDeliverable(ctx context.Context, caseID, phase string, phaseNumber int, title, fileURL string) (entities.Deliverable, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableCaseID
	}
	phase = strings.TrimSpace(phase)
	title = strings.TrimSpace(title)
	if phase == "" || phaseNumber <= 0 || title == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableInput
	}

	// Version counts prior submissions for the same case and phase.
	version := 1
	existing, err := u.repo.ListByCaseID(ctx, caseID)
	if err != nil {
		return entities.Deliverable{}, err
	}
	for _, d := range existing {
		if d.PhaseNumber == phaseNumber && d.Version >= version {
			version = d.Version + 1
		}
	}

	now := time.Now().UTC()
	d := entities.Deliverable{
		ID:          uuid.NewString(),
		CaseID:      caseID,
		Phase:       phase,
		PhaseNumber: phaseNumber,
		Title:       title,
		Version:     version,
		FileURL:     strings.TrimSpace(fileURL),
		Status:      entities.DeliverableStatusEnviado,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DeliverableUseCase) GetByID(ctx context.Context, id string) (entities.Deliverable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deliverable{}, ErrInvalidDeliverableID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deliverable{}, err
	}
	if d.ID == "" {
		return entities.Deliverable{}, ErrDeliverableNotFound
	}
	return d, nil
}

func (u *DeliverableUseCase) ListByCaseID(ctx context.Context, caseID string) ([]entities.Deliverable, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, ErrInvalidDeliverableCaseID
	}
	return u.repo.ListByCaseID(ctx, caseID)
}

func (u *DeliverableUseCase) Review(ctx context.Context, id string, decision ReviewDecision, reason string) (entities.Deliverable, error) {
	var action workflow.Action
	switch decision {
	case ReviewApprove:
		action = workflow.ActionAprobar
	case ReviewReject:
		action = workflow.ActionRechazar
	default:
		return entities.Deliverable{}, ErrInvalidReviewDecision
	}

	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Deliverable{}, err
	}

	next, err := workflow.DeliverableMachine.Next(string(d.Status), action, reason)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrReasonRequired):
			return entities.Deliverable{}, ErrDeliverableReasonRequired
		default:
			return entities.Deliverable{}, ErrDeliverablePrecondition
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, d.ID, entities.DeliverableStatus(next), strings.TrimSpace(reason))
	if err != nil {
		return entities.Deliverable{}, err
	}
	if updated.ID == "" {
		return entities.Deliverable{}, ErrDeliverableNotFound
	}
	return updated, nil
}
