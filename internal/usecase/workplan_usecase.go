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
	ErrWorkPlanNotFound         = errors.New("work plan not found")
	ErrWorkPlanAlreadyExists    = errors.New("work plan already exists for this case")
	ErrInvalidWorkPlanID        = errors.New("invalid work plan id")
	ErrInvalidWorkPlanCaseID    = errors.New("invalid case id")
	ErrInvalidWorkPlanContent   = errors.New("methodology and schedule are required")
	ErrWorkPlanPrecondition     = errors.New("work plan status does not allow this action")
	ErrWorkPlanCommentsRequired = errors.New("rejection comments are required")
	ErrWorkPlanNotEditable      = errors.New("work plan can only be edited in borrador or rechazado")
)

// IWorkPlanUseCase exposes work plan operations.
//
// One work plan per case. Submit/Approve/Reject drive the state machine;
// UpdateContent is gated to the editable statuses and bumps Version on
// every resubmission cycle.
type IWorkPlanUseCase interface {
	CreateWorkPlan(ctx context.Context, caseID, methodology, schedule string) (entities.WorkPlan, error)
	GetByID(ctx context.Context, id string) (entities.WorkPlan, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.WorkPlan, error)
	UpdateContent(ctx context.Context, id, methodology, schedule string) (entities.WorkPlan, error)
	Submit(ctx context.Context, id string) (entities.WorkPlan, error)
	Approve(ctx context.Context, id string) (entities.WorkPlan, error)
	Reject(ctx context.Context, id string, comments string) (entities.WorkPlan, error)
}

type WorkPlanUseCase struct {
	repo interfaces.IWorkPlanRepository
}

var _ IWorkPlanUseCase = (*WorkPlanUseCase)(nil)

func NewWorkPlanUseCase(repo interfaces.IWorkPlanRepository) *WorkPlanUseCase {
	return &WorkPlanUseCase{repo: repo}
}

func (u *WorkPlanUseCase) CreateWorkPlan(ctx context.Context, caseID, methodology, schedule string) (entities.WorkPlan, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.WorkPlan{}, ErrInvalidWorkPlanCaseID
	}
	methodology = strings.TrimSpace(methodology)
	schedule = strings.TrimSpace(schedule)
	if methodology == "" || schedule == "" {
		return entities.WorkPlan{}, ErrInvalidWorkPlanContent
	}

	if existing, err := u.repo.GetByCaseID(ctx, caseID); err != nil {
		return entities.WorkPlan{}, err
	} else if existing.ID != "" {
		return entities.WorkPlan{}, ErrWorkPlanAlreadyExists
	}

	now := time.Now().UTC()
	wp := entities.WorkPlan{
		ID:          uuid.NewString(),
		CaseID:      caseID,
		Methodology: methodology,
		Schedule:    schedule,
		Version:     1,
		Status:      entities.WorkPlanStatusBorrador,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, wp)
}

func (u *WorkPlanUseCase) GetByID(ctx context.Context, id string) (entities.WorkPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkPlan{}, ErrInvalidWorkPlanID
	}

	wp, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if wp.ID == "" {
		return entities.WorkPlan{}, ErrWorkPlanNotFound
	}
	return wp, nil
}

func (u *WorkPlanUseCase) GetByCaseID(ctx context.Context, caseID string) (entities.WorkPlan, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.WorkPlan{}, ErrInvalidWorkPlanCaseID
	}

	wp, err := u.repo.GetByCaseID(ctx, caseID)
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if wp.ID == "" {
		return entities.WorkPlan{}, ErrWorkPlanNotFound
	}
	return wp, nil
}

func (u *WorkPlanUseCase) UpdateContent(ctx context.Context, id, methodology, schedule string) (entities.WorkPlan, error) {
	methodology = strings.TrimSpace(methodology)
	schedule = strings.TrimSpace(schedule)
	if methodology == "" || schedule == "" {
		return entities.WorkPlan{}, ErrInvalidWorkPlanContent
	}

	wp, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if !workflow.WorkPlanMachine.CanEdit(string(wp.Status),
		string(entities.WorkPlanStatusBorrador), string(entities.WorkPlanStatusRechazado)) {
		return entities.WorkPlan{}, ErrWorkPlanNotEditable
	}

	wp.Methodology = methodology
	wp.Schedule = schedule
	// A rejected plan being reworked starts a new version.
	if wp.Status == entities.WorkPlanStatusRechazado {
		wp.Version++
		wp.Status = entities.WorkPlanStatusBorrador
	}

	updated, err := u.repo.UpdateContent(ctx, wp)
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if updated.ID == "" {
		return entities.WorkPlan{}, ErrWorkPlanNotFound
	}
	return updated, nil
}

func (u *WorkPlanUseCase) Submit(ctx context.Context, id string) (entities.WorkPlan, error) {
	return u.transition(ctx, id, workflow.ActionEnviar, "")
}

func (u *WorkPlanUseCase) Approve(ctx context.Context, id string) (entities.WorkPlan, error) {
	return u.transition(ctx, id, workflow.ActionAprobar, "")
}

func (u *WorkPlanUseCase) Reject(ctx context.Context, id string, comments string) (entities.WorkPlan, error) {
	return u.transition(ctx, id, workflow.ActionRechazar, comments)
}

func (u *WorkPlanUseCase) transition(ctx context.Context, id string, action workflow.Action, comments string) (entities.WorkPlan, error) {
	wp, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkPlan{}, err
	}

	next, err := workflow.WorkPlanMachine.Next(string(wp.Status), action, comments)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrReasonRequired):
			return entities.WorkPlan{}, ErrWorkPlanCommentsRequired
		default:
			return entities.WorkPlan{}, ErrWorkPlanPrecondition
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, wp.ID, entities.WorkPlanStatus(next), strings.TrimSpace(comments))
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if updated.ID == "" {
		return entities.WorkPlan{}, ErrWorkPlanNotFound
	}
	return updated, nil
}
