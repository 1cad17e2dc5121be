package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrHearingNotFound      = errors.New("hearing not found")
	ErrInvalidHearingID     = errors.New("invalid hearing id")
	ErrInvalidHearingCaseID = errors.New("invalid case id")
	ErrInvalidHearingDate   = errors.New("scheduled date is required")
)

// IHearingUseCase exposes hearing operations. Hearings start pendiente;
// attendance and result are free-form updates.
type IHearingUseCase interface {
	CreateHearing(ctx context.Context, caseID string, scheduledDate time.Time, location string) (entities.Hearing, error)
	GetByID(ctx context.Context, id string) (entities.Hearing, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Hearing, error)
	UpdateResult(ctx context.Context, id, attendance, result, notes string, status entities.HearingStatus) (entities.Hearing, error)
}

type HearingUseCase struct {
	repo interfaces.IHearingRepository
}

var _ IHearingUseCase = (*HearingUseCase)(nil)

func NewHearingUseCase(repo interfaces.IHearingRepository) *HearingUseCase {
	return &HearingUseCase{repo: repo}
}

func (u *HearingUseCase) CreateHearing(ctx context.Context, caseID string, scheduledDate time.Time, location string) (entities.Hearing, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Hearing{}, ErrInvalidHearingCaseID
	}
	if scheduledDate.IsZero() {
		return entities.Hearing{}, ErrInvalidHearingDate
	}

	now := time.Now().UTC()
	h := entities.Hearing{
		ID:            uuid.NewString(),
		CaseID:        caseID,
		ScheduledDate: scheduledDate.UTC(),
		Location:      strings.TrimSpace(location),
		Status:        entities.HearingStatusPendiente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, h)
}

func (u *HearingUseCase) GetByID(ctx context.Context, id string) (entities.Hearing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Hearing{}, ErrInvalidHearingID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Hearing{}, err
	}
	if h.ID == "" {
		return entities.Hearing{}, ErrHearingNotFound
	}
	return h, nil
}

func (u *HearingUseCase) ListByCaseID(ctx context.Context, caseID string) ([]entities.Hearing, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, ErrInvalidHearingCaseID
	}
	return u.repo.ListByCaseID(ctx, caseID)
}

func (u *HearingUseCase) UpdateResult(ctx context.Context, id, attendance, result, notes string, status entities.HearingStatus) (entities.Hearing, error) {
	h, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Hearing{}, err
	}

	h.Attendance = strings.TrimSpace(attendance)
	h.Result = strings.TrimSpace(result)
	h.Notes = strings.TrimSpace(notes)
	if status != "" {
		h.Status = status
	}

	updated, err := u.repo.UpdateResult(ctx, h)
	if err != nil {
		return entities.Hearing{}, err
	}
	if updated.ID == "" {
		return entities.Hearing{}, ErrHearingNotFound
	}
	return updated, nil
}
