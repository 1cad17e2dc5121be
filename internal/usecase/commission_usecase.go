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
	ErrCommissionNotFound     = errors.New("commission not found")
	ErrInvalidCommissionID    = errors.New("invalid commission id")
	ErrInvalidCommissionInput = errors.New("case id, expert id and base amount are required")
	ErrCommissionAlreadyPaid  = errors.New("commission already paid")
)

// CommissionBanding derives the bonus/penalty percentages from an optional
// evaluation score. The branch order is kept exactly as the business rule
// ships today: the <2.0 branch sits after <3.0 and can never fire. Reordering
// it changes payouts, so it stays until the rule owner confirms the intent.
func CommissionBanding(score *float64) (bonusPct, penaltyPct float64) {
	if score == nil {
		return 0, 0
	}
	s := *score
	switch {
	case s >= 4.5:
		return 10, 0
	case s >= 4.0:
		return 5, 0
	case s < 3.0:
		return 0, 10
	case s < 2.0:
		return 0, 20
	}
	return 0, 0
}

// FinalAmount computes base + base*bonus% - base*penalty%.
func FinalAmount(base, bonusPct, penaltyPct float64) float64 {
	return base + base*bonusPct/100 - base*penaltyPct/100
}

// ICommissionUseCase exposes commission operations. CreateCommission pulls
// the case evaluation (when one exists) and applies the banding.
type ICommissionUseCase interface {
	CreateCommission(ctx context.Context, caseID, expertID string, baseAmount float64) (entities.Commission, error)
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	ListByExpertID(ctx context.Context, expertID string) ([]entities.Commission, error)
	Pay(ctx context.Context, id string) (entities.Commission, error)
}

type CommissionUseCase struct {
	repo        interfaces.ICommissionRepository
	evaluations interfaces.IEvaluationRepository
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

func NewCommissionUseCase(repo interfaces.ICommissionRepository, evaluations interfaces.IEvaluationRepository) *CommissionUseCase {
	return &CommissionUseCase{repo: repo, evaluations: evaluations}
}

func (u *CommissionUseCase) CreateCommission(ctx context.Context, caseID, expertID string, baseAmount float64) (entities.Commission, error) {
	caseID = strings.TrimSpace(caseID)
	expertID = strings.TrimSpace(expertID)
	if caseID == "" || expertID == "" || baseAmount <= 0 {
		return entities.Commission{}, ErrInvalidCommissionInput
	}

	var score *float64
	eval, err := u.evaluations.GetByCaseID(ctx, caseID)
	if err != nil {
		return entities.Commission{}, err
	}
	if eval.ID != "" {
		s := eval.FinalScore
		score = &s
	}

	bonus, penalty := CommissionBanding(score)
	now := time.Now().UTC()
	c := entities.Commission{
		ID:                uuid.NewString(),
		CaseID:            caseID,
		ExpertID:          expertID,
		BaseAmount:        baseAmount,
		BonusPercentage:   bonus,
		PenaltyPercentage: penalty,
		FinalAmount:       FinalAmount(baseAmount, bonus, penalty),
		EvaluationScore:   score,
		Status:            entities.CommissionStatusPendiente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CommissionUseCase) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Commission{}, ErrInvalidCommissionID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Commission{}, err
	}
	if c.ID == "" {
		return entities.Commission{}, ErrCommissionNotFound
	}
	return c, nil
}

func (u *CommissionUseCase) ListByExpertID(ctx context.Context, expertID string) ([]entities.Commission, error) {
	expertID = strings.TrimSpace(expertID)
	if expertID == "" {
		return nil, ErrInvalidCommissionInput
	}
	return u.repo.ListByExpertID(ctx, expertID)
}

func (u *CommissionUseCase) Pay(ctx context.Context, id string) (entities.Commission, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Commission{}, err
	}
	if c.Status == entities.CommissionStatusPagada {
		return entities.Commission{}, ErrCommissionAlreadyPaid
	}

	updated, err := u.repo.MarkPaid(ctx, c.ID)
	if err != nil {
		return entities.Commission{}, err
	}
	if updated.ID == "" {
		return entities.Commission{}, ErrCommissionNotFound
	}
	return updated, nil
}
