package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEvaluationNotFound      = errors.New("evaluation not found")
	ErrEvaluationAlreadyExists = errors.New("evaluation already exists for this case")
	ErrInvalidEvaluationCaseID = errors.New("invalid case id")
	ErrInvalidEvaluationScore  = errors.New("scores must be between 1 and 5")
)

// EvaluationFinalScore is the mean of the three 1-5 scores rounded to one
// decimal.
func EvaluationFinalScore(quality, timeliness, communication int) float64 {
	mean := float64(quality+timeliness+communication) / 3
	return math.Round(mean*10) / 10
}

// IEvaluationUseCase exposes evaluation operations. Evaluations are
// terminal: one per case, never updated.
type IEvaluationUseCase interface {
	CreateEvaluation(ctx context.Context, caseID, expertID string, quality, timeliness, communication int, comments string) (entities.Evaluation, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.Evaluation, error)
}

type EvaluationUseCase struct {
	repo interfaces.IEvaluationRepository
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(repo interfaces.IEvaluationRepository) *EvaluationUseCase {
	return &EvaluationUseCase{repo: repo}
}

func (u *EvaluationUseCase) CreateEvaluation(ctx context.Context, caseID, expertID string, quality, timeliness, communication int, comments string) (entities.Evaluation, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationCaseID
	}
	for _, s := range []int{quality, timeliness, communication} {
		if s < 1 || s > 5 {
			return entities.Evaluation{}, ErrInvalidEvaluationScore
		}
	}

	if existing, err := u.repo.GetByCaseID(ctx, caseID); err != nil {
		return entities.Evaluation{}, err
	} else if existing.ID != "" {
		return entities.Evaluation{}, ErrEvaluationAlreadyExists
	}

	e := entities.Evaluation{
		ID:                 uuid.NewString(),
		CaseID:             caseID,
		ExpertID:           strings.TrimSpace(expertID),
		QualityScore:       quality,
		TimelinessScore:    timeliness,
		CommunicationScore: communication,
		FinalScore:         EvaluationFinalScore(quality, timeliness, communication),
		Comments:           strings.TrimSpace(comments),
		CreatedAt:          time.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *EvaluationUseCase) GetByCaseID(ctx context.Context, caseID string) (entities.Evaluation, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationCaseID
	}

	e, err := u.repo.GetByCaseID(ctx, caseID)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if e.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	return e, nil
}
