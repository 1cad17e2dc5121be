package usecase

import (
	"context"
	"errors"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEvaluationFinalScore(t *testing.T) {
	cases := []struct {
		name                               string
		quality, timeliness, communication int
		want                               float64
	}{
		{"all fives", 5, 5, 5, 5},
		{"mixed", 5, 4, 3, 4},
		{"rounds up", 4, 4, 5, 4.3},
		{"rounds down", 3, 3, 4, 3.3},
		{"all ones", 1, 1, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluationFinalScore(tc.quality, tc.timeliness, tc.communication); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEvaluationUseCase_CreateEvaluation(t *testing.T) {
	t.Run("invalid case id", func(t *testing.T) {
		uc := NewEvaluationUseCase(nil)
		_, err := uc.CreateEvaluation(context.Background(), "", "exp-1", 5, 5, 5, "")
		if !errors.Is(err, ErrInvalidEvaluationCaseID) {
			t.Fatalf("expected ErrInvalidEvaluationCaseID, got %v", err)
		}
	})

	t.Run("score out of range", func(t *testing.T) {
		uc := NewEvaluationUseCase(nil)
		for _, scores := range [][3]int{{0, 5, 5}, {5, 6, 5}, {5, 5, -1}} {
			_, err := uc.CreateEvaluation(context.Background(), "case-1", "exp-1", scores[0], scores[1], scores[2], "")
			if !errors.Is(err, ErrInvalidEvaluationScore) {
				t.Fatalf("scores %v: expected ErrInvalidEvaluationScore, got %v", scores, err)
			}
		}
	})

	t.Run("one per case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewEvaluationUseCase(repo)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{ID: "existing"}, nil)

		_, err := uc.CreateEvaluation(context.Background(), "case-1", "exp-1", 5, 4, 3, "")
		if !errors.Is(err, ErrEvaluationAlreadyExists) {
			t.Fatalf("expected ErrEvaluationAlreadyExists, got %v", err)
		}
	})

	t.Run("create success computes final score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewEvaluationUseCase(repo)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Evaluation{})).DoAndReturn(
			func(_ context.Context, e entities.Evaluation) (entities.Evaluation, error) {
				if e.ID == "" || e.CaseID != "case-1" || e.ExpertID != "exp-1" {
					t.Fatalf("unexpected evaluation: %+v", e)
				}
				if e.FinalScore != 4 {
					t.Fatalf("expected final score 4, got %v", e.FinalScore)
				}
				return e, nil
			},
		)

		res, err := uc.CreateEvaluation(context.Background(), " case-1 ", " exp-1 ", 5, 4, 3, " buen trabajo ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Comments != "buen trabajo" {
			t.Fatalf("expected trimmed comments, got %q", res.Comments)
		}
	})
}

func TestEvaluationUseCase_GetByCaseID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewEvaluationUseCase(repo)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{}, nil)

		_, err := uc.GetByCaseID(context.Background(), "case-1")
		if !errors.Is(err, ErrEvaluationNotFound) {
			t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewEvaluationUseCase(repo)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{ID: "ev-1", CaseID: "case-1"}, nil)

		res, err := uc.GetByCaseID(context.Background(), " case-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ev-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
