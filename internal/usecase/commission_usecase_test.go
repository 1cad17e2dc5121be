package usecase

import (
	"context"
	"errors"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCommissionBanding(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	cases := []struct {
		name    string
		score   *float64
		bonus   float64
		penalty float64
	}{
		{"no evaluation", nil, 0, 0},
		{"top band", f(4.6), 10, 0},
		{"exact 4.5", f(4.5), 10, 0},
		{"second band", f(4.2), 5, 0},
		{"exact 4.0", f(4.0), 5, 0},
		{"neutral band", f(3.5), 0, 0},
		{"exact 3.0", f(3.0), 0, 0},
		{"penalty band", f(2.5), 0, 10},
		// The <2.0 branch sits after <3.0 in the rule, so very low
		// scores still land in the 10% penalty band.
		{"very low score", f(1.5), 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bonus, penalty := CommissionBanding(tc.score)
			if bonus != tc.bonus || penalty != tc.penalty {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.bonus, tc.penalty, bonus, penalty)
			}
		})
	}
}

func TestFinalAmount(t *testing.T) {
	cases := []struct {
		name    string
		base    float64
		bonus   float64
		penalty float64
		want    float64
	}{
		{"bonus", 1000, 10, 0, 1100},
		{"small bonus", 1000, 5, 0, 1050},
		{"penalty", 1000, 0, 10, 900},
		{"neutral", 1000, 0, 0, 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FinalAmount(tc.base, tc.bonus, tc.penalty); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCommissionUseCase_CreateCommission(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewCommissionUseCase(nil, nil)
		_, err := uc.CreateCommission(context.Background(), "case-1", "", 1000)
		if !errors.Is(err, ErrInvalidCommissionInput) {
			t.Fatalf("expected ErrInvalidCommissionInput, got %v", err)
		}
		_, err = uc.CreateCommission(context.Background(), "case-1", "exp-1", 0)
		if !errors.Is(err, ErrInvalidCommissionInput) {
			t.Fatalf("expected ErrInvalidCommissionInput, got %v", err)
		}
	})

	t.Run("with evaluation applies banding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		evals := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewCommissionUseCase(repo, evals)

		evals.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{ID: "ev-1", FinalScore: 4.6}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Commission{})).DoAndReturn(
			func(_ context.Context, c entities.Commission) (entities.Commission, error) {
				if c.BonusPercentage != 10 || c.PenaltyPercentage != 0 {
					t.Fatalf("unexpected banding: %+v", c)
				}
				if c.FinalAmount != 1100 {
					t.Fatalf("expected 1100, got %v", c.FinalAmount)
				}
				if c.EvaluationScore == nil || *c.EvaluationScore != 4.6 {
					t.Fatalf("expected score 4.6, got %v", c.EvaluationScore)
				}
				if c.Status != entities.CommissionStatusPendiente {
					t.Fatalf("expected pendiente, got %s", c.Status)
				}
				return c, nil
			},
		)

		if _, err := uc.CreateCommission(context.Background(), "case-1", "exp-1", 1000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("without evaluation keeps base amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		evals := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewCommissionUseCase(repo, evals)

		evals.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Commission{})).DoAndReturn(
			func(_ context.Context, c entities.Commission) (entities.Commission, error) {
				if c.EvaluationScore != nil {
					t.Fatalf("expected nil score, got %v", *c.EvaluationScore)
				}
				if c.FinalAmount != 1000 {
					t.Fatalf("expected 1000, got %v", c.FinalAmount)
				}
				return c, nil
			},
		)

		if _, err := uc.CreateCommission(context.Background(), "case-1", "exp-1", 1000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("evaluation lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		evals := mock_interfaces.NewMockIEvaluationRepository(ctrl)
		uc := NewCommissionUseCase(repo, evals)

		evals.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Evaluation{}, errors.New("db"))

		_, err := uc.CreateCommission(context.Background(), "case-1", "exp-1", 1000)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCommissionUseCase_Pay(t *testing.T) {
	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Commission{ID: "c-1", Status: entities.CommissionStatusPagada}, nil)

		_, err := uc.Pay(context.Background(), "c-1")
		if !errors.Is(err, ErrCommissionAlreadyPaid) {
			t.Fatalf("expected ErrCommissionAlreadyPaid, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Commission{}, nil)

		_, err := uc.Pay(context.Background(), "c-1")
		if !errors.Is(err, ErrCommissionNotFound) {
			t.Fatalf("expected ErrCommissionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Commission{ID: "c-1", Status: entities.CommissionStatusPendiente}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "c-1").Return(entities.Commission{ID: "c-1", Status: entities.CommissionStatusPagada}, nil)

		res, err := uc.Pay(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.CommissionStatusPagada {
			t.Fatalf("expected pagada, got %s", res.Status)
		}
	})
}
