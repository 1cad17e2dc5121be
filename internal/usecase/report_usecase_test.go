package usecase

import (
	"context"
	"testing"
	"time"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Cases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cases := mock_interfaces.NewMockICaseRepository(ctrl)
	uc := NewReportUseCase(cases, nil, nil)

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases.EXPECT().List(gomock.Any()).Return([]entities.Case{
		{ID: "c-1", Status: entities.CaseStatusAbierto, CreatedAt: jan},
		{ID: "c-2", Status: entities.CaseStatusEnProceso, CreatedAt: feb},
		{ID: "c-3", Status: entities.CaseStatusAbierto, CreatedAt: feb},
		{ID: "c-4", Status: entities.CaseStatusCerrado, CreatedAt: mar},
	}, nil)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	rep, err := uc.Cases(context.Background(), &from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Total != 2 {
		t.Fatalf("expected 2 cases, got %d", rep.Total)
	}
	if rep.ByStatus["abierto"] != 1 || rep.ByStatus["en_proceso"] != 1 {
		t.Fatalf("unexpected breakdown: %+v", rep.ByStatus)
	}
}

func TestReportUseCase_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewReportUseCase(nil, payments, nil)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{
		{ID: "p-1", Amount: 1000, Status: entities.PaymentStatusPagado, CreatedAt: now},
		{ID: "p-2", Amount: 500, Status: entities.PaymentStatusPendiente, CreatedAt: now},
		{ID: "p-3", Amount: 300, Status: entities.PaymentStatusCancelado, CreatedAt: now},
	}, nil)

	rep, err := uc.Revenue(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.TotalPaid != 1000 || rep.TotalPending != 500 {
		t.Fatalf("unexpected totals: %+v", rep)
	}
	if rep.PaymentsCount != 3 {
		t.Fatalf("expected 3 payments, got %d", rep.PaymentsCount)
	}
}

func TestReportUseCase_ExpertsPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	evals := mock_interfaces.NewMockIEvaluationRepository(ctrl)
	uc := NewReportUseCase(nil, nil, evals)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	evals.EXPECT().List(gomock.Any()).Return([]entities.Evaluation{
		{ID: "ev-1", ExpertID: "exp-1", FinalScore: 4.0, CreatedAt: now},
		{ID: "ev-2", ExpertID: "exp-2", FinalScore: 3.0, CreatedAt: now},
		{ID: "ev-3", ExpertID: "exp-1", FinalScore: 5.0, CreatedAt: now},
	}, nil)

	rows, err := uc.ExpertsPerformance(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ExpertID != "exp-1" || rows[0].Evaluations != 2 || rows[0].AverageScore != 4.5 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ExpertID != "exp-2" || rows[1].AverageScore != 3 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}
