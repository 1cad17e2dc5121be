package usecase

import (
	"context"
	"errors"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeliverableUseCase_CreateDeliverable(t *testing.T) {
	t.Run("invalid case id", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil)
		_, err := uc.CreateDeliverable(context.Background(), " ", "pericia", 2, "Informe", "")
		if !errors.Is(err, ErrInvalidDeliverableCaseID) {
			t.Fatalf("expected ErrInvalidDeliverableCaseID, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil)
		_, err := uc.CreateDeliverable(context.Background(), "case-1", "pericia", 0, "Informe", "")
		if !errors.Is(err, ErrInvalidDeliverableInput) {
			t.Fatalf("expected ErrInvalidDeliverableInput, got %v", err)
		}
	})

	t.Run("first version starts at 1 in enviado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo)

		repo.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Deliverable{})).DoAndReturn(
			func(_ context.Context, d entities.Deliverable) (entities.Deliverable, error) {
				if d.Version != 1 || d.Status != entities.DeliverableStatusEnviado {
					t.Fatalf("unexpected deliverable: %+v", d)
				}
				return d, nil
			},
		)

		if _, err := uc.CreateDeliverable(context.Background(), "case-1", "pericia", 2, "Informe pericial", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("resubmission bumps version per phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo)

		repo.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return([]entities.Deliverable{
			{ID: "d-1", PhaseNumber: 2, Version: 1, Status: entities.DeliverableStatusRechazado},
			{ID: "d-2", PhaseNumber: 3, Version: 4, Status: entities.DeliverableStatusAprobado},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Deliverable{})).DoAndReturn(
			func(_ context.Context, d entities.Deliverable) (entities.Deliverable, error) {
				if d.Version != 2 {
					t.Fatalf("expected version 2, got %d", d.Version)
				}
				return d, nil
			},
		)

		if _, err := uc.CreateDeliverable(context.Background(), "case-1", "pericia", 2, "Informe corregido", "s3://bucket/v2.pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDeliverableUseCase_Review(t *testing.T) {
	t.Run("invalid decision", func(t *testing.T) {
		uc := NewDeliverableUseCase(nil)
		_, err := uc.Review(context.Background(), "d-1", "archivar", "")
		if !errors.Is(err, ErrInvalidReviewDecision) {
			t.Fatalf("expected ErrInvalidReviewDecision, got %v", err)
		}
	})

	t.Run("approve from enviado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusEnviado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DeliverableStatusAprobado, "").
			Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusAprobado}, nil)

		res, err := uc.Review(context.Background(), "d-1", ReviewApprove, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DeliverableStatusAprobado {
			t.Fatalf("expected aprobado, got %s", res.Status)
		}
	})

	t.Run("reject needs a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusEnviado}, nil)

		_, err := uc.Review(context.Background(), "d-1", ReviewReject, "  ")
		if !errors.Is(err, ErrDeliverableReasonRequired) {
			t.Fatalf("expected ErrDeliverableReasonRequired, got %v", err)
		}
	})

	t.Run("reject with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusEnviado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DeliverableStatusRechazado, "informe incompleto").
			Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusRechazado, RejectionReason: "informe incompleto"}, nil)

		res, err := uc.Review(context.Background(), "d-1", ReviewReject, " informe incompleto ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RejectionReason != "informe incompleto" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliverableRepository(ctrl)
		uc := NewDeliverableUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deliverable{ID: "d-1", Status: entities.DeliverableStatusAprobado}, nil)

		_, err := uc.Review(context.Background(), "d-1", ReviewApprove, "")
		if !errors.Is(err, ErrDeliverablePrecondition) {
			t.Fatalf("expected ErrDeliverablePrecondition, got %v", err)
		}
	})
}
