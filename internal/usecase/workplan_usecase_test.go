package usecase

import (
	"context"
	"errors"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkPlanUseCase_CreateWorkPlan(t *testing.T) {
	t.Run("invalid case id", func(t *testing.T) {
		uc := NewWorkPlanUseCase(nil)
		_, err := uc.CreateWorkPlan(context.Background(), "", "m", "s")
		if !errors.Is(err, ErrInvalidWorkPlanCaseID) {
			t.Fatalf("expected ErrInvalidWorkPlanCaseID, got %v", err)
		}
	})

	t.Run("missing content", func(t *testing.T) {
		uc := NewWorkPlanUseCase(nil)
		_, err := uc.CreateWorkPlan(context.Background(), "case-1", "  ", "s")
		if !errors.Is(err, ErrInvalidWorkPlanContent) {
			t.Fatalf("expected ErrInvalidWorkPlanContent, got %v", err)
		}
	})

	t.Run("one plan per case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.WorkPlan{ID: "existing"}, nil)

		_, err := uc.CreateWorkPlan(context.Background(), "case-1", "inspeccion", "4 semanas")
		if !errors.Is(err, ErrWorkPlanAlreadyExists) {
			t.Fatalf("expected ErrWorkPlanAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.WorkPlan{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkPlan{})).DoAndReturn(
			func(_ context.Context, wp entities.WorkPlan) (entities.WorkPlan, error) {
				if wp.ID == "" || wp.CaseID != "case-1" || wp.Version != 1 {
					t.Fatalf("unexpected plan: %+v", wp)
				}
				if wp.Status != entities.WorkPlanStatusBorrador {
					t.Fatalf("expected borrador, got %s", wp.Status)
				}
				return wp, nil
			},
		)

		res, err := uc.CreateWorkPlan(context.Background(), " case-1 ", "inspeccion", "4 semanas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Methodology != "inspeccion" || res.Schedule != "4 semanas" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestWorkPlanUseCase_UpdateContent(t *testing.T) {
	t.Run("missing content", func(t *testing.T) {
		uc := NewWorkPlanUseCase(nil)
		_, err := uc.UpdateContent(context.Background(), "wp-1", "m", "")
		if !errors.Is(err, ErrInvalidWorkPlanContent) {
			t.Fatalf("expected ErrInvalidWorkPlanContent, got %v", err)
		}
	})

	t.Run("not editable once submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusEnviado}, nil)

		_, err := uc.UpdateContent(context.Background(), "wp-1", "m2", "s2")
		if !errors.Is(err, ErrWorkPlanNotEditable) {
			t.Fatalf("expected ErrWorkPlanNotEditable, got %v", err)
		}
	})

	t.Run("edit in borrador keeps version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").
			Return(entities.WorkPlan{ID: "wp-1", Version: 1, Status: entities.WorkPlanStatusBorrador}, nil)
		repo.EXPECT().UpdateContent(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkPlan{})).DoAndReturn(
			func(_ context.Context, wp entities.WorkPlan) (entities.WorkPlan, error) {
				if wp.Version != 1 || wp.Status != entities.WorkPlanStatusBorrador {
					t.Fatalf("unexpected plan: %+v", wp)
				}
				return wp, nil
			},
		)

		res, err := uc.UpdateContent(context.Background(), "wp-1", "m2", "s2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Methodology != "m2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("rework after rejection bumps version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").
			Return(entities.WorkPlan{ID: "wp-1", Version: 2, Status: entities.WorkPlanStatusRechazado}, nil)
		repo.EXPECT().UpdateContent(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkPlan{})).DoAndReturn(
			func(_ context.Context, wp entities.WorkPlan) (entities.WorkPlan, error) {
				if wp.Version != 3 {
					t.Fatalf("expected version 3, got %d", wp.Version)
				}
				if wp.Status != entities.WorkPlanStatusBorrador {
					t.Fatalf("expected borrador, got %s", wp.Status)
				}
				return wp, nil
			},
		)

		if _, err := uc.UpdateContent(context.Background(), "wp-1", "m3", "s3"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkPlanUseCase_Transitions(t *testing.T) {
	t.Run("submit from borrador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusBorrador}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "wp-1", entities.WorkPlanStatusEnviado, "").
			Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusEnviado}, nil)

		res, err := uc.Submit(context.Background(), "wp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.WorkPlanStatusEnviado {
			t.Fatalf("expected enviado, got %s", res.Status)
		}
	})

	t.Run("resubmit from rechazado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusRechazado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "wp-1", entities.WorkPlanStatusEnviado, "").
			Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusEnviado}, nil)

		if _, err := uc.Submit(context.Background(), "wp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve from en_revision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusEnRevision}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "wp-1", entities.WorkPlanStatusAprobado, "").
			Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusAprobado}, nil)

		if _, err := uc.Approve(context.Background(), "wp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve from borrador fails precondition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusBorrador}, nil)

		_, err := uc.Approve(context.Background(), "wp-1")
		if !errors.Is(err, ErrWorkPlanPrecondition) {
			t.Fatalf("expected ErrWorkPlanPrecondition, got %v", err)
		}
	})

	t.Run("reject without comments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusEnviado}, nil)

		_, err := uc.Reject(context.Background(), "wp-1", "")
		if !errors.Is(err, ErrWorkPlanCommentsRequired) {
			t.Fatalf("expected ErrWorkPlanCommentsRequired, got %v", err)
		}
	})

	t.Run("reject with comments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkPlanRepository(ctrl)
		uc := NewWorkPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusEnviado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "wp-1", entities.WorkPlanStatusRechazado, "falta cronograma").
			Return(entities.WorkPlan{ID: "wp-1", Status: entities.WorkPlanStatusRechazado, Comments: "falta cronograma"}, nil)

		res, err := uc.Reject(context.Background(), "wp-1", " falta cronograma ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Comments != "falta cronograma" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
