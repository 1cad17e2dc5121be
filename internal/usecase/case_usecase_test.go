package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCaseUseCase_CreateCase(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil)
		_, err := uc.CreateCase(context.Background(), "  ", "Cliente SA", "")
		if !errors.Is(err, ErrInvalidCaseInput) {
			t.Fatalf("expected ErrInvalidCaseInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Case{})).DoAndReturn(
			func(_ context.Context, c entities.Case) (entities.Case, error) {
				if c.ID == "" || !strings.HasPrefix(c.CaseCode, "CASO-") {
					t.Fatalf("unexpected case: %+v", c)
				}
				if c.Status != entities.CaseStatusAbierto || c.CurrentPhase != 1 || !c.Active {
					t.Fatalf("unexpected initial state: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.CreateCase(context.Background(), " Peritaje contable ", " Cliente SA ", " disputa societaria ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "Peritaje contable" || res.ClientName != "Cliente SA" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCaseUseCase_Deactivate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil)

		repo.EXPECT().SetActive(gomock.Any(), "c-1", false).Return(entities.Case{}, nil)

		_, err := uc.Deactivate(context.Background(), "c-1")
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil)

		repo.EXPECT().SetActive(gomock.Any(), "c-1", false).Return(entities.Case{ID: "c-1", Active: false}, nil)

		res, err := uc.Deactivate(context.Background(), " c-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Active {
			t.Fatalf("expected inactive case, got %+v", res)
		}
	})
}

func TestCaseUseCase_AssignRole(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil)
		_, err := uc.AssignRole(context.Background(), "c-1", "gerente", "user-1")
		if !errors.Is(err, ErrInvalidAssignRole) {
			t.Fatalf("expected ErrInvalidAssignRole, got %v", err)
		}
	})

	t.Run("assignee not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCaseUseCase(repo, users, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)

		_, err := uc.AssignRole(context.Background(), "c-1", entities.AssignmentRolePerito, "user-1")
		if !errors.Is(err, ErrAssigneeNotFound) {
			t.Fatalf("expected ErrAssigneeNotFound, got %v", err)
		}
	})

	t.Run("assignee not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCaseUseCase(repo, users, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Active: false}, nil)

		_, err := uc.AssignRole(context.Background(), "c-1", entities.AssignmentRolePerito, "user-1")
		if !errors.Is(err, ErrAssigneeNotActive) {
			t.Fatalf("expected ErrAssigneeNotActive, got %v", err)
		}
	})

	t.Run("assignment notifies the assignee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewCaseUseCase(repo, users, notifications)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseCode: "CASO-AB12CD34"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Active: true}, nil)
		repo.EXPECT().SetAssignment(gomock.Any(), "c-1", entities.AssignmentRolePerito, "user-1").
			Return(entities.Case{ID: "c-1", CaseCode: "CASO-AB12CD34", PeritoID: "user-1"}, nil)
		notifications.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != "user-1" || !strings.Contains(n.Message, "CASO-AB12CD34") {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return n, nil
			},
		)

		res, err := uc.AssignRole(context.Background(), "c-1", entities.AssignmentRolePerito, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PeritoID != "user-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("notification failure does not fail the assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewCaseUseCase(repo, users, notifications)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Active: true}, nil)
		repo.EXPECT().SetAssignment(gomock.Any(), "c-1", entities.AssignmentRoleAnalista, "user-1").
			Return(entities.Case{ID: "c-1", AnalistaID: "user-1"}, nil)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("db"))

		if _, err := uc.AssignRole(context.Background(), "c-1", entities.AssignmentRoleAnalista, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
