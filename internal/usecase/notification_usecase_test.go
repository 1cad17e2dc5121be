package usecase

import (
	"context"
	"errors"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_CreateNotification(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.CreateNotification(context.Background(), " ", "t", "m", "")
		if !errors.Is(err, ErrInvalidNotifUserID) {
			t.Fatalf("expected ErrInvalidNotifUserID, got %v", err)
		}
	})

	t.Run("missing content", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.CreateNotification(context.Background(), "user-1", "t", "  ", "")
		if !errors.Is(err, ErrInvalidNotifContent) {
			t.Fatalf("expected ErrInvalidNotifContent, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.ID == "" || n.UserID != "user-1" || n.IsRead {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return n, nil
			},
		)

		res, err := uc.CreateNotification(context.Background(), " user-1 ", " Cotización aprobada ", "La cotización fue aprobada", "/v1/quotes/q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "Cotización aprobada" {
			t.Fatalf("expected trimmed title, got %q", res.Title)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "n-1", "user-1")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("other user's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-2"}, nil)

		_, err := uc.MarkRead(context.Background(), "n-1", "user-1")
		if !errors.Is(err, ErrNotificationOwnership) {
			t.Fatalf("expected ErrNotificationOwnership, got %v", err)
		}
	})

	t.Run("admin may mark anyone's", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-2"}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-2", IsRead: true}, nil)

		res, err := uc.MarkRead(context.Background(), "n-1", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsRead {
			t.Fatalf("expected read notification, got %+v", res)
		}
	})

	t.Run("owner marks own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-1"}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-1", IsRead: true}, nil)

		if _, err := uc.MarkRead(context.Background(), "n-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_MarkAllRead(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.MarkAllRead(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidNotifUserID) {
			t.Fatalf("expected ErrInvalidNotifUserID, got %v", err)
		}
	})

	t.Run("returns flipped count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkAllRead(gomock.Any(), "user-1").Return(3, nil)

		marked, err := uc.MarkAllRead(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if marked != 3 {
			t.Fatalf("expected 3, got %d", marked)
		}
	})
}
