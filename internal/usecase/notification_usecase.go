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
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidNotifUserID    = errors.New("invalid user id")
	ErrInvalidNotifContent   = errors.New("title and message are required")
	ErrNotificationOwnership = errors.New("notification belongs to another user")
)

// INotificationUseCase exposes notification operations scoped by the caller
// identity from the x-user-id header.
type INotificationUseCase interface {
	CreateNotification(ctx context.Context, userID, title, message, link string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, callerID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) CreateNotification(ctx context.Context, userID, title, message, link string) (entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Notification{}, ErrInvalidNotifUserID
	}
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return entities.Notification{}, ErrInvalidNotifContent
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Link:      strings.TrimSpace(link),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, n)
}

func (u *NotificationUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidNotifUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// MarkRead flips a single notification. The caller may only touch their own
// notifications; the admin sentinel may touch any.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id, callerID string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if callerID != "admin" && n.UserID != strings.TrimSpace(callerID) {
		return entities.Notification{}, ErrNotificationOwnership
	}

	updated, err := u.repo.MarkRead(ctx, n.ID)
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, ErrInvalidNotifUserID
	}
	return u.repo.MarkAllRead(ctx, userID)
}
