package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCaseNotFound      = errors.New("case not found")
	ErrInvalidCaseID     = errors.New("invalid case id")
	ErrInvalidCaseInput  = errors.New("title and client name are required")
	ErrInvalidAssignRole = errors.New("invalid assignment role")
	ErrAssigneeNotFound  = errors.New("assignee user not found")
	ErrAssigneeNotActive = errors.New("assignee user is not active")
)

// ICaseUseCase exposes case operations, including role assignment.
type ICaseUseCase interface {
	CreateCase(ctx context.Context, title, clientName, description string) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	UpdateCase(ctx context.Context, c entities.Case) (entities.Case, error)
	Deactivate(ctx context.Context, id string) (entities.Case, error)
	AssignRole(ctx context.Context, caseID string, role entities.AssignmentRole, userID string) (entities.Case, error)
}

type CaseUseCase struct {
	repo          interfaces.ICaseRepository
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(repo interfaces.ICaseRepository, users interfaces.IUserRepository, notifications interfaces.INotificationRepository) *CaseUseCase {
	return &CaseUseCase{repo: repo, users: users, notifications: notifications}
}

func (u *CaseUseCase) CreateCase(ctx context.Context, title, clientName, description string) (entities.Case, error) {
	title = strings.TrimSpace(title)
	clientName = strings.TrimSpace(clientName)
	if title == "" || clientName == "" {
		return entities.Case{}, ErrInvalidCaseInput
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	c := entities.Case{
		ID:           id,
		CaseCode:     "CASO-" + strings.ToUpper(id[:8]),
		Title:        title,
		ClientName:   clientName,
		Description:  strings.TrimSpace(description),
		Status:       entities.CaseStatusAbierto,
		CurrentPhase: 1,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CaseUseCase) GetByID(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}

func (u *CaseUseCase) List(ctx context.Context) ([]entities.Case, error) {
	return u.repo.List(ctx)
}

func (u *CaseUseCase) UpdateCase(ctx context.Context, c entities.Case) (entities.Case, error) {
	if strings.TrimSpace(c.ID) == "" {
		return entities.Case{}, ErrInvalidCaseID
	}
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.ClientName) == "" {
		return entities.Case{}, ErrInvalidCaseInput
	}

	updated, err := u.repo.UpdateDetails(ctx, c)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return updated, nil
}

func (u *CaseUseCase) Deactivate(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	updated, err := u.repo.SetActive(ctx, id, false)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return updated, nil
}

// AssignRole sets one of the three role-reference fields on a case after
// checking the target user exists and is active. The follow-up notification
// to the assignee is best effort: the assignment and the notification are
// independent writes, so a failed notification is logged and dropped.
func (u *CaseUseCase) AssignRole(ctx context.Context, caseID string, role entities.AssignmentRole, userID string) (entities.Case, error) {
	caseID = strings.TrimSpace(caseID)
	userID = strings.TrimSpace(userID)
	if caseID == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	switch role {
	case entities.AssignmentRoleComercial, entities.AssignmentRoleAnalista, entities.AssignmentRolePerito:
	default:
		return entities.Case{}, ErrInvalidAssignRole
	}

	c, err := u.GetByID(ctx, caseID)
	if err != nil {
		return entities.Case{}, err
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.Case{}, err
	}
	if usr.ID == "" {
		return entities.Case{}, ErrAssigneeNotFound
	}
	if !usr.Active {
		return entities.Case{}, ErrAssigneeNotActive
	}

	updated, err := u.repo.SetAssignment(ctx, c.ID, role, usr.ID)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    usr.ID,
		Title:     "Nueva asignación",
		Message:   fmt.Sprintf("Has sido asignado como %s al caso %s", role, updated.CaseCode),
		Link:      "/cases/" + updated.ID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		log.Printf("[case][usecase] assignment notification failed case_id=%s user_id=%s err=%v", updated.ID, usr.ID, err)
	}

	return updated, nil
}
