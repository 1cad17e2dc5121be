package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidUserInput    = errors.New("email, name, role and password are required")
	ErrUserAlreadyExists   = errors.New("email already registered")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidAvailability = errors.New("invalid availability value")
)

// IExpertUseCase manages CRM users (commercials, analysts, expert
// witnesses). Users are soft-deactivated, never deleted.
type IExpertUseCase interface {
	CreateUser(ctx context.Context, email, name string, role entities.Role, password string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	SetAvailability(ctx context.Context, id string, av entities.Availability) (entities.User, error)
	Validate(ctx context.Context, id string) (entities.User, error)
	Deactivate(ctx context.Context, id string) (entities.User, error)
}

type ExpertUseCase struct {
	repo interfaces.IUserRepository
}

var _ IExpertUseCase = (*ExpertUseCase)(nil)

func NewExpertUseCase(repo interfaces.IUserRepository) *ExpertUseCase {
	return &ExpertUseCase{repo: repo}
}

func (u *ExpertUseCase) CreateUser(ctx context.Context, email, name string, role entities.Role, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	switch role {
	case entities.RoleComercial, entities.RoleAnalista, entities.RolePerito:
	default:
		return entities.User{}, ErrInvalidRole
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	usr := entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
		Availability: entities.AvailabilityDisponible,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, usr)
}

func (u *ExpertUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (u *ExpertUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *ExpertUseCase) SetAvailability(ctx context.Context, id string, av entities.Availability) (entities.User, error) {
	switch av {
	case entities.AvailabilityDisponible, entities.AvailabilityOcupado, entities.AvailabilityNoDisponible:
	default:
		return entities.User{}, ErrInvalidAvailability
	}

	usr, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	updated, err := u.repo.SetAvailability(ctx, usr.ID, av)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *ExpertUseCase) Validate(ctx context.Context, id string) (entities.User, error) {
	usr, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	updated, err := u.repo.SetValidated(ctx, usr.ID, true)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *ExpertUseCase) Deactivate(ctx context.Context, id string) (entities.User, error) {
	usr, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	updated, err := u.repo.SetActive(ctx, usr.ID, false)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}
