package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"peritaje_crm/internal/auth"
	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAlreadyInitialized = errors.New("admin config already initialized")
	ErrNotInitialized     = errors.New("admin config not initialized")
	ErrInvalidAdminInput  = errors.New("master and secondary passwords are required")
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrInvalidLoginInput  = errors.New("email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
)

const tokenTTL = 12 * time.Hour

// IAdminUseCase covers the admin config singleton, both login flows and the
// two change-password endpoints.
type IAdminUseCase interface {
	InitConfig(ctx context.Context, masterPassword, secondaryPassword string) error
	AdminLogin(ctx context.Context, password string) (string, error)
	CRMLogin(ctx context.Context, email, password string) (string, entities.User, error)
	ChangeAdminPassword(ctx context.Context, currentPassword, newPassword string) error
	ChangeCRMPassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type AdminUseCase struct {
	config interfaces.IAdminConfigRepository
	users  interfaces.IUserRepository
	secret []byte
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(config interfaces.IAdminConfigRepository, users interfaces.IUserRepository, tokenSecret []byte) *AdminUseCase {
	return &AdminUseCase{config: config, users: users, secret: tokenSecret}
}

// InitConfig bootstraps the singleton config document. The repository does
// a conditional create on the fixed id, so a concurrent second init loses
// at the store and surfaces here as ErrAlreadyInitialized.
func (u *AdminUseCase) InitConfig(ctx context.Context, masterPassword, secondaryPassword string) error {
	if strings.TrimSpace(masterPassword) == "" || strings.TrimSpace(secondaryPassword) == "" {
		return ErrInvalidAdminInput
	}
	if len(masterPassword) < 8 || len(secondaryPassword) < 8 {
		return ErrPasswordTooShort
	}

	masterHash, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	secondaryHash, err := bcrypt.GenerateFromPassword([]byte(secondaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	created, err := u.config.Init(ctx, entities.AdminConfig{
		ID:                    entities.AdminConfigID,
		MasterPasswordHash:    string(masterHash),
		SecondaryPasswordHash: string(secondaryHash),
		CreatedAt:             now,
		UpdatedAt:             now,
	})
	if err != nil {
		return err
	}
	if created.ID == "" {
		return ErrAlreadyInitialized
	}
	return nil
}

// AdminLogin accepts either the master or the secondary password and
// issues an admin token carrying the sentinel subject.
func (u *AdminUseCase) AdminLogin(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrWrongCredentials
	}

	cfg, err := u.config.Get(ctx)
	if err != nil {
		return "", err
	}
	if cfg.ID == "" {
		return "", ErrNotInitialized
	}

	if bcrypt.CompareHashAndPassword([]byte(cfg.MasterPasswordHash), []byte(password)) != nil &&
		bcrypt.CompareHashAndPassword([]byte(cfg.SecondaryPasswordHash), []byte(password)) != nil {
		return "", ErrWrongCredentials
	}

	return auth.IssueToken(u.secret, auth.Identity{
		Subject: auth.AdminSubject,
		Role:    entities.RoleAdmin,
		Name:    "Administrador",
	}, tokenTTL)
}

func (u *AdminUseCase) CRMLogin(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidLoginInput
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if usr.ID == "" || !usr.Active {
		return "", entities.User{}, ErrWrongCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return "", entities.User{}, ErrWrongCredentials
	}

	token, err := auth.IssueToken(u.secret, auth.Identity{
		Subject: usr.ID,
		Role:    usr.Role,
		Name:    usr.Name,
	}, tokenTTL)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, usr, nil
}

// ChangeAdminPassword rotates the master password after verifying the
// current one. The secondary hash is preserved.
func (u *AdminUseCase) ChangeAdminPassword(ctx context.Context, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	cfg, err := u.config.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.ID == "" {
		return ErrNotInitialized
	}
	if bcrypt.CompareHashAndPassword([]byte(cfg.MasterPasswordHash), []byte(currentPassword)) != nil {
		return ErrWrongCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	updated, err := u.config.UpdatePasswords(ctx, string(newHash), cfg.SecondaryPasswordHash)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrNotInitialized
	}
	return nil
}

func (u *AdminUseCase) ChangeCRMPassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if usr.ID == "" {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)) != nil {
		return ErrWrongCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, usr.ID, string(newHash))
}
