package usecase

import (
	"context"
	"errors"
	"testing"

	"peritaje_crm/internal/auth"
	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var adminTestSecret = []byte("test-secret")

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAdminUseCase_InitConfig(t *testing.T) {
	t.Run("blank passwords", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, adminTestSecret)
		err := uc.InitConfig(context.Background(), "   ", "secundaria123")
		if !errors.Is(err, ErrInvalidAdminInput) {
			t.Fatalf("expected ErrInvalidAdminInput, got %v", err)
		}
	})

	t.Run("too short", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, adminTestSecret)
		err := uc.InitConfig(context.Background(), "corta", "secundaria123")
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("already initialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
		uc := NewAdminUseCase(config, nil, adminTestSecret)

		config.EXPECT().Init(gomock.Any(), gomock.AssignableToTypeOf(entities.AdminConfig{})).
			Return(entities.AdminConfig{}, nil)

		err := uc.InitConfig(context.Background(), "maestra-123", "secundaria-123")
		if !errors.Is(err, ErrAlreadyInitialized) {
			t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
		}
	})

	t.Run("init success hashes both passwords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
		uc := NewAdminUseCase(config, nil, adminTestSecret)

		config.EXPECT().Init(gomock.Any(), gomock.AssignableToTypeOf(entities.AdminConfig{})).DoAndReturn(
			func(_ context.Context, cfg entities.AdminConfig) (entities.AdminConfig, error) {
				if cfg.ID != entities.AdminConfigID {
					t.Fatalf("expected fixed id, got %q", cfg.ID)
				}
				if cfg.MasterPasswordHash == "maestra-123" || cfg.SecondaryPasswordHash == "secundaria-123" {
					t.Fatalf("passwords stored in plain text")
				}
				if bcrypt.CompareHashAndPassword([]byte(cfg.MasterPasswordHash), []byte("maestra-123")) != nil {
					t.Fatalf("master hash does not verify")
				}
				return cfg, nil
			},
		)

		if err := uc.InitConfig(context.Background(), "maestra-123", "secundaria-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAdminUseCase_AdminLogin(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
		uc := NewAdminUseCase(config, nil, adminTestSecret)

		config.EXPECT().Get(gomock.Any()).Return(entities.AdminConfig{}, nil)

		_, err := uc.AdminLogin(context.Background(), "maestra-123")
		if !errors.Is(err, ErrNotInitialized) {
			t.Fatalf("expected ErrNotInitialized, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
		uc := NewAdminUseCase(config, nil, adminTestSecret)

		config.EXPECT().Get(gomock.Any()).Return(entities.AdminConfig{
			ID:                    entities.AdminConfigID,
			MasterPasswordHash:    mustHash(t, "maestra-123"),
			SecondaryPasswordHash: mustHash(t, "secundaria-123"),
		}, nil)

		_, err := uc.AdminLogin(context.Background(), "otra")
		if !errors.Is(err, ErrWrongCredentials) {
			t.Fatalf("expected ErrWrongCredentials, got %v", err)
		}
	})

	for _, password := range []string{"maestra-123", "secundaria-123"} {
		t.Run("login with "+password, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
			uc := NewAdminUseCase(config, nil, adminTestSecret)

			config.EXPECT().Get(gomock.Any()).Return(entities.AdminConfig{
				ID:                    entities.AdminConfigID,
				MasterPasswordHash:    mustHash(t, "maestra-123"),
				SecondaryPasswordHash: mustHash(t, "secundaria-123"),
			}, nil)

			token, err := uc.AdminLogin(context.Background(), password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			id, err := auth.VerifyToken(adminTestSecret, token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.Subject != auth.AdminSubject || id.Role != entities.RoleAdmin {
				t.Fatalf("unexpected identity: %+v", id)
			}
		})
	}
}

func TestAdminUseCase_CRMLogin(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, adminTestSecret)
		_, _, err := uc.CRMLogin(context.Background(), "", "clave-123")
		if !errors.Is(err, ErrInvalidLoginInput) {
			t.Fatalf("expected ErrInvalidLoginInput, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAdminUseCase(nil, users, adminTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)

		_, _, err := uc.CRMLogin(context.Background(), "ana@example.com", "clave-123")
		if !errors.Is(err, ErrWrongCredentials) {
			t.Fatalf("expected ErrWrongCredentials, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAdminUseCase(nil, users, adminTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{
			ID: "user-1", Active: false, PasswordHash: mustHash(t, "clave-123"),
		}, nil)

		_, _, err := uc.CRMLogin(context.Background(), "ana@example.com", "clave-123")
		if !errors.Is(err, ErrWrongCredentials) {
			t.Fatalf("expected ErrWrongCredentials, got %v", err)
		}
	})

	t.Run("login success lowercases email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAdminUseCase(nil, users, adminTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{
			ID: "user-1", Name: "Ana", Role: entities.RolePerito, Active: true,
			PasswordHash: mustHash(t, "clave-123"),
		}, nil)

		token, usr, err := uc.CRMLogin(context.Background(), " ANA@example.com ", "clave-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if usr.ID != "user-1" {
			t.Fatalf("unexpected user: %+v", usr)
		}

		id, err := auth.VerifyToken(adminTestSecret, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Subject != "user-1" || id.Role != entities.RolePerito {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})
}

func TestAdminUseCase_ChangeAdminPassword(t *testing.T) {
	t.Run("new password too short", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, adminTestSecret)
		err := uc.ChangeAdminPassword(context.Background(), "maestra-123", "corta")
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
		uc := NewAdminUseCase(config, nil, adminTestSecret)

		config.EXPECT().Get(gomock.Any()).Return(entities.AdminConfig{
			ID:                 entities.AdminConfigID,
			MasterPasswordHash: mustHash(t, "maestra-123"),
		}, nil)

		err := uc.ChangeAdminPassword(context.Background(), "otra", "nueva-clave-123")
		if !errors.Is(err, ErrWrongCredentials) {
			t.Fatalf("expected ErrWrongCredentials, got %v", err)
		}
	})

	t.Run("rotation preserves secondary hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockIAdminConfigRepository(ctrl)
		uc := NewAdminUseCase(config, nil, adminTestSecret)

		secondaryHash := mustHash(t, "secundaria-123")
		config.EXPECT().Get(gomock.Any()).Return(entities.AdminConfig{
			ID:                    entities.AdminConfigID,
			MasterPasswordHash:    mustHash(t, "maestra-123"),
			SecondaryPasswordHash: secondaryHash,
		}, nil)
		config.EXPECT().UpdatePasswords(gomock.Any(), gomock.Any(), secondaryHash).DoAndReturn(
			func(_ context.Context, masterHash, _ string) (entities.AdminConfig, error) {
				if bcrypt.CompareHashAndPassword([]byte(masterHash), []byte("nueva-clave-123")) != nil {
					t.Fatalf("new master hash does not verify")
				}
				return entities.AdminConfig{ID: entities.AdminConfigID}, nil
			},
		)

		if err := uc.ChangeAdminPassword(context.Background(), "maestra-123", "nueva-clave-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAdminUseCase_ChangeCRMPassword(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAdminUseCase(nil, users, adminTestSecret)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)

		err := uc.ChangeCRMPassword(context.Background(), "user-1", "clave-123", "nueva-clave-123")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("change success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAdminUseCase(nil, users, adminTestSecret)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
			ID: "user-1", PasswordHash: mustHash(t, "clave-123"),
		}, nil)
		users.EXPECT().UpdatePassword(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, hash string) error {
				if bcrypt.CompareHashAndPassword([]byte(hash), []byte("nueva-clave-123")) != nil {
					t.Fatalf("new hash does not verify")
				}
				return nil
			},
		)

		if err := uc.ChangeCRMPassword(context.Background(), "user-1", "clave-123", "nueva-clave-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
