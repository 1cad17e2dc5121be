package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"
)

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrInvalidSettingKey = errors.New("invalid setting key")
)

// ISettingUseCase is the key/value upsert store behind GET/PUT /settings.
type ISettingUseCase interface {
	Get(ctx context.Context, key string) (entities.Setting, error)
	Put(ctx context.Context, key, value string) (entities.Setting, error)
	List(ctx context.Context) ([]entities.Setting, error)
}

type SettingUseCase struct {
	repo interfaces.ISettingRepository
}

var _ ISettingUseCase = (*SettingUseCase)(nil)

func NewSettingUseCase(repo interfaces.ISettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

func (u *SettingUseCase) Get(ctx context.Context, key string) (entities.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Setting{}, ErrInvalidSettingKey
	}

	s, err := u.repo.Get(ctx, key)
	if err != nil {
		return entities.Setting{}, err
	}
	if s.Key == "" {
		return entities.Setting{}, ErrSettingNotFound
	}
	return s, nil
}

func (u *SettingUseCase) Put(ctx context.Context, key, value string) (entities.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Setting{}, ErrInvalidSettingKey
	}
	return u.repo.Put(ctx, entities.Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()})
}

func (u *SettingUseCase) List(ctx context.Context) ([]entities.Setting, error) {
	return u.repo.List(ctx)
}
