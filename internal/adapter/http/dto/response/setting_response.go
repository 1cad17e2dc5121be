package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSetting(s entities.Setting) SettingResponse {
	return SettingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}

func FromSettings(items []entities.Setting) []SettingResponse {
	out := make([]SettingResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSetting(s))
	}
	return out
}
