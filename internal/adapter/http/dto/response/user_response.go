package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Availability string    `json:"availability,omitempty"`
	Validated    bool      `json:"validated"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Availability: string(u.Availability),
		Validated:    u.Validated,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromUsers(items []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, FromUser(u))
	}
	return out
}

// LoginResponse pairs the issued token with the authenticated user. User is
// nil for admin logins, which carry no CRM user reference.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user,omitempty"`
}
