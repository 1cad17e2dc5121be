package entities

import "time"

// Role is the CRM role carried in the signed token and checked against the
// permission tables in internal/auth.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleComercial Role = "comercial"
	RoleAnalista  Role = "analista"
	RolePerito    Role = "perito"
)

type Availability string

const (
	AvailabilityDisponible   Availability = "disponible"
	AvailabilityOcupado      Availability = "ocupado"
	AvailabilityNoDisponible Availability = "no_disponible"
)

// User is a CRM user (commercial, technical analyst or expert witness).
// Users are never hard-deleted; deactivation clears Active.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	PasswordHash string       `json:"-"`
	Availability Availability `json:"availability,omitempty"`
	Validated    bool         `json:"validated"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
