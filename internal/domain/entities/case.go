package entities

import "time"

// CaseStatus is open-ended on purpose: cases move through commercial and
// technical phases that the back office tracks but does not gate.
type CaseStatus string

const (
	CaseStatusAbierto   CaseStatus = "abierto"
	CaseStatusEnProceso CaseStatus = "en_proceso"
	CaseStatusCerrado   CaseStatus = "cerrado"
)

// AssignmentRole identifies which of the three role-reference fields on a
// case an assignment targets.
type AssignmentRole string

const (
	AssignmentRoleComercial AssignmentRole = "comercial"
	AssignmentRoleAnalista  AssignmentRole = "analista"
	AssignmentRolePerito    AssignmentRole = "perito"
)

// Case is an expert-assessment engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Role references (ComercialID, AnalistaID, PeritoID) point at CRM users by
// id; they are by-reference, never embedded.
type Case struct {
	ID           string     `json:"id"`
	CaseCode     string     `json:"case_code"`
	Title        string     `json:"title"`
	ClientName   string     `json:"client_name"`
	Description  string     `json:"description"`
	Status       CaseStatus `json:"status"`
	CurrentPhase int        `json:"current_phase"`
	ComercialID  string     `json:"comercial_id,omitempty"`
	AnalistaID   string     `json:"analista_id,omitempty"`
	PeritoID     string     `json:"perito_id,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
