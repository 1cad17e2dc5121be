package entities

import "time"

// WorkPlanStatus represents the committee-approval lifecycle of a work plan.
//
//	{borrador, rechazado} --enviar--> enviado
//	{enviado, en_revision} --aprobar--> aprobado
//	enviado --rechazar(comments required)--> rechazado
//
// Edits are only permitted while the plan sits in borrador or rechazado.
type WorkPlanStatus string

const (
	WorkPlanStatusBorrador   WorkPlanStatus = "borrador"
	WorkPlanStatusEnviado    WorkPlanStatus = "enviado"
	WorkPlanStatusEnRevision WorkPlanStatus = "en_revision"
	WorkPlanStatusAprobado   WorkPlanStatus = "aprobado"
	WorkPlanStatusRechazado  WorkPlanStatus = "rechazado"
)

// WorkPlan is the proposed methodology/schedule document for a case.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
//
// One work plan per case; Version increments on every resubmission cycle.
type WorkPlan struct {
	ID          string         `json:"id"`
	CaseID      string         `json:"case_id"`
	Methodology string         `json:"methodology"`
	Schedule    string         `json:"schedule"`
	Comments    string         `json:"comments,omitempty"`
	Version     int            `json:"version"`
	Status      WorkPlanStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
