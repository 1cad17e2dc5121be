package response

import (
	"time"

	"peritaje_crm/internal/domain/entities"
)

type CaseResponse struct {
	ID           string    `json:"id"`
	CaseCode     string    `json:"case_code"`
	Title        string    `json:"title"`
	ClientName   string    `json:"client_name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CurrentPhase int       `json:"current_phase"`
	ComercialID  string    `json:"comercial_id,omitempty"`
	AnalistaID   string    `json:"analista_id,omitempty"`
	PeritoID     string    `json:"perito_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromCase(c entities.Case) CaseResponse {
	return CaseResponse{
		ID:           c.ID,
		CaseCode:     c.CaseCode,
		Title:        c.Title,
		ClientName:   c.ClientName,
		Description:  c.Description,
		Status:       string(c.Status),
		CurrentPhase: c.CurrentPhase,
		ComercialID:  c.ComercialID,
		AnalistaID:   c.AnalistaID,
		PeritoID:     c.PeritoID,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromCases(cases []entities.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, FromCase(c))
	}
	return out
}
