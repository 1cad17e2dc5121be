package request

import "strings"

type CreateCaseRequest struct {
	Title       string `json:"title" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCaseRequest struct {
	Title        string `json:"title" binding:"required"`
	ClientName   string `json:"client_name" binding:"required"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	CurrentPhase int    `json:"current_phase"`
}

// AssignRoleRequest accepts both userId and user_id key spellings; the
// admin portal sends camelCase while older CRM screens send snake_case.
type AssignRoleRequest struct {
	Role       string `json:"role" binding:"required"`
	UserID     string `json:"user_id"`
	UserIDCaml string `json:"userId"`
}

func (r AssignRoleRequest) ResolveUserID() string {
	if v := strings.TrimSpace(r.UserID); v != "" {
		return v
	}
	return strings.TrimSpace(r.UserIDCaml)
}
