package auth

import (
	"sort"
	"strings"

	"peritaje_crm/internal/domain/entities"
)

// Permission is a capability key checked against the role table.
type Permission string

const (
	PermCases         Permission = "cases"
	PermQuotes        Permission = "quotes"
	PermWorkPlans     Permission = "work_plans"
	PermDeliverables  Permission = "deliverables"
	PermHearings      Permission = "hearings"
	PermPayments      Permission = "payments"
	PermCommissions   Permission = "commissions"
	PermEvaluations   Permission = "evaluations"
	PermExperts       Permission = "experts"
	PermNotifications Permission = "notifications"
	PermReports       Permission = "reports"
	PermSettings      Permission = "settings"
)

// rolePermissions is the static role -> capability table. Admin is absent
// on purpose: it bypasses the check entirely in Can.
var rolePermissions = map[entities.Role]map[Permission]bool{
	entities.RoleComercial: {
		PermCases: true, PermQuotes: true, PermPayments: true,
		PermReports: true, PermNotifications: true, PermSettings: true,
	},
	entities.RoleAnalista: {
		PermCases: true, PermWorkPlans: true, PermDeliverables: true,
		PermHearings: true, PermEvaluations: true, PermExperts: true,
		PermNotifications: true,
	},
	entities.RolePerito: {
		PermCases: true, PermWorkPlans: true, PermDeliverables: true,
		PermHearings: true, PermCommissions: true, PermNotifications: true,
	},
}

// Can reports whether role holds the permission. Admin always passes.
func Can(role entities.Role, p Permission) bool {
	if role == entities.RoleAdmin {
		return true
	}
	return rolePermissions[role][p]
}

type pathRule struct {
	prefix string
	perm   Permission
}

// pathRules maps URL path prefixes to the permission they require. Rules
// are sorted longest-prefix-first at init so overlapping prefixes resolve
// deterministically.
var pathRules = []pathRule{
	{"/v1/cases", PermCases},
	{"/v1/quotes", PermQuotes},
	{"/v1/work-plans", PermWorkPlans},
	{"/v1/deliverables", PermDeliverables},
	{"/v1/hearings", PermHearings},
	{"/v1/payments", PermPayments},
	{"/v1/commissions", PermCommissions},
	{"/v1/evaluations", PermEvaluations},
	{"/v1/experts", PermExperts},
	{"/v1/notifications", PermNotifications},
	{"/v1/reports", PermReports},
	{"/v1/settings", PermSettings},
}

func init() {
	sort.SliceStable(pathRules, func(i, j int) bool {
		return len(pathRules[i].prefix) > len(pathRules[j].prefix)
	})
}

// RequiredPermission resolves the permission a path needs by longest
// matching prefix. Paths with no rule require none.
func RequiredPermission(path string) (Permission, bool) {
	for _, r := range pathRules {
		if strings.HasPrefix(path, r.prefix) {
			return r.perm, true
		}
	}
	return "", false
}
