package request

import "testing"

func TestAssignRoleRequestResolveUserID(t *testing.T) {
	cases := []struct {
		name string
		req  AssignRoleRequest
		want string
	}{
		{"snake case wins", AssignRoleRequest{UserID: "user-1", UserIDCaml: "user-2"}, "user-1"},
		{"camel case fallback", AssignRoleRequest{UserIDCaml: "user-2"}, "user-2"},
		{"trims whitespace", AssignRoleRequest{UserID: "  user-1  "}, "user-1"},
		{"blank snake falls back", AssignRoleRequest{UserID: "   ", UserIDCaml: "user-2"}, "user-2"},
		{"both empty", AssignRoleRequest{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.ResolveUserID(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
