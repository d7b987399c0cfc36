package user

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "exact", in: "teacher", want: RoleTeacher},
		{name: "capitalized", in: "Teacher", want: RoleTeacher},
		{name: "upper", in: "ADMIN", want: RoleAdmin},
		{name: "admin alias", in: "Administrator", want: RoleAdmin},
		{name: "padded", in: "  student ", want: RoleStudent},
		{name: "spaced variant", in: "Tuition Teacher", want: RoleTuitionTeacher},
		{name: "dashed variant", in: "tuition-student", want: RoleTuitionStudent},
		{name: "underscored variant", in: "tuition_student", want: RoleTuitionStudent},
		{name: "franchisee", in: "Franchisee", want: RoleFranchisee},
		{name: "captain", in: "captain", want: RoleCaptain},
		{name: "developer", in: "Developer", want: RoleDeveloper},
		{name: "empty", in: "", want: RoleUnknown},
		{name: "typo", in: "teachr", want: RoleUnknown},
		{name: "garbage", in: "Supreme Leader", want: RoleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRole(tt.in); got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRole_coversAllRoles(t *testing.T) {
	for _, role := range AllRoles {
		if got := ParseRole(role.String()); got != role {
			t.Errorf("ParseRole(%q) = %q; every declared role must parse to itself", role, got)
		}
	}
}
