package user

import "github.com/trezcool/shule/core"

// Role is the closed set of account types the backend may hand out.
// The backend sends free-form strings with inconsistent casing and the
// occasional alias ("Administrator"); ParseRole is the only way in.
type Role string

const (
	RoleUnknown        Role = ""
	RoleAdmin          Role = "admin"
	RoleFranchisee     Role = "franchisee"
	RoleTeacher        Role = "teacher"
	RoleStudent        Role = "student"
	RoleTuitionTeacher Role = "tuition_teacher"
	RoleTuitionStudent Role = "tuition_student"
	RoleCaptain        Role = "captain"
	RoleDeveloper      Role = "developer"
)

var (
	AllRoles = []Role{
		RoleAdmin,
		RoleFranchisee,
		RoleTeacher,
		RoleStudent,
		RoleTuitionTeacher,
		RoleTuitionStudent,
		RoleCaptain,
		RoleDeveloper,
	}

	// backend spellings, lowered
	roleAliases = map[string]Role{
		"admin":           RoleAdmin,
		"administrator":   RoleAdmin,
		"franchisee":      RoleFranchisee,
		"teacher":         RoleTeacher,
		"student":         RoleStudent,
		"tuition teacher": RoleTuitionTeacher,
		"tuition-teacher": RoleTuitionTeacher,
		"tuition_teacher": RoleTuitionTeacher,
		"tuition student": RoleTuitionStudent,
		"tuition-student": RoleTuitionStudent,
		"tuition_student": RoleTuitionStudent,
		"captain":         RoleCaptain,
		"developer":       RoleDeveloper,
	}
)

// ParseRole normalizes a backend role string into a Role.
// Unrecognized values map to RoleUnknown, never an error.
func ParseRole(s string) Role {
	if role, ok := roleAliases[core.CleanString(s, true /* lower */)]; ok {
		return role
	}
	return RoleUnknown
}

func (r Role) Valid() bool {
	return r != RoleUnknown
}

func (r Role) String() string {
	return string(r)
}
