package user

import "testing"

func TestHomeRoute_allRolesRoutable(t *testing.T) {
	seen := make(map[Route]bool, len(AllRoles))
	for _, role := range AllRoles {
		route, ok := HomeRoute(role)
		if !ok || route == "" {
			t.Errorf("HomeRoute(%q) = %q, %v; every role needs a home", role, route, ok)
		}
		if route == RouteLogin {
			t.Errorf("HomeRoute(%q) resolved to the login route", role)
		}
		if seen[route] {
			t.Errorf("HomeRoute(%q) = %q is shared with another role", role, route)
		}
		seen[route] = true
	}
}

func TestHomeRoute_unknown(t *testing.T) {
	for _, role := range []Role{RoleUnknown, Role("principal")} {
		if route, ok := HomeRoute(role); ok {
			t.Errorf("HomeRoute(%q) = %q, want no route", role, route)
		}
	}
}

func TestHomeRoute_caseNormalizedInput(t *testing.T) {
	// the backend sends "Teacher", "teacher", "TEACHER"... all must land
	// on the same screen once parsed
	want, _ := HomeRoute(RoleTeacher)
	for _, in := range []string{"Teacher", "teacher", "TEACHER"} {
		route, ok := HomeRoute(ParseRole(in))
		if !ok || route != want {
			t.Errorf("HomeRoute(ParseRole(%q)) = %q, %v; want %q", in, route, ok, want)
		}
	}
}
