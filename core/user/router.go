package user

// Route is a navigable screen path in the client.
type Route string

const (
	RouteLogin Route = "/login"

	RouteAdminHome          Route = "/admin/home"
	RouteFranchiseeHome     Route = "/franchisee/home"
	RouteTeacherHome        Route = "/teacher/home"
	RouteStudentHome        Route = "/student/home"
	RouteTuitionTeacherHome Route = "/tuition-teacher/home"
	RouteTuitionStudentHome Route = "/tuition-student/home"
	RouteCaptainHome        Route = "/captain/home"
	RouteDeveloperHome      Route = "/developer/home"
)

var homeRoutes = map[Role]Route{
	RoleAdmin:          RouteAdminHome,
	RoleFranchisee:     RouteFranchiseeHome,
	RoleTeacher:        RouteTeacherHome,
	RoleStudent:        RouteStudentHome,
	RoleTuitionTeacher: RouteTuitionTeacherHome,
	RoleTuitionStudent: RouteTuitionStudentHome,
	RoleCaptain:        RouteCaptainHome,
	RoleDeveloper:      RouteDeveloperHome,
}

// HomeRoute resolves a role to its home screen.
// ok is false for RoleUnknown; callers fall back to RouteLogin.
func HomeRoute(r Role) (Route, bool) {
	route, ok := homeRoutes[r]
	return route, ok
}
