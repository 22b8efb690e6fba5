package routes

import "github.com/Scoheart-Order/metro/roles"

// Landing paths referenced by the session engine and the gate.
const (
	PathHome           = "/"
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathResetPassword  = "/reset-password"
	PathAdminHome      = "/admin"
	PathSuperAdminHome = "/superadmin/user-management"
)

// DefaultTable returns the navigation map of the metro client: the public
// auth views, the rider views behind authentication, the /admin subtree for
// admin tiers, and the /superadmin subtree for super-admins only.
func DefaultTable() *Table {
	return NewTable(
		&Node{
			Path:         PathHome,
			RequiresAuth: true,
			Children: []*Node{
				{Path: "", Title: "Home"},
				{Path: "train-info", Title: "Train Info"},
				{Path: "route-info", Title: "Route Info"},
				{Path: "feedback", Title: "Feedback"},
				{Path: "request", Title: "Request"},
				{Path: "profile", Title: "Profile"},
			},
		},
		&Node{Path: PathLogin, Title: "Login"},
		&Node{Path: PathRegister, Title: "Register"},
		&Node{Path: PathResetPassword, Title: "Reset Password"},
		&Node{
			Path:          PathAdminHome,
			RequiresAuth:  true,
			RequiredRoles: []roles.Label{roles.Admin, roles.SuperAdmin},
			Children: []*Node{
				{Path: "", Title: "Admin Home"},
				{Path: "train-management", Title: "Train Management"},
				{Path: "line-management", Title: "Line Management"},
				{Path: "station-management", Title: "Station Management"},
				{Path: "route-management", Title: "Route Management"},
				{Path: "stop-management", Title: "Stop Management"},
				{Path: "feedback-management", Title: "Feedback Management"},
				{Path: "request-management", Title: "Request Management"},
				{Path: "announcement-management", Title: "Announcement Management"},
			},
		},
		&Node{
			Path:          "/superadmin",
			RequiresAuth:  true,
			RequiredRoles: []roles.Label{roles.SuperAdmin},
			Children: []*Node{
				{Path: "", Title: "Super Admin Home"},
				{Path: "user-management", Title: "User Management"},
			},
		},
	)
}
