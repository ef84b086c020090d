package havenly

// Decision is what a route guard tells the navigation layer to do. Guards are
// pure functions of session state plus static route configuration; they hold
// no state of their own.
type Decision int

const (
	// ShowLoading means the startup verification has not resolved yet.
	ShowLoading Decision = iota
	// RedirectLogin means no authenticated user is present.
	RedirectLogin
	// RedirectAdminHome sends an admin away from tenant/landlord routes.
	RedirectAdminHome
	// RedirectRoleHome sends a non-admin to their own role's dashboard.
	RedirectRoleHome
	// RedirectUnauthorized means the user is authenticated but not allowed here.
	RedirectUnauthorized
	// Allow renders the protected content.
	Allow
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "show_loading"
	case RedirectLogin:
		return "redirect_login"
	case RedirectAdminHome:
		return "redirect_admin_home"
	case RedirectRoleHome:
		return "redirect_role_home"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	case Allow:
		return "allow"
	}
	return "unknown"
}

// Guard protects a tenant or landlord route. Admins never see these routes:
// they are sent to their own dashboard instead. With an empty allowedRoles any
// authenticated non-admin passes.
func Guard(s *Session, allowedRoles ...Role) Decision {
	if s.Loading() {
		return ShowLoading
	}
	user := s.CurrentUser()
	if user == nil {
		return RedirectLogin
	}
	if user.Role == RoleAdmin {
		return RedirectAdminHome
	}
	if len(allowedRoles) == 0 {
		return Allow
	}
	for _, role := range allowedRoles {
		if user.Role == role {
			return Allow
		}
	}
	return RedirectUnauthorized
}

// AdminGuard protects admin-only routes. Authenticated non-admins with a
// recognised role go to their own dashboard; an unrecognised role gets the
// unauthorized page.
func AdminGuard(s *Session) Decision {
	if s.Loading() {
		return ShowLoading
	}
	user := s.CurrentUser()
	if user == nil {
		return RedirectLogin
	}
	if user.Role == RoleAdmin {
		return Allow
	}
	if _, ok := ParseRole(string(user.Role)); ok {
		return RedirectRoleHome
	}
	return RedirectUnauthorized
}
