package havenly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sessionInState(state State, user *User) *Session {
	return &Session{state: state, user: user}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session *Session
		allowed []Role
		want    Decision
	}{
		{
			name:    "loading shows placeholder",
			session: sessionInState(StateInitializing, nil),
			allowed: []Role{RoleTenant},
			want:    ShowLoading,
		},
		{
			name:    "anonymous redirects to login",
			session: sessionInState(StateAnonymous, nil),
			allowed: []Role{RoleTenant},
			want:    RedirectLogin,
		},
		{
			name:    "admin is sent to admin dashboard",
			session: sessionInState(StateAuthenticated, &User{ID: "u_1", Role: RoleAdmin}),
			allowed: []Role{RoleTenant, RoleLandlord},
			want:    RedirectAdminHome,
		},
		{
			name:    "matching role is allowed",
			session: sessionInState(StateAuthenticated, &User{ID: "u_2", Role: RoleTenant}),
			allowed: []Role{RoleTenant},
			want:    Allow,
		},
		{
			name:    "wrong role is unauthorized",
			session: sessionInState(StateAuthenticated, &User{ID: "u_3", Role: RoleTenant}),
			allowed: []Role{RoleLandlord},
			want:    RedirectUnauthorized,
		},
		{
			name:    "no role restriction admits any non-admin",
			session: sessionInState(StateAuthenticated, &User{ID: "u_4", Role: RoleLandlord}),
			want:    Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Guard(tt.session, tt.allowed...))
		})
	}
}

func TestAdminGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session *Session
		want    Decision
	}{
		{
			name:    "loading shows placeholder",
			session: sessionInState(StateInitializing, nil),
			want:    ShowLoading,
		},
		{
			name:    "anonymous redirects to login",
			session: sessionInState(StateAnonymous, nil),
			want:    RedirectLogin,
		},
		{
			name:    "admin is allowed",
			session: sessionInState(StateAuthenticated, &User{ID: "u_1", Role: RoleAdmin}),
			want:    Allow,
		},
		{
			name:    "landlord goes to their own dashboard",
			session: sessionInState(StateAuthenticated, &User{ID: "u_2", Role: RoleLandlord}),
			want:    RedirectRoleHome,
		},
		{
			name:    "unrecognised role is unauthorized",
			session: sessionInState(StateAuthenticated, &User{ID: "u_3", Role: Role("superuser")}),
			want:    RedirectUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AdminGuard(tt.session))
		})
	}
}
