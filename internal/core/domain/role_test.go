package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		err  bool
	}{
		{"admin", RoleAdmin, false},
		{"Admin", RoleAdmin, false},
		{"LANDLORD", RoleLandlord, false},
		{" tenant ", RoleTenant, false},
		{"manager", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseRole(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRoleRegisterable(t *testing.T) {
	if RoleAdmin.Registerable() {
		t.Fatalf("admin must not be self-registerable")
	}
	if !RoleLandlord.Registerable() || !RoleTenant.Registerable() {
		t.Fatalf("landlord and tenant must be self-registerable")
	}
}

func TestRoomStatusTransitions(t *testing.T) {
	if !RoomAvailable.CanTransitionTo(RoomOccupied) {
		t.Fatalf("available -> occupied should be allowed")
	}
	if !RoomOccupied.CanTransitionTo(RoomMaintenance) {
		t.Fatalf("occupied -> maintenance should be allowed")
	}
	if RoomMaintenance.CanTransitionTo(RoomOccupied) {
		t.Fatalf("maintenance -> occupied should be rejected")
	}
	if RoomAvailable.CanTransitionTo(RoomAvailable) {
		t.Fatalf("self transition should be rejected")
	}
}
