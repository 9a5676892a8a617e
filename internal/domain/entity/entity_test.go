package entity

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleBuyer, RoleSeller, RoleLandlord, RoleAgent, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	for _, r := range []Role{"", "superadmin", "Buyer"} {
		if r.Valid() {
			t.Errorf("expected %q to be invalid", r)
		}
	}
}

func TestRoleNeedsApproval(t *testing.T) {
	cases := map[Role]bool{
		RoleBuyer:    false,
		RoleAdmin:    false,
		RoleSeller:   true,
		RoleLandlord: true,
		RoleAgent:    true,
	}
	for r, want := range cases {
		if got := r.NeedsApproval(); got != want {
			t.Errorf("%s.NeedsApproval() = %v, want %v", r, got, want)
		}
	}
}

func TestPubliclyVisible(t *testing.T) {
	cases := []struct {
		status PropertyStatus
		active bool
		want   bool
	}{
		{StatusApproved, true, true},
		{StatusSold, true, true},
		{StatusRented, true, true},
		{StatusApproved, false, false},
		{StatusPending, true, false},
		{StatusRejected, true, false},
	}
	for _, c := range cases {
		p := Property{Status: c.status, IsActive: c.active}
		if got := p.PubliclyVisible(); got != c.want {
			t.Errorf("status=%s active=%v: got %v, want %v", c.status, c.active, got, c.want)
		}
	}
}
