package policy

import (
	"testing"

	"pagehelm/models"
)

func TestDerive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		role       string
		simulating bool
		pageCount  int64
		want       Capabilities
	}{
		{
			name: "admin", role: models.RoleAdmin,
			want: Capabilities{CanSeeAdminTabs: true, CanCreatePage: true, CanPublish: true, CanViewPlans: true, MaxPages: Unlimited},
		},
		{
			name: "user", role: models.RoleUser,
			want: Capabilities{CanCreatePage: true, CanPublish: true, MaxPages: Unlimited},
		},
		{
			name: "free under limit", role: models.RoleFreeUser, pageCount: 1,
			want: Capabilities{CanCreatePage: true, CanViewPlans: true, MaxPages: FreeTierMaxPages},
		},
		{
			name: "free at limit", role: models.RoleFreeUser, pageCount: 2,
			want: Capabilities{CanCreatePage: false, CanViewPlans: true, MaxPages: FreeTierMaxPages},
		},
		{
			name: "unknown role treated as free", role: "ROOT", pageCount: 5,
			want: Capabilities{CanCreatePage: false, CanViewPlans: true, MaxPages: FreeTierMaxPages},
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Derive(tt.role, tt.simulating, tt.pageCount); got != tt.want {
				t.Fatalf("Derive(%q, %t, %d) = %+v, want %+v", tt.role, tt.simulating, tt.pageCount, got, tt.want)
			}
		})
	}
}

func TestSimulationMatchesUserCapabilities(t *testing.T) {
	t.Parallel()

	simulated := Derive(models.RoleAdmin, true, 0)
	asUser := Derive(models.RoleUser, false, 0)
	if simulated != asUser {
		t.Fatalf("simulating admin = %+v, want user capabilities %+v", simulated, asUser)
	}

	// Leaving simulation restores the original capability set.
	restored := Derive(models.RoleAdmin, false, 0)
	if !restored.CanSeeAdminTabs {
		t.Fatal("expected admin tabs back after exiting simulation")
	}
}

func TestSimulationOnlyAffectsAdmins(t *testing.T) {
	t.Parallel()

	if got := EffectiveRole(models.RoleFreeUser, true); got != models.RoleFreeUser {
		t.Fatalf("EffectiveRole = %q, want FREE_USER", got)
	}
	if got := EffectiveRole(models.RoleAdmin, true); got != models.RoleUser {
		t.Fatalf("EffectiveRole = %q, want USER", got)
	}
}
