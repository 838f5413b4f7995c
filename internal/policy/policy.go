// Package policy derives effective capabilities from the current role and
// the administrator's "view as user" simulation toggle. Handlers consult
// the policy before invoking store mutators; the store itself performs no
// role checks.
package policy

import "pagehelm/models"

// Unlimited marks a capability with no page-count cap.
const Unlimited = -1

// FreeTierMaxPages caps page creation for the free tier.
const FreeTierMaxPages = 2

// Capabilities is the effective capability set for one request.
type Capabilities struct {
	CanSeeAdminTabs bool
	CanCreatePage   bool
	CanPublish      bool
	// CanViewPlans opens the plans tab. Admins manage plans there; the
	// free tier sees them read-only as its upgrade surface.
	CanViewPlans bool
	MaxPages     int
}

// EffectiveRole resolves the role a request acts under. Simulation only
// applies to administrators and never persists as a stored role change.
func EffectiveRole(role string, simulating bool) string {
	role = models.NormalizeRole(role)
	if simulating && role == models.RoleAdmin {
		return models.RoleUser
	}
	return role
}

// Derive computes the capability set for a role, the simulation flag, and
// the caller's current page count.
func Derive(role string, simulating bool, pageCount int64) Capabilities {
	switch EffectiveRole(role, simulating) {
	case models.RoleAdmin:
		return Capabilities{
			CanSeeAdminTabs: true,
			CanCreatePage:   true,
			CanPublish:      true,
			CanViewPlans:    true,
			MaxPages:        Unlimited,
		}
	case models.RoleUser:
		return Capabilities{
			CanCreatePage: true,
			CanPublish:    true,
			MaxPages:      Unlimited,
		}
	default:
		return Capabilities{
			CanCreatePage: pageCount < FreeTierMaxPages,
			CanPublish:    false,
			CanViewPlans:  true,
			MaxPages:      FreeTierMaxPages,
		}
	}
}
