package auth

import "github.com/vritti-hub/slicingpie/internal/models"

// Capability is an explicit authorization token. Mutating service
// operations on founders and categories take one as a parameter, so
// authorization is always visible at the call site instead of living
// in ambient state. Ledger entry creation needs only an authenticated
// user and does not consult the capability.
type Capability struct {
	userID string
	admin  bool
}

// NewCapability derives a capability from an authenticated user's
// identity and role.
func NewCapability(userID string, role models.Role) Capability {
	return Capability{userID: userID, admin: role == models.RoleAdmin}
}

// UserID returns the id of the user the capability was issued for.
func (c Capability) UserID() string { return c.userID }

// CanMutateConfiguration reports whether founder and category
// configuration may be changed under this capability.
func (c Capability) CanMutateConfiguration() bool { return c.admin }
