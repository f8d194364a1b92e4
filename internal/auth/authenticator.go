package auth

import (
	"context"

	"github.com/vritti-hub/slicingpie/internal/models"
)

// Authenticator manages the workspace's user accounts. Accounts exist
// so mutations can be attributed and so the configuration capability
// has a role to derive from; implementations must assign RoleAdmin to
// the first account registered and RoleMember to every later one, since
// the rest of the system relies on that bootstrap to mint the first
// configuration capability.
//
// The credential format is implementation-defined (password today;
// the interface leaves room for passkeys or OAuth).
type Authenticator interface {
	// Register creates a new account, validating the credential and
	// assigning the role per the bootstrap rule above.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the account, or
	// ErrInvalidCredentials without distinguishing unknown emails from
	// wrong credentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}
