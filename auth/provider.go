package auth

import "context"

// Credential is the identity provider's view of an account: an opaque
// id bound to an email/password pair, plus an optional display name.
type Credential struct {
	ID          string
	Email       string
	DisplayName string
}

// IdentityProvider is the gateway to the credential backend. Create and
// Verify both open a provider session and return its id alongside the
// credential. Delete exists as the compensating action for a signup
// whose account-record write failed.
type IdentityProvider interface {
	Create(ctx context.Context, email, password string) (Credential, string, error)
	Verify(ctx context.Context, email, password string) (Credential, string, error)
	SignOut(ctx context.Context, sessionID string) error
	UpdateDisplayName(ctx context.Context, credentialID, name string) error
	Delete(ctx context.Context, credentialID string) error
}

// SessionChecker reports whether a provider session is still live.
// Used by the auth middleware to reject tokens whose session was
// signed out.
type SessionChecker interface {
	Active(ctx context.Context, sessionID string) (bool, error)
}
