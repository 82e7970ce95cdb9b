package auth

import "context"

// Authenticator verifies a credential and returns the subject it belongs
// to. The gradebook has a single owner, so the subject is fixed, but the
// abstraction leaves room for other credential kinds.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (subject string, err error)
}
