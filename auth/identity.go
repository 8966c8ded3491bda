package auth

import "context"

type (
	// Identity is the caller behind a verified token.
	Identity struct {
		Username string `json:"username"`
		ID       int64  `json:"id"`
		Role     string `json:"role"`
	}

	identityKey struct{}
)

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by the security realm, ok is
// false for requests that never went through it.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
