// Package auth turns a username and a password into a bearer token and a
// bearer token back into an Identity.
//
// Passwords are never kept, only their bcrypt digest. Tokens are HS256
// JWTs signed with a root key that is read once from the environment
// (the variable is cleared right after) and injected into the Issuer.
//
// Tokens are not stored anywhere: a token is valid while its signature
// matches, its algorithm is HS256, it carries both the `sub` and `id`
// claims and its `exp` is in the future. There is no revocation, losing
// a token means waiting for it to expire, which is why the default TTL
// is short.
//
// Login does not tell an unknown username apart from a wrong password,
// both return AuthenticationFailed and both pay for one bcrypt comparison.
package auth
