package auth

import (
	"errors"
	"fmt"
)

type (
	// AuthenticationFailed is returned by Login for unknown users,
	// inactive users and wrong passwords alike.
	AuthenticationFailed struct{}

	// InvalidToken is returned for any bearer token that cannot be turned
	// into an Identity.
	InvalidToken struct {
		cause error
	}
)

var (
	ErrInvalidTTL    = errors.New("auth: token ttl must be positive")
	errMissingClaims = errors.New("token is missing the sub or id claim")
)

func (AuthenticationFailed) Error() string {
	return "invalid username or password"
}

func (i InvalidToken) Error() string {
	if i.cause == nil {
		return "invalid token"
	}
	return fmt.Sprintf("invalid token, cause %v", i.cause)
}

func (i InvalidToken) Unwrap() error {
	return i.cause
}

func (InvalidToken) Is(target error) bool {
	_, ok := target.(InvalidToken)
	return ok
}
