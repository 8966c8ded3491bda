package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type (
	Issuer struct {
		key Key
		now func() time.Time
	}

	claims struct {
		UserID *int64 `json:"id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}
)

var (
	signingMethod = jwt.SigningMethodHS256
)

// NewIssuer copies key, callers are free to zero their copy afterwards.
func NewIssuer(key *Key) *Issuer {
	return &Issuer{key: *key, now: time.Now}
}

// WithClock returns an issuer that reads the current time from now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	return &Issuer{key: i.key, now: now}
}

func (i *Issuer) Issue(username string, id int64, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}
	now := i.now()
	c := claims{
		UserID: &id,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(signingMethod, c).SignedString(i.key[:])
}

func (i *Issuer) Verify(token string) (Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return i.key[:], nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, InvalidToken{cause: err}
	}
	if c.Subject == "" || c.UserID == nil {
		return Identity{}, InvalidToken{cause: errMissingClaims}
	}
	return Identity{Username: c.Subject, ID: *c.UserID, Role: c.Role}, nil
}
