package auth

import "golang.org/x/crypto/bcrypt"

type (
	PasswordHasher interface {
		// Hash returns a salted digest, two calls with the same input
		// return different digests.
		Hash(plain string) (string, error)
		// Verify fails closed, a malformed digest is just a mismatch.
		Verify(plain, digest string) bool
	}

	BcryptHasher struct {
		Cost int
	}
)

func (b BcryptHasher) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	buf, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (b BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
