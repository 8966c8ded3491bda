package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/andrebq/todoapp/store"
)

const (
	DefaultTokenTTL = 20 * time.Minute
	DefaultRole     = "user"
	TokenType       = "bearer"
)

type (
	CredentialStore interface {
		ByUsername(ctx context.Context, username string) (*store.User, error)
		Create(ctx context.Context, user *store.User) error
	}

	Profile struct {
		Username  string
		Email     string
		FirstName string
		LastName  string
		Role      string
	}

	Token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	Service struct {
		users  CredentialStore
		hasher PasswordHasher
		issuer *Issuer
		ttl    time.Duration

		dummyOnce sync.Once
		dummy     string
	}
)

func NewService(users CredentialStore, hasher PasswordHasher, issuer *Issuer, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Register stores a new active user, an existing username is reported
// as store.DuplicateUser.
func (s *Service) Register(ctx context.Context, p Profile, password string) (*store.User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("unable to hash password, cause %w", err)
	}
	role := p.Role
	if role == "" {
		role = DefaultRole
	}
	user := &store.User{
		Username:       p.Username,
		Email:          p.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Role:           role,
		HashedPassword: digest,
		IsActive:       true,
	}
	err = s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	log := logutil.GetOrDefault(ctx)
	user, err := s.users.ByUsername(ctx, username)
	var notFound store.NotFound
	if errors.As(err, &notFound) {
		s.hasher.Verify(password, s.dummyDigest())
		log.Info().Str("username", username).Msg("Login for unknown user")
		return Token{}, AuthenticationFailed{}
	} else if err != nil {
		return Token{}, err
	}
	if !s.hasher.Verify(password, user.HashedPassword) {
		log.Info().Str("username", username).Msg("Login with wrong password")
		return Token{}, AuthenticationFailed{}
	}
	if !user.IsActive {
		log.Info().Str("username", username).Msg("Login for inactive user")
		return Token{}, AuthenticationFailed{}
	}
	tk, err := s.issuer.Issue(user.Username, user.ID, user.Role, s.ttl)
	if err != nil {
		return Token{}, fmt.Errorf("unable to issue token for %v, cause %w", user.Username, err)
	}
	return Token{AccessToken: tk, TokenType: TokenType}, nil
}

func (s *Service) Identify(token string) (Identity, error) {
	return s.issuer.Verify(token)
}

// dummyDigest is compared against when the user does not exist so both
// failure paths cost one bcrypt comparison.
func (s *Service) dummyDigest() string {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.hasher.Hash("todoapp-unknown-user")
	})
	return s.dummy
}
