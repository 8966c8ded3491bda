package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/andrebq/todoapp/store"
	"github.com/cespare/xxhash/v2"
)

type (
	// CachedCredentials keeps recently used users in memory, users are
	// never updated after registration so entries only leave by expiring.
	CachedCredentials struct {
		inner CredentialStore
		cache *bigcache.BigCache
	}

	cachedUser struct {
		ID             int64  `json:"id"`
		Username       string `json:"username"`
		Email          string `json:"email"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Role           string `json:"role"`
		HashedPassword string `json:"hashed_password"`
		IsActive       bool   `json:"is_active"`
	}

	xxhasher struct{}
)

func (xxhasher) Sum64(key string) uint64 {
	return xxhash.Sum64String(key)
}

func NewCachedCredentials(ctx context.Context, inner CredentialStore, ttl time.Duration) (*CachedCredentials, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.Shards = 64
	cfg.Hasher = xxhasher{}
	cfg.Verbose = false
	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &CachedCredentials{inner: inner, cache: cache}, nil
}

func (c *CachedCredentials) ByUsername(ctx context.Context, username string) (*store.User, error) {
	log := logutil.GetOrDefault(ctx)
	buf, err := c.cache.Get(username)
	if err == nil {
		var cu cachedUser
		if err = json.Unmarshal(buf, &cu); err == nil {
			return cu.user(), nil
		}
		log.Warn().Err(err).Str("username", username).Msg("Discarding unreadable cache entry")
		c.cache.Delete(username)
	} else if !errors.Is(err, bigcache.ErrEntryNotFound) {
		log.Warn().Err(err).Str("username", username).Msg("Unexpected error reading credential cache")
	}
	user, err := c.inner.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	buf, err = json.Marshal(fromUser(user))
	if err == nil {
		err = c.cache.Set(username, buf)
	}
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Unable to cache credentials")
	}
	return user, nil
}

func (c *CachedCredentials) Create(ctx context.Context, user *store.User) error {
	return c.inner.Create(ctx, user)
}

func (c *CachedCredentials) Len() int {
	return c.cache.Len()
}

func (c *CachedCredentials) Close() error {
	return c.cache.Close()
}

func fromUser(u *store.User) cachedUser {
	return cachedUser{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
	}
}

func (c cachedUser) user() *store.User {
	return &store.User{
		ID:             c.ID,
		Username:       c.Username,
		Email:          c.Email,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Role:           c.Role,
		HashedPassword: c.HashedPassword,
		IsActive:       c.IsActive,
	}
}
