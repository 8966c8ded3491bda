package testutil

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/store"
	"golang.org/x/crypto/bcrypt"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

var dbSeq uint32

// AcquireStore opens a private in-memory database, cleanup closes it.
func AcquireStore(ctx context.Context, t TestLog) (*store.DB, func()) {
	dsn := fmt.Sprintf("file:testutil-%d?mode=memory&cache=shared", atomic.AddUint32(&dbSeq, 1))
	db, err := store.Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	return db, func() {
		err := db.Close()
		if err != nil {
			t.Log("unable to close database", err)
		}
	}
}

// AcquireService builds an auth.Service over db with a random key and
// the cheapest bcrypt cost.
func AcquireService(ctx context.Context, t TestLog, db *store.DB, ttl time.Duration) *auth.Service {
	key, err := auth.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return auth.NewService(db.Users(), auth.BcryptHasher{Cost: bcrypt.MinCost}, auth.NewIssuer(key), ttl)
}

// Login registers username and returns its bearer token.
func Login(ctx context.Context, t TestLog, svc *auth.Service, username, password string) (*store.User, string) {
	user, err := svc.Register(ctx, auth.Profile{Username: username}, password)
	if err != nil {
		t.Fatal(err)
	}
	tk, err := svc.Login(ctx, username, password)
	if err != nil {
		t.Fatal(err)
	}
	return user, tk.AccessToken
}
