package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

const (
	RootKeyEnvVar = "TODOAPP_AUTH_ROOTKEY"
)

type (
	Key [32]byte
)

func (k *Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}

// Encode returns the base64 form accepted by KeyFromEnv.
func (k *Key) Encode() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

// KeyFromEnv reads a base64 encoded key from varname and unsets the variable
// so child processes never see it.
func KeyFromEnv(varname string, getfn func(string) string, unsetfn func(string) error) (*Key, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if unsetfn == nil {
		unsetfn = os.Unsetenv
	}
	val := getfn(varname)
	if err := unsetfn(varname); err != nil {
		return nil, fmt.Errorf("auth: unable to remove %v from the environment, cause %w", varname, err)
	}
	buf, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("auth: cannot decode %v to valid key, cause %v", varname, err)
	}
	var rootKey Key
	if len(buf) != len(rootKey) {
		return nil, fmt.Errorf("auth: decoded key has %v bytes expecting %v bytes", len(buf), len(rootKey))
	}
	copy(rootKey[:], buf)
	for i := range buf {
		buf[i] = 0
	}
	return &rootKey, nil
}

func GenerateKey(rnd io.Reader) (*Key, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var k Key
	_, err := io.ReadFull(rnd, k[:])
	if err != nil {
		return nil, fmt.Errorf("auth: unable to generate key, cause %w", err)
	}
	return &k, nil
}
