package auth

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyFromEnv(t *testing.T) {
	env := map[string]string{
		RootKeyEnvVar: "blmHX4evD5FygUEa3EWxjzuAPF7lC4sKuWBrhgti/20=",
		"SHORT":       "c2hvcnQ=",
		"GARBAGE":     "%%%",
	}
	getenv := func(k string) string { return env[k] }
	unsetenv := func(k string) error { delete(env, k); return nil }

	key, err := KeyFromEnv(RootKeyEnvVar, getenv, unsetenv)
	require.NoError(t, err)
	require.Equal(t, "blmHX4evD5FygUEa3EWxjzuAPF7lC4sKuWBrhgti/20=", key.Encode())
	_, present := env[RootKeyEnvVar]
	require.False(t, present, "reading the key should remove it from the environment")

	_, err = KeyFromEnv("SHORT", getenv, unsetenv)
	require.Error(t, err)
	_, err = KeyFromEnv("GARBAGE", getenv, unsetenv)
	require.Error(t, err)
	_, err = KeyFromEnv("MISSING", getenv, unsetenv)
	require.Error(t, err)
}

func TestKeyFromEnvUnsetFailure(t *testing.T) {
	getenv := func(string) string { return "blmHX4evD5FygUEa3EWxjzuAPF7lC4sKuWBrhgti/20=" }
	readonly := errors.New("read-only environment")
	_, err := KeyFromEnv(RootKeyEnvVar, getenv, func(string) error { return readonly })
	require.ErrorIs(t, err, readonly)
}

func TestKeyFromProcessEnv(t *testing.T) {
	t.Setenv("TODOAPP_TEST_ROOTKEY", "blmHX4evD5FygUEa3EWxjzuAPF7lC4sKuWBrhgti/20=")
	key, err := KeyFromEnv("TODOAPP_TEST_ROOTKEY", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "blmHX4evD5FygUEa3EWxjzuAPF7lC4sKuWBrhgti/20=", key.Encode())
	_, present := os.LookupEnv("TODOAPP_TEST_ROOTKEY")
	require.False(t, present)
}

func TestGenerateKey(t *testing.T) {
	k, err := GenerateKey(bytes.NewReader(bytes.Repeat([]byte{7}, 32)))
	require.NoError(t, err)
	require.Equal(t, Key{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, *k)
	k.Zero()
	require.Equal(t, Key{}, *k)

	_, err = GenerateKey(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}
