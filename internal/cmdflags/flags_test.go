package cmdflags

import (
	"testing"
	"time"

	"github.com/andrebq/todoapp/auth"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestFlagsFromEnv(t *testing.T) {
	t.Setenv("TODOAPP_DATABASE", "from-env.db")
	t.Setenv("TODOAPP_TOKEN_TTL", "5m")

	var db, keyVar, level string
	var ttl time.Duration
	var pretty bool
	app := &cli.App{
		Flags: []cli.Flag{
			Database(&db),
			RootKeyEnvVar(&keyVar),
			TokenTTL(&ttl),
			LogLevel(&level),
			Pretty(&pretty),
		},
		Action: func(*cli.Context) error { return nil },
	}
	require.NoError(t, app.Run([]string{"todoapp", "--pretty"}))
	require.Equal(t, "from-env.db", db)
	require.Equal(t, auth.RootKeyEnvVar, keyVar)
	require.Equal(t, 5*time.Minute, ttl)
	require.Equal(t, "info", level)
	require.True(t, pretty)
}

func TestFlagsDefaults(t *testing.T) {
	var db string
	var ttl time.Duration
	app := &cli.App{
		Flags:  []cli.Flag{Database(&db), TokenTTL(&ttl)},
		Action: func(*cli.Context) error { return nil },
	}
	require.NoError(t, app.Run([]string{"todoapp", "--database", "other.db"}))
	require.Equal(t, "other.db", db)
	require.Equal(t, auth.DefaultTokenTTL, ttl)
}
