package cmdflags

import (
	"time"

	"github.com/andrebq/todoapp/auth"
	"github.com/urfave/cli/v2"
)

func Database(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = "todoapp.db"
	}
	return &cli.StringFlag{
		Name:        "database",
		Aliases:     []string{"db"},
		Usage:       "Path to the SQLite database holding users and todos",
		EnvVars:     []string{"TODOAPP_DATABASE"},
		Destination: out,
		Value:       *out,
	}
}

func RootKeyEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = auth.RootKeyEnvVar
	}
	return &cli.StringFlag{
		Name:        "root-key-envvar-name",
		Usage:       "Name of the environment variable that holds the root key. The key itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}

func TokenTTL(out *time.Duration) cli.Flag {
	if *out == 0 {
		*out = auth.DefaultTokenTTL
	}
	return &cli.DurationFlag{
		Name:        "token-ttl",
		Usage:       "How long an access token remains valid",
		EnvVars:     []string{"TODOAPP_TOKEN_TTL"},
		Value:       *out,
		Destination: out,
	}
}

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Usage:       "Address to bind for incoming requests",
		Value:       *out,
		Destination: out,
	}
}

func LogLevel(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = "info"
	}
	return &cli.StringFlag{
		Name:        "log-level",
		Usage:       "Minimum level of log messages (trace, debug, info, warn, error)",
		EnvVars:     []string{"TODOAPP_LOG_LEVEL"},
		Value:       *out,
		Destination: out,
	}
}

func Pretty(out *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "pretty",
		Usage:       "Write human friendly logs instead of JSON",
		EnvVars:     []string{"TODOAPP_LOG_PRETTY"},
		Value:       *out,
		Destination: out,
	}
}
