package api

import (
	"os"
	"time"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/internal/cmdflags"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/andrebq/todoapp/store"
	todoapi "github.com/andrebq/todoapp/todo/api"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7010"
	var database string
	var rootKeyEnvVar string
	var tokenTTL time.Duration
	cacheTTL := 5 * time.Minute
	return &cli.Command{
		Name:  "api",
		Usage: "Start the todo service (accounts, tokens and todos)",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.Database(&database),
			cmdflags.RootKeyEnvVar(&rootKeyEnvVar),
			cmdflags.TokenTTL(&tokenTTL),
			&cli.DurationFlag{
				Name:        "credential-cache-ttl",
				Usage:       "How long a user record is kept in memory after being read",
				Value:       cacheTTL,
				Destination: &cacheTTL,
			},
		},
		Action: func(ctx *cli.Context) error {
			key, err := auth.KeyFromEnv(rootKeyEnvVar, os.Getenv, os.Unsetenv)
			if err != nil {
				return err
			}
			db, err := store.Open(ctx.Context, database)
			if err != nil {
				return err
			}
			defer db.Close()
			users, err := auth.NewCachedCredentials(ctx.Context, db.Users(), cacheTTL)
			if err != nil {
				return err
			}
			defer users.Close()
			issuer := auth.NewIssuer(key)
			key.Zero()
			svc := auth.NewService(users, auth.BcryptHasher{}, issuer, tokenTTL)
			return httpserver.Serve(ctx.Context, bindAddr, todoapi.AsHandler(ctx.Context, db, svc))
		},
	}
}
