package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"

	"github.com/andrebq/todoapp/cmd/todoapp/keys"
	"github.com/andrebq/todoapp/cmd/todoapp/serve"
	"github.com/andrebq/todoapp/cmd/todoapp/users"
	"github.com/andrebq/todoapp/internal/cmdflags"
	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	// values from the real environment win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Unable to load .env file")
	}

	var logLevel string
	var pretty bool
	app := &cli.App{
		Name:  "todoapp",
		Usage: "Todo lists for authenticated users and a public books catalog",
		Flags: []cli.Flag{
			cmdflags.LogLevel(&logLevel),
			cmdflags.Pretty(&pretty),
		},
		Before: func(ctx *cli.Context) error {
			return logutil.Setup(logLevel, pretty)
		},
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
			keys.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}
}
