package users

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/internal/cmdflags"
	"github.com/andrebq/todoapp/store"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var database string
	return &cli.Command{
		Name:  "users",
		Usage: "Manage user accounts directly in the database",
		Flags: []cli.Flag{
			cmdflags.Database(&database),
		},
		Subcommands: []*cli.Command{
			registerCmd(&database),
		},
	}
}

func registerCmd(database *string) *cli.Command {
	var profile auth.Profile
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u", "user"},
				Usage:       "Name of the user to register",
				Destination: &profile.Username,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "email",
				Destination: &profile.Email,
			},
			&cli.StringFlag{
				Name:        "first-name",
				Destination: &profile.FirstName,
			},
			&cli.StringFlag{
				Name:        "last-name",
				Destination: &profile.LastName,
			},
			&cli.StringFlag{
				Name:        "role",
				Value:       auth.DefaultRole,
				Destination: &profile.Role,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			db, err := store.Open(ctx.Context, *database)
			if err != nil {
				return err
			}
			defer db.Close()
			svc := auth.NewService(db.Users(), auth.BcryptHasher{}, nil, 0)
			user, err := svc.Register(ctx.Context, profile, password)
			if err != nil {
				return err
			}
			log.Info().Str("username", user.Username).Int64("id", user.ID).Msg("User registered")
			return nil
		},
	}
}
