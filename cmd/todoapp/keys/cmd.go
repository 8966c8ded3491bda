package keys

import (
	"crypto/rand"
	"fmt"

	"github.com/andrebq/todoapp/auth"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Manage the token signing key",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: fmt.Sprintf("Print a new random signing key, export it as %v before starting the api", auth.RootKeyEnvVar),
				Action: func(ctx *cli.Context) error {
					key, err := auth.GenerateKey(rand.Reader)
					if err != nil {
						return err
					}
					defer key.Zero()
					_, err = fmt.Fprintln(ctx.App.Writer, key.Encode())
					return err
				},
			},
		},
	}
}
