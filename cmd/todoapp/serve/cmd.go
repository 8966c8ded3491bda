package serve

import (
	"github.com/andrebq/todoapp/cmd/todoapp/serve/api"
	"github.com/andrebq/todoapp/cmd/todoapp/serve/catalog"
	"github.com/andrebq/todoapp/cmd/todoapp/serve/router"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Root command to start the todoapp services",
		Subcommands: []*cli.Command{
			api.Cmd(),
			catalog.Cmd(),
			router.Cmd(),
		},
	}
}
