package catalog

import (
	"github.com/andrebq/todoapp/books"
	"github.com/andrebq/todoapp/books/api"
	"github.com/andrebq/todoapp/internal/cmdflags"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7008"
	var seed string
	return &cli.Command{
		Name:  "books",
		Usage: "Start the in-memory books catalog",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "Lua script returning the initial catalog, the built-in books are used when empty",
				EnvVars:     []string{"TODOAPP_BOOKS_SEED"},
				Destination: &seed,
			},
		},
		Action: func(ctx *cli.Context) error {
			initial := books.DefaultBooks()
			if seed != "" {
				var err error
				initial, err = books.LoadSeed(ctx.Context, seed)
				if err != nil {
					return err
				}
			}
			log.Info().Int("books", len(initial)).Msg("Catalog loaded")
			handler := api.AsHandler(ctx.Context, books.NewCatalog(initial))
			return httpserver.Serve(ctx.Context, bindAddr, handler)
		},
	}
}
