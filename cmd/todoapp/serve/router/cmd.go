package router

import (
	"net/url"

	"github.com/andrebq/todoapp/internal/cmdflags"
	"github.com/andrebq/todoapp/internal/frontproxy"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7007"
	todoEndpoint := "http://localhost:7010/"
	booksEndpoint := "http://localhost:7008/"
	return &cli.Command{
		Name:  "router",
		Usage: "Start a single entry point in front of the todo and books services",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			&cli.StringFlag{
				Name:        "todo-endpoint",
				Usage:       "Base endpoint of the todo service",
				Destination: &todoEndpoint,
				Value:       todoEndpoint,
			},
			&cli.StringFlag{
				Name:        "books-endpoint",
				Usage:       "Base endpoint of the books service",
				Destination: &booksEndpoint,
				Value:       booksEndpoint,
			},
		},
		Action: func(ctx *cli.Context) error {
			todoURL, err := url.Parse(todoEndpoint)
			if err != nil {
				return err
			}
			booksURL, err := url.Parse(booksEndpoint)
			if err != nil {
				return err
			}
			handler := frontproxy.AsHandler(ctx.Context, todoURL, booksURL)
			return httpserver.Serve(ctx.Context, bindAddr, handler)
		},
	}
}
