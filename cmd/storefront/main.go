package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "kikuchan store: catalog, cart and simulated checkout",
		Commands: []*cli.Command{
			serveCommand(),
			cartCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
