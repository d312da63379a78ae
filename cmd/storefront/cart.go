package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/view"
	"github.com/dwikikusuma/kikuchan-store/pkg/config"
)

func cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "inspect or reset the persisted cart",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print the persisted cart lines and totals",
				Action: func(c *cli.Context) error {
					return withCart(c, func(cart *cartapp.Service) error {
						return printCart(c.App.Writer, cart)
					})
				},
			},
			{
				Name:  "clear",
				Usage: "empty the persisted cart",
				Action: func(c *cli.Context) error {
					return withCart(c, func(cart *cartapp.Service) error {
						cart.Clear(c.Context)
						fmt.Fprintln(c.App.Writer, "cart cleared")
						return nil
					})
				},
			},
		},
	}
}

func withCart(c *cli.Context, fn func(cart *cartapp.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stderr)

	slot, closeSlot, err := openSlot(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer closeSlot()

	return fn(newCart(c.Context, newCatalog(), slot, log))
}

func printCart(w io.Writer, cart *cartapp.Service) error {
	f := view.NewFormatter()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
	for _, l := range cart.Lines() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", l.ID, l.Title, f.Yen(l.Price), l.Quantity, f.Yen(l.Subtotal()))
	}
	fmt.Fprintf(tw, "\t\t\t%d\t%s\n", cart.TotalQuantity(), f.Yen(cart.TotalPrice()))
	return tw.Flush()
}
