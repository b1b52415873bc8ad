package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/app/cart"
	"github.com/shashiranjanraj/dukaan/app/shop"
)

// dukaan cart:show
var cartShowCmd = &cobra.Command{
	Use:   "cart:show",
	Short: "Print the current cart with its totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := boot()
		if err != nil {
			return err
		}

		items := s.CartItems()
		if len(items) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tLINE TOTAL")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				item.ID, item.Name, shop.FormatPrice(item.Price), item.Quantity,
				shop.FormatPrice(cart.LineTotal(item)))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		totals := cart.Compute(items)
		fmt.Printf("\nSubtotal: %s\nTax:      %s\nTotal:    %s\n",
			shop.FormatPrice(totals.Subtotal),
			shop.FormatPrice(totals.Tax),
			shop.FormatPrice(totals.Total))
		return nil
	},
}
