package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/app/shop"
)

// dukaan products:list
var productsListCmd = &cobra.Command{
	Use:   "products:list",
	Short: "Print the current product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := boot()
		if err != nil {
			return err
		}

		products := s.Products()
		if len(products) == 0 {
			fmt.Println("Catalog is empty. Run `dukaan seed` first.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tDESCRIPTION")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, shop.FormatPrice(p.Price), p.Category, p.Description)
		}
		return w.Flush()
	},
}
