package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/app/catalog"
)

// dukaan seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog from the remote feed (or built-in defaults)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := boot()
		if err != nil {
			return err
		}

		source, err := catalog.Bootstrap(st)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %d products from %s\n", len(st.Products.Load()), source)
		return nil
	},
}
