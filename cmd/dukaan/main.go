package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dukaan",
	Short: "Dukaan — storefront demo CLI",
	Long:  "Dukaan is a small storefront data layer. Use this CLI to seed the catalog, inspect collections, and run the interactive shop.",
}

func init() {
	// Catalog
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(productsListCmd)

	// Cart
	rootCmd.AddCommand(cartShowCmd)

	// Interactive shop
	rootCmd.AddCommand(shopCmd)
}
