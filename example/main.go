// Package main is an example of embedding the dukaan data layer as a
// library, without the CLI.
//
// To run this example:
//
//	cd example
//	go run .
package main

import (
	"fmt"

	"github.com/shashiranjanraj/dukaan/app/catalog"
	"github.com/shashiranjanraj/dukaan/app/session"
	"github.com/shashiranjanraj/dukaan/app/shop"
	"github.com/shashiranjanraj/dukaan/app/store"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
	"github.com/shashiranjanraj/dukaan/pkg/notify"
)

func main() {
	// Everything in memory: no config files, no data directory.
	st := store.New(blob.NewMemoryStore())

	notifier := notify.New(notify.Func(func(msg string) {
		fmt.Println("»", msg)
	}))
	s := shop.New(st, session.New(blob.NewMemoryStore()), notifier)

	// Seed the catalog. With no feed reachable this falls back to the
	// built-in defaults.
	source, err := catalog.Bootstrap(st)
	if err != nil {
		panic(err)
	}
	fmt.Println("catalog source:", source)

	for _, p := range s.Products() {
		fmt.Printf("%d  %-24s %s\n", p.ID, p.Name, shop.FormatPrice(p.Price))
	}

	// Buy two headphones and a cable, then check out.
	must(s.AddToCart(1))
	must(s.AddToCart(1))
	must(s.AddToCart(3))

	receipt, err := s.Checkout()
	if err != nil {
		panic(err)
	}
	fmt.Printf("subtotal %s, tax %s, total %s\n",
		shop.FormatPrice(receipt.Totals.Subtotal),
		shop.FormatPrice(receipt.Totals.Tax),
		shop.FormatPrice(receipt.Totals.Total))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
