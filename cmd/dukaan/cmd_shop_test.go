package main

import (
	"bufio"
	"fmt"
	"strings"
	"testing"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/session"
	"github.com/shashiranjanraj/dukaan/app/shop"
	"github.com/shashiranjanraj/dukaan/app/store"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
	"github.com/shashiranjanraj/dukaan/pkg/notify"
)

func replFixture(t *testing.T) (*shop.Shop, *store.Store, *[]string) {
	t.Helper()

	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	st := store.New(blob.NewMemoryStore())
	notifier := notify.New(notify.Func(func(msg string) {
		printlnFn("»", msg)
	}))
	s := shop.New(st, session.New(blob.NewMemoryStore()), notifier)
	return s, st, &lines
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestRunREPL_FullShoppingFlow(t *testing.T) {
	s, st, lines := replFixture(t)
	if err := st.Products.Save([]models.Product{
		{ID: 10, Name: "Smart Watch", Price: 199.99, Description: "d"},
	}); err != nil {
		t.Fatal(err)
	}

	input := strings.Join([]string{
		"register Ada ada@example.com secret99 secret99",
		"login ada@example.com secret99",
		"whoami",
		"buy 10",
		"buy 10",
		"qty 10 3",
		"cart",
		"checkout",
		"logout",
		"exit",
	}, "\n")

	runREPL(s, bufio.NewScanner(strings.NewReader(input)))

	for _, want := range []string{
		"» Registration successful! Redirecting to login...",
		"» Login successful! Redirecting...",
		"Ada <ada@example.com>",
		"» Smart Watch added to cart!",
		"» Order placed successfully! Total: $659.97",
		"» Logged out successfully",
		"Bye!",
	} {
		if !contains(*lines, want) {
			t.Fatalf("missing output %q in:\n%s", want, strings.Join(*lines, "\n"))
		}
	}

	if items := s.CartItems(); len(items) != 0 {
		t.Fatalf("cart not emptied: %+v", items)
	}
}

func TestRunREPL_ErrorsSurfaceAsSnackbars(t *testing.T) {
	s, _, lines := replFixture(t)

	input := strings.Join([]string{
		"login nobody@example.com nope",
		"buy 404",
		"checkout",
		"frobnicate",
		"quit",
	}, "\n")

	runREPL(s, bufio.NewScanner(strings.NewReader(input)))

	for _, want := range []string{
		"» Invalid email or password",
		"» Product not found",
		"» Cart is empty",
		"Unknown command: frobnicate",
	} {
		if !contains(*lines, want) {
			t.Fatalf("missing output %q in:\n%s", want, strings.Join(*lines, "\n"))
		}
	}
}
