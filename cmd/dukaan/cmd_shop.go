package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/app/catalog"
	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/shop"
	"github.com/shashiranjanraj/dukaan/pkg/apperr"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// dukaan shop
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Run the interactive storefront",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := boot()
		if err != nil {
			return err
		}
		if _, err := catalog.Bootstrap(st); err != nil {
			return err
		}

		runREPL(s, bufio.NewScanner(os.Stdin))
		return nil
	},
}

// runREPL reads one line at a time, parses the first token as the
// command, and dispatches to the shop. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// Operation outcomes surface through the notifier; this loop only adds
// the error messages, since failed operations do not notify themselves.
func runREPL(s *shop.Shop, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dukaan> %s >", status(s)))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Commands: register <name> <email> <password> <confirm>, login <email> <password>, logout,")
			printlnFn("          products, add <name> <price> <description> [image], edit <id> <name> <price> <description> [image],")
			printlnFn("          delete <id>, buy <product-id>, qty <item-id> <n>, remove <item-id>, cart, checkout, whoami, exit")

		case "register":
			if !wantArgs(args, 4) {
				continue
			}
			_, err := s.Register(models.RegisterInput{
				Name: args[0], Email: args[1], Password: args[2], PasswordConfirmation: args[3],
			})
			report(err)

		case "login":
			if !wantArgs(args, 2) {
				continue
			}
			_, err := s.Login(args[0], args[1])
			report(err)

		case "logout":
			s.Logout()

		case "whoami":
			if u, ok := s.CurrentUser(); ok {
				printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
			} else {
				printlnFn("Not logged in")
			}

		case "p", "products":
			for _, p := range s.Products() {
				printlnFn(fmt.Sprintf("%d  %-24s %s", p.ID, p.Name, shop.FormatPrice(p.Price)))
			}

		case "add":
			if !wantArgs(args, 3) {
				continue
			}
			input, ok := parseProductInput(args)
			if !ok {
				continue
			}
			_, err := s.AddProduct(input)
			report(err)

		case "edit":
			if !wantArgs(args, 4) {
				continue
			}
			id, ok := parseID(args[0])
			if !ok {
				continue
			}
			input, ok := parseProductInput(args[1:])
			if !ok {
				continue
			}
			_, err := s.EditProduct(id, input)
			report(err)

		case "delete":
			if id, ok := parseIDArg(args); ok {
				report(s.DeleteProduct(id))
			}

		case "buy":
			if id, ok := parseIDArg(args); ok {
				report(s.AddToCart(id))
			}

		case "qty":
			if !wantArgs(args, 2) {
				continue
			}
			if id, ok := parseID(args[0]); ok {
				report(s.UpdateCartQuantity(id, args[1]))
			}

		case "remove":
			if id, ok := parseIDArg(args); ok {
				report(s.RemoveFromCart(id))
			}

		case "cart":
			for _, item := range s.CartItems() {
				printlnFn(fmt.Sprintf("%d  %-24s %s x%d", item.ID, item.Name, shop.FormatPrice(item.Price), item.Quantity))
			}

		case "checkout":
			_, err := s.Checkout()
			report(err)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func status(s *shop.Shop) string {
	if u, ok := s.CurrentUser(); ok {
		return u.Name
	}
	return "guest"
}

// report surfaces an operation failure the way the snackbar would.
// Successes already notified from inside the operation.
func report(err error) {
	if err != nil {
		printlnFn("»", apperr.Message(err))
	}
}

func wantArgs(args []string, n int) bool {
	if len(args) < n {
		printlnFn(fmt.Sprintf("Expected at least %d argument(s). Try `help`.", n))
		return false
	}
	return true
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Not a valid id:", raw)
		return 0, false
	}
	return id, true
}

func parseIDArg(args []string) (int64, bool) {
	if !wantArgs(args, 1) {
		return 0, false
	}
	return parseID(args[0])
}

// parseProductInput reads name, price, description and an optional
// image from consecutive arguments. An unparseable price becomes 0 and
// is rejected downstream by validation.
func parseProductInput(args []string) (models.ProductInput, bool) {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		printlnFn("Not a valid price:", args[1])
		return models.ProductInput{}, false
	}
	input := models.ProductInput{Name: args[0], Price: price, Description: args[2]}
	if len(args) > 3 {
		input.Image = args[3]
	}
	return input, true
}
