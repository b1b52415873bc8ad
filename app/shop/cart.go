package shop

import (
	"fmt"
	"strconv"

	"github.com/shashiranjanraj/dukaan/app/cart"
	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/apperr"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
	"github.com/shashiranjanraj/dukaan/pkg/metrics"
)

// AddToCart puts one unit of the given product in the cart. A repeat
// add bumps the existing line's quantity; a first add snapshots the
// product's name, price and image into a new line.
func (s *Shop) AddToCart(productID int64) (err error) {
	defer func() { metrics.RecordOperation("add_to_cart", err) }()

	product, ok := collection.First(s.store.Products.Load(), func(p models.Product) bool {
		return p.ID == productID
	})
	if !ok {
		return apperr.New(apperr.NotFound, "Product not found")
	}

	items := s.store.Cart.Load()
	if idx := collection.IndexOf(items, func(i models.CartItem) bool { return i.ID == productID }); idx >= 0 {
		items[idx].Quantity++
	} else {
		items = append(items, models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		})
	}
	if err := s.store.Cart.Save(items); err != nil {
		return apperr.Wrap(apperr.Storage, "could not save cart", err)
	}

	s.notify(fmt.Sprintf("%s added to cart!", product.Name))
	return nil
}

// UpdateCartQuantity sets a line's quantity from raw form input. An
// unknown item id is a silent no-op. Unparseable input counts as 1, and
// the result is clamped to a minimum of 1; a line never reaches zero
// through this path.
func (s *Shop) UpdateCartQuantity(itemID int64, rawQuantity string) (err error) {
	defer func() { metrics.RecordOperation("update_cart_quantity", err) }()

	items := s.store.Cart.Load()
	idx := collection.IndexOf(items, func(i models.CartItem) bool { return i.ID == itemID })
	if idx < 0 {
		return nil
	}

	qty, perr := strconv.Atoi(rawQuantity)
	if perr != nil || qty < 1 {
		qty = 1
	}
	items[idx].Quantity = qty

	if err := s.store.Cart.Save(items); err != nil {
		return apperr.Wrap(apperr.Storage, "could not save cart", err)
	}
	return nil
}

// RemoveFromCart drops the line with the given item id. A missing id is
// a silent no-op, but the removal notification fires either way.
func (s *Shop) RemoveFromCart(itemID int64) (err error) {
	defer func() { metrics.RecordOperation("remove_from_cart", err) }()

	items := collection.Reject(s.store.Cart.Load(), func(i models.CartItem) bool {
		return i.ID == itemID
	})
	if err := s.store.Cart.Save(items); err != nil {
		return apperr.Wrap(apperr.Storage, "could not save cart", err)
	}

	s.notify("Item removed from cart")
	return nil
}

// Receipt is what Checkout hands back for display. Nothing about the
// order is persisted; the receipt is the only artifact.
type Receipt struct {
	Items  []models.CartItem `json:"items"`
	Totals cart.Totals       `json:"totals"`
}

// Checkout prices the cart, empties it, and returns the receipt. An
// empty cart cannot be checked out.
func (s *Shop) Checkout() (receipt Receipt, err error) {
	defer func() { metrics.RecordOperation("checkout", err) }()

	items := s.store.Cart.Load()
	if len(items) == 0 {
		return Receipt{}, apperr.New(apperr.EmptyCart, "Cart is empty")
	}

	totals := cart.Compute(items)
	if err := s.store.Cart.Save(nil); err != nil {
		return Receipt{}, apperr.Wrap(apperr.Storage, "could not clear cart", err)
	}

	s.notify(fmt.Sprintf("Order placed successfully! Total: %s", FormatPrice(totals.Total)))
	return Receipt{Items: items, Totals: totals}, nil
}
