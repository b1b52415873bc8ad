package shop

import (
	"fmt"
	"net/url"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/apperr"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
	"github.com/shashiranjanraj/dukaan/pkg/metrics"
	"github.com/shashiranjanraj/dukaan/pkg/validate"
)

// placeholderImage generates the fallback image URL for products added
// without one, embedding the product name as overlay text.
func placeholderImage(name string) string {
	return "https://via.placeholder.com/300x200?text=" + url.QueryEscape(name)
}

// validateProduct maps any failing product field to the single form
// message. Note that a price of 0 fails the required rule: free
// products are rejected.
func validateProduct(input models.ProductInput) error {
	if validate.HasErrors(validate.Struct(input)) {
		return apperr.New(apperr.Validation, "Please fill in all required fields")
	}
	return nil
}

// AddProduct appends a new catalog entry with a time-derived id.
func (s *Shop) AddProduct(input models.ProductInput) (product models.Product, err error) {
	defer func() { metrics.RecordOperation("add_product", err) }()

	if err := validateProduct(input); err != nil {
		return models.Product{}, err
	}

	image := input.Image
	if image == "" {
		image = placeholderImage(input.Name)
	}

	product = models.Product{
		ID:          newID(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       image,
	}
	products := append(s.store.Products.Load(), product)
	if err := s.store.Products.Save(products); err != nil {
		return models.Product{}, apperr.Wrap(apperr.Storage, "could not save product", err)
	}

	s.notify("Product added successfully!")
	return product, nil
}

// EditProduct mutates the matched record in place, id unchanged. The id
// is resolved before the input is validated. The same emptiness rules
// and placeholder-image fallback as AddProduct apply, so a blank image
// input replaces the stored one with a generated placeholder.
func (s *Shop) EditProduct(id int64, input models.ProductInput) (product models.Product, err error) {
	defer func() { metrics.RecordOperation("edit_product", err) }()

	products := s.store.Products.Load()
	idx := collection.IndexOf(products, func(p models.Product) bool { return p.ID == id })
	if idx < 0 {
		return models.Product{}, apperr.New(apperr.NotFound, "Product not found")
	}

	if err := validateProduct(input); err != nil {
		return models.Product{}, err
	}

	image := input.Image
	if image == "" {
		image = placeholderImage(input.Name)
	}
	products[idx].Name = input.Name
	products[idx].Price = input.Price
	products[idx].Description = input.Description
	products[idx].Image = image
	if err := s.store.Products.Save(products); err != nil {
		return models.Product{}, apperr.Wrap(apperr.Storage, "could not save product", err)
	}

	s.notify("Product updated successfully!")
	return products[idx], nil
}

// DeleteProduct removes the product with the given id. A missing id is
// a silent no-op. Cart lines referencing the deleted product are left
// untouched; they keep their snapshotted name and price.
func (s *Shop) DeleteProduct(id int64) (err error) {
	defer func() { metrics.RecordOperation("delete_product", err) }()

	products := collection.Reject(s.store.Products.Load(), func(p models.Product) bool {
		return p.ID == id
	})
	if err := s.store.Products.Save(products); err != nil {
		return apperr.Wrap(apperr.Storage, "could not save products", err)
	}

	s.notify("Product deleted successfully")
	return nil
}

// FormatPrice renders a monetary value for display. Stored values stay
// unrounded; rounding to two decimals happens only here.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
