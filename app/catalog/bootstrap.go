// Package catalog seeds the storefront collections at startup.
//
// The product catalog is refreshed from a remote JSON feed on every
// boot, falling back to a built-in default set when the feed is
// unreachable. Users and the cart are only ever seeded empty, and only
// when no blob for them exists yet, so registered accounts and
// in-progress carts survive restarts.
package catalog

import (
	"time"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/store"
	"github.com/shashiranjanraj/dukaan/config"
	"github.com/shashiranjanraj/dukaan/pkg/http"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
	"github.com/shashiranjanraj/dukaan/pkg/metrics"
)

// feed mirrors the remote catalog document. The feed calls the long
// description "details"; locally the field is "description".
type feed struct {
	Products []feedProduct `json:"products"`
}

type feedProduct struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Details  string  `json:"details"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

// Source values reported by Bootstrap.
const (
	SourceFeed     = "feed"
	SourceDefaults = "defaults"
)

// Bootstrap seeds all three collections and reports where the product
// catalog came from. The catalog is always overwritten; users and cart
// are created empty only when absent.
func Bootstrap(s *store.Store) (source string, err error) {
	products, source := fetchProducts()
	metrics.RecordBootstrap(source)

	if err := s.Products.Save(products); err != nil {
		return source, err
	}
	logger.Info("catalog: products seeded", "source", source, "count", len(products))

	if !s.Users.Exists() {
		if err := s.Users.Save(nil); err != nil {
			return source, err
		}
	}
	if !s.Cart.Exists() {
		if err := s.Cart.Save(nil); err != nil {
			return source, err
		}
	}
	return source, nil
}

// fetchProducts pulls the remote feed, converting feed records to local
// ones. Any failure along the way (transport, status, decode) falls back
// to the built-in defaults.
func fetchProducts() ([]models.Product, string) {
	url := config.CatalogURL()

	resp, err := http.Get(url).Timeout(5 * time.Second).Retry(2, time.Second).Send()
	if err != nil {
		logger.Warn("catalog: feed unreachable, using defaults", "url", url, "error", err)
		return Defaults(), SourceDefaults
	}
	if err := resp.Throw(); err != nil {
		logger.Warn("catalog: feed rejected, using defaults", "url", url, "error", err)
		return Defaults(), SourceDefaults
	}

	var doc feed
	if err := resp.JSON(&doc); err != nil {
		logger.Warn("catalog: feed malformed, using defaults", "url", url, "error", err)
		return Defaults(), SourceDefaults
	}

	products := make([]models.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, models.Product{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Details,
			Image:       p.Image,
			Category:    p.Category,
		})
	}
	return products, SourceFeed
}
