package catalog_test

import (
	"bytes"
	"io"
	gohttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dukaan/app/catalog"
	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/store"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
	"github.com/shashiranjanraj/dukaan/pkg/http"
)

type transportFunc func(*gohttp.Request) (*gohttp.Response, error)

func (f transportFunc) RoundTrip(r *gohttp.Request) (*gohttp.Response, error) { return f(r) }

func serveFeed(t *testing.T, status int, body string) {
	t.Helper()
	http.DefaultClient.Transport = transportFunc(func(*gohttp.Request) (*gohttp.Response, error) {
		return &gohttp.Response{
			StatusCode: status,
			Header:     gohttp.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(bytes.NewBufferString(body)),
		}, nil
	})
	t.Cleanup(http.ResetTransport)
}

func TestBootstrapFromFeed(t *testing.T) {
	serveFeed(t, 200, `{"products":[
		{"id": 9, "name": "Mechanical Keyboard", "price": 89.5,
		 "details": "Hot-swappable switches", "image": "images/keyboard.jpeg", "category": "peripherals"}
	]}`)

	s := store.New(blob.NewMemoryStore())
	source, err := catalog.Bootstrap(s)
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceFeed, source)

	products := s.Products.Load()
	require.Len(t, products, 1)
	assert.Equal(t, models.Product{
		ID:          9,
		Name:        "Mechanical Keyboard",
		Price:       89.5,
		Description: "Hot-swappable switches",
		Image:       "images/keyboard.jpeg",
		Category:    "peripherals",
	}, products[0])
}

func TestBootstrapFallsBackOnBadStatus(t *testing.T) {
	serveFeed(t, 500, `oops`)

	s := store.New(blob.NewMemoryStore())
	source, err := catalog.Bootstrap(s)
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceDefaults, source)
	assert.Equal(t, catalog.Defaults(), s.Products.Load())
}

func TestBootstrapFallsBackOnMalformedFeed(t *testing.T) {
	serveFeed(t, 200, `{"products": not-json`)

	s := store.New(blob.NewMemoryStore())
	source, err := catalog.Bootstrap(s)
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceDefaults, source)

	products := s.Products.Load()
	require.Len(t, products, 5)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
}

func TestBootstrapAlwaysReplacesProducts(t *testing.T) {
	serveFeed(t, 200, `{"products":[{"id": 1, "name": "Only Item", "price": 1}]}`)

	s := store.New(blob.NewMemoryStore())
	require.NoError(t, s.Products.Save([]models.Product{{ID: 42, Name: "Stale", Price: 9.99}}))

	_, err := catalog.Bootstrap(s)
	require.NoError(t, err)

	products := s.Products.Load()
	require.Len(t, products, 1)
	assert.Equal(t, "Only Item", products[0].Name)
}

func TestBootstrapPreservesExistingUsersAndCart(t *testing.T) {
	serveFeed(t, 200, `{"products":[]}`)

	s := store.New(blob.NewMemoryStore())
	require.NoError(t, s.Users.Save([]models.User{{ID: 1, Name: "Ada", Email: "ada@example.com"}}))
	require.NoError(t, s.Cart.Save([]models.CartItem{{ID: 2, Name: "USB-C Cable", Price: 14.99, Quantity: 1}}))

	_, err := catalog.Bootstrap(s)
	require.NoError(t, err)

	assert.Len(t, s.Users.Load(), 1)
	assert.Len(t, s.Cart.Load(), 1)
}

func TestBootstrapSeedsEmptyUsersAndCartWhenAbsent(t *testing.T) {
	serveFeed(t, 200, `{"products":[]}`)

	s := store.New(blob.NewMemoryStore())
	_, err := catalog.Bootstrap(s)
	require.NoError(t, err)

	assert.True(t, s.Users.Exists())
	assert.True(t, s.Cart.Exists())
	assert.Empty(t, s.Users.Load())
	assert.Empty(t, s.Cart.Load())
}
