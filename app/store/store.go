// Package store exposes the three storefront collections as typed
// load/save pairs over one blob driver.
//
// A collection is a named, wholesale-replaceable ordered sequence of
// records persisted as one JSON blob. Raw blob keys never leave this
// package; callers pick a collection, not a string.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
	"github.com/shashiranjanraj/dukaan/pkg/metrics"
)

// Key names one persisted collection blob.
type Key string

const (
	KeyUsers    Key = "users"
	KeyProducts Key = "products"
	KeyCart     Key = "cart"
)

// Collection is a typed view over one blob key.
type Collection[T any] struct {
	blobs blob.Store
	key   Key
}

// Load parses the persisted blob into records. An absent blob and a
// malformed blob are deliberately indistinguishable: both yield an empty
// sequence, never an error.
func (c Collection[T]) Load() []T {
	defer metrics.ObserveBlobAccess(string(c.key), "load", time.Now())

	raw, err := c.blobs.Get(string(c.key))
	if err != nil {
		return nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Debug("store: malformed blob treated as empty", "key", c.key, "error", err)
		return nil
	}
	return records
}

// Save serialises records and fully replaces the prior blob contents.
// There are no partial or merge semantics.
func (c Collection[T]) Save(records []T) error {
	defer metrics.ObserveBlobAccess(string(c.key), "save", time.Now())

	if records == nil {
		records = []T{} // persist "[]", never "null"
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", c.key, err)
	}
	if err := c.blobs.Put(string(c.key), raw); err != nil {
		return fmt.Errorf("store: save %s: %w", c.key, err)
	}
	return nil
}

// Exists reports whether the collection has ever been persisted. Used by
// the bootstrap's gated seeding; an existing-but-malformed blob still
// counts as existing.
func (c Collection[T]) Exists() bool {
	return c.blobs.Exists(string(c.key))
}

// Store aggregates the three typed collections over one blob driver.
type Store struct {
	Users    Collection[models.User]
	Products Collection[models.Product]
	Cart     Collection[models.CartItem]
}

// New builds a Store on top of the given blob driver.
func New(b blob.Store) *Store {
	return &Store{
		Users:    Collection[models.User]{blobs: b, key: KeyUsers},
		Products: Collection[models.Product]{blobs: b, key: KeyProducts},
		Cart:     Collection[models.CartItem]{blobs: b, key: KeyCart},
	}
}
