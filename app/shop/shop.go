// Package shop implements the storefront operations: registration,
// login, catalog management, cart manipulation and checkout.
//
// Every mutation follows the same shape: load the whole collection,
// change it in memory, write the whole collection back. The model
// assumes a single active writer; there is no isolation between the
// read and the write.
package shop

import (
	"time"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/session"
	"github.com/shashiranjanraj/dukaan/app/store"
	"github.com/shashiranjanraj/dukaan/pkg/notify"
)

// now is swapped out by tests that need deterministic ids.
var now = time.Now

// Shop wires the persisted collections, the session and the
// notification fan-out into one operations surface.
type Shop struct {
	store    *store.Store
	session  *session.Session
	notifier *notify.Notifier
}

// New builds a Shop. notifier may be nil when no one listens.
func New(s *store.Store, sess *session.Session, n *notify.Notifier) *Shop {
	return &Shop{store: s, session: sess, notifier: n}
}

// newID derives a unique id from the current time, milliseconds since
// the epoch. Uniqueness holds because operations are single-writer and
// human-paced.
func newID() int64 {
	return now().UnixMilli()
}

func (s *Shop) notify(msg string) {
	s.notifier.Notify(msg)
}

// ─────────────────────────────────────────────
// Read side
// ─────────────────────────────────────────────

// Users returns all registered users.
func (s *Shop) Users() []models.User { return s.store.Users.Load() }

// Products returns the current catalog.
func (s *Shop) Products() []models.Product { return s.store.Products.Load() }

// CartItems returns the current cart lines.
func (s *Shop) CartItems() []models.CartItem { return s.store.Cart.Load() }

// CurrentUser returns the logged-in user, if any.
func (s *Shop) CurrentUser() (models.User, bool) { return s.session.User() }
