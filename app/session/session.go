// Package session tracks the currently logged-in user.
//
// The session is process-scoped: it lives in its own in-memory blob
// driver, separate from the persisted collections, so it vanishes when
// the process exits. Only one user can be logged in at a time.
package session

import (
	"encoding/json"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
)

const currentUserKey = "currentUser"

// Session stores the current user as a JSON blob under one fixed key.
type Session struct {
	blobs blob.Store
}

// New builds a Session over the given blob driver. Pass a fresh memory
// driver for the standard process-scoped behaviour.
func New(b blob.Store) *Session {
	return &Session{blobs: b}
}

// SetUser records u as the logged-in user, replacing any existing one.
// The full record is stored, password included.
func (s *Session) SetUser(u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.blobs.Put(currentUserKey, raw)
}

// User returns the logged-in user, if any.
func (s *Session) User() (models.User, bool) {
	raw, err := s.blobs.Get(currentUserKey)
	if err != nil {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		logger.Debug("session: malformed current user, treating as logged out", "error", err)
		return models.User{}, false
	}
	return u, true
}

// LoggedIn reports whether a user is currently logged in.
func (s *Session) LoggedIn() bool {
	_, ok := s.User()
	return ok
}

// Clear logs the current user out. Clearing an empty session is a no-op.
func (s *Session) Clear() {
	_ = s.blobs.Delete(currentUserKey)
}
