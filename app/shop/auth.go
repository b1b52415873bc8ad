package shop

import (
	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/apperr"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
	"github.com/shashiranjanraj/dukaan/pkg/metrics"
	"github.com/shashiranjanraj/dukaan/pkg/validate"
)

// Register creates a new user account. Checks run in a fixed order:
// password length, password confirmation, then email uniqueness
// (case-sensitive exact match). The caller navigates to login on
// success.
func (s *Shop) Register(input models.RegisterInput) (user models.User, err error) {
	defer func() { metrics.RecordOperation("register", err) }()

	errs := validate.Struct(input)
	if _, ok := errs["password"]; ok {
		return models.User{}, apperr.New(apperr.Validation, "Password must be at least 6 characters")
	}
	if _, ok := errs["password_confirmation"]; ok {
		return models.User{}, apperr.New(apperr.Validation, "Passwords do not match")
	}

	users := s.store.Users.Load()
	if collection.Contains(users, func(u models.User) bool { return u.Email == input.Email }) {
		return models.User{}, apperr.New(apperr.Conflict, "Email already registered")
	}

	user = models.User{
		ID:       newID(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password, // plaintext, demo only
	}
	if err := s.store.Users.Save(append(users, user)); err != nil {
		return models.User{}, apperr.Wrap(apperr.Storage, "could not save account", err)
	}

	s.notify("Registration successful! Redirecting to login...")
	return user, nil
}

// Login matches email and password exactly and, on success, copies the
// matched record into the session. One message covers both an unknown
// email and a wrong password, so login failures never reveal whether an
// account exists.
func (s *Shop) Login(email, password string) (user models.User, err error) {
	defer func() { metrics.RecordOperation("login", err) }()

	user, ok := collection.First(s.store.Users.Load(), func(u models.User) bool {
		return u.Email == email && u.Password == password
	})
	if !ok {
		return models.User{}, apperr.New(apperr.Auth, "Invalid email or password")
	}

	if err := s.session.SetUser(user); err != nil {
		return models.User{}, apperr.Wrap(apperr.Storage, "could not start session", err)
	}

	s.notify("Login successful! Redirecting...")
	return user, nil
}

// Logout clears the session unconditionally. It always succeeds, logged
// in or not.
func (s *Shop) Logout() {
	metrics.RecordOperation("logout", nil)
	s.session.Clear()
	s.notify("Logged out successfully")
}
