package models

// User is a registered shopper. Users are append-only: once created they
// are never updated or deleted by the data layer.
//
// Passwords are stored and compared in plaintext. Acceptable for a
// local demo only; do not reuse this model anywhere credentials matter.
type User struct {
	ID       int64  `json:"id"` // creation timestamp in ms, unique
	Name     string `json:"name"`
	Email    string `json:"email"` // unique, case-sensitive as stored
	Password string `json:"password"`
}

// RegisterInput carries the registration form fields. Only the password
// is validated here: any name or email string is accepted, and email
// uniqueness is checked against the stored users at register time.
type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"              validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}
