package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/dukaan/pkg/validate"
)

type registerInput struct {
	Name                 string `json:"name"                  validate:"required"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}

type productInput struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"       validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Kashvi",
		Email:                "ada@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestMinRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Kashvi",
		Email:                "ada@example.com",
		Password:             "abc",
		PasswordConfirmation: "abc",
	})
	if _, ok := errs["password"]; !ok {
		t.Error("expected password min-length error")
	}
}

func TestConfirmedRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Kashvi",
		Email:                "ada@example.com",
		Password:             "secret123",
		PasswordConfirmation: "different",
	})
	if _, ok := errs["password_confirmation"]; !ok {
		t.Error("expected confirmation mismatch error")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestZeroPriceIsEmpty(t *testing.T) {
	// A zero price fails `required` — the storefront deliberately rejects
	// free products on create and edit.
	errs := validate.Struct(productInput{
		Name:        "USB-C Cable",
		Price:       0,
		Description: "Durable USB-C charging cable",
	})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be rejected when zero")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:        "USB-C Cable",
		Price:       14.99,
		Description: "Durable USB-C charging cable",
		Image:       "",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected empty nullable image to pass, got: %v", errs)
	}

	errs = validate.Struct(productInput{
		Name:        "USB-C Cable",
		Price:       14.99,
		Description: "Durable USB-C charging cable",
		Image:       "not a url",
	})
	if _, ok := errs["image"]; !ok {
		t.Error("expected url validation error for non-empty image")
	}
}
