package blob_test

import (
	"testing"

	"github.com/shashiranjanraj/dukaan/pkg/blob"
)

func testStore(t *testing.T, s blob.Store) {
	t.Helper()

	if s.Exists("users") {
		t.Error("expected fresh store to have no users blob")
	}
	if _, err := s.Get("users"); err == nil {
		t.Error("expected Get on absent key to return an error")
	}

	payload := []byte(`[{"id":1,"name":"Wireless Headphones"}]`)
	if err := s.Put("users", payload); err != nil {
		t.Fatalf("Put returned unexpected error: %v", err)
	}
	if !s.Exists("users") {
		t.Error("expected users blob to exist after Put")
	}

	got, err := s.Get("users")
	if err != nil {
		t.Fatalf("Get returned unexpected error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("round-trip mismatch: got %s, want %s", got, payload)
	}

	// Put fully replaces prior contents.
	if err := s.Put("users", []byte(`[]`)); err != nil {
		t.Fatalf("replace Put returned unexpected error: %v", err)
	}
	got, _ = s.Get("users")
	if string(got) != `[]` {
		t.Errorf("expected replaced blob, got %s", got)
	}

	// Delete is idempotent.
	if err := s.Delete("users"); err != nil {
		t.Fatalf("Delete returned unexpected error: %v", err)
	}
	if err := s.Delete("users"); err != nil {
		t.Errorf("second Delete should be a no-op, got: %v", err)
	}
	if s.Exists("users") {
		t.Error("expected users blob to be gone after Delete")
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, blob.NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testStore(t, blob.NewLocalStore(t.TempDir()))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := blob.NewMemoryStore()
	payload := []byte(`[1,2,3]`)
	if err := s.Put("cart", payload); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slice must not reach into the store.
	payload[1] = 'X'
	got, err := s.Get("cart")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[1,2,3]` {
		t.Errorf("store leaked caller mutation: got %s", got)
	}
}

func TestRegisterAndUse(t *testing.T) {
	mem := blob.NewMemoryStore()
	blob.Register("scratch", mem)

	if blob.Use("scratch") != blob.Store(mem) {
		t.Error("Use did not return the registered store")
	}
}

func TestUseUnknownDriverPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unconfigured driver")
		}
	}()
	blob.Use("no-such-driver")
}
