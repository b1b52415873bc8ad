package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/session"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
)

func TestEmptySession(t *testing.T) {
	s := session.New(blob.NewMemoryStore())

	_, ok := s.User()
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())
}

func TestSetUserStoresFullRecord(t *testing.T) {
	s := session.New(blob.NewMemoryStore())

	in := models.User{ID: 7, Name: "Ada", Email: "ada@example.com", Password: "hunter22"}
	require.NoError(t, s.SetUser(in))

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, in, got)
	assert.True(t, s.LoggedIn())
}

func TestSetUserReplacesPrevious(t *testing.T) {
	s := session.New(blob.NewMemoryStore())

	require.NoError(t, s.SetUser(models.User{ID: 1, Email: "first@example.com"}))
	require.NoError(t, s.SetUser(models.User{ID: 2, Email: "second@example.com"}))

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}

func TestClear(t *testing.T) {
	s := session.New(blob.NewMemoryStore())
	require.NoError(t, s.SetUser(models.User{ID: 1}))

	s.Clear()
	assert.False(t, s.LoggedIn())

	// clearing again is harmless
	s.Clear()
	assert.False(t, s.LoggedIn())
}
