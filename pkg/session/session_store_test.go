package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStartsAbsent(t *testing.T) {
	store := session.NewFileStore(sessionPath(t))

	_, ok := store.Get()
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	store := session.NewFileStore(sessionPath(t))
	user := &entities.User{ID: "1", Nama: "Budi", Email: "budi@example.com", Saldo: 50_000}

	require.NoError(t, store.Set(user))

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

// Snapshot must survive a process restart: a fresh store over the same file
// yields the same user.
func TestRoundTripAcrossReinit(t *testing.T) {
	path := sessionPath(t)
	user := &entities.User{ID: "1", Nama: "Budi", Email: "budi@example.com", NomorHP: "0812", Saldo: 75_000}

	first := session.NewFileStore(path)
	require.NoError(t, first.Set(user))

	second := session.NewFileStore(path)
	got, ok := second.Get()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestClearRemovesSnapshot(t *testing.T) {
	path := sessionPath(t)
	store := session.NewFileStore(path)
	require.NoError(t, store.Set(&entities.User{ID: "1"}))

	require.NoError(t, store.Clear())

	_, ok := store.Get()
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "snapshot file is gone after clear")

	// clearing an already-absent session is fine
	require.NoError(t, store.Clear())
}

func TestGetReturnsCopy(t *testing.T) {
	store := session.NewFileStore(sessionPath(t))
	require.NoError(t, store.Set(&entities.User{ID: "1", Saldo: 10_000}))

	first, _ := store.Get()
	first.Saldo = 0

	second, _ := store.Get()
	assert.Equal(t, int64(10_000), second.Saldo, "mutating a snapshot copy leaves the session alone")
}

func TestCorruptSnapshotStartsAbsent(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := session.NewFileStore(path)
	_, ok := store.Get()
	assert.False(t, ok)
}
