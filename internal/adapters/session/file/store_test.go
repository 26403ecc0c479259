package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fharpR4/roomie-app/internal/domain"
)

func testSession() domain.Session {
	return domain.Session{
		Token: "opaque-token",
		Profile: domain.Profile{
			ID:        "u1",
			FullName:  "Ada Obi",
			Email:     "ada@student.edu.ng",
			Phone:     "08012345678",
			Verified:  true,
			CreatedAt: time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC),
		},
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	want := testSession()

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreLoadWithoutTokenSignalsNoSession(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreEmptyTokenCountsAsNoSession(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "token"), nil, 0o600))

	_, err := NewStore(root).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreCorruptSnapshotFailsLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "token"), []byte("tok"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "profile.toml"), []byte("not = [valid"), 0o600))

	_, err := NewStore(root).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionCorrupted)
}

func TestStoreMissingSnapshotWithTokenFailsLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "token"), []byte("tok"), 0o600))

	_, err := NewStore(root).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionCorrupted)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(context.Background(), testSession()))

	require.NoError(t, store.Clear(context.Background()))
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreRejectsTokenlessSave(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	err := store.Save(context.Background(), domain.Session{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a token")
}

func TestStoreFilePermissions(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "session")
	store := NewStore(root)
	require.NoError(t, store.Save(context.Background(), testSession()))

	info, err := os.Stat(filepath.Join(root, "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sessionFileMode), info.Mode().Perm())

	info, err = os.Stat(root)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(storeDirMode), info.Mode().Perm())
}
