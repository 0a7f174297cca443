package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentply/contentply/internal/domain"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	value, err := store.Get(context.Background(), "contentply_usage")

	assert.ErrorIs(t, err, domain.ErrStateNotFound)
	assert.Nil(t, value)
}

func TestSQLiteStore_PutThenGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "contentply_stats", []byte(`{"total":1,"posts":25,"hours":2}`)))

	value, err := store.Get(ctx, "contentply_stats")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":1,"posts":25,"hours":2}`, string(value))
}

func TestSQLiteStore_PutOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "n8n_webhook_url", []byte(`"https://a.example.com"`)))
	require.NoError(t, store.Put(ctx, "n8n_webhook_url", []byte(`"https://b.example.com"`)))

	value, err := store.Get(ctx, "n8n_webhook_url")
	require.NoError(t, err)
	assert.Equal(t, `"https://b.example.com"`, string(value))

	var count int64
	require.NoError(t, store.db.Model(&StateEntryModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "contentply_api_key", []byte(`"ck_abc"`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(ctx, "contentply_api_key")
	require.NoError(t, err)
	assert.Equal(t, `"ck_abc"`, string(value))
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			if attempts < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 5)

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		attempts := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			attempts++
			return boom
		}, 5)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		assert.EqualError(t, err, "operation failed after 2 retries")
	})
}
