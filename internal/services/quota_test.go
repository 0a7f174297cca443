package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/domain"
	portsmocks "github.com/contentply/contentply/internal/ports/mocks"
)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var october2026 = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func TestQuotaService_FirstUseCreatesRecord(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	svc := NewQuotaService(store, keys, 20, WithQuotaClock(clockAt(october2026)))

	ok, err := svc.CheckAndValidate(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"used":0,"total":20,"month":9,"year":2026}`, store.raw(keys.Usage))
}

func TestQuotaService_RolloverOnNewMonth(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	require.NoError(t, store.Put(context.Background(), keys.Usage, []byte(`{"used":20,"total":20,"month":8,"year":2026}`)))
	svc := NewQuotaService(store, keys, 20, WithQuotaClock(clockAt(october2026)))

	ok, err := svc.CheckAndValidate(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.QuotaSnapshot{PeriodMonth: 9, PeriodYear: 2026, Remaining: 20, Total: 20}, snapshot)
	assert.JSONEq(t, `{"used":0,"total":20,"month":9,"year":2026}`, store.raw(keys.Usage))
}

func TestQuotaService_ExhaustedQuota(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	require.NoError(t, store.Put(context.Background(), keys.Usage, []byte(`{"used":20,"total":20,"month":9,"year":2026}`)))
	svc := NewQuotaService(store, keys, 20, WithQuotaClock(clockAt(october2026)))

	ok, err := svc.CheckAndValidate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	remaining, err := svc.Decrement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.JSONEq(t, `{"used":20,"total":20,"month":9,"year":2026}`, store.raw(keys.Usage))
}

func TestQuotaService_DecrementPersistsAndNotifies(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	svc := NewQuotaService(store, keys, 3, WithQuotaClock(clockAt(october2026)))

	var snapshots []domain.QuotaSnapshot
	svc.Subscribe(func(s domain.QuotaSnapshot) { snapshots = append(snapshots, s) })

	remaining, err := svc.Decrement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	remaining, err = svc.Remaining(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	require.Len(t, snapshots, 1)
	assert.Equal(t, 1, snapshots[0].Used)
	assert.Equal(t, 2, snapshots[0].Remaining)
}

func TestQuotaService_UnsubscribeStopsNotifications(t *testing.T) {
	svc := NewQuotaService(newMemoryStore(), config.DefaultStorageKeys(), 3, WithQuotaClock(clockAt(october2026)))
	ctx := context.Background()

	calls := 0
	unsubscribe := svc.Subscribe(func(domain.QuotaSnapshot) { calls++ })

	_, err := svc.Decrement(ctx)
	require.NoError(t, err)
	unsubscribe()
	_, err = svc.Decrement(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestQuotaService_NeverExceedsTotal(t *testing.T) {
	svc := NewQuotaService(newMemoryStore(), config.DefaultStorageKeys(), 2, WithQuotaClock(clockAt(october2026)))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Decrement(ctx)
		require.NoError(t, err)
	}

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Used)
	assert.Equal(t, 0, snapshot.Remaining)
}

func TestQuotaService_ConfiguredLimitWins(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	require.NoError(t, store.Put(context.Background(), keys.Usage, []byte(`{"used":5,"total":20,"month":9,"year":2026}`)))
	svc := NewQuotaService(store, keys, 50, WithQuotaClock(clockAt(october2026)))

	remaining, err := svc.Remaining(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 45, remaining)
	assert.Equal(t, 50, svc.Limit())
}

func TestQuotaService_CorruptRecordIsReplaced(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	require.NoError(t, store.Put(context.Background(), keys.Usage, []byte(`not json`)))
	svc := NewQuotaService(store, keys, 20, WithQuotaClock(clockAt(october2026)))

	ok, err := svc.CheckAndValidate(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"used":0,"total":20,"month":9,"year":2026}`, store.raw(keys.Usage))
}

func TestQuotaService_StorageErrors(t *testing.T) {
	keys := config.DefaultStorageKeys()

	t.Run("read failure", func(t *testing.T) {
		store := portsmocks.NewMockStateStore(t)
		store.EXPECT().Get(mock.Anything, keys.Usage).Return(nil, errors.New("disk I/O error"))
		svc := NewQuotaService(store, keys, 20)

		ok, err := svc.CheckAndValidate(context.Background())

		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("write failure", func(t *testing.T) {
		store := portsmocks.NewMockStateStore(t)
		store.EXPECT().Get(mock.Anything, keys.Usage).Return([]byte(`{"used":1,"total":20,"month":9,"year":2026}`), nil)
		store.EXPECT().Put(mock.Anything, keys.Usage, mock.Anything).Return(errors.New("readonly database"))
		svc := NewQuotaService(store, keys, 20, WithQuotaClock(clockAt(october2026)))

		_, err := svc.Decrement(context.Background())

		assert.ErrorContains(t, err, "failed to persist quota")
	})
}

func TestQuotaService_IdentityToken(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	svc := NewQuotaService(store, keys, 20)
	ctx := context.Background()

	token, err := svc.IdentityToken(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "ck_"))
	assert.Len(t, token, 35)

	again, err := svc.IdentityToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, again)

	reopened := NewQuotaService(store, keys, 20)
	fromDisk, err := reopened.IdentityToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, fromDisk)
}

func TestQuotaService_IdentityTokenKeepsExistingValue(t *testing.T) {
	store := newMemoryStore()
	keys := config.DefaultStorageKeys()
	require.NoError(t, store.Put(context.Background(), keys.IdentityToken, []byte(`"ck_legacy123"`)))

	token, err := NewQuotaService(store, keys, 20).IdentityToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ck_legacy123", token)
}
