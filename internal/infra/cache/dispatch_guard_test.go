package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClaimTTL = 5 * time.Minute
	testDedupTTL = 24 * time.Hour
)

func TestRedisDispatchGuard_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("first delivery claims the dispatch", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSetNX("dispatch:d-1", `.+`, testClaimTTL).SetVal(true)

		ok, err := NewRedisDispatchGuard(client, testClaimTTL, testDedupTTL).Acquire(ctx, "d-1")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redelivery is rejected", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSetNX("dispatch:d-1", `.+`, testClaimTTL).SetVal(false)

		ok, err := NewRedisDispatchGuard(client, testClaimTTL, testDedupTTL).Acquire(ctx, "d-1")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis failure", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSetNX("dispatch:d-1", `.+`, testClaimTTL).SetErr(errors.New("connection refused"))

		ok, err := NewRedisDispatchGuard(client, testClaimTTL, testDedupTTL).Acquire(ctx, "d-1")

		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRedisDispatchGuard_Complete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectExpire("dispatch:d-1", testDedupTTL).SetVal(true)

	err := NewRedisDispatchGuard(client, testClaimTTL, testDedupTTL).Complete(context.Background(), "d-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisDispatchGuard_Release(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel("dispatch:d-1").SetVal(1)

	err := NewRedisDispatchGuard(client, testClaimTTL, testDedupTTL).Release(context.Background(), "d-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisDispatchGuard_ClaimLifecycle(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	guard := NewRedisDispatchGuard(redis.NewClient(&redis.Options{Addr: server.Addr()}), testClaimTTL, testDedupTTL)

	t.Run("abandoned claim expires after the claim window", func(t *testing.T) {
		ok, err := guard.Acquire(ctx, "d-crash")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, testClaimTTL, server.TTL("dispatch:d-crash"))

		server.FastForward(testClaimTTL + time.Second)

		ok, err = guard.Acquire(ctx, "d-crash")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("completed dispatch is remembered for the dedup window", func(t *testing.T) {
		ok, err := guard.Acquire(ctx, "d-done")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, guard.Complete(ctx, "d-done"))
		assert.Equal(t, testDedupTTL, server.TTL("dispatch:d-done"))

		server.FastForward(testClaimTTL + time.Second)

		ok, err = guard.Acquire(ctx, "d-done")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("released claim can be taken again", func(t *testing.T) {
		ok, err := guard.Acquire(ctx, "d-retry")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, guard.Release(ctx, "d-retry"))
		assert.False(t, server.Exists("dispatch:d-retry"))

		ok, err = guard.Acquire(ctx, "d-retry")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNoopDispatchGuard(t *testing.T) {
	ok, err := noopDispatchGuard{}.Acquire(context.Background(), "d-1")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, noopDispatchGuard{}.Complete(context.Background(), "d-1"))
	assert.NoError(t, noopDispatchGuard{}.Release(context.Background(), "d-1"))
}
