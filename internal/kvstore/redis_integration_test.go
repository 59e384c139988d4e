package kvstore

import (
	"testing"
	"time"

	pkgtesting "github.com/2beens/gymroutines/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, rdb := pkgtesting.GetRedisClientAndCtx(t)
	store := NewRedisStore(rdb)

	key := "gymroutines-test-" + t.Name()
	t.Cleanup(func() {
		rdb.Del(ctx, key)
	})

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, key, []byte(`{"name":"Ana"}`)))
	value, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana"}`, string(value))

	ttl, err := rdb.TTL(ctx, key).Result()
	require.NoError(t, err)
	// negative: the key has no expiry
	assert.Less(t, ttl, time.Duration(0))
}
