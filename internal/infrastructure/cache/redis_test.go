package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "nlp:analysis:abc", []byte(`{"ents":[]}`), time.Hour))

	got, ok, err := store.Get(ctx, "nlp:analysis:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"ents":[]}`, string(got))
	assert.Equal(t, time.Hour, mr.TTL("nlp:analysis:abc"))
}

func TestRedisStore_Miss(t *testing.T) {
	store, _ := newTestRedisStore(t)

	got, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_NoTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), -time.Second))
	assert.Equal(t, time.Duration(0), mr.TTL("k"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{}
	cfg.Redis.Host = mr.Host()
	cfg.Redis.Port = mr.Port()

	client, err := NewRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}
