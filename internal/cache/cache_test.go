package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsNoOp(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
	assert.Nil(t, c.Redis())

	var dst map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &dst))
}

func TestUnreachableRedisBehavesLikeMiss(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Error(t, c.Ping(ctx))
}

func TestGetJSON_HitAndMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewFromRedis(rdb)
	ctx := context.Background()

	mock.ExpectGet("user:profile:1").SetVal(`{"fullName":"Jane"}`)
	mock.ExpectGet("user:profile:2").RedisNil()

	var hit map[string]string
	assert.True(t, c.GetJSON(ctx, "user:profile:1", &hit))
	assert.Equal(t, "Jane", hit["fullName"])

	var miss map[string]string
	assert.False(t, c.GetJSON(ctx, "user:profile:2", &miss))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetJSONAndDelete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewFromRedis(rdb)
	ctx := context.Background()

	payload, err := json.Marshal([]string{"a", "b"})
	require.NoError(t, err)
	mock.ExpectSet("gallery:all", payload, 10*time.Minute).SetVal("OK")
	mock.ExpectDel("gallery:all").SetVal(1)

	c.SetJSON(ctx, "gallery:all", []string{"a", "b"}, 10*time.Minute)
	assert.NoError(t, c.Delete(ctx, "gallery:all"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
