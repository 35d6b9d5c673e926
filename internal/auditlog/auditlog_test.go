package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilLoggerIsNoOp(t *testing.T) {
	var l *Logger
	ctx := context.Background()

	l.Record(ctx, "admin.login", "admin", nil)
	entries, err := l.Recent(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoggerWithoutClientIsNoOp(t *testing.T) {
	l := New(nil, DefaultKey, DefaultMax, DefaultRetention)
	ctx := context.Background()

	l.Record(ctx, "admin.login", "admin", map[string]string{"ip": "127.0.0.1"})
	entries, err := l.Recent(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecord_PushesTrimsAndExpires(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	l := New(rdb, DefaultKey, 3, time.Hour)
	fixed := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	payload, err := json.Marshal(Entry{
		Action: "gallery.delete",
		Actor:  "admin_user",
		Time:   "2025-06-14T18:00:00Z",
		Meta:   map[string]string{"id": "42"},
	})
	require.NoError(t, err)

	mock.ExpectTxPipeline()
	mock.ExpectLPush(DefaultKey, payload).SetVal(1)
	mock.ExpectLTrim(DefaultKey, 0, 2).SetVal("OK")
	mock.ExpectExpire(DefaultKey, time.Hour).SetVal(true)
	mock.ExpectTxPipelineExec()

	l.Record(context.Background(), "gallery.delete", "admin_user", map[string]string{"id": "42"})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecent_SkipsUndecodableEntries(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	l := New(rdb, DefaultKey, DefaultMax, DefaultRetention)

	mock.ExpectLRange(DefaultKey, 0, 4).SetVal([]string{
		`{"action":"admin.login","actor":"admin_user","time":"2025-06-14T18:00:00Z"}`,
		`not json`,
	})

	entries, err := l.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin.login", entries[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecent_RedisErrorReadsAsEmpty(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	l := New(rdb, DefaultKey, DefaultMax, DefaultRetention)

	mock.ExpectLRange(DefaultKey, 0, 9).SetErr(errors.New("connection reset"))

	entries, err := l.Recent(context.Background(), 10)
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRecent_UnreachableRedisReadsAsEmpty(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	l := New(rdb, DefaultKey, DefaultMax, DefaultRetention)

	entries, err := l.Recent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
