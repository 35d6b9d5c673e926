package auditlog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKey is the Redis list holding admin actions.
	DefaultKey = "audit:admin"
	// DefaultMax is how many entries are kept.
	DefaultMax = 1000
	// DefaultRetention expires the whole list when nothing is written for this long.
	DefaultRetention = 7 * 24 * time.Hour
)

// Entry is one admin action, stored in Redis as JSON.
type Entry struct {
	Action string            `json:"action"`
	Actor  string            `json:"actor"`
	Time   string            `json:"time"`
	Meta   map[string]string `json:"meta,omitempty"`
}

// Recorder is what services use to leave an audit trail.
type Recorder interface {
	Record(ctx context.Context, action, actor string, meta map[string]string)
	Recent(ctx context.Context, n int64) ([]Entry, error)
}

// Logger pushes entries to a Redis LIST and trims it to a max length.
// A nil Logger or nil client is a no-op.
type Logger struct {
	rdb       *redis.Client
	key       string
	max       int64
	retention time.Duration
	now       func() time.Time
}

var _ Recorder = (*Logger)(nil)

// New creates an audit logger backed by the given Redis list.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// Record pushes an entry: LPUSH, then LTRIM, then EXPIRE. Redis errors are ignored.
func (l *Logger) Record(ctx context.Context, action, actor string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	b, err := json.Marshal(Entry{
		Action: action,
		Actor:  actor,
		Time:   l.now().UTC().Format(time.RFC3339),
		Meta:   meta,
	})
	if err != nil {
		return
	}
	pipe := l.rdb.TxPipeline()
	pipe.LPush(ctx, l.key, b)
	pipe.LTrim(ctx, l.key, 0, l.max-1)
	if l.retention > 0 {
		pipe.Expire(ctx, l.key, l.retention)
	}
	_, _ = pipe.Exec(ctx)
}

// Recent returns up to n newest entries. An unreachable Redis reads as an empty log.
func (l *Logger) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if l == nil || l.rdb == nil || n <= 0 {
		return []Entry{}, nil
	}
	raw, err := l.rdb.LRange(ctx, l.key, 0, n-1).Result()
	if err != nil {
		log.Printf("[audit] read %s: %v", l.key, err)
		return []Entry{}, nil
	}
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		var e Entry
		if json.Unmarshal([]byte(r), &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
