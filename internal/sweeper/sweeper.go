package sweeper

import (
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/robfig/cron/v3"

	"venuebook/internal/storage"
)

// runTimeout bounds a single sweep.
const runTimeout = 4 * time.Minute

// SrcLister lists the src of every registered gallery image.
type SrcLister interface {
	ListSrcs(ctx context.Context) ([]string, error)
}

// Sweeper deletes uploaded files that no gallery image references once they
// are older than the grace period.
type Sweeper struct {
	images   SrcLister
	store    storage.ImageStore
	schedule string
	grace    time.Duration
	now      func() time.Time
	cron     *cron.Cron
}

// New creates a sweeper. It does nothing until Start is called.
func New(images SrcLister, store storage.ImageStore, schedule string, grace time.Duration) *Sweeper {
	return &Sweeper{
		images:   images,
		store:    store,
		schedule: schedule,
		grace:    grace,
		now:      time.Now,
	}
}

// Start schedules the sweep. Overlapping runs are skipped.
func (s *Sweeper) Start() error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			log.Printf("[sweeper] run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sweeper %q: %w", s.schedule, err)
	}
	s.cron = c
	c.Start()
	log.Printf("[sweeper] started schedule=%q grace=%s", s.schedule, s.grace)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce performs a single sweep and returns how many files were removed.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	srcs, err := s.images.ListSrcs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list gallery srcs: %w", err)
	}
	referenced := make(map[string]bool, len(srcs))
	for _, src := range srcs {
		referenced[path.Base(src)] = true
	}

	files, err := s.store.List()
	if err != nil {
		return 0, fmt.Errorf("list uploads: %w", err)
	}

	threshold := s.now().Add(-s.grace)
	removed := 0
	for _, f := range files {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if referenced[f.Name] || f.ModTime.After(threshold) {
			continue
		}
		if err := s.store.Remove(f.Path); err != nil {
			log.Printf("[sweeper] remove %s: %v", f.Path, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Printf("[sweeper] removed %d orphaned uploads of %d", removed, len(files))
	}
	return removed, nil
}
