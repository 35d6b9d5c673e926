package sweeper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/storage"
)

type staticSrcs struct {
	srcs []string
	err  error
}

func (s staticSrcs) ListSrcs(context.Context) ([]string, error) { return s.srcs, s.err }

func writeUpload(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("img"), 0o644))
	mod := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(p, mod, mod))
}

func TestSweeper_RunOnce(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/uploads", 1<<20)
	require.NoError(t, err)

	writeUpload(t, dir, "galleryImage-1-referenced.png", 48*time.Hour)
	writeUpload(t, dir, "galleryImage-2-orphan.png", 48*time.Hour)
	writeUpload(t, dir, "galleryImage-3-fresh.png", time.Minute)
	writeUpload(t, dir, "galleryImage-4-absolute.jpg", 48*time.Hour)

	images := staticSrcs{srcs: []string{
		"/uploads/galleryImage-1-referenced.png",
		"http://localhost:5000/uploads/galleryImage-4-absolute.jpg",
		"https://cdn.example.com/other.jpg",
	}}
	s := New(images, store, "@every 1h", 24*time.Hour)

	removed, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, filepath.Join(dir, "galleryImage-2-orphan.png"))
	assert.FileExists(t, filepath.Join(dir, "galleryImage-1-referenced.png"))
	assert.FileExists(t, filepath.Join(dir, "galleryImage-3-fresh.png"))
	assert.FileExists(t, filepath.Join(dir, "galleryImage-4-absolute.jpg"))
}

func TestSweeper_RunOnce_ListFailureRemovesNothing(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/uploads", 1<<20)
	require.NoError(t, err)
	writeUpload(t, dir, "galleryImage-2-orphan.png", 48*time.Hour)

	s := New(staticSrcs{err: errors.New("db down")}, store, "@every 1h", time.Hour)
	_, err = s.RunOnce(context.Background())
	require.Error(t, err)
	assert.FileExists(t, filepath.Join(dir, "galleryImage-2-orphan.png"))
}

func TestSweeper_Start_InvalidSchedule(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "/uploads", 1<<20)
	require.NoError(t, err)

	s := New(staticSrcs{}, store, "every now and then", time.Hour)
	assert.Error(t, s.Start())
}

func TestSweeper_StartStop(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "/uploads", 1<<20)
	require.NoError(t, err)

	s := New(staticSrcs{}, store, "@every 1h", time.Hour)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
