package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	apperrors "venuebook/internal/errors"
)

// FieldName is the multipart form field the gallery upload is read from.
const FieldName = "galleryImage"

var (
	allowedExtensions = map[string]bool{".jpeg": true, ".jpg": true, ".png": true, ".gif": true}
	allowedMIMETypes  = map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true}
)

// StoredFile describes a file written by the store.
type StoredFile struct {
	Name        string    `json:"name"`
	Path        string    `json:"filePath"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	ModTime     time.Time `json:"modTime"`
}

// ImageStore persists gallery uploads and serves them under a public path.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (*StoredFile, error)
	Remove(publicPath string) error
	Owns(publicPath string) bool
	List() ([]StoredFile, error)
}

// LocalStore keeps uploads in a directory on local disk.
type LocalStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	now       func() time.Time
}

var _ ImageStore = (*LocalStore)(nil)

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir, urlPrefix string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}, nil
}

// Dir is the directory uploads are written to.
func (s *LocalStore) Dir() string { return s.dir }

// URLPrefix is the public path prefix uploads are served under.
func (s *LocalStore) URLPrefix() string { return s.urlPrefix }

// MaxBytes is the per-file size ceiling.
func (s *LocalStore) MaxBytes() int64 { return s.maxBytes }

// Save validates the upload and writes it under a generated name.
// Extension, declared MIME type and sniffed content must all be jpeg, png or gif.
func (s *LocalStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] || !declaredTypeAllowed(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	detected := mimetype.Detect(data)
	if !allowedMIMETypes[detected.String()] {
		return nil, apperrors.ErrInvalidFileType
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := s.generateName(ext)
	if err := writeFileAtomic(filepath.Join(s.dir, name), data); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &StoredFile{
		Name:        name,
		Path:        path.Join(s.urlPrefix, name),
		Size:        int64(len(data)),
		ContentType: detected.String(),
		ModTime:     s.now(),
	}, nil
}

// Remove deletes the file behind a public path. Missing files are not an error.
func (s *LocalStore) Remove(publicPath string) error {
	if !s.Owns(publicPath) {
		return fmt.Errorf("path %q is not an upload", publicPath)
	}
	name := path.Base(publicPath)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Owns reports whether publicPath points at a file managed by this store.
func (s *LocalStore) Owns(publicPath string) bool {
	if !strings.HasPrefix(publicPath, s.urlPrefix+"/") {
		return false
	}
	name := strings.TrimPrefix(publicPath, s.urlPrefix+"/")
	return name != "" && !strings.ContainsAny(name, `/\`) && name != "." && name != ".."
}

// List returns every regular file in the upload directory.
func (s *LocalStore) List() ([]StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	files := make([]StoredFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, StoredFile{
			Name:    entry.Name(),
			Path:    path.Join(s.urlPrefix, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

func (s *LocalStore) generateName(ext string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s-%d-%s%s", FieldName, s.now().UnixMilli(), id[:8], ext)
}

func declaredTypeAllowed(contentType string) bool {
	if contentType == "" {
		return true
	}
	for _, t := range []string{"jpeg", "jpg", "png", "gif"} {
		if strings.Contains(strings.ToLower(contentType), t) {
			return true
		}
	}
	return false
}

// writeFileAtomic writes via a hidden temp file renamed into place.
func writeFileAtomic(dst string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
