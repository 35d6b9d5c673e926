package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuebook/internal/auditlog"
	"venuebook/internal/cache"
	"venuebook/internal/model"
	"venuebook/internal/repository"
	"venuebook/internal/storage"
)

const (
	galleryCacheKey = "gallery:all"
	galleryCacheTTL = 10 * time.Minute
)

// ImageInput carries gallery image metadata.
type ImageInput struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}

// ImageUpdate holds the fields an admin may change on a gallery image.
type ImageUpdate struct {
	Src      *string `json:"src" validate:"omitempty,min=1"`
	Alt      *string `json:"alt" validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,min=1"`
}

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// SeedResult counts what a seed run changed.
type SeedResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// GalleryService manages gallery files and their metadata.
type GalleryService interface {
	List(ctx context.Context) ([]model.GalleryImage, error)
	Upload(ctx context.Context, actor string, file Upload) (*storage.StoredFile, error)
	Add(ctx context.Context, actor string, in ImageInput) (*model.GalleryImage, error)
	UploadAndAdd(ctx context.Context, actor string, file Upload, alt, category string) (*model.GalleryImage, error)
	Update(ctx context.Context, actor string, id uuid.UUID, in ImageUpdate) (*model.GalleryImage, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
	Seed(ctx context.Context, images []ImageInput) (SeedResult, error)
}

type galleryService struct {
	repo  repository.GalleryRepository
	store storage.ImageStore
	cache *cache.Client
	audit auditlog.Recorder
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(repo repository.GalleryRepository, store storage.ImageStore, cache *cache.Client, audit auditlog.Recorder) GalleryService {
	return &galleryService{repo: repo, store: store, cache: cache, audit: audit}
}

func (s *galleryService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, galleryCacheKey)
}

// List returns every image newest first.
func (s *galleryService) List(ctx context.Context) ([]model.GalleryImage, error) {
	var cached []model.GalleryImage
	if s.cache.GetJSON(ctx, galleryCacheKey, &cached) {
		return cached, nil
	}
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrap("list gallery images", err)
	}
	s.cache.SetJSON(ctx, galleryCacheKey, images, galleryCacheTTL)
	return images, nil
}

// Upload stores the file only. The caller registers it with Add.
func (s *galleryService) Upload(ctx context.Context, actor string, file Upload) (*storage.StoredFile, error) {
	stored, err := s.store.Save(ctx, file.Filename, file.ContentType, file.Body)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "gallery.upload", actor, map[string]string{"file": stored.Path})
	return stored, nil
}

// Add registers image metadata.
func (s *galleryService) Add(ctx context.Context, actor string, in ImageInput) (*model.GalleryImage, error) {
	image := &model.GalleryImage{
		Src:      strings.TrimSpace(in.Src),
		Alt:      strings.TrimSpace(in.Alt),
		Category: strings.TrimSpace(in.Category),
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, wrap("create gallery image", err)
	}
	s.invalidate(ctx)
	s.audit.Record(ctx, "gallery.create", actor, map[string]string{"id": image.ID.String(), "src": image.Src})
	return image, nil
}

// UploadAndAdd stores the file and registers it in one step. The stored file
// is removed again when the metadata cannot be written.
func (s *galleryService) UploadAndAdd(ctx context.Context, actor string, file Upload, alt, category string) (*model.GalleryImage, error) {
	stored, err := s.store.Save(ctx, file.Filename, file.ContentType, file.Body)
	if err != nil {
		return nil, err
	}
	image, err := s.Add(ctx, actor, ImageInput{Src: stored.Path, Alt: alt, Category: category})
	if err != nil {
		if rmErr := s.store.Remove(stored.Path); rmErr != nil {
			log.Printf("[gallery] compensation failed for %s: %v", stored.Path, rmErr)
		}
		return nil, err
	}
	return image, nil
}

func (s *galleryService) Update(ctx context.Context, actor string, id uuid.UUID, in ImageUpdate) (*model.GalleryImage, error) {
	cols := map[string]interface{}{}
	setString(cols, "src", in.Src)
	setString(cols, "alt", in.Alt)
	setString(cols, "category", in.Category)

	image, err := s.repo.Update(ctx, id, cols)
	if err != nil {
		return nil, wrap("update gallery image", err)
	}
	s.invalidate(ctx)
	s.audit.Record(ctx, "gallery.update", actor, map[string]string{"id": id.String()})
	return image, nil
}

// Delete removes the record and, when the image lives in the upload store, its file.
func (s *galleryService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return wrap("find gallery image", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap("delete gallery image", err)
	}
	s.invalidate(ctx)

	if s.store.Owns(image.Src) {
		if err := s.store.Remove(image.Src); err != nil {
			log.Printf("[gallery] remove file %s: %v", image.Src, err)
		}
	}
	s.audit.Record(ctx, "gallery.delete", actor, map[string]string{"id": id.String(), "src": image.Src})
	return nil
}

// Seed creates or updates images keyed by src.
func (s *galleryService) Seed(ctx context.Context, images []ImageInput) (SeedResult, error) {
	var res SeedResult
	for _, in := range images {
		src := strings.TrimSpace(in.Src)
		if src == "" || strings.TrimSpace(in.Alt) == "" || strings.TrimSpace(in.Category) == "" {
			log.Printf("[seed] skipping incomplete gallery entry %q", src)
			continue
		}

		existing, err := s.repo.FindBySrc(ctx, src)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("seed image %s: %w", src, err)
		}

		if existing != nil {
			existing.Alt = strings.TrimSpace(in.Alt)
			existing.Category = strings.TrimSpace(in.Category)
			if err := s.repo.Save(ctx, existing); err != nil {
				return res, fmt.Errorf("update image %s: %w", src, err)
			}
			res.Updated++
		} else {
			image := &model.GalleryImage{Src: src, Alt: strings.TrimSpace(in.Alt), Category: strings.TrimSpace(in.Category)}
			if err := s.repo.Create(ctx, image); err != nil {
				return res, fmt.Errorf("create image %s: %w", src, err)
			}
			res.Created++
		}
	}
	s.invalidate(ctx)
	return res, nil
}
