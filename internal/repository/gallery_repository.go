package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuebook/internal/model"
)

// GalleryRepository defines gallery image metadata persistence operations.
type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	Save(ctx context.Context, image *model.GalleryImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error)
	FindBySrc(ctx context.Context, src string) (*model.GalleryImage, error)
	List(ctx context.Context) ([]model.GalleryImage, error)
	ListSrcs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.GalleryImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	crud[model.GalleryImage]
}

// NewGalleryRepository creates a new gallery repository.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{crud: crud[model.GalleryImage]{db: db, order: "created_at desc"}}
}

func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.create(ctx, image)
}

// Save updates an existing image with all of its fields.
func (r *galleryRepository) Save(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	return r.findByID(ctx, id)
}

func (r *galleryRepository) FindBySrc(ctx context.Context, src string) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.WithContext(ctx).Where("src = ?", src).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) List(ctx context.Context) ([]model.GalleryImage, error) {
	return r.list(ctx)
}

// ListSrcs returns the src of every registered image.
func (r *galleryRepository) ListSrcs(ctx context.Context) ([]string, error) {
	var srcs []string
	if err := r.db.WithContext(ctx).Model(&model.GalleryImage{}).Pluck("src", &srcs).Error; err != nil {
		return nil, err
	}
	return srcs, nil
}

func (r *galleryRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.GalleryImage, error) {
	return r.update(ctx, id, updates)
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
