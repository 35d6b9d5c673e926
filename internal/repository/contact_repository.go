package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuebook/internal/model"
)

// ContactRepository defines contact inquiry persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	crud[model.Contact]
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{crud: crud[model.Contact]{db: db, order: "submitted_at desc"}}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.create(ctx, contact)
}

func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	return r.list(ctx)
}

func (r *contactRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Contact, error) {
	return r.update(ctx, id, updates)
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
