package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuebook/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	List(ctx context.Context) ([]model.Booking, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	crud[model.Booking]
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{crud: crud[model.Booking]{db: db, order: "booking_date desc"}}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.create(ctx, booking)
}

func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx)
}

func (r *bookingRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Booking, error) {
	return r.update(ctx, id, updates)
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
