package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// crud holds the single-table operations every admin-managed resource shares.
type crud[T any] struct {
	db    *gorm.DB
	order string
}

func (r crud[T]) create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r crud[T]) findByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// list returns every row, newest first.
func (r crud[T]) list(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Order(r.order).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// update merges the given columns into the row and returns the stored result.
// It returns gorm.ErrRecordNotFound when the id does not exist.
func (r crud[T]) update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*T, error) {
	record, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.findByID(ctx, id)
}

// delete removes the row. It returns gorm.ErrRecordNotFound when nothing was deleted.
func (r crud[T]) delete(ctx context.Context, id uuid.UUID) error {
	var record T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
