package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuebook/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	crud[model.User]
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{crud: crud[model.User]{db: db, order: "created_at desc"}}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.create(ctx, user)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findByID(ctx, id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs returns the users that still exist among ids, in no particular order.
func (r *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	users := []model.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	return r.list(ctx)
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.User, error) {
	return r.update(ctx, id, updates)
}

// Delete removes only the user row; bookings keep their dangling user_id.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
