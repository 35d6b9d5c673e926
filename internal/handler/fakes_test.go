package handler

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuebook/internal/model"
)

// memUsers is an in-memory UserRepository.
type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[uuid.UUID]model.User{}} }

func (r *memUsers) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsers) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsers) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUsers) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.User, error) {
	r.mu.Lock()
	u, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["full_name"].(string); ok {
		u.FullName = v
	}
	r.users[id] = u
	r.mu.Unlock()
	return r.FindByID(ctx, id)
}

func (r *memUsers) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

// memBookings is an in-memory BookingRepository.
type memBookings struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (r *memBookings) Create(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bookings = append([]model.Booking{*b}, r.bookings...)
	return nil
}

func (r *memBookings) List(_ context.Context) ([]model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Booking{}, r.bookings...), nil
}

func (r *memBookings) Update(_ context.Context, id uuid.UUID, _ map[string]interface{}) (*model.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memBookings) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// memContacts is an in-memory ContactRepository.
type memContacts struct {
	mu       sync.Mutex
	contacts []model.Contact
}

func (r *memContacts) Create(_ context.Context, c *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.New()
	r.contacts = append(r.contacts, *c)
	return nil
}

func (r *memContacts) List(_ context.Context) ([]model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Contact{}, r.contacts...), nil
}

func (r *memContacts) Update(_ context.Context, _ uuid.UUID, _ map[string]interface{}) (*model.Contact, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memContacts) Delete(_ context.Context, _ uuid.UUID) error {
	return gorm.ErrRecordNotFound
}

func (r *memContacts) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contacts)
}

// memGallery is an in-memory GalleryRepository.
type memGallery struct {
	mu     sync.Mutex
	images []model.GalleryImage
	writes int
}

func (r *memGallery) Create(_ context.Context, img *model.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	img.ID = uuid.New()
	r.images = append(r.images, *img)
	return nil
}

func (r *memGallery) Save(_ context.Context, _ *model.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	return nil
}

func (r *memGallery) FindByID(_ context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, img := range r.images {
		if img.ID == id {
			img := img
			return &img, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memGallery) FindBySrc(_ context.Context, _ string) (*model.GalleryImage, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memGallery) List(_ context.Context) ([]model.GalleryImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.GalleryImage{}, r.images...), nil
}

func (r *memGallery) ListSrcs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []string{}
	for _, img := range r.images {
		out = append(out, img.Src)
	}
	return out, nil
}

func (r *memGallery) Update(_ context.Context, _ uuid.UUID, _ map[string]interface{}) (*model.GalleryImage, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memGallery) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, img := range r.images {
		if img.ID == id {
			r.writes++
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memGallery) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}
