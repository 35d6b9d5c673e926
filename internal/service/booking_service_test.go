package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "venuebook/internal/errors"
	"venuebook/internal/model"
)

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-06-14", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), false},
		{"2025-06-14T18:00:00Z", time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC), false},
		{" 2025-06-14 ", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), false},
		{"14/06/2025", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEventDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEventDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	userID := uuid.New()
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Booking) bool {
		return b.UserID == userID && b.Status == model.BookingStatusPending && b.GuestCount == 120
	})).Return(nil)

	svc := NewBookingService(repo, new(MockUserRepository), NewPricing(DefaultCatalogue()), &recordingAudit{})
	booking, total, err := svc.Create(context.Background(), userID, BookingInput{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		Phone:              "555-0100",
		EventDate:          time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		EventTime:          "18:00",
		EventType:          "Wedding",
		GuestCount:         120,
		PackageType:        "Premium",
		AdditionalServices: []string{"DJ Service", "Photo Booth"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.True(t, decimal.NewFromInt(5250).Equal(total), "got %s", total)
	repo.AssertExpectations(t)
}

func TestBookingService_Create_NilServicesStoredEmpty(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewBookingService(repo, new(MockUserRepository), NewPricing(DefaultCatalogue()), &recordingAudit{})
	booking, _, err := svc.Create(context.Background(), uuid.New(), BookingInput{PackageType: "Essential", GuestCount: 10})
	require.NoError(t, err)
	assert.NotNil(t, booking.AdditionalServices)
	assert.Empty(t, booking.AdditionalServices)
}

func TestBookingService_List_ResolvesOwners(t *testing.T) {
	alive, gone := uuid.New(), uuid.New()
	bookings := []model.Booking{
		{ID: uuid.New(), UserID: alive, Name: "first"},
		{ID: uuid.New(), UserID: gone, Name: "orphan"},
		{ID: uuid.New(), UserID: alive, Name: "second"},
	}
	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything).Return(bookings, nil)
	users := new(MockUserRepository)
	users.On("FindByIDs", mock.Anything, []uuid.UUID{alive, gone}).
		Return([]model.User{{ID: alive, FullName: "Jane Doe", Email: "jane@example.com"}}, nil).Once()

	svc := NewBookingService(repo, users, NewPricing(DefaultCatalogue()), &recordingAudit{})
	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Jane Doe", rows[0].User.FullName)
	assert.False(t, rows[0].User.Deleted)
	assert.Equal(t, model.DeletedOwnerName, rows[1].User.FullName)
	assert.True(t, rows[1].User.Deleted)
	assert.Equal(t, "orphan", rows[1].Name)
	assert.Equal(t, "Jane Doe", rows[2].User.FullName)
	users.AssertExpectations(t)
}

func TestBookingService_Update(t *testing.T) {
	id := uuid.New()
	status := "confirmed"
	date := "2025-07-01"
	services := []string{"Live Music Band"}

	repo := new(MockBookingRepository)
	repo.On("Update", mock.Anything, id, mock.MatchedBy(func(cols map[string]interface{}) bool {
		d, ok := cols["event_date"].(time.Time)
		return cols["status"] == "confirmed" && ok && d.Day() == 1 &&
			assert.ObjectsAreEqual(model.ServiceList{"Live Music Band"}, cols["additional_services"])
	})).Return(&model.Booking{ID: id, Status: "confirmed"}, nil)
	audit := &recordingAudit{}

	svc := NewBookingService(repo, new(MockUserRepository), NewPricing(DefaultCatalogue()), audit)
	booking, err := svc.Update(context.Background(), "admin_user", id, BookingUpdate{Status: &status, EventDate: &date, AdditionalServices: &services})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, []string{"booking.update"}, audit.actions())
}

func TestBookingService_Update_BadDate(t *testing.T) {
	date := "next friday"
	repo := new(MockBookingRepository)
	svc := NewBookingService(repo, new(MockUserRepository), NewPricing(DefaultCatalogue()), &recordingAudit{})

	_, err := svc.Update(context.Background(), "admin_user", uuid.New(), BookingUpdate{EventDate: &date})
	assert.ErrorIs(t, err, ErrInvalidEventDate)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockBookingRepository)
	repo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	svc := NewBookingService(repo, new(MockUserRepository), NewPricing(DefaultCatalogue()), &recordingAudit{})
	assert.ErrorIs(t, svc.Delete(context.Background(), "admin_user", id), apperrors.ErrNotFound)
}
