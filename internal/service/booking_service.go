package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"venuebook/internal/auditlog"
	"venuebook/internal/model"
	"venuebook/internal/repository"
)

// ErrInvalidEventDate is returned when the event date cannot be parsed.
var ErrInvalidEventDate = errors.New("invalid event date")

var eventDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"}

// ParseEventDate accepts a calendar date as sent by a date picker, or a full timestamp.
func ParseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidEventDate
}

// BookingInput carries a booking request made by a logged-in user.
type BookingInput struct {
	Name               string
	Email              string
	Phone              string
	EventDate          time.Time
	EventTime          string
	EventType          string
	GuestCount         int
	PackageType        string
	AdditionalServices []string
	Message            string
}

// BookingUpdate holds the fields an admin may change on a booking.
type BookingUpdate struct {
	Name               *string   `json:"name" validate:"omitempty,min=1"`
	Email              *string   `json:"email" validate:"omitempty,email"`
	Phone              *string   `json:"phone" validate:"omitempty,min=1"`
	EventDate          *string   `json:"eventDate"`
	EventTime          *string   `json:"eventTime" validate:"omitempty,min=1"`
	EventType          *string   `json:"eventType" validate:"omitempty,min=1"`
	GuestCount         *int      `json:"guestCount" validate:"omitempty,gt=0"`
	PackageType        *string   `json:"packageType" validate:"omitempty,min=1"`
	AdditionalServices *[]string `json:"additionalServices"`
	Message            *string   `json:"message"`
	Status             *string   `json:"status" validate:"omitempty,min=1"`
}

func (u BookingUpdate) columns() (map[string]interface{}, error) {
	cols := map[string]interface{}{}
	setString(cols, "name", u.Name)
	setString(cols, "email", u.Email)
	setString(cols, "phone", u.Phone)
	setString(cols, "event_time", u.EventTime)
	setString(cols, "event_type", u.EventType)
	setString(cols, "package_type", u.PackageType)
	setString(cols, "message", u.Message)
	setString(cols, "status", u.Status)
	if u.EventDate != nil {
		date, err := ParseEventDate(*u.EventDate)
		if err != nil {
			return nil, err
		}
		cols["event_date"] = date
	}
	if u.GuestCount != nil {
		cols["guest_count"] = *u.GuestCount
	}
	if u.AdditionalServices != nil {
		cols["additional_services"] = model.ServiceList(*u.AdditionalServices)
	}
	return cols, nil
}

// BookingService handles booking requests.
type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, in BookingInput) (*model.Booking, decimal.Decimal, error)
	List(ctx context.Context) ([]model.BookingWithOwner, error)
	Update(ctx context.Context, actor string, id uuid.UUID, in BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type bookingService struct {
	bookings repository.BookingRepository
	users    repository.UserRepository
	pricing  *Pricing
	audit    auditlog.Recorder
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository, users repository.UserRepository, pricing *Pricing, audit auditlog.Recorder) BookingService {
	return &bookingService{bookings: bookings, users: users, pricing: pricing, audit: audit}
}

// Create stores a pending booking for the user and returns it with a price estimate.
// Overlapping dates are accepted.
func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, in BookingInput) (*model.Booking, decimal.Decimal, error) {
	services := in.AdditionalServices
	if services == nil {
		services = []string{}
	}
	booking := &model.Booking{
		UserID:             userID,
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		EventDate:          in.EventDate,
		EventTime:          strings.TrimSpace(in.EventTime),
		EventType:          strings.TrimSpace(in.EventType),
		GuestCount:         in.GuestCount,
		PackageType:        strings.TrimSpace(in.PackageType),
		AdditionalServices: services,
		Message:            in.Message,
		Status:             model.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, decimal.Zero, wrap("create booking", err)
	}
	return booking, s.pricing.Estimate(booking.PackageType, booking.AdditionalServices), nil
}

// List returns every booking newest first with its owner resolved in one lookup.
// Owners that no longer exist are reported as deleted.
func (s *bookingService) List(ctx context.Context) ([]model.BookingWithOwner, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, wrap("list bookings", err)
	}

	seen := make(map[uuid.UUID]bool, len(bookings))
	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		if !seen[b.UserID] {
			seen[b.UserID] = true
			ids = append(ids, b.UserID)
		}
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, wrap("resolve booking owners", err)
	}
	owners := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		owners[u.ID] = u
	}

	out := make([]model.BookingWithOwner, 0, len(bookings))
	for _, b := range bookings {
		row := model.BookingWithOwner{Booking: b}
		if u, ok := owners[b.UserID]; ok {
			row.User = model.BookingOwner{ID: u.ID, FullName: u.FullName, Email: u.Email}
		} else {
			row.User = model.BookingOwner{ID: b.UserID, FullName: model.DeletedOwnerName, Deleted: true}
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *bookingService) Update(ctx context.Context, actor string, id uuid.UUID, in BookingUpdate) (*model.Booking, error) {
	cols, err := in.columns()
	if err != nil {
		return nil, err
	}
	booking, err := s.bookings.Update(ctx, id, cols)
	if err != nil {
		return nil, wrap("update booking", err)
	}
	s.audit.Record(ctx, "booking.update", actor, map[string]string{"id": id.String()})
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return wrap("delete booking", err)
	}
	s.audit.Record(ctx, "booking.delete", actor, map[string]string{"id": id.String()})
	return nil
}
