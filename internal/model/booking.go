package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatusPending is the status of a booking request awaiting confirmation.
const BookingStatusPending = "pending"

// Booking is an event reservation request made by a logged-in user.
// UserID is a plain lookup key: there is no foreign key, so removing the
// user leaves the booking in place.
type Booking struct {
	ID                 uuid.UUID   `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID             uuid.UUID   `json:"userId" gorm:"type:char(36);not null;index"`
	Name               string      `json:"name" gorm:"size:255;not null"`
	Email              string      `json:"email" gorm:"size:255;not null"`
	Phone              string      `json:"phone" gorm:"size:50;not null"`
	EventDate          time.Time   `json:"eventDate" gorm:"type:date;not null;index"`
	EventTime          string      `json:"eventTime" gorm:"size:20;not null"`
	EventType          string      `json:"eventType" gorm:"size:100;not null"`
	GuestCount         int         `json:"guestCount" gorm:"not null"`
	PackageType        string      `json:"packageType" gorm:"size:100;not null"`
	AdditionalServices ServiceList `json:"additionalServices" gorm:"type:text"`
	Message            string      `json:"message,omitempty" gorm:"type:text"`
	Status             string      `json:"status" gorm:"size:20;not null;default:'pending'"`
	BookingDate        time.Time   `json:"bookingDate" gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// BookingOwner is the subset of a User shown next to a booking in admin views.
type BookingOwner struct {
	ID       uuid.UUID `json:"_id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Deleted  bool      `json:"deleted,omitempty"`
}

// DeletedOwnerName is displayed in place of an owner that no longer exists.
const DeletedOwnerName = "user deleted"

// BookingWithOwner pairs a booking with its resolved owner.
type BookingWithOwner struct {
	Booking
	User BookingOwner `json:"user"`
}

// ServiceList is the set of add-on services on a booking, stored as a JSON array.
type ServiceList []string

// Value implements driver.Valuer.
func (l ServiceList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *ServiceList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = ServiceList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan ServiceList: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*l = ServiceList{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}
