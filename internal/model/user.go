package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered site visitor who can place bookings.
type User struct {
	ID          uuid.UUID `json:"_id" gorm:"type:char(36);primaryKey"`
	FullName    string    `json:"fullName" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:50;not null"`
	Password    string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
