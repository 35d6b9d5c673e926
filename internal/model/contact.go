package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatusNew is the status of an inquiry nobody has handled yet.
const ContactStatusNew = "new"

// Contact is an inquiry submitted through the public contact form.
type Contact struct {
	ID          uuid.UUID `json:"_id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"size:255;not null"`
	Phone       string    `json:"phone,omitempty" gorm:"size:50"`
	Subject     string    `json:"subject" gorm:"size:255;not null"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'new'"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
