package model

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is the metadata record for an image shown in the public gallery.
type GalleryImage struct {
	ID        uuid.UUID `json:"_id" gorm:"type:char(36);primaryKey"`
	Src       string    `json:"src" gorm:"size:512;not null;index"`
	Alt       string    `json:"alt" gorm:"size:255;not null"`
	Category  string    `json:"category" gorm:"size:100;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
