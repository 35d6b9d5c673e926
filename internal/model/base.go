package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID sets a fresh UUID when the record has none yet.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	assignID(&b.ID)
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	assignID(&g.ID)
	return nil
}
