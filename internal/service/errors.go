package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "venuebook/internal/errors"
)

// wrap turns gorm's not-found into the domain error and annotates everything else.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
