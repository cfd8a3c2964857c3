package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates a unique or foreign key constraint.
	ErrConflict = errors.New("conflicts with existing data")
)

// classify maps GORM's translated constraint errors onto ErrConflict.
func classify(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
