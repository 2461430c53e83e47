// Package repositories holds what the entity repositories share: the sentinel
// errors services match on and the translation from gorm/driver errors.
package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrReferenceMissing = errors.New("referenced record does not exist")
	ErrDuplicate        = errors.New("duplicate record")
)

// Translate maps the errors gorm produces with TranslateError enabled onto the
// package sentinels. Anything else is returned unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrReferenceMissing, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}

// ViewerArg turns an optional user id into a query argument; nil binds NULL.
func ViewerArg(viewerID *uint) interface{} {
	if viewerID == nil {
		return nil
	}
	return *viewerID
}
