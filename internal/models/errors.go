package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a lookup term or identifier matches
// no product. Callers check it with errors.Is.
var ErrProductNotFound = errors.New("product not found")

// ConflictError reports a unique-constraint violation on title or slug.
// Detail carries the violated-constraint information from the storage
// engine so the caller can see which value collided.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("product conflict: %s", e.Detail)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
