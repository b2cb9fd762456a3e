package errors

import "fmt"

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrNotFound signals that a referenced entity does not exist.
type ErrNotFound struct {
	Entity string
	Key    string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// ErrDuplicate signals a uniqueness violation, e.g. an asset ticker that is
// already registered.
type ErrDuplicate struct {
	Entity string
	Key    string
}

func (e *ErrDuplicate) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Key)
}
