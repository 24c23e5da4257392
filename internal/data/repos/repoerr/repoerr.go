// Package repoerr defines the error kinds repositories return. The
// HTTP layer maps them onto status codes and never sees raw backend
// errors.
package repoerr

import (
	"errors"
	"fmt"
)

// NotFoundError reports that no resource exists for the requested id.
type NotFoundError struct {
	ID int32
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("not found (id: %d)", e.ID) }

// DuplicateError reports that a create would violate a uniqueness
// constraint. ID is the id of the resource that already exists.
type DuplicateError struct {
	ID int32
}

func (e *DuplicateError) Error() string { return fmt.Sprintf("duplicate data (id: %d)", e.ID) }

// UnexpectedError wraps a backend failure that maps to no other kind.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return fmt.Sprintf("unexpected error: [%v]", e.Err) }
func (e *UnexpectedError) Unwrap() error { return e.Err }

func NotFound(id int32) error    { return &NotFoundError{ID: id} }
func Duplicate(id int32) error   { return &DuplicateError{ID: id} }
func Unexpected(err error) error { return &UnexpectedError{Err: err} }

// Wrap classifies err as Unexpected unless it already carries one of
// the repository error kinds.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	var dup *DuplicateError
	var unx *UnexpectedError
	if errors.As(err, &nf) || errors.As(err, &dup) || errors.As(err, &unx) {
		return err
	}
	return Unexpected(err)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}
