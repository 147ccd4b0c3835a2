package membership

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired     = errors.New("membership: application id required")
	ErrAlreadyDecided = errors.New("membership: application already decided")
)

// ValidationError reports a malformed application.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("membership: validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a missing application lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
