package contact

import (
	"errors"
	"fmt"
)

var ErrIDRequired = errors.New("contact: submission id required")

// ValidationError reports a malformed submission.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact: validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a missing submission lookup.
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
