package comments

import (
	"errors"
	"fmt"
)

var ErrIDRequired = errors.New("comments: comment id required")

// ValidationError reports a malformed submission.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("comments: validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a missing comment lookup.
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
