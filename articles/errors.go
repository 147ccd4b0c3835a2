package articles

import (
	"errors"
	"fmt"
)

// ErrIDRequired guards lookups and deletes against the zero uuid.
var ErrIDRequired = errors.New("articles: article id required")

// ValidationError reports missing required fields before any write is
// attempted. Message carries the editor's inline banner text.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("articles: validation failed: %v", e.Err)
	}
	return "articles: validation failed"
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a missing article lookup.
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
