// Package translate wraps the chamber's remote text-translation endpoint.
// Requests are authenticated with a bearer token fetched from the session
// provider on every call; failures surface as *Error so callers can degrade
// per field instead of aborting a whole edit session.
package translate

import (
	"context"
	"errors"
	"fmt"
)

// Language is a translation target. Portuguese is always the source.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

// FieldType hints the remote model about the register of the text.
type FieldType string

const (
	FieldTitle   FieldType = "title"
	FieldExcerpt FieldType = "excerpt"
	FieldContent FieldType = "content"
)

// Request carries one text fragment to translate.
type Request struct {
	Text           string
	TargetLanguage Language
	FieldType      FieldType
}

// Client translates a text fragment into the target language.
type Client interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// ErrNotAuthenticated reports a missing session; translation requires a
// signed-in admin.
var ErrNotAuthenticated = errors.New("translate: not authenticated")

// Error wraps a failed translation call with the language and field that
// triggered it.
type Error struct {
	Lang  Language
	Field FieldType
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translate: %s/%s: %v", e.Lang, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Func adapts a plain function to the Client interface, the usual shape for
// deterministic stub translators in tests.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Translate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
