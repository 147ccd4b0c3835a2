package interfaces

import (
	"context"
	"errors"
)

// ErrNoSession reports that no authenticated session is available for the
// current request context.
var ErrNoSession = errors.New("session: not authenticated")

// SessionProvider supplies the bearer token used to authenticate calls to
// external chamber services. Implementations wrap the host application's auth
// provider; a missing or expired session must return ErrNoSession.
type SessionProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticSession returns a provider that always yields the supplied token.
// Intended for tests and single-tenant tooling.
func StaticSession(token string) SessionProvider {
	return staticSession(token)
}

type staticSession string

func (s staticSession) AccessToken(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoSession
	}
	return string(s), nil
}
