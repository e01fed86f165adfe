package session

import (
	"context"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
)

type sessionKey struct{}

func WithSession(ctx context.Context, s entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session bound to ctx by the auth middleware.
func FromContext(ctx context.Context) (entities.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(entities.Session)
	return s, ok
}

// Require is FromContext that fails with ErrUnauthenticated.
func Require(ctx context.Context) (entities.Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return entities.Session{}, entities.ErrUnauthenticated
	}
	return s, nil
}
