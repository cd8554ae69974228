package services

import (
	"context"
	"errors"
)

// ErrNoController is returned by FromContext when no controller was attached
// with WithController.
var ErrNoController = errors.New("session controller not provided: attach one with services.WithController")

type controllerKey struct{}

// WithController returns a copy of ctx carrying c for downstream consumers.
func WithController(ctx context.Context, c SessionController) context.Context {
	return context.WithValue(ctx, controllerKey{}, c)
}

// FromContext returns the controller attached to ctx.
func FromContext(ctx context.Context) (SessionController, error) {
	c, ok := ctx.Value(controllerKey{}).(SessionController)
	if !ok || c == nil {
		return nil, ErrNoController
	}
	return c, nil
}
