// Package mocks holds no-op tracing for unit tests. Spans are discarded.
package mocks

import (
	"agenda/infras/otel"
	"context"
)

type otelImpl struct{}

// NewOtel returns a tracer whose scopes record nothing.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

type scopeImpl struct{}

// NewScope returns a scope that drops events, attributes and errors.
func NewScope() otel.Scope {
	return &scopeImpl{}
}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

func (s *scopeImpl) TraceError(_ error) {}

func (s *scopeImpl) TraceIfError(_ error) {}
