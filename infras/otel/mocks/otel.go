// Package mocks provides a tracer that does nothing, for tests.
package mocks

import (
	"context"
	"slices"
	"sync"

	"grandhotel/infras/otel"
)

type otelImpl struct{}

func NewOtel() otel.Otel {
	return otelImpl{}
}

func (otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

type scopeImpl struct{}

func NewScope() otel.Scope {
	return scopeImpl{}
}

func (scopeImpl) End() {}
func (scopeImpl) TraceError(error) {}
func (scopeImpl) TraceIfError(error) {}
func (scopeImpl) AddEvent(string) {}
func (scopeImpl) SetAttribute(string, any) {}
func (scopeImpl) SetAttributes(map[string]any) {}

// Recorder is a tracer that keeps every error traced on its scopes.
type Recorder struct {
	mu     sync.Mutex
	errors []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, recordingScope{recorder: r}
}

// Errors returns the traced errors in order.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.errors)
}

type recordingScope struct {
	scopeImpl
	recorder *Recorder
}

func (s recordingScope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.recorder.errors = append(s.recorder.errors, err)
}

func (s recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
