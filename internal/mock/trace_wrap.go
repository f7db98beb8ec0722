package mock

import (
	"go.opentelemetry.io/otel/trace/embedded"

	"go.uber.org/mock/gomock"
)

// WrappedMockSpan adds embedded.Span to the gomock stub for
// trace.Span, as the interface contains private methods.
type WrappedMockSpan struct {
	embedded.Span
	*BareMockSpan
}

// NewMockSpan creates a new gomock stub for trace.Span.
func NewMockSpan(ctrl *gomock.Controller) *WrappedMockSpan {
	return &WrappedMockSpan{
		BareMockSpan: NewBareMockSpan(ctrl),
	}
}

// WrappedMockTracer adds embedded.Tracer to the gomock stub for
// trace.Tracer.
type WrappedMockTracer struct {
	embedded.Tracer
	*BareMockTracer
}

// NewMockTracer creates a new gomock stub for trace.Tracer.
func NewMockTracer(ctrl *gomock.Controller) *WrappedMockTracer {
	return &WrappedMockTracer{
		BareMockTracer: NewBareMockTracer(ctrl),
	}
}

// WrappedMockTracerProvider adds embedded.TracerProvider to the gomock
// stub for trace.TracerProvider.
type WrappedMockTracerProvider struct {
	embedded.TracerProvider
	*BareMockTracerProvider
}

// NewMockTracerProvider creates a new gomock stub for
// trace.TracerProvider.
func NewMockTracerProvider(ctrl *gomock.Controller) *WrappedMockTracerProvider {
	return &WrappedMockTracerProvider{
		BareMockTracerProvider: NewBareMockTracerProvider(ctrl),
	}
}
