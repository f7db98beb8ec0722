package allocator

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	otel_codes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracingAllocator struct {
	Allocator
	tracer trace.Tracer
}

// NewTracingAllocator is a decorator for Allocator that creates an
// OpenTelemetry trace span for every file that is allocated. Failed
// admissions are recorded on the span.
//
// Allocations are not tied to a request context, so every span is the
// root of its own trace.
func NewTracingAllocator(base Allocator, tracerProvider trace.TracerProvider) Allocator {
	return &tracingAllocator{
		Allocator: base,
		tracer:    tracerProvider.Tracer("github.com/buildbarn/bb-indexed-allocation/pkg/allocator"),
	}
}

func (a *tracingAllocator) Allocate(name string, size int32) (FileRecord, error) {
	_, span := a.tracer.Start(context.Background(), "Allocator.Allocate", trace.WithAttributes(
		attribute.String("name", name),
		attribute.Int("size", int(size)),
	))
	defer span.End()

	record, err := a.Allocator.Allocate(name, size)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otel_codes.Error, err.Error())
		return FileRecord{}, err
	}
	span.SetAttributes(attribute.Int("index_block", int(record.IndexBlock)))
	return record, nil
}
