package allocator_test

import (
	"context"
	"testing"

	"github.com/buildbarn/bb-indexed-allocation/internal/mock"
	"github.com/buildbarn/bb-indexed-allocation/pkg/allocator"
	"github.com/buildbarn/bb-indexed-allocation/pkg/blockstore"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/attribute"
	otel_codes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/mock/gomock"
)

func TestTracingAllocator(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Creating a TracingAllocator should cause it to create a new
	// Tracer object.
	baseAllocator := mock.NewMockAllocator(ctrl)
	tracerProvider := mock.NewMockTracerProvider(ctrl)
	tracer := mock.NewMockTracer(ctrl)
	tracerProvider.EXPECT().Tracer("github.com/buildbarn/bb-indexed-allocation/pkg/allocator").Return(tracer)

	a := allocator.NewTracingAllocator(baseAllocator, tracerProvider)

	t.Run("Success", func(t *testing.T) {
		// The span should carry the name and size of the file,
		// and the index block that was picked.
		span := mock.NewMockSpan(ctrl)
		tracer.EXPECT().Start(
			context.Background(),
			"Allocator.Allocate",
			trace.WithAttributes(
				attribute.String("name", "f"),
				attribute.Int("size", 2),
			),
		).Return(context.Background(), span)
		baseAllocator.EXPECT().Allocate("f", int32(2)).
			Return(allocator.FileRecord{IndexBlock: 3, DataBlocks: []blockstore.BlockID{0, 9}}, nil)
		span.EXPECT().SetAttributes(attribute.Int("index_block", 3))
		span.EXPECT().End()

		record, err := a.Allocate("f", 2)
		require.NoError(t, err)
		require.Equal(t, allocator.FileRecord{IndexBlock: 3, DataBlocks: []blockstore.BlockID{0, 9}}, record)
	})

	t.Run("Failure", func(t *testing.T) {
		// Failed admissions should be recorded on the span, and
		// mark it as erroneous.
		span := mock.NewMockSpan(ctrl)
		tracer.EXPECT().Start(
			context.Background(),
			"Allocator.Allocate",
			trace.WithAttributes(
				attribute.String("name", "g"),
				attribute.Int("size", 1000),
			),
		).Return(context.Background(), span)
		expectedErr := status.Error(codes.ResourceExhausted, "File \"g\" requires 1001 blocks, while only 96 are free")
		baseAllocator.EXPECT().Allocate("g", int32(1000)).Return(allocator.FileRecord{}, expectedErr)
		span.EXPECT().RecordError(testutil.EqStatus(t, expectedErr))
		span.EXPECT().SetStatus(otel_codes.Error, "rpc error: code = ResourceExhausted desc = File \"g\" requires 1001 blocks, while only 96 are free")
		span.EXPECT().End()

		_, err := a.Allocate("g", 1000)
		testutil.RequireEqualStatus(t, expectedErr, err)
	})

	t.Run("Lookup", func(t *testing.T) {
		// Read operations are forwarded without creating spans.
		baseAllocator.EXPECT().Lookup("f").
			Return(allocator.FileRecord{IndexBlock: 3, DataBlocks: []blockstore.BlockID{0, 9}}, true)
		record, ok := a.Lookup("f")
		require.True(t, ok)
		require.Equal(t, blockstore.BlockID(3), record.IndexBlock)
	})
}
