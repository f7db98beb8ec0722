package mock

//go:generate mockgen -package mock -destination allocator.go github.com/buildbarn/bb-indexed-allocation/pkg/allocator Allocator
//go:generate mockgen -package mock -destination blockstore.go github.com/buildbarn/bb-indexed-allocation/pkg/blockstore BlockStore
//go:generate mockgen -package mock -destination random.go github.com/buildbarn/bb-storage/pkg/random SingleThreadedGenerator
//go:generate mockgen -package mock -destination util.go github.com/buildbarn/bb-storage/pkg/util ErrorLogger
//go:generate mockgen -package mock -destination trace.go -mock_names Span=BareMockSpan,Tracer=BareMockTracer,TracerProvider=BareMockTracerProvider go.opentelemetry.io/otel/trace Span,Tracer,TracerProvider
