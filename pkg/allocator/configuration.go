package allocator

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/buildbarn/bb-indexed-allocation/pkg/blockstore"
	"github.com/buildbarn/bb-storage/pkg/random"
	"github.com/buildbarn/bb-storage/pkg/util"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultTotalBlocks is the number of blocks in a store when no other
// value is configured.
const DefaultTotalBlocks = 100

// Configuration of an Allocator and the BlockStore backing it.
type Configuration struct {
	// Number of blocks in the store. Must be positive.
	TotalBlocks int
	// Maximum number of files that may be admitted. Zero means
	// that only the number of blocks limits admission.
	MaximumFiles int64
	// Seed for block selection. When unset, blocks are selected
	// using a non-deterministic generator.
	Seed *int64
}

// NewDefaultConfiguration returns a Configuration that describes a
// store of DefaultTotalBlocks blocks without any file quota.
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		TotalBlocks: DefaultTotalBlocks,
	}
}

// seededGenerator is a random.SingleThreadedGenerator that yields a
// reproducible sequence. bb-storage only provides generators that are
// seeded from the system.
type seededGenerator struct {
	*rand.Rand
	source *rand.ChaCha8
}

func newSeededGenerator(seed int64) random.SingleThreadedGenerator {
	var sourceSeed [32]byte
	binary.LittleEndian.PutUint64(sourceSeed[:], uint64(seed))
	source := rand.NewChaCha8(sourceSeed)
	return seededGenerator{
		Rand:   rand.New(source),
		source: source,
	}
}

func (g seededGenerator) Read(p []byte) (int, error) {
	return g.source.Read(p)
}

// NewAllocatorFromConfiguration creates an Allocator and the BlockStore
// backing it, based on parameters provided in a configuration. The
// Allocator is safe for concurrent use and reports Prometheus metrics.
// When tracerProvider is not nil, every allocation is also traced.
//
// The BlockStore is returned to give display layers direct access to
// block occupancy. Allocating blocks on it directly will cause
// subsequent admissions to fail with INTERNAL.
func NewAllocatorFromConfiguration(configuration *Configuration, errorLogger util.ErrorLogger, tracerProvider trace.TracerProvider) (Allocator, blockstore.BlockStore, error) {
	if configuration == nil {
		configuration = NewDefaultConfiguration()
	}
	if configuration.TotalBlocks <= 0 {
		return nil, nil, status.Errorf(codes.InvalidArgument, "Total block count must be positive, got %d", configuration.TotalBlocks)
	}
	if configuration.MaximumFiles < 0 {
		return nil, nil, status.Errorf(codes.InvalidArgument, "Maximum file count cannot be negative, got %d", configuration.MaximumFiles)
	}

	blockStore, err := blockstore.NewBitmapBlockStore(configuration.TotalBlocks)
	if err != nil {
		return nil, nil, util.StatusWrap(err, "Failed to create block store")
	}

	var randomNumberGenerator random.SingleThreadedGenerator
	if configuration.Seed != nil {
		randomNumberGenerator = newSeededGenerator(*configuration.Seed)
	} else {
		randomNumberGenerator = random.NewFastSingleThreadedGenerator()
	}

	allocator := NewIndexedAllocator(blockStore, randomNumberGenerator, errorLogger)
	if configuration.MaximumFiles > 0 {
		allocator = NewQuotaEnforcingAllocator(allocator, configuration.MaximumFiles)
	}
	allocator = NewMetricsAllocator(allocator)
	if tracerProvider != nil {
		allocator = NewTracingAllocator(allocator, tracerProvider)
	}
	return NewLockingAllocator(allocator), blockStore, nil
}
