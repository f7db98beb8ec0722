package allocator

import (
	"sort"

	"github.com/buildbarn/bb-indexed-allocation/pkg/blockstore"
	"github.com/buildbarn/bb-storage/pkg/random"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type indexedAllocator struct {
	blockStore            blockstore.BlockStore
	randomNumberGenerator random.SingleThreadedGenerator
	errorLogger           util.ErrorLogger
	files                 map[string]FileRecord
}

// NewIndexedAllocator creates an Allocator that places files in a
// BlockStore. Every file gets a single index block and a number of
// data blocks, all picked uniformly at random from the blocks that are
// free at the time of the call.
//
// The resulting Allocator is not safe for concurrent use. Wrap it with
// NewLockingAllocator() if multiple callers need access.
func NewIndexedAllocator(blockStore blockstore.BlockStore, randomNumberGenerator random.SingleThreadedGenerator, errorLogger util.ErrorLogger) Allocator {
	return &indexedAllocator{
		blockStore:            blockStore,
		randomNumberGenerator: randomNumberGenerator,
		errorLogger:           errorLogger,
		files:                 map[string]FileRecord{},
	}
}

func (a *indexedAllocator) Allocate(name string, size int32) (FileRecord, error) {
	if name == "" {
		return FileRecord{}, status.Error(codes.InvalidArgument, "File name cannot be empty")
	}
	if _, ok := a.files[name]; ok {
		return FileRecord{}, status.Errorf(codes.AlreadyExists, "File %#v already exists", name)
	}
	if size <= 0 {
		return FileRecord{}, status.Errorf(codes.InvalidArgument, "File size must be positive, got %d", size)
	}

	// One index block, followed by the data blocks.
	freeBlocks := a.blockStore.GetFreeBlocks()
	required := int64(size) + 1
	if int64(len(freeBlocks)) < required {
		return FileRecord{}, status.Errorf(codes.ResourceExhausted, "File %#v requires %d blocks, while only %d are free", name, required, len(freeBlocks))
	}

	// Partial Fisher-Yates shuffle. After this loop the first
	// 'required' elements form a uniformly chosen subset of the
	// free blocks.
	for i := 0; i < int(required); i++ {
		j := i + a.randomNumberGenerator.IntN(len(freeBlocks)-i)
		freeBlocks[i], freeBlocks[j] = freeBlocks[j], freeBlocks[i]
	}
	selected := freeBlocks[:required]

	allocations := make([]blockstore.Allocation, 0, len(selected))
	allocations = append(allocations, blockstore.Allocation{
		Block: selected[0],
		Label: name + " (Index)",
	})
	for _, block := range selected[1:] {
		allocations = append(allocations, blockstore.Allocation{
			Block: block,
			Label: name,
		})
	}
	if err := a.blockStore.AllocateList(allocations); err != nil {
		// The blocks were free according to the snapshot
		// obtained above. Someone bypassed this allocator.
		err = util.StatusWrapfWithCode(err, codes.Internal, "Failed to commit blocks for file %#v", name)
		a.errorLogger.Log(err)
		return FileRecord{}, err
	}

	record := FileRecord{
		IndexBlock: selected[0],
		DataBlocks: append([]blockstore.BlockID(nil), selected[1:]...),
	}
	a.files[name] = record
	return record.clone(), nil
}

func (a *indexedAllocator) Lookup(name string) (FileRecord, bool) {
	record, ok := a.files[name]
	if !ok {
		return FileRecord{}, false
	}
	return record.clone(), true
}

func (a *indexedAllocator) ListFiles() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *indexedAllocator) GetBlockStates() []BlockState {
	indexBlocks := make(map[blockstore.BlockID]struct{}, len(a.files))
	for _, record := range a.files {
		indexBlocks[record.IndexBlock] = struct{}{}
	}

	blockStates := a.blockStore.GetBlockStates()
	states := make([]BlockState, 0, len(blockStates))
	for _, blockState := range blockStates {
		state := BlockState{
			ID:    blockState.ID,
			Kind:  BlockKindFree,
			Label: blockState.Label,
		}
		if blockState.Allocated {
			if _, ok := indexBlocks[blockState.ID]; ok {
				state.Kind = BlockKindIndex
			} else {
				state.Kind = BlockKindData
			}
		}
		states = append(states, state)
	}
	return states
}
