package allocator_test

import (
	"testing"

	"github.com/buildbarn/bb-indexed-allocation/internal/mock"
	"github.com/buildbarn/bb-indexed-allocation/pkg/allocator"
	"github.com/buildbarn/bb-indexed-allocation/pkg/blockstore"
	"github.com/buildbarn/bb-storage/pkg/random"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/mock/gomock"
)

func newTestAllocator(t *testing.T, blockCount int) (allocator.Allocator, blockstore.BlockStore) {
	blockStore, err := blockstore.NewBitmapBlockStore(blockCount)
	require.NoError(t, err)
	return allocator.NewIndexedAllocator(blockStore, random.NewFastSingleThreadedGenerator(), util.DefaultErrorLogger), blockStore
}

func TestIndexedAllocatorSelection(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockStore := mock.NewMockBlockStore(ctrl)
	randomNumberGenerator := mock.NewMockSingleThreadedGenerator(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	a := allocator.NewIndexedAllocator(blockStore, randomNumberGenerator, errorLogger)

	// Blocks should be selected by performing a partial
	// Fisher-Yates shuffle on the list of free blocks. The first
	// block selected becomes the index block.
	gomock.InOrder(
		blockStore.EXPECT().GetFreeBlocks().
			Return([]blockstore.BlockID{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}),
		randomNumberGenerator.EXPECT().IntN(10).Return(3),
		randomNumberGenerator.EXPECT().IntN(9).Return(0),
		randomNumberGenerator.EXPECT().IntN(8).Return(5),
		blockStore.EXPECT().AllocateList([]blockstore.Allocation{
			{Block: 3, Label: "f (Index)"},
			{Block: 1, Label: "f"},
			{Block: 7, Label: "f"},
		}),
	)

	record, err := a.Allocate("f", 2)
	require.NoError(t, err)
	require.Equal(t, allocator.FileRecord{
		IndexBlock: 3,
		DataBlocks: []blockstore.BlockID{1, 7},
	}, record)

	record, ok := a.Lookup("f")
	require.True(t, ok)
	require.Equal(t, allocator.FileRecord{
		IndexBlock: 3,
		DataBlocks: []blockstore.BlockID{1, 7},
	}, record)
}

func TestIndexedAllocatorRejection(t *testing.T) {
	ctrl := gomock.NewController(t)

	// None of the calls below should touch the block store or
	// the random number generator.
	blockStore := mock.NewMockBlockStore(ctrl)
	randomNumberGenerator := mock.NewMockSingleThreadedGenerator(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	a := allocator.NewIndexedAllocator(blockStore, randomNumberGenerator, errorLogger)

	t.Run("EmptyName", func(t *testing.T) {
		_, err := a.Allocate("", 3)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "File name cannot be empty"), err)
	})

	t.Run("ZeroSize", func(t *testing.T) {
		_, err := a.Allocate("x", 0)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "File size must be positive, got 0"), err)
	})

	t.Run("NegativeSize", func(t *testing.T) {
		_, err := a.Allocate("x", -5)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "File size must be positive, got -5"), err)
	})

	t.Run("EmptyNameTakesPrecedence", func(t *testing.T) {
		_, err := a.Allocate("", -1)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "File name cannot be empty"), err)
	})

	require.Empty(t, a.ListFiles())
	_, ok := a.Lookup("x")
	require.False(t, ok)
}

func TestIndexedAllocatorCommitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockStore := mock.NewMockBlockStore(ctrl)
	randomNumberGenerator := mock.NewMockSingleThreadedGenerator(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	a := allocator.NewIndexedAllocator(blockStore, randomNumberGenerator, errorLogger)

	// If the block store refuses the blocks that were reported as
	// being free, the failure must be logged and reported as an
	// internal error. The file must not end up in the catalog.
	blockStore.EXPECT().GetFreeBlocks().Return([]blockstore.BlockID{4, 8})
	randomNumberGenerator.EXPECT().IntN(2).Return(1)
	randomNumberGenerator.EXPECT().IntN(1).Return(0)
	blockStore.EXPECT().AllocateList([]blockstore.Allocation{
		{Block: 8, Label: "f (Index)"},
		{Block: 4, Label: "f"},
	}).Return(status.Error(codes.FailedPrecondition, "Block 8 is already allocated to \"g\""))
	expectedErr := status.Error(codes.Internal, "Failed to commit blocks for file \"f\": Block 8 is already allocated to \"g\"")
	errorLogger.EXPECT().Log(testutil.EqStatus(t, expectedErr))

	_, err := a.Allocate("f", 1)
	testutil.RequireEqualStatus(t, expectedErr, err)

	_, ok := a.Lookup("f")
	require.False(t, ok)
	require.Empty(t, a.ListFiles())
}

func TestIndexedAllocatorExhaustion(t *testing.T) {
	a, blockStore := newTestAllocator(t, 4)

	// One index block and three data blocks use up all storage.
	record, err := a.Allocate("a", 3)
	require.NoError(t, err)
	require.ElementsMatch(t, []blockstore.BlockID{0, 1, 2, 3}, record.GetBlocks())
	require.Empty(t, blockStore.GetFreeBlocks())

	_, err = a.Allocate("b", 1)
	testutil.RequireEqualStatus(t, status.Error(codes.ResourceExhausted, "File \"b\" requires 2 blocks, while only 0 are free"), err)

	_, ok := a.Lookup("b")
	require.False(t, ok)
	require.Equal(t, []string{"a"}, a.ListFiles())
}

func TestIndexedAllocatorInsufficientSpace(t *testing.T) {
	a, blockStore := newTestAllocator(t, 10)

	// A file of size N needs N+1 blocks, so a file of size 10
	// does not fit in a store of 10 blocks.
	_, err := a.Allocate("big", 10)
	testutil.RequireEqualStatus(t, status.Error(codes.ResourceExhausted, "File \"big\" requires 11 blocks, while only 10 are free"), err)
	require.Equal(t, 10, blockStore.GetFreeBlockCount())

	_, err = a.Allocate("big", 9)
	require.NoError(t, err)
	require.Equal(t, 0, blockStore.GetFreeBlockCount())
}

func TestIndexedAllocatorDuplicateName(t *testing.T) {
	a, blockStore := newTestAllocator(t, 100)

	first, err := a.Allocate("f", 3)
	require.NoError(t, err)
	freeBlocks := blockStore.GetFreeBlocks()

	_, err = a.Allocate("f", 1)
	testutil.RequireEqualStatus(t, status.Error(codes.AlreadyExists, "File \"f\" already exists"), err)

	// Neither the block store nor the original record may have
	// been altered.
	require.Equal(t, freeBlocks, blockStore.GetFreeBlocks())
	record, ok := a.Lookup("f")
	require.True(t, ok)
	require.Equal(t, first, record)
}

func TestIndexedAllocatorInvariants(t *testing.T) {
	a, blockStore := newTestAllocator(t, 100)

	// Keep on allocating files of various sizes until storage is
	// exhausted. The total number of blocks in use may never
	// exceed the size of the store, and failures may not change
	// the number of free blocks.
	used := 0
	names := []string{}
	for i := 0; i < 50; i++ {
		name := string(rune('a'+i%26)) + string(rune('a'+i/26))
		size := int32(i%7 + 1)
		freeBefore := blockStore.GetFreeBlockCount()
		record, err := a.Allocate(name, size)
		if used+int(size)+1 <= 100 {
			require.NoError(t, err)
			require.Len(t, record.DataBlocks, int(size))
			require.NotContains(t, record.DataBlocks, record.IndexBlock)
			used += int(size) + 1
			names = append(names, name)
			require.Equal(t, freeBefore-int(size)-1, blockStore.GetFreeBlockCount())
		} else {
			require.Equal(t, codes.ResourceExhausted, status.Code(err))
			require.Equal(t, freeBefore, blockStore.GetFreeBlockCount())
		}
	}
	require.Equal(t, 100-used, blockStore.GetFreeBlockCount())

	// Files may not share blocks, and none of their blocks may be
	// reported as free.
	owners := map[blockstore.BlockID]string{}
	for _, block := range blockStore.GetFreeBlocks() {
		owners[block] = ""
	}
	for _, name := range names {
		record, ok := a.Lookup(name)
		require.True(t, ok)
		for _, block := range record.GetBlocks() {
			owner, ok := owners[block]
			require.False(t, ok, "Block %d of file %#v is also owned by %#v", block, name, owner)
			owners[block] = name
			require.True(t, blockStore.IsAllocated(block))
		}

		label, ok := blockStore.GetLabel(record.IndexBlock)
		require.True(t, ok)
		require.Equal(t, name+" (Index)", label)
		for _, block := range record.DataBlocks {
			label, ok := blockStore.GetLabel(block)
			require.True(t, ok)
			require.Equal(t, name, label)
		}
	}
	require.Len(t, owners, 100)
}

func TestIndexedAllocatorLookup(t *testing.T) {
	a, _ := newTestAllocator(t, 100)

	_, ok := a.Lookup("f")
	require.False(t, ok)

	created, err := a.Allocate("f", 3)
	require.NoError(t, err)

	record, ok := a.Lookup("f")
	require.True(t, ok)
	require.Equal(t, created, record)
	require.Len(t, record.DataBlocks, 3)
	require.NotContains(t, record.DataBlocks, record.IndexBlock)

	// Records handed out to callers are copies. Modifying them may
	// not affect the catalog.
	record.DataBlocks[0] = record.IndexBlock
	created.DataBlocks[1] = record.IndexBlock
	again, ok := a.Lookup("f")
	require.True(t, ok)
	require.NotContains(t, again.DataBlocks, again.IndexBlock)
}

func TestIndexedAllocatorListFiles(t *testing.T) {
	a, _ := newTestAllocator(t, 100)
	require.Empty(t, a.ListFiles())

	for _, name := range []string{"zeta", "alpha", "mu"} {
		_, err := a.Allocate(name, 1)
		require.NoError(t, err)
	}
	require.Equal(t, []string{"alpha", "mu", "zeta"}, a.ListFiles())
}

func TestIndexedAllocatorGetBlockStates(t *testing.T) {
	a, _ := newTestAllocator(t, 6)

	record, err := a.Allocate("f", 2)
	require.NoError(t, err)

	states := a.GetBlockStates()
	require.Len(t, states, 6)
	kinds := map[allocator.BlockKind]int{}
	for i, state := range states {
		require.Equal(t, blockstore.BlockID(i), state.ID)
		kinds[state.Kind]++
		switch state.Kind {
		case allocator.BlockKindFree:
			require.Empty(t, state.Label)
		case allocator.BlockKindIndex:
			require.Equal(t, record.IndexBlock, state.ID)
			require.Equal(t, "f (Index)", state.Label)
		case allocator.BlockKindData:
			require.Contains(t, record.DataBlocks, state.ID)
			require.Equal(t, "f", state.Label)
		}
	}
	require.Equal(t, map[allocator.BlockKind]int{
		allocator.BlockKindFree:  3,
		allocator.BlockKindIndex: 1,
		allocator.BlockKindData:  2,
	}, kinds)
}

func TestIndexedAllocatorUniformSelection(t *testing.T) {
	// Allocate a file of size 1 in a fresh store of ten blocks
	// many times. Every block should be picked in roughly 20% of
	// all runs, including the ones at the end of the store.
	const runs = 2000
	counts := make([]int, 10)
	indexCounts := make([]int, 10)
	for i := 0; i < runs; i++ {
		a, _ := newTestAllocator(t, 10)
		record, err := a.Allocate("f", 1)
		require.NoError(t, err)
		for _, block := range record.GetBlocks() {
			counts[block]++
		}
		indexCounts[record.IndexBlock]++
	}
	for block, count := range counts {
		require.Greater(t, count, 300, "Block %d was selected too rarely", block)
		require.Less(t, count, 500, "Block %d was selected too often", block)
	}
	for block, count := range indexCounts {
		require.Greater(t, count, 120, "Block %d was used as an index block too rarely", block)
		require.Less(t, count, 280, "Block %d was used as an index block too often", block)
	}
}
