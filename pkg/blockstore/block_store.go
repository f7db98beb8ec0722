package blockstore

// BlockID identifies a block by its position in the store. Valid
// identifiers lie in the range [0, GetBlockCount()).
type BlockID int

// BlockState describes the occupancy of a single block, as reported
// by BlockStore.GetBlockStates().
type BlockState struct {
	ID        BlockID
	Allocated bool
	Label     string
}

// Allocation is a single entry of a batch passed to
// BlockStore.AllocateList().
type Allocation struct {
	Block BlockID
	Label string
}

// BlockStore is the single source of truth for the occupancy of a
// fixed number of blocks. Blocks start out free and transition to the
// allocated state exactly once. There is no way to free a block.
type BlockStore interface {
	// Return the total number of blocks managed by the store.
	GetBlockCount() int
	// Return the identifiers of all free blocks, in ascending
	// order.
	GetFreeBlocks() []BlockID
	// Return the number of free blocks.
	GetFreeBlockCount() int
	// Mark a free block as allocated, attaching a label to it.
	//
	// This function fails with OUT_OF_RANGE if the block does not
	// exist, and with FAILED_PRECONDITION if it is already
	// allocated.
	Allocate(block BlockID, label string) error
	// Mark a list of blocks as allocated. Either all blocks are
	// allocated, or none of them are. Failure codes are identical
	// to those of Allocate(). Listing the same block more than
	// once also yields FAILED_PRECONDITION.
	AllocateList(allocations []Allocation) error
	// Return whether a block is allocated. Blocks that do not
	// exist are reported as not being allocated.
	IsAllocated(block BlockID) bool
	// Return the label of an allocated block.
	GetLabel(block BlockID) (string, bool)
	// Return the state of every block, in ascending order.
	GetBlockStates() []BlockState
}
