package blockstore

import (
	"math/bits"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	allBits = ^uint64(0)
)

type bitmapBlockStore struct {
	lock       sync.Mutex
	freeBitmap []uint64 // One bits indicate blocks that are free.
	labels     []string
	blockCount int
	freeCount  int
}

// NewBitmapBlockStore creates a BlockStore that stores information on
// which blocks are free in a bitmap. Labels of allocated blocks are
// stored alongside it.
//
// Enumerating free blocks only needs to visit bitmap words that have
// at least one bit set, which keeps GetFreeBlocks() cheap on stores
// that are mostly full.
func NewBitmapBlockStore(blockCount int) (BlockStore, error) {
	if blockCount <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Block count must be positive, got %d", blockCount)
	}

	// Make the bitmap a bit too big, so that it's always terminated
	// with one or more bits that are permanently cleared. These
	// never show up as free blocks.
	bs := &bitmapBlockStore{
		freeBitmap: make([]uint64, blockCount/64+1),
		labels:     make([]string, blockCount),
		blockCount: blockCount,
		freeCount:  blockCount,
	}
	for i := 0; i < blockCount/64; i++ {
		bs.freeBitmap[i] = allBits
	}
	bs.freeBitmap[blockCount/64] = ^(allBits << (blockCount % 64))
	return bs, nil
}

func (bs *bitmapBlockStore) GetBlockCount() int {
	return bs.blockCount
}

func (bs *bitmapBlockStore) GetFreeBlocks() []BlockID {
	bs.lock.Lock()
	defer bs.lock.Unlock()

	free := make([]BlockID, 0, bs.freeCount)
	for index, word := range bs.freeBitmap {
		for word != 0 {
			free = append(free, BlockID(index*64+bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
	return free
}

func (bs *bitmapBlockStore) GetFreeBlockCount() int {
	bs.lock.Lock()
	defer bs.lock.Unlock()

	return bs.freeCount
}

func (bs *bitmapBlockStore) isFree(block BlockID) bool {
	return bs.freeBitmap[block/64]&(1<<(block%64)) != 0
}

// checkAllocatable returns an error if a block cannot be allocated,
// either because it does not exist or because it is already in use.
func (bs *bitmapBlockStore) checkAllocatable(block BlockID) error {
	if block < 0 || int(block) >= bs.blockCount {
		return status.Errorf(codes.OutOfRange, "Block %d is outside the range [0, %d)", block, bs.blockCount)
	}
	if !bs.isFree(block) {
		return status.Errorf(codes.FailedPrecondition, "Block %d is already allocated to %#v", block, bs.labels[block])
	}
	return nil
}

func (bs *bitmapBlockStore) markAllocated(block BlockID, label string) {
	bs.freeBitmap[block/64] &^= 1 << (block % 64)
	bs.labels[block] = label
	bs.freeCount--
}

func (bs *bitmapBlockStore) Allocate(block BlockID, label string) error {
	bs.lock.Lock()
	defer bs.lock.Unlock()

	if err := bs.checkAllocatable(block); err != nil {
		return err
	}
	bs.markAllocated(block, label)
	return nil
}

func (bs *bitmapBlockStore) AllocateList(allocations []Allocation) error {
	bs.lock.Lock()
	defer bs.lock.Unlock()

	// Validate the entire list before touching the bitmap, so that
	// a failure leaves the store unmodified.
	seen := make(map[BlockID]struct{}, len(allocations))
	for _, allocation := range allocations {
		if err := bs.checkAllocatable(allocation.Block); err != nil {
			return err
		}
		if _, ok := seen[allocation.Block]; ok {
			return status.Errorf(codes.FailedPrecondition, "Block %d is listed more than once", allocation.Block)
		}
		seen[allocation.Block] = struct{}{}
	}

	for _, allocation := range allocations {
		bs.markAllocated(allocation.Block, allocation.Label)
	}
	return nil
}

func (bs *bitmapBlockStore) IsAllocated(block BlockID) bool {
	if block < 0 || int(block) >= bs.blockCount {
		return false
	}

	bs.lock.Lock()
	defer bs.lock.Unlock()

	return !bs.isFree(block)
}

func (bs *bitmapBlockStore) GetLabel(block BlockID) (string, bool) {
	if block < 0 || int(block) >= bs.blockCount {
		return "", false
	}

	bs.lock.Lock()
	defer bs.lock.Unlock()

	if bs.isFree(block) {
		return "", false
	}
	return bs.labels[block], true
}

func (bs *bitmapBlockStore) GetBlockStates() []BlockState {
	bs.lock.Lock()
	defer bs.lock.Unlock()

	states := make([]BlockState, 0, bs.blockCount)
	for i := 0; i < bs.blockCount; i++ {
		block := BlockID(i)
		if bs.isFree(block) {
			states = append(states, BlockState{ID: block})
		} else {
			states = append(states, BlockState{
				ID:        block,
				Allocated: true,
				Label:     bs.labels[block],
			})
		}
	}
	return states
}
