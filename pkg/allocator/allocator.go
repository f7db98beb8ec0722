package allocator

import (
	"github.com/buildbarn/bb-indexed-allocation/pkg/blockstore"
)

// FileRecord describes the blocks assigned to a single file: exactly
// one index block, and the data blocks that the index block refers
// to, in the order in which they were assigned.
type FileRecord struct {
	IndexBlock blockstore.BlockID
	DataBlocks []blockstore.BlockID
}

// GetBlocks returns all blocks belonging to the file, starting with
// the index block.
func (r FileRecord) GetBlocks() []blockstore.BlockID {
	return append([]blockstore.BlockID{r.IndexBlock}, r.DataBlocks...)
}

func (r FileRecord) clone() FileRecord {
	return FileRecord{
		IndexBlock: r.IndexBlock,
		DataBlocks: append([]blockstore.BlockID(nil), r.DataBlocks...),
	}
}

// BlockKind is the role a block plays, used by display layers to pick
// a visual class for it.
type BlockKind int

const (
	// BlockKindFree indicates that the block is not in use.
	BlockKindFree BlockKind = iota
	// BlockKindIndex indicates that the block is the index block
	// of a file.
	BlockKindIndex
	// BlockKindData indicates that the block holds file contents.
	BlockKindData
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindFree:
		return "free"
	case BlockKindIndex:
		return "index"
	case BlockKindData:
		return "data"
	default:
		return "unknown"
	}
}

// BlockState is the state of a single block as seen by the display
// layer.
type BlockState struct {
	ID    blockstore.BlockID
	Kind  BlockKind
	Label string
}

// Allocator admits files into a BlockStore using indexed allocation.
// It owns the catalog that maps file names to the blocks assigned to
// them.
type Allocator interface {
	// Allocate one index block and size data blocks for a new
	// file. Either all blocks are allocated and the file is added
	// to the catalog, or the call fails without any side effects.
	Allocate(name string, size int32) (FileRecord, error)
	// Look up the blocks assigned to a file.
	Lookup(name string) (FileRecord, bool)
	// Return the names of all files in the catalog, sorted
	// alphabetically.
	ListFiles() []string
	// Return the state of every block in ascending order,
	// distinguishing index blocks from data blocks.
	GetBlockStates() []BlockState
}
