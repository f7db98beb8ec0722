package allocator

import (
	"sync"
)

type lockingAllocator struct {
	lock sync.RWMutex
	base Allocator
}

// NewLockingAllocator creates a decorator for Allocator that
// serializes calls, so that it can be used by multiple goroutines.
// Allocate() holds an exclusive lock for its entire duration, meaning
// that the free space check and the commit of blocks form a single
// critical section. No two concurrent allocations can observe the same
// block as being free.
func NewLockingAllocator(base Allocator) Allocator {
	return &lockingAllocator{
		base: base,
	}
}

func (a *lockingAllocator) Allocate(name string, size int32) (FileRecord, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.base.Allocate(name, size)
}

func (a *lockingAllocator) Lookup(name string) (FileRecord, bool) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	return a.base.Lookup(name)
}

func (a *lockingAllocator) ListFiles() []string {
	a.lock.RLock()
	defer a.lock.RUnlock()

	return a.base.ListFiles()
}

func (a *lockingAllocator) GetBlockStates() []BlockState {
	a.lock.RLock()
	defer a.lock.RUnlock()

	return a.base.GetBlockStates()
}
