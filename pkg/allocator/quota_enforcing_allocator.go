package allocator

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type quotaEnforcingAllocator struct {
	Allocator
	filesRemaining quotaMetric
}

// NewQuotaEnforcingAllocator creates a decorator for Allocator that
// limits the number of files that may be admitted, regardless of how
// many blocks are still free. Admissions that fail in the underlying
// Allocator do not count against the quota.
func NewQuotaEnforcingAllocator(base Allocator, maximumFiles int64) Allocator {
	a := &quotaEnforcingAllocator{
		Allocator: base,
	}
	a.filesRemaining.release(maximumFiles)
	return a
}

func (a *quotaEnforcingAllocator) Allocate(name string, size int32) (FileRecord, error) {
	if !a.filesRemaining.allocate(1) {
		return FileRecord{}, status.Error(codes.ResourceExhausted, "File count quota reached")
	}
	record, err := a.Allocator.Allocate(name, size)
	if err != nil {
		a.filesRemaining.release(1)
		return FileRecord{}, err
	}
	return record, nil
}
