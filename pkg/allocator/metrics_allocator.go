package allocator

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	allocatorPrometheusMetrics sync.Once

	allocatorFilesAdmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "indexed_allocation",
			Name:      "allocator_files_admitted_total",
			Help:      "Number of files for which blocks were allocated successfully.",
		})
	allocatorAdmissionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "indexed_allocation",
			Name:      "allocator_admission_failures_total",
			Help:      "Number of times a file could not be admitted, by gRPC status code.",
		},
		[]string{"code"})
	allocatorBlocksAllocated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "indexed_allocation",
			Name:      "allocator_blocks_allocated_total",
			Help:      "Number of index and data blocks handed out to files.",
		})
)

type metricsAllocator struct {
	Allocator
}

// NewMetricsAllocator creates a decorator for Allocator that exposes
// Prometheus metrics on how many files are admitted, how many
// admissions fail and how many blocks are handed out.
func NewMetricsAllocator(base Allocator) Allocator {
	allocatorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(allocatorFilesAdmitted)
		prometheus.MustRegister(allocatorAdmissionFailures)
		prometheus.MustRegister(allocatorBlocksAllocated)
	})

	return &metricsAllocator{
		Allocator: base,
	}
}

func (a *metricsAllocator) Allocate(name string, size int32) (FileRecord, error) {
	record, err := a.Allocator.Allocate(name, size)
	if err != nil {
		allocatorAdmissionFailures.WithLabelValues(status.Code(err).String()).Inc()
		return FileRecord{}, err
	}
	allocatorFilesAdmitted.Inc()
	allocatorBlocksAllocated.Add(float64(1 + len(record.DataBlocks)))
	return record, nil
}
