package services

import (
	"sync"

	"cfocli/internal/dataset"
	"cfocli/internal/pipeline"
	"cfocli/pkg/contracts/domain"
)

// loadTable is the concurrency-safe cache of finished dataset loads.
type loadTable struct {
	mu    sync.RWMutex
	loads map[dataset.Kind]*DatasetLoad
}

func newLoadTable() *loadTable {
	return &loadTable{loads: make(map[dataset.Kind]*DatasetLoad)}
}

func (t *loadTable) put(load *DatasetLoad) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loads[load.Kind] = load
}

func (t *loadTable) get(kind dataset.Kind) (*DatasetLoad, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	load, ok := t.loads[kind]
	return load, ok
}

// long melts the load's table once and caches the result for later calls.
func (t *loadTable) long(load *DatasetLoad) []domain.LongRecord {
	t.mu.RLock()
	cached := load.long
	t.mu.RUnlock()
	if cached != nil {
		return cached
	}

	melted := pipeline.Melt(load.Table)

	t.mu.Lock()
	if load.long == nil {
		load.long = melted
	}
	melted = load.long
	t.mu.Unlock()

	return melted
}
