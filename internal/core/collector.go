package core

import (
	"sync"

	"github.com/Ramakrishna-scripts/filediscovery/pkg/models"
)

// Collector is the thread-safe sink for records produced by pool workers.
// It is the only shared mutable state in the scan; its internal mutex is the
// entire concurrency contract.
type Collector struct {
	mu      sync.Mutex
	records []*models.FileRecord
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Offer adds one record. Safe for concurrent use by any number of workers.
func (c *Collector) Offer(record *models.FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, record)
}

// Len returns the number of records currently held
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// DrainAll returns every offered record exactly once and resets the
// collector. Call it only after all workers have joined; the output carries
// no ordering guarantee.
func (c *Collector) DrainAll() []*models.FileRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.records
	c.records = nil
	return records
}
