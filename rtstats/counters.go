// Package rtstats accumulates traversal statistics across tile
// workers (spec.md §5, §9 supplement). Each worker owns one Counters
// value on its own goroutine during a tile's trace and merges it into
// a shared total out of band afterward — no locking on the hot path,
// consistent with the tracer's per-tile ownership model.
package rtstats

import (
	"sync"
	"time"

	"github.com/katalvlaran/lvlath/bvh"
)

// Counters holds accumulated traversal cost: total node/ray bounds
// tests and total traversal wall-clock time across every bvh.Traverse
// call it has absorbed.
type Counters struct {
	NodeTests uint64
	Duration  time.Duration
}

// Add folds a single bvh.Traverse call's Stats into c.
func (c *Counters) Add(s bvh.Stats) {
	c.NodeTests += s.NodeTests
	c.Duration += s.Duration
}

// Merge folds other's totals into c.
func (c *Counters) Merge(other Counters) {
	c.NodeTests += other.NodeTests
	c.Duration += other.Duration
}

// Aggregator collects Counters from multiple concurrent tile workers
// under a single mutex, summed only when a worker reports in — never
// touched during the worker's own traversal.
type Aggregator struct {
	mu    sync.Mutex
	total Counters
}

// Report merges one worker's finished Counters into the aggregate.
func (a *Aggregator) Report(c Counters) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total.Merge(c)
}

// Total returns a copy of the aggregate collected so far.
func (a *Aggregator) Total() Counters {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.total
}
