package bvh

import (
	"time"

	"github.com/katalvlaran/lvlath/bbox"
	"github.com/katalvlaran/lvlath/raybatch"
)

// Stats reports the cost of one Traverse call: the total number of
// ray/node bounds tests performed (summed over every node visited,
// counting the active ray count at each) and the wall-clock time
// spent in traversal itself, excluding time spent inside hook (spec.md
// §4.1 "Traversal stats"). Callers accumulate Stats out of band, e.g.
// via rtstats.Counters.Add, rather than the package tracking any
// shared/global state.
type Stats struct {
	NodeTests uint64
	Duration  time.Duration
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.NodeTests += other.NodeTests
	s.Duration += other.Duration
}

// Traverse walks bv with the active ray range rays, calling hook once
// per (object, sub-window) pair for every leaf whose bounds the
// surviving rays in that window still intersect (spec.md §4.2). hook
// may further partition or shrink its window (e.g. on confirmed hit),
// but must not grow it or reorder rays outside it.
//
// hook's own execution time is excluded from the returned Stats'
// Duration, mirroring the original's exclusion of obj_ray_test from
// its own traversal timer.
func Traverse[T any](bv *BVH, rays raybatch.Window, objects []T, hook func(obj *T, rays raybatch.Window)) Stats {
	if bv.root < 0 || rays.Len == 0 {
		return Stats{}
	}

	var nodeTests uint64
	var trav time.Duration
	lastTick := time.Now()

	batch := rays.Batch
	raySign := [3]bool{
		batch.DirInvLocal(rays.At(0)).X >= 0,
		batch.DirInvLocal(rays.At(0)).Y >= 0,
		batch.DirInvLocal(rays.At(0)).Z >= 0,
	}

	// +2 of max depth for the root and its last child (spec.md §4.2
	// "Resolved": fixed-size array stack, no hot-path allocation).
	var nodeStack [MaxDepth + 2]int
	var lenStack [MaxDepth + 2]int
	sp := 1
	nodeStack[sp] = bv.root
	lenStack[sp] = rays.Len

	for sp > 0 {
		nodeTests += uint64(lenStack[sp])
		n := bv.nodes[nodeStack[sp]]
		sub := rays.Prefix(lenStack[sp])
		boundsSlice := bv.bounds[n.boundsStart : n.boundsStart+n.boundsLen]

		part := sub.Partition(func(absIdx int) bool {
			if batch.IsDone(absIdx) {
				return false
			}
			box := bbox.Lerp(boundsSlice, batch.Time(absIdx))
			_, _, hit := box.IntersectInterval(batch.OrigLocal(absIdx), batch.DirInvLocal(absIdx), batch.MaxT(absIdx))

			return hit
		})

		switch {
		case part == 0:
			sp--

		case n.kind == nodeInternal:
			lenStack[sp] = part
			lenStack[sp+1] = part
			if raySign[n.splitAxis] {
				nodeStack[sp] = n.right
				nodeStack[sp+1] = n.left
			} else {
				nodeStack[sp] = n.left
				nodeStack[sp+1] = n.right
			}
			sp++

		default: // leaf
			trav += time.Since(lastTick)
			hookWindow := sub.Prefix(part)
			for oi := n.objStart; oi < n.objEnd; oi++ {
				hook(&objects[oi], hookWindow)
			}
			lastTick = time.Now()
			sp--
		}
	}

	trav += time.Since(lastTick)

	return Stats{NodeTests: nodeTests, Duration: trav}
}
