package raybatch

// Window is a contiguous, offset-based view into a RayBatch — the Go
// analogue of the Rust original's `&mut [AccelRay]` sub-slices
// (spec.md §4.2/§4.7: BVH traversal partitions "the active prefix",
// and the tracer further splits that prefix into octant sub-ranges).
// Because RayBatch is two parallel arrays rather than one array of
// structs, a literal slice-of-struct sub-slice isn't available; Window
// carries the same information (an offset and a length) and every
// RayBatch accessor is called through it via At, so operations stay
// confined to the window's range without copying.
type Window struct {
	Batch *RayBatch
	Start int
	Len   int
}

// NewWindow returns a window over the whole batch.
func NewWindow(b *RayBatch) Window {
	return Window{Batch: b, Start: 0, Len: b.Len()}
}

// At translates a window-relative index to an absolute RayBatch index.
func (w Window) At(i int) int {
	return w.Start + i
}

// Sub returns the sub-window [offset, offset+length) of w.
func (w Window) Sub(offset, length int) Window {
	return Window{Batch: w.Batch, Start: w.Start + offset, Len: length}
}

// Prefix returns the first n entries of w as their own window.
func (w Window) Prefix(n int) Window {
	return w.Sub(0, n)
}

// Swap exchanges the window-relative indices i and j.
func (w Window) Swap(i, j int) {
	w.Batch.Swap(w.At(i), w.At(j))
}

// Partition reorders w in place so that every index for which keep
// returns true comes before every index for which it returns false,
// and returns the count of kept entries. This is the in-place
// partition used by BVH traversal (spec.md §4.2) and the tracer's
// octant split (spec.md §4.7); it makes no ordering guarantee beyond
// "kept entries first" (spec.md §4.2).
func (w Window) Partition(keep func(absIdx int) bool) int {
	i, j := 0, w.Len-1
	for i <= j {
		if keep(w.At(i)) {
			i++
			continue
		}
		if !keep(w.At(j)) {
			j--
			continue
		}
		w.Swap(i, j)
		i++
		j--
	}
	return i
}
