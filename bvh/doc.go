// Package bvh builds and traverses bounding volume hierarchies over
// time-varying (motion-blurred) bounds (spec.md §2 C3/C4, §4.1/§4.2).
// A BVH is built once, top-down, from a caller-owned slice of objects
// (which it partitions in place by centroid) and is immutable
// thereafter; traversal walks it with a batch of rays, partitioning
// the active ray range at each node the way raybatch.Window does for
// the tracer's octant split.
package bvh
