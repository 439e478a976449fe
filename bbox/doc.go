// Package bbox implements the axis-aligned bounding box used throughout
// the ray-batch traversal core (spec.md §3 "BBox", §4.3 slab test, and
// §2 component C1/C2).
//
// A BBox is always representable, including the degenerate/empty case
// (spec.md §3 "Degenerate (empty) bbox is representable"), and a
// "motion slice" — an ordered []BBox sampled at equally spaced shutter
// times in [0,1] — is interpolated via Lerp using the formula in
// spec.md §6.
package bbox
