// Package raybatch implements the ray-batch traversal core's hot/cold
// ray storage (spec.md §2 component C5, §3 "AccelRay / RayBatch", §4.4).
//
// A RayBatch keeps two parallel, always-length-synchronized arrays: a
// "hot" array touched on every traversal step (local-space origin,
// local-space reciprocal direction, max_t, time, flag bits) and a
// "cold" array touched only when re-deriving local-space caches or
// reporting results (world-space origin/direction, wavelength, and the
// originating world-ray id). Push, SetFromRay, Swap, Truncate, and
// Clear all act on both arrays synchronously, per spec.md §4.4 and the
// "RayBatch.hot.len() == RayBatch.cold.len()" invariant in §3.
package raybatch
