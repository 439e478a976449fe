// Package raystack provides index-based scratch bookkeeping for
// recursive scene traversal (spec.md §2 C6, §4.5): a stack of "lanes"
// (one per scene-graph branch point) holding ray indices, and a stack
// of "tasks" each describing a contiguous run at the end of one lane.
// It lets a recursive traversal push and pop work without allocating
// on every level, by reusing lane backing storage the way RayBatch
// reuses its own (see raybatch.RayBatch.Clear).
package raystack
