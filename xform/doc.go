// Package xform provides a transform stack for recursive scene
// traversal (spec.md §2 C7, §4.6): a flat vector of motion-keyframed
// matrices plus a parallel vector of stack-frame boundaries, so that
// entering and leaving a nested instance composes (and later discards)
// a whole motion slice in one push/pop without per-frame allocation
// once the stack has warmed up.
package xform
