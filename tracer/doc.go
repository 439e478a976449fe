// Package tracer drives batched ray traversal over an assembly graph
// (spec.md §2 C8, §4.7): it walks a scene.Assembly's object
// accelerator, transforms rays into and out of each instance's local
// space via xform.Stack, splits rays by direction octant whenever a
// transform could have scrambled a single shared direction sign across
// the batch, and calls down into bvh.Traverse for each nested
// assembly's or object's own accelerator.
package tracer
