// Package scene holds the assembly graph the tracer walks: objects
// (surfaces and lights), instances of those objects (or of nested
// assemblies) under an optional motion transform, and the top-down
// object accelerator (a bvh.BVH over instances) used to cull them
// per-ray (spec.md §2 C8 consumers, §6).
package scene
