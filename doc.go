// Package lvlath is a ray-batch traversal core for a spectral
// path-tracing renderer: BVH construction and traversal over
// time-varying (motion-blurred) bounding boxes, a batch traversal
// driver that walks a scene's instanced assembly graph through a
// transform stack, and the cache-conscious ray-batch bookkeeping that
// both of those operate on.
//
// Subpackages:
//
//	vecmath/   — points, vectors, 4x4 matrices, motion-slice lerp
//	bbox/      — axis-aligned bounding boxes, slab intersection test
//	bvh/       — BVH construction (bvh.FromObjects) and batched traversal (bvh.Traverse)
//	raybatch/  — hot/cold ray batch storage and in-place Window partitioning
//	raystack/  — index-based ray/lane/task scratch reuse across traversal levels
//	xform/     — nested instance transform stack with motion-slice composition
//	scene/     — Assembly/Object/Instance scene graph built on bvh and bbox
//	tracer/    — the batch traversal driver tying scene, xform and bvh together
//	rtstats/   — out-of-band traversal cost accumulation across tile workers
//	rtlog/     — minimal structured logging seam, default silent
package lvlath
