package raybatch

import "github.com/katalvlaran/lvlath/vecmath"

// Flag is a bitmask of per-ray traversal flags (spec.md §3 "Flag bits").
type Flag uint8

const (
	// Occlusion marks a ray that only needs a boolean hit test; the
	// first confirmed hit short-circuits it to Done (spec.md §4.7).
	Occlusion Flag = 1 << iota
	// Done marks a ray that must no longer influence traversal
	// decisions — its bbox test is treated as a miss (spec.md §3).
	Done
)

// hotRay holds the fields touched on every traversal step.
type hotRay struct {
	origLocal   vecmath.Point3
	dirInvLocal vecmath.Vector3
	maxT        float32
	time        float32
	flags       Flag
}

// coldRay holds the fields touched only outside the traversal hot path:
// world-space origin/direction (re-applied whenever a new transform
// space is entered via UpdateLocal), the spectral wavelength, and the
// originating world-ray id. The id is not part of spec.md's literal
// field list for the cold record, but it must travel with the ray
// through every Swap so that the tracer can always map a (possibly
// reordered) batch slot back to its world ray and result slot — see
// DESIGN.md's raybatch entry and tracer.rs's `ray.id` usage.
type coldRay struct {
	orig       vecmath.Point3
	dir        vecmath.Vector3
	wavelength float32
	id         uint32
}
