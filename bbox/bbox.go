package bbox

import (
	"math"

	"github.com/katalvlaran/lvlath/vecmath"
)

// BBox is an axis-aligned bounding box, described by two corner points.
//
// A box is empty when Min.X > Max.X (the other two axes follow the same
// convention but only the X axis is checked, since a well-formed BBox
// never has mismatched degeneracy across axes). Empty always reports a
// miss and unions with anything to produce the other operand unchanged.
type BBox struct {
	Min vecmath.Point3
	Max vecmath.Point3
}

// Empty returns the degenerate bounding box used as the identity value
// for Union and as the sole sample of an empty BVH's bounds.
func Empty() BBox {
	inf := float32(math.Inf(1))
	return BBox{
		Min: vecmath.NewPoint3(inf, inf, inf),
		Max: vecmath.NewPoint3(-inf, -inf, -inf),
	}
}

// IsEmpty reports whether b is the degenerate/empty box.
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Union returns the smallest BBox enclosing both b and o.
func (b BBox) Union(o BBox) BBox {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return BBox{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// UnionPoint returns the smallest BBox enclosing both b and p.
func (b BBox) UnionPoint(p vecmath.Point3) BBox {
	if b.IsEmpty() {
		return BBox{Min: p, Max: p}
	}
	return BBox{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Centroid returns the midpoint of the box. For an empty box every
// component is NaN (+Inf + -Inf); the BVH builder can reach that case
// for an object whose bounds are all empty, and then only uses the
// value as a sort key.
func (b BBox) Centroid() vecmath.Point3 {
	return vecmath.LerpPoint3(b.Min, b.Max, 0.5)
}

// Extent returns Max - Min component-wise.
func (b BBox) Extent() vecmath.Vector3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) of greatest extent.
func (b BBox) LongestAxis() int {
	e := b.Extent()
	axis := 0
	longest := e.X
	if e.Y > longest {
		axis, longest = 1, e.Y
	}
	if e.Z > longest {
		axis = 2
	}
	return axis
}

// IntersectInterval performs the NaN-safe slab test (spec.md §4.3)
// against a ray already expressed in this box's local space via its
// origin and reciprocal direction. maxT bounds the ray's valid
// parametric range; degenerate axes (dirInv component is +/-Inf because
// the ray direction component was zero) pass through correctly because
// min/max of the two signed-infinite slab bounds collapses to the
// non-degenerate interval, as IEEE 754 arithmetic guarantees for finite
// orig/min/max.
//
// A negative maxT always misses, and intersecting an empty box always
// misses (spec.md §4.3 invariants).
func (b BBox) IntersectInterval(origLocal vecmath.Point3, dirInvLocal vecmath.Vector3, maxT float32) (tMin, tMax float32, hit bool) {
	if maxT < 0 || b.IsEmpty() {
		return 0, 0, false
	}

	tMin, tMax = 0, maxT

	for axis := 0; axis < 3; axis++ {
		o := origLocal.Get(axis)
		invD := dirInvLocal.Get(axis)
		t1 := (b.Min.Get(axis) - o) * invD
		t2 := (b.Max.Get(axis) - o) * invD
		// A ray exactly on a slab boundary with a zero direction component
		// produces 0 * (+/-Inf) = NaN on one side; treat the whole axis as
		// a pass-through (no constraint) rather than propagating NaN
		// through the min/max comparisons below.
		if math.IsNaN(float64(t1)) || math.IsNaN(float64(t2)) {
			continue
		}
		if invD < 0 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}
