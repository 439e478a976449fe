package scene

import (
	"github.com/katalvlaran/lvlath/bbox"
	"github.com/katalvlaran/lvlath/vecmath"
)

// InstanceKind distinguishes what an Instance's DataIndex refers to.
type InstanceKind uint8

const (
	// InstanceObject indexes into the owning Assembly's Objects.
	InstanceObject InstanceKind = iota
	// InstanceAssembly indexes into the owning Assembly's Assemblies.
	InstanceAssembly
)

// IndexRange names a [Start, End) range into an Assembly's flat Xforms
// array — one Instance's motion-keyframed transform.
type IndexRange struct {
	Start, End int
}

// Instance places one Object or nested Assembly into its parent
// Assembly, optionally under a motion transform (spec.md §6). An
// Instance with a nil TransformRange is placed at identity.
type Instance struct {
	Kind           InstanceKind
	DataIndex      int
	TransformRange *IndexRange

	bounds []bbox.BBox // resolved by resolveBounds at Assembly construction
}

// Bounds returns the instance's resolved world-space motion bounds
// (computed once, at Assembly construction, from its child's bounds
// and its own transform). It implements bbox.Boundable so Instance can
// be the object accelerator's element type.
func (inst *Instance) Bounds() []bbox.BBox {
	return inst.bounds
}

// resolveBounds computes inst.bounds from its child (an Object or a
// nested Assembly) and, if present, its transform motion slice.
func (inst *Instance) resolveBounds(objects []Object, assemblies []*Assembly, xforms []vecmath.Matrix4x4) {
	var childBounds []bbox.BBox
	switch inst.Kind {
	case InstanceObject:
		childBounds = objects[inst.DataIndex].Bounds()
	case InstanceAssembly:
		childBounds = assemblies[inst.DataIndex].Bounds()
	}

	if inst.TransformRange == nil {
		inst.bounds = childBounds
		return
	}

	xr := xforms[inst.TransformRange.Start:inst.TransformRange.End]
	n := len(childBounds)
	if len(xr) > n {
		n = len(xr)
	}

	rb := bbox.Resample(childBounds, n)
	rx := vecmath.ResampleMatrices(xr, n)

	out := make([]bbox.BBox, n)
	for k := 0; k < n; k++ {
		out[k] = transformBounds(rb[k], rx[k])
	}
	inst.bounds = out
}

// transformBounds returns the axis-aligned bounds, in the space m maps
// into, of the box b — the union of its 8 transformed corners. This is
// the conservative (non-tight-rotated) bound a BVH over instances
// needs; it is exact for any transform built purely from translation
// and axis scaling, and a safe superset for general rotations.
func transformBounds(b bbox.BBox, m vecmath.Matrix4x4) bbox.BBox {
	corners := [8]vecmath.Point3{
		vecmath.NewPoint3(b.Min.X, b.Min.Y, b.Min.Z),
		vecmath.NewPoint3(b.Min.X, b.Min.Y, b.Max.Z),
		vecmath.NewPoint3(b.Min.X, b.Max.Y, b.Min.Z),
		vecmath.NewPoint3(b.Min.X, b.Max.Y, b.Max.Z),
		vecmath.NewPoint3(b.Max.X, b.Min.Y, b.Min.Z),
		vecmath.NewPoint3(b.Max.X, b.Min.Y, b.Max.Z),
		vecmath.NewPoint3(b.Max.X, b.Max.Y, b.Min.Z),
		vecmath.NewPoint3(b.Max.X, b.Max.Y, b.Max.Z),
	}

	out := bbox.Empty()
	for _, c := range corners {
		out = out.UnionPoint(c.Transform(m))
	}

	return out
}
