package scene

import (
	"math"

	"github.com/katalvlaran/lvlath/bbox"
	"github.com/katalvlaran/lvlath/raybatch"
	"github.com/katalvlaran/lvlath/vecmath"
)

// SurfaceIntersection is the result the tracer records for one world
// ray (spec.md §6). A Miss carries no further data.
type SurfaceIntersection struct {
	Hit      bool
	T        float32
	Point    vecmath.Point3
	Normal   vecmath.Vector3
	SurfaceID uint32
}

// Surface is anything a tracer can intersect rays against. The actual
// intersection math (triangle meshes, implicit geometry, shading) is
// out of this core's scope (spec.md Non-goals: "rendering/shading
// output"); Surface is the seam the tracer calls through, generic
// over whatever concrete geometry a caller supplies.
type Surface interface {
	bbox.Boundable

	// IntersectRays tests every ray in rays (a window into the current
	// local-space batch) against this surface, writing a result into
	// isects at each ray's world id for any ray that hits closer than
	// its current recorded result. worldRays supplies each ray's
	// original world-space description (for shading-space results);
	// xforms is the motion slice of the transform currently in effect
	// (empty if this surface is untransformed).
	IntersectRays(rays raybatch.Window, worldRays []raybatch.Ray, xforms []vecmath.Matrix4x4, isects []SurfaceIntersection)
}

// Sphere is a minimal, fully-worked Surface implementation: a sphere
// of the given Radius centered at the local-space origin, used by this
// module's scene and tracer tests to exercise a real geometric
// intersection end to end without pulling in a full mesh/shading
// pipeline.
type Sphere struct {
	ID     uint32
	Radius float32
}

// Bounds returns the sphere's static (non-animated) local-space bounds.
func (s *Sphere) Bounds() []bbox.BBox {
	r := vecmath.NewVector3(s.Radius, s.Radius, s.Radius)
	center := vecmath.NewPoint3(0, 0, 0)
	return []bbox.BBox{{Min: center.SubVector(r), Max: center.Add(r)}}
}

// IntersectRays performs a standard ray/sphere quadratic test in local
// space, recording the nearest hit (if any, and if nearer than any
// existing recorded hit) per ray.
func (s *Sphere) IntersectRays(rays raybatch.Window, worldRays []raybatch.Ray, xforms []vecmath.Matrix4x4, isects []SurfaceIntersection) {
	for i := 0; i < rays.Len; i++ {
		idx := rays.At(i)
		if rays.Batch.IsDone(idx) {
			continue
		}

		orig := rays.Batch.OrigLocal(idx)
		dirInv := rays.Batch.DirInvLocal(idx)
		dir := vecmath.NewVector3(1/dirInv.X, 1/dirInv.Y, 1/dirInv.Z)

		oc := orig.Sub(vecmath.NewPoint3(0, 0, 0))
		a := dir.Dot(dir)
		b := 2 * oc.Dot(dir)
		c := oc.Dot(oc) - s.Radius*s.Radius
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}

		sq := float32(math.Sqrt(float64(disc)))
		t := (-b - sq) / (2 * a)
		if t < 0 {
			t = (-b + sq) / (2 * a)
		}
		if t < 0 || t > rays.Batch.MaxT(idx) {
			continue
		}

		id := rays.Batch.ID(idx)
		if isects[id].Hit && isects[id].T <= t {
			continue
		}

		hitLocal := orig.Add(dir.Scale(t))
		normal := hitLocal.Sub(vecmath.NewPoint3(0, 0, 0)).Scale(1 / s.Radius)
		isects[id] = SurfaceIntersection{Hit: true, T: t, Point: hitLocal, Normal: normal, SurfaceID: s.ID}
		rays.Batch.SetMaxT(idx, t)
		if rays.Batch.IsOcclusion(idx) {
			rays.Batch.MarkDone(idx)
		}
	}
}

