package tracer

import (
	"github.com/katalvlaran/lvlath/bvh"
	"github.com/katalvlaran/lvlath/raybatch"
	"github.com/katalvlaran/lvlath/rtlog"
	"github.com/katalvlaran/lvlath/rtstats"
	"github.com/katalvlaran/lvlath/scene"
	"github.com/katalvlaran/lvlath/vecmath"
	"github.com/katalvlaran/lvlath/xform"
)

// Tracer drives one or more Trace calls over a fixed root Assembly,
// reusing its ray batch and intersection buffer across calls the same
// way a RayBatch is reused across tiles (spec.md §4.7). A Tracer is not
// safe for concurrent use; callers wanting to trace several tiles
// concurrently give each tile its own Tracer over the same (immutable,
// shared) root Assembly.
type Tracer struct {
	root       *scene.Assembly
	xformStack *xform.Stack
	logger     rtlog.Logger

	batch  *raybatch.RayBatch
	isects []scene.SurfaceIntersection

	Stats rtstats.Counters
}

// New returns a Tracer over root.
func New(root *scene.Assembly, opts ...Option) *Tracer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tracer{
		root:       root,
		xformStack: xform.New(),
		logger:     cfg.logger,
		batch:      raybatch.New(),
	}
}

// Trace intersects every ray in wrays against t.root, returning one
// SurfaceIntersection per ray, indexed the same as wrays. The returned
// slice is owned by t and is only valid until the next Trace call
// (spec.md §4.4 "Lifecycles").
func (t *Tracer) Trace(wrays []raybatch.Ray) []scene.SurfaceIntersection {
	t.batch.Clear()
	t.batch.Reserve(len(wrays))
	for i, wr := range wrays {
		id := uint32(i)
		t.batch.Push(wr, false, id)
		t.batch.SetFromRay(wr, false, id, i)
	}

	t.isects = t.isects[:0]
	for range wrays {
		t.isects = append(t.isects, scene.SurfaceIntersection{})
	}

	t.logger.Debugf("tracer: tracing %d rays against root assembly", len(wrays))

	rays := raybatch.NewWindow(t.batch)
	t.traceAssembly(t.root, wrays, rays)

	return t.isects
}

// traceAssembly walks assembly's object accelerator, transforming rays
// into and back out of each instance's local space as needed, and
// dispatches surviving ray windows down into the instanced object or
// nested assembly (spec.md §4.7, grounded on the original's
// trace_assembly/split_rays_by_direction pairing).
func (t *Tracer) traceAssembly(assembly *scene.Assembly, wrays []raybatch.Ray, rays raybatch.Window) {
	stats := bvh.Traverse(assembly.ObjectAccel, rays, assembly.Instances, func(inst *scene.Instance, rs raybatch.Window) {
		transformed := inst.TransformRange != nil

		if transformed {
			xr := assembly.Xforms[inst.TransformRange.Start:inst.TransformRange.End]
			t.xformStack.Push(xr)
			t.applyTop(rs)
		}

		if transformed {
			octants := octantSplit(rs)
			for _, sub := range octants {
				if sub.Len == 0 {
					continue
				}
				t.dispatch(assembly, inst, wrays, sub)
			}
		} else {
			t.dispatch(assembly, inst, wrays, rs)
		}

		if transformed {
			t.xformStack.Pop()
			top := t.xformStack.Top()
			if len(top) > 0 {
				t.applyTop(rs)
			} else {
				t.restoreIdentity(rs)
			}
		}
	})

	t.Stats.Add(stats)
}

// dispatch sends rs into whichever child inst refers to.
func (t *Tracer) dispatch(assembly *scene.Assembly, inst *scene.Instance, wrays []raybatch.Ray, rs raybatch.Window) {
	switch inst.Kind {
	case scene.InstanceObject:
		t.traceObject(&assembly.Objects[inst.DataIndex], wrays, rs)
	case scene.InstanceAssembly:
		t.traceAssembly(assembly.Assemblies[inst.DataIndex], wrays, rs)
	}
}

// traceObject intersects rs against obj's surface, if any. A Light
// object contributes no ray/surface intersection (spec.md Non-goals:
// "rendering/shading output" — matching the original's own
// Object::Light(_) no-op).
func (t *Tracer) traceObject(obj *scene.Object, wrays []raybatch.Ray, rs raybatch.Window) {
	if obj.Surface == nil {
		return
	}
	obj.Surface.IntersectRays(rs, wrays, t.xformStack.Top(), t.isects)
}

// applyTop recomputes rs's local-space cache from the current top of
// the transform stack, lerping it to each ray's own shutter time.
func (t *Tracer) applyTop(rs raybatch.Window) {
	top := t.xformStack.Top()
	for i := 0; i < rs.Len; i++ {
		idx := rs.At(i)
		m := vecmath.LerpMatrixSlice(top, rs.Batch.Time(idx))
		rs.Batch.UpdateLocal(idx, m)
	}
}

// restoreIdentity recomputes rs's local-space cache directly from its
// stored world-space ray, used once the transform stack has unwound
// back to its root (no parent transform left in effect).
func (t *Tracer) restoreIdentity(rs raybatch.Window) {
	for i := 0; i < rs.Len; i++ {
		idx := rs.At(i)
		rs.Batch.UpdateLocal(idx, vecmath.Identity4x4)
	}
}
