package scene

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvlath/bbox"
	"github.com/katalvlaran/lvlath/bvh"
	"github.com/katalvlaran/lvlath/vecmath"
)

// Assembly is a scene-graph node: a set of objects and nested
// assemblies, placed via instances under an optional motion transform,
// accelerated by a BVH over those instances (spec.md §6). Once built,
// an Assembly's Instances slice is reordered in place (by bvh.FromObjects)
// to match the accelerator's leaf ranges, and is otherwise immutable.
type Assembly struct {
	Objects    []Object
	Assemblies []*Assembly
	Instances  []Instance
	Xforms     []vecmath.Matrix4x4

	ObjectAccel *bvh.BVH
}

// Option configures Assembly construction; it is an alias of bvh.Option
// so scene callers tune accelerator shape (leaf size, max depth)
// without importing bvh directly (spec.md §7.2: options declared
// beside the type they configure).
type Option = bvh.Option

// NewAssembly builds the object accelerator over instances and
// returns the finished Assembly. instances is taken by value and
// reordered in place by the accelerator build, exactly like
// bvh.FromObjects reorders any object slice it's given.
func NewAssembly(objects []Object, assemblies []*Assembly, instances []Instance, xforms []vecmath.Matrix4x4, opts ...Option) (*Assembly, error) {
	for i := range instances {
		instances[i].resolveBounds(objects, assemblies, xforms)
	}

	accel, err := bvh.FromObjects(instances, (*Instance).Bounds, opts...)
	if err != nil {
		return nil, fmt.Errorf("scene: NewAssembly: %w", err)
	}

	return &Assembly{
		Objects:     objects,
		Assemblies:  assemblies,
		Instances:   instances,
		Xforms:      xforms,
		ObjectAccel: accel,
	}, nil
}

// Bounds returns the assembly's root motion slice, so an Assembly can
// itself be instanced inside a parent assembly.
func (a *Assembly) Bounds() []bbox.BBox {
	return a.ObjectAccel.Bounds()
}

// FlattenInstances returns every instance transitively reachable from
// a, paired with the assembly that directly owns it — a diagnostic/
// debugging helper (scene statistics, visualization dumps), not used
// on the tracer's hot path.
func (a *Assembly) FlattenInstances() []InstanceRef {
	direct := lo.Map(a.Instances, func(inst Instance, i int) InstanceRef {
		return InstanceRef{Owner: a, Instance: &a.Instances[i]}
	})

	nested := lo.FlatMap(a.Assemblies, func(child *Assembly, _ int) []InstanceRef {
		return child.FlattenInstances()
	})

	return append(direct, nested...)
}

// InstanceRef pairs an Instance with the Assembly that owns it, as
// returned by FlattenInstances.
type InstanceRef struct {
	Owner    *Assembly
	Instance *Instance
}
