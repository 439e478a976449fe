package bvh

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/bbox"
	"github.com/katalvlaran/lvlath/vecmath"
)

// FromObjects builds a BVH over objects, partitioning the slice in
// place by centroid (spec.md §4.1). bounder returns an object's
// motion bounds; every call must return at least one box. Objects
// whose motion slices have differing lengths are transparently
// resampled (via bbox.Lerp) up to the longest length seen, so that
// every BVH node can store one common-length motion slice.
//
// T is a type parameter rather than BVH itself being generic: node
// and bounds data are type-independent, and Go does not allow generic
// methods, so FromObjects and Traverse are free functions operating on
// a plain *BVH.
func FromObjects[T any](objects []T, bounder func(*T) []bbox.BBox, opts ...Option) (*BVH, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.objectsPerLeaf <= 0 {
		return nil, fmt.Errorf("bvh: FromObjects: %w", ErrInvalidObjectsPerLeaf)
	}
	if cfg.maxDepth <= 0 || cfg.maxDepth > MaxDepth {
		return nil, fmt.Errorf("bvh: FromObjects: %w", ErrMaxDepthOutOfRange)
	}
	if len(objects) == 0 {
		return &BVH{root: -1}, nil
	}

	bld := &builder[T]{objects: objects, bounder: bounder, cfg: cfg}
	if err := bld.prepare(); err != nil {
		return nil, err
	}

	root, err := bld.build(0, len(objects), 1)
	if err != nil {
		return nil, err
	}

	return &BVH{nodes: bld.nodes, bounds: bld.bounds, root: root, depth: bld.maxDepthSeen}, nil
}

// builder holds the scratch state of one FromObjects call. It is
// discarded once the BVH is returned.
type builder[T any] struct {
	objects []T
	bounder func(*T) []bbox.BBox
	cfg     config

	m        int             // common motion-slice length across all objects
	motion   [][]bbox.BBox   // per-object bounds, resampled to length m
	centroid []vecmath.Point3 // per-object centroid, used only for splitting

	nodes        []node
	bounds       []bbox.BBox
	maxDepthSeen int
}

func (bld *builder[T]) prepare() error {
	n := len(bld.objects)
	raw := make([][]bbox.BBox, n)
	m := 0
	for i := range bld.objects {
		b := bld.bounder(&bld.objects[i])
		if len(b) == 0 {
			return fmt.Errorf("bvh: FromObjects: object %d: %w", i, ErrEmptyBounds)
		}
		raw[i] = b
		if len(b) > m {
			m = len(b)
		}
	}

	bld.m = m
	bld.motion = make([][]bbox.BBox, n)
	bld.centroid = make([]vecmath.Point3, n)
	for i := range bld.objects {
		bld.motion[i] = bbox.Resample(raw[i], m)
		union := bbox.Empty()
		for _, b := range bld.motion[i] {
			union = union.Union(b)
		}
		bld.centroid[i] = union.Centroid()
	}

	return nil
}

// build constructs the subtree over objects[lo:hi] and returns its
// node index. depth counts levels from the root, inclusive (the root
// itself is depth 1).
func (bld *builder[T]) build(lo, hi, depth int) (int, error) {
	if depth > bld.cfg.maxDepth {
		return -1, fmt.Errorf("bvh: FromObjects: %w", ErrDepthExceeded)
	}
	if depth > bld.maxDepthSeen {
		bld.maxDepthSeen = depth
	}

	boundsStart := len(bld.bounds)
	for k := 0; k < bld.m; k++ {
		u := bbox.Empty()
		for i := lo; i < hi; i++ {
			u = u.Union(bld.motion[i][k])
		}
		bld.bounds = append(bld.bounds, u)
	}

	if hi-lo <= bld.cfg.objectsPerLeaf {
		idx := len(bld.nodes)
		bld.nodes = append(bld.nodes, node{
			kind:        nodeLeaf,
			boundsStart: boundsStart,
			boundsLen:   bld.m,
			objStart:    lo,
			objEnd:      hi,
		})

		return idx, nil
	}

	midTimeBox := bld.bounds[boundsStart+bld.m/2]
	axis := midTimeBox.LongestAxis()

	sort.Sort(objView[T]{bld: bld, lo: lo, hi: hi, axis: axis})
	mid := lo + (hi-lo)/2

	leftIdx, err := bld.build(lo, mid, depth+1)
	if err != nil {
		return -1, err
	}
	rightIdx, err := bld.build(mid, hi, depth+1)
	if err != nil {
		return -1, err
	}

	idx := len(bld.nodes)
	bld.nodes = append(bld.nodes, node{
		kind:        nodeInternal,
		boundsStart: boundsStart,
		boundsLen:   bld.m,
		splitAxis:   axis,
		left:        leftIdx,
		right:       rightIdx,
	})

	return idx, nil
}

// objView adapts a builder's parallel object/centroid/motion arrays to
// sort.Interface so the standard library sort can partition objects by
// centroid along axis without a bespoke swap-three-slices routine at
// every call site.
type objView[T any] struct {
	bld  *builder[T]
	lo   int
	hi   int
	axis int
}

func (v objView[T]) Len() int { return v.hi - v.lo }

func (v objView[T]) Less(i, j int) bool {
	return v.bld.centroid[v.lo+i].Get(v.axis) < v.bld.centroid[v.lo+j].Get(v.axis)
}

func (v objView[T]) Swap(i, j int) {
	a, b := v.lo+i, v.lo+j
	v.bld.objects[a], v.bld.objects[b] = v.bld.objects[b], v.bld.objects[a]
	v.bld.centroid[a], v.bld.centroid[b] = v.bld.centroid[b], v.bld.centroid[a]
	v.bld.motion[a], v.bld.motion[b] = v.bld.motion[b], v.bld.motion[a]
}
