package bvh

import "github.com/katalvlaran/lvlath/bbox"

// MaxDepth is the hard compile-time ceiling on tree depth (spec.md
// §4.1); it sizes the fixed traversal stacks in Traverse. A built
// BVH's own depth is always <= MaxDepth, and is further bounded by
// whatever smaller limit its config.maxDepth requested.
const MaxDepth = 64

type nodeKind uint8

const (
	nodeInternal nodeKind = iota
	nodeLeaf
)

// node is one entry of the flat, slice-backed node arena. Internal and
// leaf nodes share the bounds range and differ in what the rest of the
// fields mean, mirroring the teacher's tagged representation without a
// Go-side enum (Go has no sum types; a kind tag plus unused-field
// discipline is the idiomatic substitute).
type node struct {
	kind        nodeKind
	boundsStart int
	boundsLen   int
	splitAxis   int // internal only: 0=X, 1=Y, 2=Z
	left, right int // internal only: indices into BVH.nodes
	objStart    int // leaf only: start index into the caller's object slice
	objEnd      int // leaf only: end index (exclusive)
}

// BVH is an immutable bounding volume hierarchy built by FromObjects.
// The node and bounds arenas are plain slices; Go's garbage collector
// owns their lifetime, standing in for the arena allocator the
// original ports from.
type BVH struct {
	nodes  []node
	bounds []bbox.BBox
	root   int // -1 for an empty BVH
	depth  int
}

// TreeDepth returns the number of levels from the root to the deepest
// leaf, inclusive. An empty BVH has depth 0.
func (b *BVH) TreeDepth() int {
	return b.depth
}

// IsEmpty reports whether the BVH holds zero objects.
func (b *BVH) IsEmpty() bool {
	return b.root < 0
}

// Bounds returns the BVH's root motion slice, so a BVH can itself
// serve as a bbox.Boundable when embedded in a parent structure (spec.md
// §4.1). An empty BVH returns a single degenerate (empty) box, since a
// motion slice may never be zero-length.
func (b *BVH) Bounds() []bbox.BBox {
	if b.root < 0 {
		return []bbox.BBox{bbox.Empty()}
	}
	n := b.nodes[b.root]

	return b.bounds[n.boundsStart : n.boundsStart+n.boundsLen]
}

// config holds FromObjects' tunables, set via Option (spec.md §4.1
// "Resolved": functional options, declared beside the type they
// configure, following the teacher's builder.BuilderOption/matrix.Option
// placement rather than a shared options package).
type config struct {
	objectsPerLeaf int
	maxDepth       int
}

func defaultConfig() config {
	return config{objectsPerLeaf: 4, maxDepth: MaxDepth}
}

// Option configures a FromObjects build.
type Option func(*config)

// WithObjectsPerLeaf sets the maximum object count a leaf may hold
// before it is split. The default is 4.
func WithObjectsPerLeaf(n int) Option {
	return func(c *config) { c.objectsPerLeaf = n }
}

// WithMaxDepth caps the tree depth FromObjects will build to, tighter
// than the package-wide MaxDepth if desired. The default is MaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}
