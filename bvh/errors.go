package bvh

import "errors"

var (
	// ErrEmptyBounds is returned when an object's bounder function
	// yields a zero-length motion slice — every object must occupy at
	// least one sample in space (spec.md §4.1).
	ErrEmptyBounds = errors.New("bvh: object has an empty bounds slice")

	// ErrInvalidObjectsPerLeaf is returned when WithObjectsPerLeaf is
	// given a non-positive value.
	ErrInvalidObjectsPerLeaf = errors.New("bvh: objects-per-leaf must be positive")

	// ErrMaxDepthOutOfRange is returned when WithMaxDepth is given a
	// value outside (0, MaxDepth].
	ErrMaxDepthOutOfRange = errors.New("bvh: max depth out of range")

	// ErrDepthExceeded is returned when a build would require a tree
	// deeper than the configured maximum (spec.md §4.1 "Depth bound").
	ErrDepthExceeded = errors.New("bvh: construction exceeded max depth")
)
