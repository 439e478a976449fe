package bbox_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/bbox"
	"github.com/katalvlaran/lvlath/vecmath"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) bbox.BBox {
	return bbox.BBox{
		Min: vecmath.NewPoint3(minX, minY, minZ),
		Max: vecmath.NewPoint3(maxX, maxY, maxZ),
	}
}

func TestEmpty(t *testing.T) {
	e := bbox.Empty()
	assert.True(t, e.IsEmpty())

	unit := box(-1, -1, -1, 1, 1, 1)
	assert.False(t, unit.IsEmpty())
}

func TestUnion(t *testing.T) {
	a := box(-1, -1, -1, 0, 0, 0)
	b := box(0, 0, 0, 2, 2, 2)

	u := a.Union(b)
	assert.Equal(t, box(-1, -1, -1, 2, 2, 2), u)

	// Union with empty is the identity.
	assert.Equal(t, a, a.Union(bbox.Empty()))
	assert.Equal(t, a, bbox.Empty().Union(a))
}

func TestLongestAxis(t *testing.T) {
	b := box(0, 0, 0, 1, 5, 2)
	assert.Equal(t, 1, b.LongestAxis())
}

func TestIntersectInterval_Hit(t *testing.T) {
	unit := box(-1, -1, -1, 1, 1, 1)

	orig := vecmath.NewPoint3(0, 0, -5)
	dirInv := vecmath.NewVector3(0, 0, 1).Reciprocal()

	tMin, tMax, hit := unit.IntersectInterval(orig, dirInv, 100)
	require.True(t, hit)
	assert.InDelta(t, 4.0, tMin, 1e-5)
	assert.InDelta(t, 6.0, tMax, 1e-5)
}

func TestIntersectInterval_Miss(t *testing.T) {
	unit := box(-1, -1, -1, 1, 1, 1)

	orig := vecmath.NewPoint3(10, 10, -5)
	dirInv := vecmath.NewVector3(0, 0, 1).Reciprocal()

	_, _, hit := unit.IntersectInterval(orig, dirInv, 100)
	assert.False(t, hit)
}

func TestIntersectInterval_NegativeMaxTNeverHits(t *testing.T) {
	unit := box(-1, -1, -1, 1, 1, 1)
	orig := vecmath.NewPoint3(0, 0, -5)
	dirInv := vecmath.NewVector3(0, 0, 1).Reciprocal()

	_, _, hit := unit.IntersectInterval(orig, dirInv, -1)
	assert.False(t, hit)
}

func TestIntersectInterval_EmptyBoxAlwaysMisses(t *testing.T) {
	orig := vecmath.NewPoint3(0, 0, -5)
	dirInv := vecmath.NewVector3(0, 0, 1).Reciprocal()

	_, _, hit := bbox.Empty().IntersectInterval(orig, dirInv, 100)
	assert.False(t, hit)
}

func TestIntersectInterval_DegenerateAxisPassesThrough(t *testing.T) {
	// Ray direction has a zero Y component and origin exactly on the
	// box's Y boundary plane; the degenerate axis must not turn the
	// whole test into a NaN-propagated miss.
	unit := box(-1, -1, -1, 1, 1, 1)
	orig := vecmath.NewPoint3(0, 1, -5)
	dir := vecmath.NewVector3(0, 0, 1)

	_, _, hit := unit.IntersectInterval(orig, dir.Reciprocal(), 100)
	assert.True(t, hit)
}

func TestLerp_SingleSample(t *testing.T) {
	only := box(0, 0, 0, 1, 1, 1)
	assert.Equal(t, only, bbox.Lerp([]bbox.BBox{only}, 0.37))
}

func TestLerp_TwoSamples(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(10, 0, 0, 11, 1, 1)
	slice := []bbox.BBox{a, b}

	assert.Equal(t, a, bbox.Lerp(slice, 0.0))
	assert.Equal(t, b, bbox.Lerp(slice, 1.0))

	mid := bbox.Lerp(slice, 0.5)
	assert.InDelta(t, 5.0, mid.Min.X, 1e-5)
	assert.InDelta(t, 6.0, mid.Max.X, 1e-5)
}

func TestLerp_EmptySlicePanics(t *testing.T) {
	assert.Panics(t, func() {
		bbox.Lerp(nil, 0.5)
	})
}

func TestIntersectInterval_InfiniteReciprocal(t *testing.T) {
	// Reciprocal of a zero direction component is +/-Inf; the slab test
	// must still behave correctly rather than producing NaN results.
	unit := box(-1, -1, -1, 1, 1, 1)
	dirInv := vecmath.NewVector3(float32(math.Inf(1)), 1, 1)
	orig := vecmath.NewPoint3(0, 0, 0)

	_, _, hit := unit.IntersectInterval(orig, dirInv, 100)
	assert.True(t, hit)
}
