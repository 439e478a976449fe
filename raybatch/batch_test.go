package raybatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/raybatch"
	"github.com/katalvlaran/lvlath/vecmath"
)

func sampleRay(x float32) raybatch.Ray {
	return raybatch.Ray{
		Orig:       vecmath.NewPoint3(x, 0, 0),
		Dir:        vecmath.NewVector3(0, 0, 1),
		Time:       0.5,
		Wavelength: 550,
		MaxT:       1000,
	}
}

func TestPushAndSync(t *testing.T) {
	b := raybatch.New()
	b.Push(sampleRay(1), false, 0)
	b.Push(sampleRay(2), true, 1)

	require.Equal(t, 2, b.Len())
	assert.False(t, b.IsOcclusion(0))
	assert.True(t, b.IsOcclusion(1))
	assert.False(t, b.IsDone(0))
}

func TestSetFromRay(t *testing.T) {
	b := raybatch.New()
	b.Push(sampleRay(1), false, 0)

	b.SetFromRay(raybatch.Ray{
		Orig: vecmath.NewPoint3(0, 0, -5),
		Dir:  vecmath.NewVector3(0, 0, 2),
		Time: 0.1,
		MaxT: 50,
	}, false, 7, 0)

	assert.Equal(t, float32(50), b.MaxT(0))
	assert.Equal(t, uint32(7), b.ID(0))
	// dir_inv_local should be the reciprocal of the world-space
	// direction at this point (no transform applied yet).
	assert.InDelta(t, 0.5, b.DirInvLocal(0).Z, 1e-6)
}

func TestUpdateLocal(t *testing.T) {
	b := raybatch.New()
	b.Push(sampleRay(3), false, 0)
	b.SetFromRay(sampleRay(3), false, 0, 0)

	xform := vecmath.Matrix4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{-3, 0, 0, 1}, // translate by (-3,0,0)
	}
	b.UpdateLocal(0, xform)

	local := b.OrigLocal(0)
	assert.InDelta(t, 0.0, local.X, 1e-5)
}

func TestSwapTruncateClear(t *testing.T) {
	b := raybatch.New()
	b.Push(sampleRay(1), false, 11)
	b.Push(sampleRay(2), false, 22)
	b.Push(sampleRay(3), false, 33)

	b.Swap(0, 2)
	assert.Equal(t, uint32(33), b.ID(0))
	assert.Equal(t, uint32(11), b.ID(2))

	b.Truncate(2)
	assert.Equal(t, 2, b.Len())

	b.Clear()
	assert.Equal(t, 0, b.Len())
}

func TestFlagsAreMonotonic(t *testing.T) {
	b := raybatch.New()
	b.Push(sampleRay(1), false, 0)

	b.MarkDone(0)
	b.MarkOcclusion(0)
	assert.True(t, b.IsDone(0))
	assert.True(t, b.IsOcclusion(0))

	// Marking again is a no-op, not a reversal.
	b.MarkDone(0)
	assert.True(t, b.IsDone(0))
}

func TestWindowPartition(t *testing.T) {
	b := raybatch.New()
	for i := uint32(0); i < 6; i++ {
		b.Push(sampleRay(float32(i)), false, i)
	}

	w := raybatch.NewWindow(b)
	p := w.Partition(func(idx int) bool {
		return b.ID(idx)%2 == 0
	})

	assert.Equal(t, 3, p)
	for i := 0; i < p; i++ {
		assert.Equal(t, uint32(0), b.ID(i)%2)
	}
	for i := p; i < 6; i++ {
		assert.Equal(t, uint32(1), b.ID(i)%2)
	}
}

func TestWindowSub(t *testing.T) {
	b := raybatch.New()
	for i := uint32(0); i < 5; i++ {
		b.Push(sampleRay(float32(i)), false, i)
	}

	full := raybatch.NewWindow(b)
	sub := full.Sub(2, 2)
	assert.Equal(t, 2, sub.At(0))
	assert.Equal(t, 3, sub.At(1))
}
