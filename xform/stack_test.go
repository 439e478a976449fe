package xform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/vecmath"
	"github.com/katalvlaran/lvlath/xform"
)

func translate(x, y, z float32) vecmath.Matrix4x4 {
	m := vecmath.Identity4x4
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z

	return m
}

func TestPushSingleFrame(t *testing.T) {
	s := xform.New()
	s.Push([]vecmath.Matrix4x4{translate(1, 0, 0)})

	top := s.Top()
	require.Len(t, top, 1)

	p := vecmath.NewPoint3(0, 0, 0).Transform(top[0])
	assert.Equal(t, float32(1), p.X)
}

func TestPushComposesWithParent(t *testing.T) {
	s := xform.New()
	s.Push([]vecmath.Matrix4x4{translate(1, 0, 0)})
	s.Push([]vecmath.Matrix4x4{translate(0, 2, 0)})

	top := s.Top()
	require.Len(t, top, 1)

	p := vecmath.NewPoint3(0, 0, 0).Transform(top[0])
	assert.Equal(t, float32(1), p.X)
	assert.Equal(t, float32(2), p.Y)
}

func TestPopRestoresParent(t *testing.T) {
	s := xform.New()
	s.Push([]vecmath.Matrix4x4{translate(1, 0, 0)})
	s.Push([]vecmath.Matrix4x4{translate(0, 2, 0)})

	s.Pop()
	top := s.Top()
	require.Len(t, top, 1)

	p := vecmath.NewPoint3(0, 0, 0).Transform(top[0])
	assert.Equal(t, float32(1), p.X)
	assert.Equal(t, float32(0), p.Y)
}

func TestPushResamplesShorterMotionSlice(t *testing.T) {
	s := xform.New()
	// Parent has 2 motion samples; child has 1 (static). The child
	// should resample up to 2 to match the longer slice.
	s.Push([]vecmath.Matrix4x4{translate(0, 0, 0), translate(2, 0, 0)})
	s.Push([]vecmath.Matrix4x4{translate(0, 1, 0)})

	top := s.Top()
	require.Len(t, top, 2)

	p0 := vecmath.NewPoint3(0, 0, 0).Transform(top[0])
	p1 := vecmath.NewPoint3(0, 0, 0).Transform(top[1])
	assert.Equal(t, float32(0), p0.X)
	assert.Equal(t, float32(1), p0.Y)
	assert.Equal(t, float32(2), p1.X)
	assert.Equal(t, float32(1), p1.Y)
}

func TestPopPanicsWhenEmpty(t *testing.T) {
	s := xform.New()
	assert.Panics(t, func() { s.Pop() })
}

func TestPushEmptyPanics(t *testing.T) {
	s := xform.New()
	assert.Panics(t, func() { s.Push(nil) })
}
