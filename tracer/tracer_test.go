package tracer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/raybatch"
	"github.com/katalvlaran/lvlath/scene"
	"github.com/katalvlaran/lvlath/tracer"
	"github.com/katalvlaran/lvlath/vecmath"
)

func translate(x, y, z float32) vecmath.Matrix4x4 {
	m := vecmath.Identity4x4
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func TestTrace_UntransformedSphereHitAndMiss(t *testing.T) {
	objects := []scene.Object{{Surface: &scene.Sphere{ID: 7, Radius: 1}}}
	instances := []scene.Instance{{Kind: scene.InstanceObject, DataIndex: 0}}
	asm, err := scene.NewAssembly(objects, nil, instances, nil)
	require.NoError(t, err)

	tr := tracer.New(asm)
	isects := tr.Trace([]raybatch.Ray{
		{Orig: vecmath.NewPoint3(0, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
		{Orig: vecmath.NewPoint3(5, 5, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
	})

	require.Len(t, isects, 2)
	assert.True(t, isects[0].Hit)
	assert.InDelta(t, 4.0, isects[0].T, 1e-4)
	assert.False(t, isects[1].Hit)
}

func TestTrace_TransformedInstanceHitsAtTranslatedPosition(t *testing.T) {
	objects := []scene.Object{{Surface: &scene.Sphere{ID: 1, Radius: 1}}}
	xforms := []vecmath.Matrix4x4{translate(5, 0, 0)}
	instances := []scene.Instance{{
		Kind:           scene.InstanceObject,
		DataIndex:      0,
		TransformRange: &scene.IndexRange{Start: 0, End: 1},
	}}
	asm, err := scene.NewAssembly(objects, nil, instances, xforms)
	require.NoError(t, err)

	tr := tracer.New(asm)

	// A ray straight down the original object's local axis must miss,
	// since the instance now lives at world x=5.
	missed := tr.Trace([]raybatch.Ray{
		{Orig: vecmath.NewPoint3(0, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
	})
	assert.False(t, missed[0].Hit)

	// A ray aimed at the translated position must hit.
	hit := tr.Trace([]raybatch.Ray{
		{Orig: vecmath.NewPoint3(5, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
	})
	require.True(t, hit[0].Hit)
	assert.InDelta(t, 4.0, hit[0].T, 1e-4)
}

func TestTrace_MultipleInstancesMixedDirectionsRestoreWorldSpace(t *testing.T) {
	// Two instances of the same sphere, translated to opposite sides,
	// traced with rays travelling in opposite directions — exercises
	// the octant split's per-direction-sign regrouping.
	objects := []scene.Object{{Surface: &scene.Sphere{ID: 1, Radius: 1}}}
	xforms := []vecmath.Matrix4x4{translate(-5, 0, 0), translate(5, 0, 0)}
	instances := []scene.Instance{
		{Kind: scene.InstanceObject, DataIndex: 0, TransformRange: &scene.IndexRange{Start: 0, End: 1}},
		{Kind: scene.InstanceObject, DataIndex: 0, TransformRange: &scene.IndexRange{Start: 1, End: 2}},
	}
	asm, err := scene.NewAssembly(objects, nil, instances, xforms)
	require.NoError(t, err)

	tr := tracer.New(asm)
	isects := tr.Trace([]raybatch.Ray{
		{Orig: vecmath.NewPoint3(-5, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
		{Orig: vecmath.NewPoint3(5, 0, 5), Dir: vecmath.NewVector3(0, 0, -1), MaxT: 1000},
	})

	require.Len(t, isects, 2)
	assert.True(t, isects[0].Hit)
	assert.True(t, isects[1].Hit)
}

func TestTrace_NestedAssemblyRecursion(t *testing.T) {
	childObjects := []scene.Object{{Surface: &scene.Sphere{ID: 1, Radius: 1}}}
	childInstances := []scene.Instance{{Kind: scene.InstanceObject, DataIndex: 0}}
	child, err := scene.NewAssembly(childObjects, nil, childInstances, nil)
	require.NoError(t, err)

	xforms := []vecmath.Matrix4x4{translate(0, 0, 10)}
	parentInstances := []scene.Instance{{
		Kind:           scene.InstanceAssembly,
		DataIndex:      0,
		TransformRange: &scene.IndexRange{Start: 0, End: 1},
	}}
	parent, err := scene.NewAssembly(nil, []*scene.Assembly{child}, parentInstances, xforms)
	require.NoError(t, err)

	tr := tracer.New(parent)
	isects := tr.Trace([]raybatch.Ray{
		{Orig: vecmath.NewPoint3(0, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
	})

	require.True(t, isects[0].Hit)
	assert.InDelta(t, 14.0, isects[0].T, 1e-4)
}

func TestTrace_EmptySceneMissesEverything(t *testing.T) {
	asm, err := scene.NewAssembly(nil, nil, nil, nil)
	require.NoError(t, err)

	tr := tracer.New(asm)
	isects := tr.Trace([]raybatch.Ray{
		{Orig: vecmath.NewPoint3(0, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
	})

	assert.False(t, isects[0].Hit)
}

func TestTrace_ReusesStateAcrossCalls(t *testing.T) {
	objects := []scene.Object{{Surface: &scene.Sphere{ID: 1, Radius: 1}}}
	instances := []scene.Instance{{Kind: scene.InstanceObject, DataIndex: 0}}
	asm, err := scene.NewAssembly(objects, nil, instances, nil)
	require.NoError(t, err)

	tr := tracer.New(asm)
	for i := 0; i < 3; i++ {
		isects := tr.Trace([]raybatch.Ray{
			{Orig: vecmath.NewPoint3(0, 0, -5), Dir: vecmath.NewVector3(0, 0, 1), MaxT: 1000},
		})
		require.True(t, isects[0].Hit)
	}

	assert.Greater(t, tr.Stats.NodeTests, uint64(0))
}
