package bvh_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/bvh"
	"github.com/katalvlaran/lvlath/raybatch"
	"github.com/katalvlaran/lvlath/vecmath"
)

// BenchmarkBVH_TraverseGrid1000 measures batched traversal cost against
// a 1,000-cube grid, one ray per cube's center, aimed straight through
// it down +z. Complexity: building the tree is O(N log N); traversing
// N rays against it is O(N log N) node visits in the well-balanced case.
func BenchmarkBVH_TraverseGrid1000(b *testing.B) {
	const n = 1000
	cubes := make([]cubeObj, n)
	for i := 0; i < n; i++ {
		cubes[i] = cubeAt(i, float32(i)*2)
	}

	accel, err := bvh.FromObjects(cubes, boundCube, bvh.WithObjectsPerLeaf(4))
	if err != nil {
		b.Fatal(err)
	}

	batch := raybatch.New()
	for i := 0; i < n; i++ {
		ray := raybatch.Ray{
			Orig: vecmath.NewPoint3(float32(i)*2+0.5, 0.5, -5),
			Dir:  vecmath.NewVector3(0, 0, 1),
			MaxT: 100,
		}
		batch.Push(ray, false, uint32(i))
		batch.SetFromRay(ray, false, uint32(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bvh.Traverse(accel, raybatch.NewWindow(batch), cubes, func(c *cubeObj, rs raybatch.Window) {})
	}
}
