package raybatch

import "github.com/katalvlaran/lvlath/vecmath"

// Ray is the world-space ray a sampler hands to the tracer. It is never
// used directly during traversal — it only ever fills a RayBatch slot
// (spec.md §3 "Ray (input)").
type Ray struct {
	Orig       vecmath.Point3
	Dir        vecmath.Vector3
	Time       float32 // shutter time, in [0,1]
	Wavelength float32 // scalar spectral coordinate
	MaxT       float32
}
