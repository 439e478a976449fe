// Package vecmath provides the fixed-size, 32-bit-float geometric
// primitives shared by the ray-batch traversal core: 3-vectors, points,
// and 4x4 transform matrices. The slab ray/box interval test built on
// them lives in package bbox.
//
// Every type here is a small value type with no heap allocation on the
// hot path: Point3 and Vector3 are three float32s, Matrix4x4 is sixteen.
// Operations are plain scalar arithmetic rather than a SIMD-backed
// implementation — see DESIGN.md for why no third-party numeric
// dependency is wired in here.
package vecmath
