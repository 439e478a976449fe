package vecmath

import "math"

// Vector3 is a direction in 3-space. It carries no implicit homogeneous
// weight, unlike Point3.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 builds a Vector3 from its three components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Reciprocal returns the component-wise reciprocal of v. Components of v
// that are zero produce +/-Inf, which the slab test (bbox.BBox.IntersectInterval) must
// and does handle correctly — it is never treated as an error here.
func (v Vector3) Reciprocal() Vector3 {
	return Vector3{X: 1.0 / v.X, Y: 1.0 / v.Y, Z: 1.0 / v.Z}
}

// Get returns the n-th component (0=X, 1=Y, 2=Z). Panics on n outside
// [0,2]; callers in this module only ever pass constant axis indices.
func (v Vector3) Get(n int) float32 {
	switch n {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("vecmath: Vector3.Get: axis out of range")
	}
}

// TransformDirection applies m to v as a direction (ignoring translation).
func (v Vector3) TransformDirection(m Matrix4x4) Vector3 {
	return Vector3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// LerpVector3 linearly interpolates between a and b by alpha in [0,1].
func LerpVector3(a, b Vector3, alpha float32) Vector3 {
	return Vector3{
		X: a.X*(1-alpha) + b.X*alpha,
		Y: a.Y*(1-alpha) + b.Y*alpha,
		Z: a.Z*(1-alpha) + b.Z*alpha,
	}
}
