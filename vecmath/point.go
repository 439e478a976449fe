package vecmath

// Point3 is a position in 3-space. Kept as a distinct type from Vector3
// so that point-minus-point yields a Vector3 and point-plus-vector
// yields a Point3, matching the original renderer's math module.
type Point3 struct {
	X, Y, Z float32
}

// NewPoint3 builds a Point3 from its three components.
func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns p translated by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from o to p.
func (p Point3) Sub(o Point3) Vector3 {
	return Vector3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// SubVector returns p translated by the negation of v.
func (p Point3) SubVector(v Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Min returns the component-wise minimum of p and o.
func (p Point3) Min(o Point3) Point3 {
	return Point3{X: minF32(p.X, o.X), Y: minF32(p.Y, o.Y), Z: minF32(p.Z, o.Z)}
}

// Max returns the component-wise maximum of p and o.
func (p Point3) Max(o Point3) Point3 {
	return Point3{X: maxF32(p.X, o.X), Y: maxF32(p.Y, o.Y), Z: maxF32(p.Z, o.Z)}
}

// Get returns the n-th component (0=X, 1=Y, 2=Z).
func (p Point3) Get(n int) float32 {
	switch n {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		panic("vecmath: Point3.Get: axis out of range")
	}
}

// Transform applies the affine transform m to p (as a row vector times
// matrix, i.e. p' = p * m), including translation.
func (p Point3) Transform(m Matrix4x4) Point3 {
	x := p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0]
	y := p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1]
	z := p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2]
	w := p.X*m[0][3] + p.Y*m[1][3] + p.Z*m[2][3] + m[3][3]
	if w != 1.0 && w != 0.0 {
		inv := 1.0 / w
		return Point3{X: x * inv, Y: y * inv, Z: z * inv}
	}
	return Point3{X: x, Y: y, Z: z}
}

// LerpPoint3 linearly interpolates between a and b by alpha in [0,1].
func LerpPoint3(a, b Point3, alpha float32) Point3 {
	return Point3{
		X: a.X*(1-alpha) + b.X*alpha,
		Y: a.Y*(1-alpha) + b.Y*alpha,
		Z: a.Z*(1-alpha) + b.Z*alpha,
	}
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
