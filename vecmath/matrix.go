package vecmath

// Matrix4x4 is a row-major 4x4 transform matrix. Points are transformed
// as row vectors: p' = p * m. Composition follows the same convention,
// so Multiply(a, b) yields the matrix that applies a first, then b:
// p*(Multiply(a,b)) == (p*a)*b.
type Matrix4x4 [4][4]float32

// Identity4x4 is the multiplicative identity.
var Identity4x4 = Matrix4x4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Multiply returns the matrix product that applies a then b.
func Multiply(a, b Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			var sum float32
			for j := 0; j < 4; j++ {
				sum += a[i][j] * b[j][k]
			}
			out[i][k] = sum
		}
	}
	return out
}

// LerpMatrix4x4 linearly interpolates between a and b, component-wise,
// by alpha in [0,1]. Used to resample a motion-transform slice to a new
// sample count (§4.6) the same way bbox.Lerp resamples bounding boxes.
func LerpMatrix4x4(a, b Matrix4x4, alpha float32) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j]*(1-alpha) + b[i][j]*alpha
		}
	}
	return out
}

// LerpMatrixSlice evaluates a motion slice of matrices at time t in
// [0,1], the matrix analogue of bbox.Lerp.
func LerpMatrixSlice(slice []Matrix4x4, t float32) Matrix4x4 {
	switch n := len(slice); {
	case n == 0:
		panic("vecmath: LerpMatrixSlice called on an empty motion slice")
	case n == 1:
		return slice[0]
	default:
		scaled := t * float32(n-1)
		i := int(scaled)
		if i >= n-1 {
			i = n - 2
		}
		if i < 0 {
			i = 0
		}
		u := scaled - float32(i)
		return LerpMatrix4x4(slice[i], slice[i+1], u)
	}
}

// ResampleMatrices returns a motion slice of length n sampling slice
// via LerpMatrixSlice at n equally spaced times in [0,1]. If slice
// already has length n it is returned unchanged.
func ResampleMatrices(slice []Matrix4x4, n int) []Matrix4x4 {
	if len(slice) == n {
		return slice
	}

	out := make([]Matrix4x4, n)
	for k := 0; k < n; k++ {
		var t float32
		if n > 1 {
			t = float32(k) / float32(n-1)
		}
		out[k] = LerpMatrixSlice(slice, t)
	}

	return out
}
