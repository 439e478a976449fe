package bbox

import "github.com/katalvlaran/lvlath/vecmath"

// Lerp evaluates a motion slice (an ordered, equally-spaced-in-time
// []BBox of length N>=1) at shutter time t in [0,1], per spec.md §6:
//
//	N == 1:             slice[0]
//	N >= 2, i = floor(t*(N-1)), u = t*(N-1) - i:
//	                    slice[i]*(1-u) + slice[i+1]*u
//
// Precondition: len(slice) >= 1. A zero-length slice is a builder
// precondition violation (spec.md §7) and is never passed to Lerp by
// this module's own callers; Lerp panics rather than silently return a
// fabricated box.
func Lerp(slice []BBox, t float32) BBox {
	switch n := len(slice); {
	case n == 0:
		panic("bbox: Lerp called on an empty motion slice")
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
		return BBox{
			Min: vecmath.LerpPoint3(slice[i].Min, slice[i+1].Min, u),
			Max: vecmath.LerpPoint3(slice[i].Max, slice[i+1].Max, u),
		}
	}
}

// Resample returns a motion slice of length n sampling slice via Lerp
// at n equally spaced times in [0,1]. If slice already has length n it
// is returned unchanged (no copy). Used whenever two motion slices of
// differing sample counts must be combined sample-by-sample — BVH node
// construction and instance bounds both resample up to the longer of
// two operand lengths (spec.md §4.1/§4.6).
func Resample(slice []BBox, n int) []BBox {
	if len(slice) == n {
		return slice
	}

	out := make([]BBox, n)
	for k := 0; k < n; k++ {
		var t float32
		if n > 1 {
			t = float32(k) / float32(n-1)
		}
		out[k] = Lerp(slice, t)
	}

	return out
}
