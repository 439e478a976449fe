package xform

import "github.com/katalvlaran/lvlath/vecmath"

// Stack composes nested instance transforms as the tracer descends
// into an assembly graph (spec.md §4.6). Each frame is a motion slice
// (one matrix per time sample); Push composes a new frame with the
// current top of stack, Pop discards back to the previous frame, and
// Top reads the composed result without copying.
type Stack struct {
	stack        []vecmath.Matrix4x4
	stackIndices []int
	scratch      []vecmath.Matrix4x4
}

// New returns a transform stack containing the identity frame.
func New() *Stack {
	s := &Stack{}
	s.stackIndices = append(s.stackIndices, 0, 0)

	return s
}

// Push composes xforms (a non-empty motion slice) with the current
// top frame and pushes the result as the new top frame. If xforms and
// the current top frame have differing sample counts, the shorter one
// is resampled (via vecmath's motion lerp) up to the longer length
// before the pairwise multiply (spec.md §4.6 "Resolved": resample
// length = max(n1, n2)).
func (s *Stack) Push(xforms []vecmath.Matrix4x4) {
	if len(xforms) == 0 {
		panic("xform: Push requires a non-empty motion slice")
	}

	if len(s.stack) == 0 {
		s.stack = append(s.stack, xforms...)
	} else {
		parent := s.Top()
		s.scratch = multiplyMatrixSlices(parent, xforms, s.scratch[:0])
		s.stack = append(s.stack, s.scratch...)
	}

	s.stackIndices = append(s.stackIndices, len(s.stack))
}

// Pop discards the current top frame, restoring the previous one.
func (s *Stack) Pop() {
	if len(s.stackIndices) <= 2 {
		panic("xform: Pop called on a stack with no pushed frames")
	}

	sil := len(s.stackIndices)
	i1, i2 := s.stackIndices[sil-2], s.stackIndices[sil-1]
	s.stack = s.stack[:len(s.stack)-(i2-i1)]
	s.stackIndices = s.stackIndices[:sil-1]
}

// Top returns the current composed motion slice. The identity stack
// (no frames pushed) returns an empty slice.
func (s *Stack) Top() []vecmath.Matrix4x4 {
	sil := len(s.stackIndices)
	i1, i2 := s.stackIndices[sil-2], s.stackIndices[sil-1]

	return s.stack[i1:i2]
}

// multiplyMatrixSlices composes a and b element-wise as a applied then
// b, resampling the shorter slice up to len(a) or len(b), whichever is
// longer (spec.md §4.6 "Resolved": resample length = max(n1, n2)), and
// appends the result to out.
func multiplyMatrixSlices(a, b []vecmath.Matrix4x4, out []vecmath.Matrix4x4) []vecmath.Matrix4x4 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	ra := vecmath.ResampleMatrices(a, n)
	rb := vecmath.ResampleMatrices(b, n)
	for k := 0; k < n; k++ {
		out = append(out, vecmath.Multiply(ra[k], rb[k]))
	}

	return out
}
