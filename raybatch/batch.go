package raybatch

import "github.com/katalvlaran/lvlath/vecmath"

// RayBatch is a reusable, hot/cold-split collection of accelerator rays
// (spec.md §2 C5). It is reused across tiles via Clear, which retains
// capacity (spec.md §3 "Lifecycles").
type RayBatch struct {
	hot  []hotRay
	cold []coldRay
}

// New returns an empty RayBatch.
func New() *RayBatch {
	return &RayBatch{}
}

// WithCapacity returns an empty RayBatch with pre-allocated capacity
// for n rays.
func WithCapacity(n int) *RayBatch {
	return &RayBatch{
		hot:  make([]hotRay, 0, n),
		cold: make([]coldRay, 0, n),
	}
}

// Len returns the number of rays currently in the batch.
func (b *RayBatch) Len() int {
	return len(b.hot)
}

// Push appends ray to the batch, with world ray id id. Its local-space
// caches are undefined until SetFromRay or UpdateLocal is called for
// this index (spec.md §4.4).
func (b *RayBatch) Push(ray Ray, isOcclusion bool, id uint32) {
	var flags Flag
	if isOcclusion {
		flags = Occlusion
	}
	b.hot = append(b.hot, hotRay{
		origLocal:   ray.Orig, // bogus placeholder, see SetFromRay
		dirInvLocal: ray.Dir,  // bogus placeholder, see SetFromRay
		maxT:        ray.MaxT,
		time:        ray.Time,
		flags:       flags,
	})
	b.cold = append(b.cold, coldRay{
		orig:       ray.Orig,
		dir:        ray.Dir,
		wavelength: ray.Wavelength,
		id:         id,
	})
}

// SetFromRay fully (re-)initializes slot idx from ray, including the
// world-space reciprocal direction (spec.md §4.4). Callers descending
// into a transformed instance must follow with UpdateLocal.
func (b *RayBatch) SetFromRay(ray Ray, isOcclusion bool, id uint32, idx int) {
	var flags Flag
	if isOcclusion {
		flags = Occlusion
	}
	b.hot[idx] = hotRay{
		origLocal:   ray.Orig,
		dirInvLocal: ray.Dir.Reciprocal(),
		maxT:        ray.MaxT,
		time:        ray.Time,
		flags:       flags,
	}
	b.cold[idx] = coldRay{
		orig:       ray.Orig,
		dir:        ray.Dir,
		wavelength: ray.Wavelength,
		id:         id,
	}
}

// UpdateLocal recomputes orig_local and dir_inv_local from the stored
// world-space orig/dir under xform. Called on every transform-space
// transition (spec.md §4.4).
func (b *RayBatch) UpdateLocal(idx int, xform vecmath.Matrix4x4) {
	b.hot[idx].origLocal = b.cold[idx].orig.Transform(xform)
	b.hot[idx].dirInvLocal = b.cold[idx].dir.TransformDirection(xform).Reciprocal()
}

// Swap exchanges rays a and b in both the hot and cold arrays.
func (b *RayBatch) Swap(a, bIdx int) {
	b.hot[a], b.hot[bIdx] = b.hot[bIdx], b.hot[a]
	b.cold[a], b.cold[bIdx] = b.cold[bIdx], b.cold[a]
}

// Truncate shortens the batch to length n, acting on both arrays.
func (b *RayBatch) Truncate(n int) {
	b.hot = b.hot[:n]
	b.cold = b.cold[:n]
}

// Clear empties the batch while retaining underlying capacity.
func (b *RayBatch) Clear() {
	b.hot = b.hot[:0]
	b.cold = b.cold[:0]
}

// Reserve grows the batch's backing capacity to at least n without
// changing its length, so a subsequent run of Push calls up to n
// reuses the existing allocation.
func (b *RayBatch) Reserve(n int) {
	if cap(b.hot) < n {
		grown := make([]hotRay, len(b.hot), n)
		copy(grown, b.hot)
		b.hot = grown
	}
	if cap(b.cold) < n {
		grown := make([]coldRay, len(b.cold), n)
		copy(grown, b.cold)
		b.cold = grown
	}
}

//==========================================================
// Data access

// Orig returns the world-space origin of ray idx.
func (b *RayBatch) Orig(idx int) vecmath.Point3 { return b.cold[idx].orig }

// Dir returns the world-space direction of ray idx.
func (b *RayBatch) Dir(idx int) vecmath.Vector3 { return b.cold[idx].dir }

// OrigLocal returns the local-space origin of ray idx.
func (b *RayBatch) OrigLocal(idx int) vecmath.Point3 { return b.hot[idx].origLocal }

// DirInvLocal returns the local-space reciprocal direction of ray idx.
func (b *RayBatch) DirInvLocal(idx int) vecmath.Vector3 { return b.hot[idx].dirInvLocal }

// Time returns the shutter time of ray idx.
func (b *RayBatch) Time(idx int) float32 { return b.hot[idx].time }

// MaxT returns the current max parametric distance of ray idx.
func (b *RayBatch) MaxT(idx int) float32 { return b.hot[idx].maxT }

// SetMaxT updates the max parametric distance of ray idx. A ray whose
// max_t becomes negative is subsequently marked Done by the caller
// (spec.md §4.8); SetMaxT itself performs no such check.
func (b *RayBatch) SetMaxT(idx int, maxT float32) { b.hot[idx].maxT = maxT }

// Wavelength returns the spectral coordinate of ray idx.
func (b *RayBatch) Wavelength(idx int) float32 { return b.cold[idx].wavelength }

// ID returns the originating world-ray id of ray idx.
func (b *RayBatch) ID(idx int) uint32 { return b.cold[idx].id }

// IsOcclusion reports whether ray idx is an occlusion (shadow) ray.
func (b *RayBatch) IsOcclusion(idx int) bool { return b.hot[idx].flags&Occlusion != 0 }

// IsDone reports whether ray idx has finished traversal.
func (b *RayBatch) IsDone(idx int) bool { return b.hot[idx].flags&Done != 0 }

// MarkOcclusion sets the Occlusion flag on ray idx. Flags are
// monotonic: once set they remain set for the ray's current lifetime
// in the batch (spec.md §4.4).
func (b *RayBatch) MarkOcclusion(idx int) { b.hot[idx].flags |= Occlusion }

// MarkDone sets the Done flag on ray idx.
func (b *RayBatch) MarkDone(idx int) { b.hot[idx].flags |= Done }
