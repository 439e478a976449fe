package tracer

import "github.com/katalvlaran/lvlath/raybatch"

// octantSplit partitions rays into the 8 sub-windows grouped by
// direction-sign octant ((x,y,z) each +/-), restoring the single-
// ray-sign-per-call invariant bvh.Traverse relies on after a transform
// may have scrambled a shared sign pattern across the batch (spec.md
// §4.7). Octant order matches the bit layout sign(x)<<2|sign(y)<<1|sign(z),
// with "negative" as bit 1, so window 0 holds the all-positive rays — the same three nested two-way partitions as
// a BVH build's own axis split, just unrolled across all three axes at
// once.
//
//	|   |   |   |   |   |   |   |   |
//	    s1  s2  s3  s4  s5  s6  s7
func octantSplit(rays raybatch.Window) [8]raybatch.Window {
	posX := func(absIdx int) bool { return rays.Batch.DirInvLocal(absIdx).X >= 0 }
	posY := func(absIdx int) bool { return rays.Batch.DirInvLocal(absIdx).Y >= 0 }
	posZ := func(absIdx int) bool { return rays.Batch.DirInvLocal(absIdx).Z >= 0 }

	s4 := rays.Partition(posX)

	s2 := rays.Prefix(s4).Partition(posY)
	s6 := s4 + rays.Sub(s4, rays.Len-s4).Partition(posY)

	s1 := rays.Prefix(s2).Partition(posZ)
	s3 := s2 + rays.Sub(s2, s4-s2).Partition(posZ)
	s5 := s4 + rays.Sub(s4, s6-s4).Partition(posZ)
	s7 := s6 + rays.Sub(s6, rays.Len-s6).Partition(posZ)

	return [8]raybatch.Window{
		rays.Sub(0, s1),
		rays.Sub(s1, s2-s1),
		rays.Sub(s2, s3-s2),
		rays.Sub(s3, s4-s3),
		rays.Sub(s4, s5-s4),
		rays.Sub(s5, s6-s5),
		rays.Sub(s6, s7-s6),
		rays.Sub(s7, rays.Len-s7),
	}
}
