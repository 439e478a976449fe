package raystack

// lane is a growable run of ray indices: a backing buffer plus an
// explicit length. endLen marks the end of the committed region (the
// indices already covered by tasks); indices in idxs past endLen are
// pending, pushed since the last PushLaneToTask.
type lane struct {
	idxs   []uint32
	endLen int
}

// task names a contiguous run within a lane: indices [startIdx, lane's
// current endLen) at the time the task is active.
type task struct {
	lane     int
	startIdx int
}
