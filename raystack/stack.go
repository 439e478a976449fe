package raystack

// RayStack tracks, across a recursive scene traversal, which ray
// indices are active at each level (spec.md §4.5). Lanes are indexed
// by the caller (typically one lane per child branch of the current
// scene node); tasks record which lane, and which range within it, is
// "the current level's work".
type RayStack struct {
	lanes []lane
	tasks []task
}

// New returns an empty RayStack.
func New() *RayStack {
	return &RayStack{}
}

// IsEmpty reports whether the stack has no pending tasks.
func (s *RayStack) IsEmpty() bool {
	return len(s.tasks) == 0
}

// EnsureLaneCount grows the lane set, if needed, so that at least
// count lanes exist. Existing lanes and their contents are untouched.
func (s *RayStack) EnsureLaneCount(count int) {
	for len(s.lanes) < count {
		s.lanes = append(s.lanes, lane{})
	}
}

// RayCountInNextTask returns how many ray indices belong to the task
// on top of the stack.
func (s *RayStack) RayCountInNextTask() int {
	t := s.lastTask()
	return s.lanes[t.lane].endLen - t.startIdx
}

// NextTaskRayIdx returns the i'th ray index (0-based, within the
// current top task's range) of the task on top of the stack.
func (s *RayStack) NextTaskRayIdx(i int) int {
	t := s.lastTask()
	pos := t.startIdx + i
	if pos >= s.lanes[t.lane].endLen {
		panic("raystack: NextTaskRayIdx index out of range for current task")
	}

	return int(s.lanes[t.lane].idxs[pos])
}

// Clear empties every lane and the task stack, while retaining each
// lane's backing capacity (spec.md §4.5) — materially different from
// discarding and recreating the lanes slice, which would also free
// their memory.
func (s *RayStack) Clear() {
	for i := range s.lanes {
		s.lanes[i].idxs = s.lanes[i].idxs[:0]
		s.lanes[i].endLen = 0
	}
	s.tasks = s.tasks[:0]
}

// PushRayIndex appends rayIdx to the end of the given lane. The lane
// must already exist (see EnsureLaneCount).
func (s *RayStack) PushRayIndex(rayIdx int, ln int) {
	if ln >= len(s.lanes) {
		panic("raystack: PushRayIndex: lane index out of range")
	}
	s.lanes[ln].idxs = append(s.lanes[ln].idxs, uint32(rayIdx))
}

// PushLaneToTask promotes any indices appended to laneIdx since its
// last task (i.e. past its current end_len) into a new task on top of
// the task stack. It returns false, pushing nothing, if there are no
// such excess indices.
func (s *RayStack) PushLaneToTask(laneIdx int) bool {
	ln := &s.lanes[laneIdx]
	if ln.endLen >= len(ln.idxs) {
		return false
	}

	s.tasks = append(s.tasks, task{lane: laneIdx, startIdx: ln.endLen})
	ln.endLen = len(ln.idxs)

	return true
}

// PushLanesToTasks calls PushLaneToTask for each lane index in order.
func (s *RayStack) PushLanesToTasks(laneIdxs []int) {
	for _, l := range laneIdxs {
		s.PushLaneToTask(l)
	}
}

// DuplicateNextTask copies the ray-index range of the task on top of
// the stack to the end of its lane and pushes a new task over the
// copy, leaving the original task beneath it untouched. This lets a
// traversal re-walk the same ray set down two different branches
// (e.g. an occlusion ray re-tested against two overlapping instances)
// without recomputing the set.
func (s *RayStack) DuplicateNextTask() {
	t := s.lastTask()
	ln := &s.lanes[t.lane]
	start, end := t.startIdx, ln.endLen

	dup := make([]uint32, end-start)
	copy(dup, ln.idxs[start:end])
	ln.idxs = append(ln.idxs, dup...)

	s.tasks = append(s.tasks, task{lane: t.lane, startIdx: end})
	ln.endLen = len(ln.idxs)
}

// PopTask discards the task on top of the stack, along with the ray
// indices belonging to it (and anything pushed past them), shrinking
// its lane back to the task's start.
func (s *RayStack) PopTask() {
	t := s.popTaskRaw()
	s.lanes[t.lane].endLen = t.startIdx
	s.lanes[t.lane].idxs = s.lanes[t.lane].idxs[:t.startIdx]
}

// DoNextTask invokes handleRay once per ray index in the task on top
// of the stack, without popping it.
func (s *RayStack) DoNextTask(handleRay func(rayIdx int)) {
	t := s.lastTask()
	ln := s.lanes[t.lane]
	for i := t.startIdx; i < ln.endLen; i++ {
		handleRay(int(ln.idxs[i]))
	}
}

// PopDoNextTask invokes handleRay once per ray index in the task on
// top of the stack, then pops it.
func (s *RayStack) PopDoNextTask(handleRay func(rayIdx int)) {
	s.DoNextTask(handleRay)
	s.PopTask()
}

// PopDoNextTaskAndPushRays pops the task on top of the stack and, for
// each of its ray indices, invokes handleRay and reads back a mask of
// length outputLaneCount: for every lane l where the mask is true, the
// ray index is re-pushed onto lane l.
//
// The original this is ported from performs this same operation via
// an explicitly-documented-unsafe Vec aliasing trick (reading a lane's
// backing storage past its truncated length while simultaneously
// pushing onto it), with a TODO asking for a safer lane abstraction.
// This copies the task's ray-index range out before truncating the
// lane instead, which is that safer abstraction: correct regardless of
// whether a later append within the loop reallocates the lane.
func (s *RayStack) PopDoNextTaskAndPushRays(outputLaneCount int, handleRay func(rayIdx int) []bool) {
	t := s.popTaskRaw()
	ln := &s.lanes[t.lane]
	start, end := t.startIdx, ln.endLen
	ln.endLen = start

	snapshot := make([]uint32, end-start)
	copy(snapshot, ln.idxs[start:end])
	ln.idxs = ln.idxs[:start]

	for _, rayIdx := range snapshot {
		mask := handleRay(int(rayIdx))
		for l := 0; l < outputLaneCount && l < len(mask); l++ {
			if mask[l] {
				s.lanes[l].idxs = append(s.lanes[l].idxs, rayIdx)
			}
		}
	}
}

func (s *RayStack) lastTask() task {
	if len(s.tasks) == 0 {
		panic("raystack: no current task")
	}

	return s.tasks[len(s.tasks)-1]
}

func (s *RayStack) popTaskRaw() task {
	t := s.lastTask()
	s.tasks = s.tasks[:len(s.tasks)-1]

	return t
}
