package scene

import "github.com/katalvlaran/lvlath/bbox"

// Light is a placeholder scene-graph leaf for emitters. Real light
// sampling (power distributions, MIS weights, importance tables) is
// out of this core's scope; the tracer treats a Light as a no-op
// during ray intersection, matching the original renderer's own
// `Object::Light(_) => { /* TODO */ }` traversal arm — lights
// participate in the accelerator's bounds bookkeeping but contribute
// no surface hits.
type Light struct {
	ID    uint32
	Bound bbox.BBox
}

// Bounds returns the light's static bounds.
func (l *Light) Bounds() []bbox.BBox {
	return []bbox.BBox{l.Bound}
}
