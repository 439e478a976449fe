package scene

import "github.com/katalvlaran/lvlath/bbox"

// Object is a scene-graph leaf: exactly one of Surface or Light is
// set, mirroring the original's Object::Surface/Object::Light enum
// (Go has no sum types, so this is the mutually-exclusive-pointer
// substitute).
type Object struct {
	Surface Surface
	Light   *Light
}

// Bounds returns the object's motion slice, delegating to whichever
// of Surface/Light is set.
func (o *Object) Bounds() []bbox.BBox {
	switch {
	case o.Surface != nil:
		return o.Surface.Bounds()
	case o.Light != nil:
		return o.Light.Bounds()
	default:
		return []bbox.BBox{bbox.Empty()}
	}
}
