// Package hittest maps pointer input from a displayed surface into surface
// coordinates and resolves it against the live targets.
package hittest

import "tapnano/internal/targets"

// Rect is the on-screen bounding box of the drawing surface.
type Rect struct {
	Left   float64 `json:"l" msgpack:"l"`
	Top    float64 `json:"t" msgpack:"t"`
	Width  float64 `json:"w" msgpack:"w"`
	Height float64 `json:"h" msgpack:"h"`
}

// PointerEvent is a pointer-down in screen coordinates together with how the
// surface was displayed when it happened.
type PointerEvent struct {
	X             float64
	Y             float64
	Bounds        Rect
	SurfaceWidth  float64
	SurfaceHeight float64
}

// Local converts the event to surface coordinates, scaling each axis by the
// ratio of intrinsic to displayed size. ok is false when the surface has no
// displayed area or the point lands outside it.
func (e PointerEvent) Local() (x, y float64, ok bool) {
	if e.Bounds.Width <= 0 || e.Bounds.Height <= 0 {
		return 0, 0, false
	}
	x = (e.X - e.Bounds.Left) * (e.SurfaceWidth / e.Bounds.Width)
	y = (e.Y - e.Bounds.Top) * (e.SurfaceHeight / e.Bounds.Height)
	if x < 0 || y < 0 || x > e.SurfaceWidth || y > e.SurfaceHeight {
		return 0, 0, false
	}
	return x, y, true
}

// Resolve removes and returns the target hit by the event, newest first.
func Resolve(reg *targets.Registry, e PointerEvent) *targets.Target {
	x, y, ok := e.Local()
	if !ok {
		return nil
	}
	return reg.HitAt(x, y)
}
