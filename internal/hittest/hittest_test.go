package hittest

import (
	"testing"
	"time"

	"tapnano/internal/targets"
)

func TestPointerEvent_Local_Identity(t *testing.T) {
	e := PointerEvent{
		X: 150, Y: 80,
		Bounds:       Rect{Left: 0, Top: 0, Width: 600, Height: 400},
		SurfaceWidth: 600, SurfaceHeight: 400,
	}
	x, y, ok := e.Local()
	if !ok || x != 150 || y != 80 {
		t.Errorf("Local() = (%f, %f, %v), want (150, 80, true)", x, y, ok)
	}
}

func TestPointerEvent_Local_ScaledPerAxis(t *testing.T) {
	// 600x400 surface displayed at 300x100 with an offset.
	e := PointerEvent{
		X: 160, Y: 70,
		Bounds:       Rect{Left: 10, Top: 20, Width: 300, Height: 100},
		SurfaceWidth: 600, SurfaceHeight: 400,
	}
	x, y, ok := e.Local()
	if !ok {
		t.Fatal("Local() should succeed inside the bounds")
	}
	if x != 300 || y != 200 {
		t.Errorf("Local() = (%f, %f), want (300, 200)", x, y)
	}
}

func TestPointerEvent_Local_OutsideSurface(t *testing.T) {
	e := PointerEvent{
		X: 5, Y: 50,
		Bounds:       Rect{Left: 10, Top: 0, Width: 600, Height: 400},
		SurfaceWidth: 600, SurfaceHeight: 400,
	}
	if _, _, ok := e.Local(); ok {
		t.Error("point left of the surface should be rejected")
	}
}

func TestPointerEvent_Local_ZeroSizedBounds(t *testing.T) {
	e := PointerEvent{X: 1, Y: 1, SurfaceWidth: 600, SurfaceHeight: 400}
	if _, _, ok := e.Local(); ok {
		t.Error("zero-sized bounds should be rejected")
	}
}

func TestResolve(t *testing.T) {
	reg := targets.NewRegistry()
	reg.Add(&targets.Target{X: 300, Y: 200, Radius: 20, Life: time.Second})

	miss := PointerEvent{
		X: 10, Y: 10,
		Bounds:       Rect{Width: 300, Height: 200},
		SurfaceWidth: 600, SurfaceHeight: 400,
	}
	if Resolve(reg, miss) != nil {
		t.Error("Resolve() should miss away from the target")
	}

	hit := miss
	hit.X, hit.Y = 150, 100
	if Resolve(reg, hit) == nil {
		t.Fatal("Resolve() should hit the scaled target centre")
	}
	if reg.Len() != 0 {
		t.Errorf("hit target should be removed, got %d", reg.Len())
	}
}
