package targets

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Target is a disk the player must tap before its lifetime runs out.
type Target struct {
	X        float64
	Y        float64
	Radius   float64
	Life     time.Duration // remaining
	Lifetime time.Duration // at spawn
	Color    colorful.Color
}

// Contains reports whether (x, y) lies in the closed disk of the target.
func (t *Target) Contains(x, y float64) bool {
	dx := x - t.X
	dy := y - t.Y
	return dx*dx+dy*dy <= t.Radius*t.Radius
}

// Age is how long the target has been on the surface.
func (t *Target) Age() time.Duration {
	return t.Lifetime - t.Life
}
