// Package spawner creates targets whose size, lifetime and cadence tighten
// as the round runs down.
package spawner

import (
	"math/rand/v2"
	"time"

	"tapnano/internal/targets"
	"tapnano/internal/utility"
)

const (
	MaxRadius = 35.0
	MinRadius = 20.0

	MaxLifetime = 2000 * time.Millisecond
	MinLifetime = 1000 * time.Millisecond

	MaxInterval = 1000 * time.Millisecond
	MinInterval = 300 * time.Millisecond
)

// Progress is the elapsed fraction of the round, clamped to [0,1].
func Progress(timeRemaining, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := 1 - timeRemaining.Seconds()/total.Seconds()
	return min(max(p, 0), 1)
}

func Radius(progress float64) float64 {
	return MaxRadius - (MaxRadius-MinRadius)*progress
}

func Lifetime(progress float64) time.Duration {
	return lerpDuration(MaxLifetime, MinLifetime, progress)
}

// Interval is the minimum gap between two spawns.
func Interval(progress float64) time.Duration {
	return lerpDuration(MaxInterval, MinInterval, progress)
}

func lerpDuration(from, to time.Duration, progress float64) time.Duration {
	return from - time.Duration(float64(from-to)*progress)
}

type Spawner struct {
	rng      *rand.Rand
	width    float64
	height   float64
	duration time.Duration
}

func New(width, height float64, roundDuration time.Duration, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Spawner{
		rng:      rng,
		width:    width,
		height:   height,
		duration: roundDuration,
	}
}

func (s *Spawner) Duration() time.Duration {
	return s.duration
}

// Interval returns the spawn cadence for the given time remaining.
func (s *Spawner) Interval(timeRemaining time.Duration) time.Duration {
	return Interval(Progress(timeRemaining, s.duration))
}

// Spawn creates a target scaled to the round's progress, placed fully on
// the surface.
func (s *Spawner) Spawn(timeRemaining time.Duration) *targets.Target {
	p := Progress(timeRemaining, s.duration)
	radius := Radius(p)
	life := Lifetime(p)
	return &targets.Target{
		X:        s.place(s.width, radius),
		Y:        s.place(s.height, radius),
		Radius:   radius,
		Life:     life,
		Lifetime: life,
		Color:    utility.RandomTargetColor(s.rng),
	}
}

// place draws a coordinate in [radius, extent-radius]. A surface too small
// for the disk pins it to the centre of that axis.
func (s *Spawner) place(extent, radius float64) float64 {
	span := extent - 2*radius
	if span <= 0 {
		return extent / 2
	}
	return radius + s.rng.Float64()*span
}
