package spawner

import (
	"math/rand/v2"
	"testing"
	"time"
)

const round = 20 * time.Second

func newTestSpawner(width, height float64) *Spawner {
	return New(width, height, round, rand.New(rand.NewPCG(7, 11)))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      float64
	}{
		{20 * time.Second, 0},
		{10 * time.Second, 0.5},
		{0, 1},
		{25 * time.Second, 0},
		{-time.Second, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.remaining, round); got != tt.want {
			t.Errorf("Progress(%v) = %f, want %f", tt.remaining, got, tt.want)
		}
	}
}

func TestCurves_Endpoints(t *testing.T) {
	if Radius(0) != 35 || Radius(1) != 20 {
		t.Errorf("Radius endpoints = %f, %f; want 35, 20", Radius(0), Radius(1))
	}
	if Lifetime(0) != 2*time.Second || Lifetime(1) != time.Second {
		t.Errorf("Lifetime endpoints = %v, %v; want 2s, 1s", Lifetime(0), Lifetime(1))
	}
	if Interval(0) != time.Second || Interval(1) != 300*time.Millisecond {
		t.Errorf("Interval endpoints = %v, %v; want 1s, 300ms", Interval(0), Interval(1))
	}
	if Lifetime(0.5) != 1500*time.Millisecond {
		t.Errorf("Lifetime(0.5) = %v, want 1.5s", Lifetime(0.5))
	}
	if Interval(0.5) != 650*time.Millisecond {
		t.Errorf("Interval(0.5) = %v, want 650ms", Interval(0.5))
	}
}

func TestCurves_Monotonic(t *testing.T) {
	prevR, prevL, prevI := Radius(0), Lifetime(0), Interval(0)
	for i := 1; i <= 100; i++ {
		p := float64(i) / 100
		r, l, iv := Radius(p), Lifetime(p), Interval(p)
		if r >= prevR {
			t.Fatalf("Radius not strictly decreasing at p=%f", p)
		}
		if l > prevL || iv > prevI {
			t.Fatalf("Lifetime/Interval increased at p=%f", p)
		}
		if r < MinRadius || r > MaxRadius {
			t.Fatalf("Radius(%f) = %f out of bounds", p, r)
		}
		prevR, prevL, prevI = r, l, iv
	}
}

func TestSpawner_Spawn_StartOfRound(t *testing.T) {
	s := newTestSpawner(600, 400)
	target := s.Spawn(20 * time.Second)

	if target.Radius != 35 {
		t.Errorf("Radius = %f, want 35", target.Radius)
	}
	if target.Life != 2*time.Second || target.Lifetime != 2*time.Second {
		t.Errorf("Life = %v / %v, want 2s", target.Life, target.Lifetime)
	}
}

func TestSpawner_Spawn_EndOfRound(t *testing.T) {
	s := newTestSpawner(600, 400)
	target := s.Spawn(0)

	if target.Radius != 20 {
		t.Errorf("Radius = %f, want 20", target.Radius)
	}
	if target.Life != time.Second {
		t.Errorf("Life = %v, want 1s", target.Life)
	}
}

func TestSpawner_Spawn_FullyOnSurface(t *testing.T) {
	s := newTestSpawner(600, 400)
	for i := 0; i < 500; i++ {
		remaining := time.Duration(i%21) * time.Second
		target := s.Spawn(remaining)
		if target.X < target.Radius || target.X > 600-target.Radius {
			t.Fatalf("X = %f out of bounds for radius %f", target.X, target.Radius)
		}
		if target.Y < target.Radius || target.Y > 400-target.Radius {
			t.Fatalf("Y = %f out of bounds for radius %f", target.Y, target.Radius)
		}
	}
}

func TestSpawner_Spawn_TinySurfaceClamps(t *testing.T) {
	s := newTestSpawner(50, 30)
	target := s.Spawn(20 * time.Second)

	if target.X != 25 || target.Y != 15 {
		t.Errorf("position = (%f, %f), want centre (25, 15)", target.X, target.Y)
	}
}

func TestSpawner_Interval(t *testing.T) {
	s := newTestSpawner(600, 400)
	if got := s.Interval(20 * time.Second); got != time.Second {
		t.Errorf("Interval(20s) = %v, want 1s", got)
	}
	if got := s.Interval(0); got != 300*time.Millisecond {
		t.Errorf("Interval(0) = %v, want 300ms", got)
	}
}
