// Package metrics exports round activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tapnano/internal/gamedata"
	"tapnano/internal/targets"
)

const namespace = "tapnano"

// Collector implements gamedata.Observer. One collector is shared by all
// rooms of a process.
type Collector struct {
	RoundsStarted  prometheus.Counter
	RoundsFinished prometheus.Counter
	TargetsSpawned prometheus.Counter
	TargetsHit     prometheus.Counter
	Expired        prometheus.Counter
	FinalScore     prometheus.Histogram
	ActiveRooms    prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		RoundsStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Rounds started, including restarts.",
		}),
		RoundsFinished: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_finished_total",
			Help:      "Rounds that ran out of time.",
		}),
		TargetsSpawned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_spawned_total",
			Help:      "Targets placed on a surface.",
		}),
		TargetsHit: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_hit_total",
			Help:      "Targets removed by a pointer hit.",
		}),
		Expired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_expired_total",
			Help:      "Targets removed because their lifetime ran out.",
		}),
		FinalScore: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at the end of each round.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		ActiveRooms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Rooms currently running a loop.",
		}),
	}
}

func (c *Collector) PhaseChanged(phase gamedata.Phase, score int) {
	switch phase {
	case gamedata.PhasePlaying:
		c.RoundsStarted.Inc()
	case gamedata.PhaseGameOver:
		c.RoundsFinished.Inc()
		c.FinalScore.Observe(float64(score))
	}
}

func (c *Collector) TargetSpawned(_ *targets.Target) {
	c.TargetsSpawned.Inc()
}

func (c *Collector) TargetHit(_ *targets.Target) {
	c.TargetsHit.Inc()
}

func (c *Collector) TargetsExpired(n int) {
	c.Expired.Add(float64(n))
}
