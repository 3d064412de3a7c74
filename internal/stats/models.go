package stats

import "time"

// Round accumulates what happened during one round.
type Round struct {
	Spawns        int
	Clicks        int
	Hits          int
	Misses        int // targets that expired
	ReactionTotal time.Duration
	BestReaction  time.Duration
	Duration      time.Duration
}

func (r *Round) RecordSpawn() {
	r.Spawns++
}

func (r *Round) RecordClick() {
	r.Clicks++
}

// RecordHit counts a hit whose target had been live for reaction.
func (r *Round) RecordHit(reaction time.Duration) {
	r.Hits++
	r.ReactionTotal += reaction
	if r.BestReaction == 0 || reaction < r.BestReaction {
		r.BestReaction = reaction
	}
}

func (r *Round) RecordMisses(n int) {
	r.Misses += n
}

func (r *Round) AvgReaction() time.Duration {
	if r.Hits == 0 {
		return 0
	}
	return r.ReactionTotal / time.Duration(r.Hits)
}

// Accuracy is the percentage of clicks that hit a target.
func (r *Round) Accuracy() float64 {
	if r.Clicks == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Clicks) * 100
}

func (r *Round) HitsPerSecond() float64 {
	secs := r.Duration.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Hits) / secs
}

// Recap is the wire-friendly summary sent when a round ends.
type Recap struct {
	Score          int       `json:"score" msgpack:"score"`
	Spawns         int       `json:"spawns" msgpack:"spawns"`
	Clicks         int       `json:"clicks" msgpack:"clicks"`
	Misses         int       `json:"misses" msgpack:"misses"`
	AvgReactionMs  int       `json:"avgMs" msgpack:"avgMs"`
	BestReactionMs int       `json:"bestMs" msgpack:"bestMs"`
	Accuracy       float64   `json:"accuracy" msgpack:"accuracy"`
	HitsPerSecond  float64   `json:"hps" msgpack:"hps"`
	Badges         []BadgeID `json:"badges,omitempty" msgpack:"badges,omitempty"`
}

func (r *Round) Recap() Recap {
	recap := Recap{
		Score:          r.Hits,
		Spawns:         r.Spawns,
		Clicks:         r.Clicks,
		Misses:         r.Misses,
		AvgReactionMs:  int(r.AvgReaction().Milliseconds()),
		BestReactionMs: int(r.BestReaction.Milliseconds()),
		Accuracy:       r.Accuracy(),
		HitsPerSecond:  r.HitsPerSecond(),
	}
	for _, b := range EvaluateBadges(*r) {
		recap.Badges = append(recap.Badges, b.ID)
	}
	return recap
}
