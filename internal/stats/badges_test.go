package stats

import (
	"testing"
	"time"
)

func TestEvaluateBadges_Sharpshooter(t *testing.T) {
	r := Round{Clicks: 10, Hits: 9}
	if !hasBadge(EvaluateBadges(r), BadgeSharpshooter) {
		t.Error("should earn Sharpshooter with 90% over 10 clicks")
	}
}

func TestEvaluateBadges_NoSharpshooter(t *testing.T) {
	r := Round{Clicks: 9, Hits: 9}
	if hasBadge(EvaluateBadges(r), BadgeSharpshooter) {
		t.Error("should not earn Sharpshooter with fewer than 10 clicks")
	}
}

func TestEvaluateBadges_SpeedDemon(t *testing.T) {
	r := Round{}
	for i := 0; i < 5; i++ {
		r.RecordHit(350 * time.Millisecond)
	}
	if !hasBadge(EvaluateBadges(r), BadgeSpeedDemon) {
		t.Error("should earn Speed Demon with 350ms avg reaction")
	}
}

func TestEvaluateBadges_NoSpeedDemon(t *testing.T) {
	r := Round{}
	for i := 0; i < 5; i++ {
		r.RecordHit(450 * time.Millisecond)
	}
	if hasBadge(EvaluateBadges(r), BadgeSpeedDemon) {
		t.Error("should not earn Speed Demon with 450ms avg reaction")
	}
}

func TestEvaluateBadges_Untouchable(t *testing.T) {
	r := Round{Hits: 10}
	if !hasBadge(EvaluateBadges(r), BadgeUntouchable) {
		t.Error("should earn Untouchable with 10 hits and no misses")
	}
	r.Misses = 1
	if hasBadge(EvaluateBadges(r), BadgeUntouchable) {
		t.Error("should not earn Untouchable after a miss")
	}
}

func TestEvaluateBadges_TriggerHappy(t *testing.T) {
	r := Round{Hits: 30, Duration: 20 * time.Second}
	if !hasBadge(EvaluateBadges(r), BadgeTriggerHappy) {
		t.Error("should earn Trigger Happy with 1.5 hits per second")
	}
}

func TestEvaluateBadges_NoTriggerHappy(t *testing.T) {
	r := Round{Hits: 29, Duration: 20 * time.Second}
	if hasBadge(EvaluateBadges(r), BadgeTriggerHappy) {
		t.Error("should not earn Trigger Happy below 1.5 hits per second")
	}
}

func TestEvaluateBadges_Centurion(t *testing.T) {
	if !hasBadge(EvaluateBadges(Round{Hits: 30}), BadgeCenturion) {
		t.Error("should earn Centurion with 30 hits")
	}
	if hasBadge(EvaluateBadges(Round{Hits: 29, Misses: 1}), BadgeCenturion) {
		t.Error("should not earn Centurion with 29 hits")
	}
}

func TestEvaluateBadges_NoBadges(t *testing.T) {
	r := Round{Clicks: 8, Hits: 3, Misses: 6, Duration: 20 * time.Second}
	r.ReactionTotal = 3 * time.Second
	if badges := EvaluateBadges(r); len(badges) != 0 {
		t.Errorf("should earn no badges, got %d", len(badges))
	}
}

func TestRound_Metrics(t *testing.T) {
	r := Round{Duration: 10 * time.Second}
	r.RecordClick()
	r.RecordClick()
	r.RecordClick()
	r.RecordClick()
	r.RecordHit(600 * time.Millisecond)
	r.RecordHit(200 * time.Millisecond)
	r.RecordMisses(2)

	if r.AvgReaction() != 400*time.Millisecond {
		t.Errorf("AvgReaction() = %v, want 400ms", r.AvgReaction())
	}
	if r.BestReaction != 200*time.Millisecond {
		t.Errorf("BestReaction = %v, want 200ms", r.BestReaction)
	}
	if r.Accuracy() != 50 {
		t.Errorf("Accuracy() = %f, want 50", r.Accuracy())
	}
	if r.HitsPerSecond() != 0.2 {
		t.Errorf("HitsPerSecond() = %f, want 0.2", r.HitsPerSecond())
	}

	recap := r.Recap()
	if recap.Score != 2 || recap.Misses != 2 || recap.AvgReactionMs != 400 || recap.BestReactionMs != 200 {
		t.Errorf("Recap() = %+v", recap)
	}
}

func TestRound_EmptyIsSafe(t *testing.T) {
	var r Round
	if r.AvgReaction() != 0 || r.Accuracy() != 0 || r.HitsPerSecond() != 0 {
		t.Error("empty round should report zeros")
	}
}

func hasBadge(badges []Badge, id BadgeID) bool {
	for _, b := range badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
