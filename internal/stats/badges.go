package stats

import "time"

type BadgeID string

const (
	BadgeSharpshooter BadgeID = "sharpshooter"
	BadgeSpeedDemon   BadgeID = "speed_demon"
	BadgeUntouchable  BadgeID = "untouchable"
	BadgeTriggerHappy BadgeID = "trigger_happy"
	BadgeCenturion    BadgeID = "centurion"
)

type Badge struct {
	ID          BadgeID
	Name        string
	Description string
}

var AllBadges = map[BadgeID]Badge{
	BadgeSharpshooter: {ID: BadgeSharpshooter, Name: "Sharpshooter", Description: "90%+ accuracy over 10+ clicks"},
	BadgeSpeedDemon:   {ID: BadgeSpeedDemon, Name: "Speed Demon", Description: "Average reaction under 400ms over 5+ hits"},
	BadgeUntouchable:  {ID: BadgeUntouchable, Name: "Untouchable", Description: "10+ hits without missing a target"},
	BadgeTriggerHappy: {ID: BadgeTriggerHappy, Name: "Trigger Happy", Description: "1.5+ hits per second"},
	BadgeCenturion:    {ID: BadgeCenturion, Name: "Centurion", Description: "30+ hits in a round"},
}

// EvaluateBadges checks which badges a finished round earned.
func EvaluateBadges(r Round) []Badge {
	var earned []Badge

	if r.Clicks >= 10 && r.Accuracy() >= 90 {
		earned = append(earned, AllBadges[BadgeSharpshooter])
	}

	if r.Hits >= 5 && r.AvgReaction() < 400*time.Millisecond {
		earned = append(earned, AllBadges[BadgeSpeedDemon])
	}

	if r.Hits >= 10 && r.Misses == 0 {
		earned = append(earned, AllBadges[BadgeUntouchable])
	}

	if r.HitsPerSecond() >= 1.5 {
		earned = append(earned, AllBadges[BadgeTriggerHappy])
	}

	if r.Hits >= 30 {
		earned = append(earned, AllBadges[BadgeCenturion])
	}

	return earned
}
