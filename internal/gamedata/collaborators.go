package gamedata

import (
	"image/color"

	"tapnano/internal/targets"
)

// Renderer is the drawing surface the loop paints the live targets onto.
type Renderer interface {
	Clear()
	DrawDisk(x, y, radius float64, c color.Color)
}

type Prompt string

const (
	PromptStart = Prompt("start")
	PromptEnd   = Prompt("end")
)

// Presenter reflects score, time and prompts to the player.
type Presenter interface {
	SetScore(score int)
	SetTimeRemaining(seconds int)
	ShowStartPrompt()
	ShowEndPrompt(finalScore int)
	HidePrompt(which Prompt)
}

// Observer receives notifications about what the loop did. Calls happen on
// the loop goroutine and must not block.
type Observer interface {
	PhaseChanged(phase Phase, score int)
	TargetSpawned(t *targets.Target)
	TargetHit(t *targets.Target)
	TargetsExpired(n int)
}

// Observers fans out to several observers in order.
type Observers []Observer

func (o Observers) PhaseChanged(phase Phase, score int) {
	for _, obs := range o {
		obs.PhaseChanged(phase, score)
	}
}

func (o Observers) TargetSpawned(t *targets.Target) {
	for _, obs := range o {
		obs.TargetSpawned(t)
	}
}

func (o Observers) TargetHit(t *targets.Target) {
	for _, obs := range o {
		obs.TargetHit(t)
	}
}

func (o Observers) TargetsExpired(n int) {
	for _, obs := range o {
		obs.TargetsExpired(n)
	}
}
