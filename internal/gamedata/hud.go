package gamedata

// HUD is a Presenter that keeps the last values it was given. Local
// frontends draw from it and tests assert against it.
type HUD struct {
	Score         int
	TimeRemaining int
	Prompt        Prompt // empty when no prompt is visible
	FinalScore    int
	EndPrompts    int
}

func (h *HUD) SetScore(score int) {
	h.Score = score
}

func (h *HUD) SetTimeRemaining(seconds int) {
	h.TimeRemaining = seconds
}

func (h *HUD) ShowStartPrompt() {
	h.Prompt = PromptStart
}

func (h *HUD) ShowEndPrompt(finalScore int) {
	h.Prompt = PromptEnd
	h.FinalScore = finalScore
	h.EndPrompts++
}

func (h *HUD) HidePrompt(which Prompt) {
	if h.Prompt == which {
		h.Prompt = ""
	}
}
