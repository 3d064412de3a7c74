package gamedata

import (
	"math"
	"time"

	"tapnano/internal/hittest"
	"tapnano/internal/spawner"
	"tapnano/internal/stats"
	"tapnano/internal/targets"
)

type Phase string

const (
	PhaseStart    = Phase("start")
	PhasePlaying  = Phase("playing")
	PhaseGameOver = Phase("gameover")
)

type Config struct {
	RoundDuration int // seconds
	Width         int
	Height        int
}

func DefaultConfig() Config {
	return Config{
		RoundDuration: 20,
		Width:         600,
		Height:        400,
	}
}

func (c Config) Duration() time.Duration {
	return time.Duration(c.RoundDuration) * time.Second
}

// Snapshot is a copy of the round state safe to hand to other goroutines.
type Snapshot struct {
	Phase         Phase
	Score         int
	TimeRemaining time.Duration
	Targets       []targets.Target
	Stats         stats.Round
}

// Game owns one player's round: the phase machine, the timer, the live
// targets and the score. All methods must be called from a single
// goroutine; the caller drives the loop by calling Tick once per frame.
type Game struct {
	phase    Phase
	score    int
	timeLeft time.Duration

	lastTick  time.Duration
	baseline  bool
	lastSpawn time.Duration
	spawned   bool

	stats stats.Round

	Config    Config
	Targets   *targets.Registry
	spawner   *spawner.Spawner
	renderer  Renderer
	presenter Presenter
	observer  Observer
}

// NewGame creates a game in the start phase and shows the start prompt.
// A nil spawner gets a randomly seeded one sized from cfg.
func NewGame(cfg Config, sp *spawner.Spawner, r Renderer, p Presenter) *Game {
	if sp == nil {
		sp = spawner.New(float64(cfg.Width), float64(cfg.Height), cfg.Duration(), nil)
	}
	g := &Game{
		phase:     PhaseStart,
		timeLeft:  cfg.Duration(),
		Config:    cfg,
		Targets:   targets.NewRegistry(),
		spawner:   sp,
		renderer:  r,
		presenter: p,
		observer:  Observers(nil),
	}
	g.publish()
	g.presenter.ShowStartPrompt()
	return g
}

func (g *Game) SetObserver(o Observer) {
	if o == nil {
		o = Observers(nil)
	}
	g.observer = o
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) TimeRemaining() time.Duration {
	return g.timeLeft
}

// DisplaySeconds is the time remaining rounded up to whole seconds.
func (g *Game) DisplaySeconds() int {
	return CeilSeconds(g.timeLeft)
}

// CeilSeconds rounds d up to whole seconds for display.
func CeilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func (g *Game) Stats() stats.Round {
	s := g.stats
	s.Duration = g.Config.Duration() - g.timeLeft
	return s
}

func (g *Game) Snapshot() Snapshot {
	list := g.Targets.List()
	ts := make([]targets.Target, len(list))
	for i, t := range list {
		ts[i] = *t
	}
	return Snapshot{
		Phase:         g.phase,
		Score:         g.score,
		TimeRemaining: g.timeLeft,
		Targets:       ts,
		Stats:         g.Stats(),
	}
}

// Start begins a fresh round from any phase. Calling it while a round is
// playing resets that round.
func (g *Game) Start() {
	g.phase = PhasePlaying
	g.score = 0
	g.timeLeft = g.Config.Duration()
	g.Targets.Clear()
	g.baseline = false
	g.spawned = false
	g.stats = stats.Round{}

	g.publish()
	g.presenter.HidePrompt(PromptStart)
	g.presenter.HidePrompt(PromptEnd)
	g.observer.PhaseChanged(PhasePlaying, 0)
}

// Tick advances the round to now, a monotonic timestamp. The first tick
// after Start only establishes the baseline. It reports whether the caller
// should keep scheduling ticks.
func (g *Game) Tick(now time.Duration) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if !g.baseline {
		g.lastTick = now
		g.baseline = true
	}
	dt := max(now-g.lastTick, 0)
	g.lastTick = now

	g.timeLeft -= dt
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.publish()
		g.end()
		return false
	}

	if !g.spawned || now-g.lastSpawn > g.spawner.Interval(g.timeLeft) {
		t := g.spawner.Spawn(g.timeLeft)
		g.Targets.Add(t)
		g.lastSpawn = now
		g.spawned = true
		g.stats.RecordSpawn()
		g.observer.TargetSpawned(t)
	}

	if expired := g.Targets.Decay(dt); len(expired) > 0 {
		g.stats.RecordMisses(len(expired))
		g.observer.TargetsExpired(len(expired))
	}

	g.render()
	g.publish()
	return true
}

// HandleInput applies a pointer-down. At most one target is removed and
// scored; input outside a playing round or hitting nothing changes nothing
// but the click count.
func (g *Game) HandleInput(e hittest.PointerEvent) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.stats.RecordClick()

	t := hittest.Resolve(g.Targets, e)
	if t == nil {
		return false
	}
	g.score++
	g.stats.RecordHit(t.Age())
	g.observer.TargetHit(t)
	g.publish()
	return true
}

// end finishes the round. Targets still live when time runs out were never
// hit, so they count as misses along with the expired ones.
func (g *Game) end() {
	g.phase = PhaseGameOver
	g.stats.RecordMisses(g.Targets.Len())
	g.Targets.Clear()
	g.renderer.Clear()
	g.presenter.ShowEndPrompt(g.score)
	g.observer.PhaseChanged(PhaseGameOver, g.score)
}

func (g *Game) render() {
	g.renderer.Clear()
	for _, t := range g.Targets.List() {
		g.renderer.DrawDisk(t.X, t.Y, t.Radius, t.Color)
	}
}

func (g *Game) publish() {
	g.presenter.SetScore(g.score)
	g.presenter.SetTimeRemaining(g.DisplaySeconds())
}
