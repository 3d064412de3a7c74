// Package desktop runs a round in an ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"tapnano/internal/gamedata"
	"tapnano/internal/hittest"
	"tapnano/internal/spawner"
	"tapnano/internal/stats"
	"tapnano/internal/targets"
)

const (
	overlayAlpha = 0.75
	fadeSeconds  = 0.25
)

var background = color.RGBA{R: 0x1c, G: 0x1c, B: 0x22, A: 0xff}

type disk struct {
	x, y, r float64
	c       color.Color
}

// canvas records the disks of the current frame until Draw paints them.
type canvas struct {
	disks []disk
}

func (c *canvas) Clear() {
	c.disks = c.disks[:0]
}

func (c *canvas) DrawDisk(x, y, radius float64, col color.Color) {
	c.disks = append(c.disks, disk{x, y, radius, col})
}

// overlay fades the prompt layer in and out.
type overlay struct {
	alpha  float32
	target float32
	tween  *gween.Tween
}

func (o *overlay) fadeTo(target float32) {
	if target == o.target {
		return
	}
	o.target = target
	o.tween = gween.New(o.alpha, target, fadeSeconds, ease.OutQuad)
}

func (o *overlay) update(dt float32) {
	if o.tween == nil {
		return
	}
	var done bool
	o.alpha, done = o.tween.Update(dt)
	if done {
		o.tween = nil
	}
}

// App implements ebiten.Game around one local round.
type App struct {
	game    *gamedata.Game
	hud     *gamedata.HUD
	canvas  *canvas
	overlay overlay
	recap   *stats.Recap
	clock   func() time.Duration
}

// NewApp builds an app for cfg. A nil spawner gets a random one.
func NewApp(cfg gamedata.Config, sp *spawner.Spawner) *App {
	epoch := time.Now()
	a := &App{
		hud:    &gamedata.HUD{},
		canvas: &canvas{},
		clock:  func() time.Duration { return time.Since(epoch) },
	}
	a.game = gamedata.NewGame(cfg, sp, a.canvas, a.hud)
	a.game.SetObserver(a)
	a.overlay.alpha = overlayAlpha
	a.overlay.target = overlayAlpha
	return a
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var presses [][2]float64
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		presses = append(presses, [2]float64{float64(x), float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		presses = append(presses, [2]float64{float64(x), float64(y)})
	}
	startKey := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	a.step(a.clock(), presses, startKey, 1/float32(ebiten.TPS()))
	return nil
}

// step applies one frame of input and advances the round to now.
func (a *App) step(now time.Duration, presses [][2]float64, startKey bool, dt float32) {
	if a.game.Phase() != gamedata.PhasePlaying {
		if startKey || len(presses) > 0 {
			a.game.Start()
		}
	} else {
		for _, p := range presses {
			a.game.HandleInput(a.pointer(p[0], p[1]))
		}
	}

	a.game.Tick(now)

	if a.hud.Prompt != "" {
		a.overlay.fadeTo(overlayAlpha)
	} else {
		a.overlay.fadeTo(0)
	}
	a.overlay.update(dt)
}

// pointer builds an event in layout coordinates, where the displayed
// surface and the canvas coincide.
func (a *App) pointer(x, y float64) hittest.PointerEvent {
	w, h := float64(a.game.Config.Width), float64(a.game.Config.Height)
	return hittest.PointerEvent{
		X:             x,
		Y:             y,
		Bounds:        hittest.Rect{Width: w, Height: h},
		SurfaceWidth:  w,
		SurfaceHeight: h,
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, d := range a.canvas.disks {
		vector.DrawFilledCircle(screen, float32(d.x), float32(d.y), float32(d.r), d.c, true)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %d   Time %d", a.hud.Score, a.hud.TimeRemaining), 8, 8)

	if a.overlay.alpha <= 0 {
		return
	}
	w, h := a.Layout(0, 0)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(a.overlay.alpha * 255)}, false)
	for i, line := range a.promptLines() {
		ebitenutil.DebugPrintAt(screen, line, w/2-90, h/2-30+16*i)
	}
}

func (a *App) promptLines() []string {
	switch a.hud.Prompt {
	case gamedata.PromptStart:
		return []string{"TAP NANO", "Click or press Space to start"}
	case gamedata.PromptEnd:
		lines := []string{fmt.Sprintf("Final score %d", a.hud.FinalScore)}
		if a.recap != nil {
			lines = append(lines,
				fmt.Sprintf("Accuracy %.0f%%  Avg %dms", a.recap.Accuracy, a.recap.AvgReactionMs))
			for _, b := range a.recap.Badges {
				lines = append(lines, "Badge: "+stats.AllBadges[b].Name)
			}
		}
		return append(lines, "Click or press Space to play again")
	}
	return nil
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.game.Config.Width, a.game.Config.Height
}

func (a *App) PhaseChanged(phase gamedata.Phase, score int) {
	switch phase {
	case gamedata.PhasePlaying:
		a.recap = nil
		log.Println("[Desktop] Round started")
	case gamedata.PhaseGameOver:
		st := a.game.Stats()
		recap := st.Recap()
		a.recap = &recap
		log.Printf("[Desktop] Round over, score %d\n", score)
	}
}

func (a *App) TargetSpawned(_ *targets.Target) {}
func (a *App) TargetHit(_ *targets.Target)     {}
func (a *App) TargetsExpired(_ int)            {}
