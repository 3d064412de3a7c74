package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"tapnano/internal/gamedata"
	"tapnano/internal/hittest"
	"tapnano/internal/spawner"
)

// App owns the screen and the game. All game mutation happens on the
// goroutine running Run.
type App struct {
	screen   tcell.Screen
	game     *gamedata.Game
	hud      *gamedata.HUD
	surface  *Surface
	interval time.Duration
	button   bool
}

func NewApp(screen tcell.Screen, cfg gamedata.Config, frameRate int, sp *spawner.Spawner) *App {
	a := &App{
		screen:   screen,
		hud:      &gamedata.HUD{},
		surface:  NewSurface(screen, cfg.Width, cfg.Height),
		interval: time.Second / time.Duration(max(frameRate, 1)),
	}
	a.game = gamedata.NewGame(cfg, sp, a.surface, a.hud)
	screen.EnableMouse()
	return a
}

// Run processes events and ticks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go a.poll(ctx, eventChan)

	epoch := time.Now()
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()
		case <-ticker.C:
			if a.game.Phase() == gamedata.PhasePlaying {
				a.game.Tick(time.Since(epoch))
			}
			a.draw()
		}
	}
}

// poll forwards screen events until the screen is finalized or ctx is done.
func (a *App) poll(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			a.start()
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !a.button
		a.button = down
		if !pressed {
			return true
		}
		if a.game.Phase() != gamedata.PhasePlaying {
			a.start()
			return true
		}
		col, row := ev.Position()
		a.game.HandleInput(a.pointer(col, row))

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) start() {
	if a.game.Phase() == gamedata.PhasePlaying {
		return
	}
	a.game.Start()
	log.Println("[Term] Round started")
}

// pointer describes a click at a cell: the displayed surface is the cell
// grid, the intrinsic one is the canvas.
func (a *App) pointer(col, row int) hittest.PointerEvent {
	cols, rows := a.surface.Grid()
	return hittest.PointerEvent{
		X:             float64(col) + 0.5,
		Y:             float64(row) + 0.5,
		Bounds:        hittest.Rect{Top: float64(a.surface.top), Width: float64(cols), Height: float64(rows)},
		SurfaceWidth:  a.surface.width,
		SurfaceHeight: a.surface.height,
	}
}

func (a *App) draw() {
	a.screen.Clear()
	a.surface.Paint()
	a.drawText(0, 0, a.statusLine())
	a.screen.Show()
}

func (a *App) statusLine() string {
	line := fmt.Sprintf("Score %d  Time %d", a.hud.Score, a.hud.TimeRemaining)
	switch a.hud.Prompt {
	case gamedata.PromptStart:
		line += "  | click or Enter to start, Esc to quit"
	case gamedata.PromptEnd:
		line += fmt.Sprintf("  | final score %d, click or Enter to play again", a.hud.FinalScore)
	}
	return line
}

func (a *App) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		a.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
