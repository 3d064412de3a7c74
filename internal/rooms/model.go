package rooms

import (
	"context"
	"errors"
	"image/color"
	"time"

	"tapnano/internal/events"
	"tapnano/internal/gamedata"
	"tapnano/internal/hittest"
	"tapnano/internal/targets"
	"tapnano/internal/utility"
	"tapnano/internal/wshub"
)

var ErrRoomClosed = errors.New("room closed")

// Room runs one game on its own goroutine. Game must only be touched from
// inside Run, which includes functions passed to Do.
type Room struct {
	Code      string
	HostID    string
	CreatedAt time.Time
	Hub       *wshub.Hub
	Game      *gamedata.Game

	frame    *frameRenderer
	hud      *hubPresenter
	bus      *events.Bus
	inputs   chan hittest.PointerEvent
	commands chan func()
	interval time.Duration
	done     chan struct{}
}

func newRoom(code, hostID string, cfg gamedata.Config, frameRate int, bus *events.Bus, obs gamedata.Observer) *Room {
	hub := wshub.NewHub()
	r := &Room{
		Code:      code,
		HostID:    hostID,
		CreatedAt: time.Now(),
		Hub:       hub,
		frame:     &frameRenderer{},
		hud:       &hubPresenter{hub: hub},
		bus:       bus,
		inputs:    make(chan hittest.PointerEvent, 32),
		commands:  make(chan func(), 8),
		interval:  time.Second / time.Duration(max(frameRate, 1)),
		done:      make(chan struct{}),
	}
	r.Game = gamedata.NewGame(cfg, nil, r.frame, r.hud)
	observers := gamedata.Observers{&roomFeed{room: r}}
	if obs != nil {
		observers = append(observers, obs)
	}
	r.Game.SetObserver(observers)
	return r
}

// Run drives the game until ctx is cancelled: one Tick per frame while a
// round is playing, with inputs and commands applied between ticks.
func (r *Room) Run(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	epoch := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-r.commands:
			fn()
		case ev := <-r.inputs:
			if r.Game.HandleInput(ev) {
				r.frame.redraw(r.Game.Targets.List())
				r.flush()
			}
		case <-ticker.C:
			if r.Game.Phase() != gamedata.PhasePlaying {
				continue
			}
			r.Game.Tick(time.Since(epoch))
			r.flush()
		}
	}
}

// Do runs fn on the room goroutine and waits for it to finish.
func (r *Room) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	select {
	case r.commands <- wrapped:
	case <-r.done:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-r.done:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start begins or restarts the round.
func (r *Room) Start(ctx context.Context) error {
	return r.Do(ctx, func() {
		r.Game.Start()
		r.flush()
	})
}

// Input queues a pointer-down for the next loop iteration. It reports false
// when the queue is full and the event was dropped.
func (r *Room) Input(ev hittest.PointerEvent) bool {
	select {
	case r.inputs <- ev:
		return true
	default:
		return false
	}
}

func (r *Room) Snapshot(ctx context.Context) (gamedata.Snapshot, error) {
	var snap gamedata.Snapshot
	err := r.Do(ctx, func() {
		snap = r.Game.Snapshot()
	})
	return snap, err
}

// Join registers c and sends it the current state of the room.
func (r *Room) Join(ctx context.Context, c *wshub.Client) error {
	return r.Do(ctx, func() {
		r.Hub.Register(c)
		r.Hub.SendTo(c.ID, wshub.ServerMessage{
			Type:     wshub.MsgWelcome,
			ClientID: c.ID,
			Role:     c.Role,
			Room:     r.Code,
			Width:    r.Game.Config.Width,
			Height:   r.Game.Config.Height,
			Phase:    string(r.Game.Phase()),
			Score:    r.Game.Score(),
			Time:     r.Game.DisplaySeconds(),
		})
		if r.hud.Prompt != "" {
			r.Hub.SendTo(c.ID, r.hud.promptMessage())
		}
	})
}

// Done is closed once Run has returned.
func (r *Room) Done() <-chan struct{} {
	return r.done
}

func (r *Room) flush() {
	r.Hub.Broadcast(wshub.ServerMessage{
		Type:  wshub.MsgFrame,
		Phase: string(r.Game.Phase()),
		Disks: r.frame.disks,
		Score: r.hud.Score,
		Time:  r.hud.TimeRemaining,
	})
}

// frameRenderer records the disks of the current frame for the wire.
type frameRenderer struct {
	disks []wshub.Disk
}

func (f *frameRenderer) Clear() {
	f.disks = nil
}

func (f *frameRenderer) DrawDisk(x, y, radius float64, c color.Color) {
	f.disks = append(f.disks, wshub.Disk{X: x, Y: y, R: radius, Color: utility.Hex(c)})
}

// redraw replaces the frame so a hit disappears before the next tick.
func (f *frameRenderer) redraw(live []*targets.Target) {
	f.Clear()
	for _, t := range live {
		f.DrawDisk(t.X, t.Y, t.Radius, t.Color)
	}
}

// hubPresenter keeps HUD state and pushes prompt changes to the room's
// clients as they happen. Score and time go out with each frame.
type hubPresenter struct {
	gamedata.HUD
	hub *wshub.Hub
}

func (p *hubPresenter) ShowStartPrompt() {
	p.HUD.ShowStartPrompt()
	p.hub.Broadcast(p.promptMessage())
}

func (p *hubPresenter) ShowEndPrompt(finalScore int) {
	p.HUD.ShowEndPrompt(finalScore)
	p.hub.Broadcast(p.promptMessage())
}

func (p *hubPresenter) HidePrompt(which gamedata.Prompt) {
	p.HUD.HidePrompt(which)
	p.hub.Broadcast(wshub.ServerMessage{Type: wshub.MsgHide, Prompt: string(which)})
}

func (p *hubPresenter) promptMessage() wshub.ServerMessage {
	return wshub.ServerMessage{
		Type:       wshub.MsgPrompt,
		Prompt:     string(p.Prompt),
		FinalScore: p.FinalScore,
		Score:      p.Score,
		Time:       p.TimeRemaining,
	}
}

// roomFeed publishes phase changes to the server-wide feed and sends the
// round recap to the room when a round ends.
type roomFeed struct {
	room *Room
}

func (f *roomFeed) PhaseChanged(phase gamedata.Phase, score int) {
	r := f.room
	if r.bus != nil {
		r.bus.Publish(events.PhaseChangeEvent{Room: r.Code, Phase: string(phase), Score: score})
	}
	if phase == gamedata.PhaseGameOver {
		st := r.Game.Stats()
		recap := st.Recap()
		r.Hub.Broadcast(wshub.ServerMessage{Type: wshub.MsgRecap, Recap: &recap})
	}
}

func (f *roomFeed) TargetSpawned(_ *targets.Target) {}
func (f *roomFeed) TargetHit(_ *targets.Target)     {}
func (f *roomFeed) TargetsExpired(_ int)            {}
