package rooms

import (
	"context"
	"testing"
	"time"

	"tapnano/internal/gamedata"
	"tapnano/internal/hittest"
	"tapnano/internal/wshub"
)

func runTestRoom(t *testing.T, cfg gamedata.Config) *Room {
	t.Helper()
	room := newRoom("TEST", "host-1", cfg, 200, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go room.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-room.Done()
	})
	return room
}

// waitFor polls the room until cond holds or the deadline passes.
func waitFor(t *testing.T, room *Room, cond func(gamedata.Snapshot) bool) gamedata.Snapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := room.Snapshot(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if cond(snap) {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for room state")
	return gamedata.Snapshot{}
}

func readMessage(t *testing.T, c *wshub.Client) wshub.ServerMessage {
	t.Helper()
	select {
	case data := <-c.Send:
		var msg wshub.ServerMessage
		if err := c.Codec.Unmarshal(data, &msg); err != nil {
			t.Fatal(err)
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return wshub.ServerMessage{}
}

func TestRoom_Join(t *testing.T) {
	room := runTestRoom(t, testConfig())
	c := wshub.NewClient("p1", wshub.RolePlayer, wshub.JSON, nil)

	if err := room.Join(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	welcome := readMessage(t, c)
	if welcome.Type != wshub.MsgWelcome {
		t.Fatalf("first message = %q, want %q", welcome.Type, wshub.MsgWelcome)
	}
	if welcome.Room != "TEST" || welcome.Role != wshub.RolePlayer {
		t.Errorf("welcome = %+v", welcome)
	}
	if welcome.Width != 600 || welcome.Height != 400 {
		t.Errorf("surface = %dx%d, want 600x400", welcome.Width, welcome.Height)
	}
	if welcome.Phase != string(gamedata.PhaseStart) {
		t.Errorf("phase = %q, want %q", welcome.Phase, gamedata.PhaseStart)
	}

	prompt := readMessage(t, c)
	if prompt.Type != wshub.MsgPrompt || prompt.Prompt != string(gamedata.PromptStart) {
		t.Errorf("second message = %+v, want start prompt", prompt)
	}
}

func TestRoom_RoundEndsInGameOver(t *testing.T) {
	room := runTestRoom(t, testConfig())
	c := wshub.NewClient("watcher", wshub.RoleSpectator, wshub.Msgpack, nil)
	if err := room.Join(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { room.Hub.Unregister(c.ID) })

	recaps := make(chan *wshub.ServerMessage, 1)
	go func() {
		for data := range c.Send {
			var msg wshub.ServerMessage
			if c.Codec.Unmarshal(data, &msg) == nil && msg.Type == wshub.MsgRecap {
				recaps <- &msg
				return
			}
		}
	}()

	if err := room.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap := waitFor(t, room, func(s gamedata.Snapshot) bool {
		return s.Phase == gamedata.PhaseGameOver
	})
	if snap.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %v, want 0", snap.TimeRemaining)
	}
	if len(snap.Targets) != 0 {
		t.Errorf("targets after game over = %d, want 0", len(snap.Targets))
	}
	if snap.Stats.Spawns == 0 {
		t.Error("expected at least one spawn during the round")
	}

	select {
	case msg := <-recaps:
		if msg.Recap == nil {
			t.Fatal("recap message without a recap")
		}
		if msg.Recap.Score != snap.Score {
			t.Errorf("recap score = %d, want %d", msg.Recap.Score, snap.Score)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a recap message after the round ended")
	}
}

func TestRoom_InputHitsTarget(t *testing.T) {
	cfg := testConfig()
	cfg.RoundDuration = 10
	room := runTestRoom(t, cfg)

	if err := room.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	snap := waitFor(t, room, func(s gamedata.Snapshot) bool {
		return len(s.Targets) > 0
	})
	target := snap.Targets[len(snap.Targets)-1]

	ok := room.Input(hittest.PointerEvent{
		X:             target.X,
		Y:             target.Y,
		Bounds:        hittest.Rect{Width: 600, Height: 400},
		SurfaceWidth:  600,
		SurfaceHeight: 400,
	})
	if !ok {
		t.Fatal("Input() dropped the event")
	}

	snap = waitFor(t, room, func(s gamedata.Snapshot) bool {
		return s.Score == 1
	})
	if snap.Stats.Hits != 1 || snap.Stats.Clicks != 1 {
		t.Errorf("stats = %+v, want one click and one hit", snap.Stats)
	}
}

func TestRoom_InputBeforeStartIgnored(t *testing.T) {
	room := runTestRoom(t, testConfig())

	room.Input(hittest.PointerEvent{
		X:             300,
		Y:             200,
		Bounds:        hittest.Rect{Width: 600, Height: 400},
		SurfaceWidth:  600,
		SurfaceHeight: 400,
	})

	snap, err := room.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snap.Score != 0 || snap.Stats.Clicks != 0 {
		t.Errorf("snapshot = %+v, want untouched start state", snap)
	}
}
