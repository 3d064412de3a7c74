package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"tapnano/internal/broadcast"
	"tapnano/internal/gamedata"
	"tapnano/internal/rooms"
	"tapnano/internal/wshub"
)

type Server struct {
	Rooms   *rooms.Store
	Feed    *broadcast.Broadcaster // nil disables /feed
	Metrics http.Handler           // nil disables /metrics
	Codec   wshub.Codec            // default when the client does not ask for one
}

func New(cfg gamedata.Config, opts rooms.Options, codec wshub.Codec) *Server {
	if codec == nil {
		codec = wshub.JSON
	}
	return &Server{
		Rooms: rooms.NewStore(cfg, opts),
		Codec: codec,
	}
}

// playerID returns the caller's player_id cookie, if any.
func playerID(r *http.Request) string {
	cookie, err := r.Cookie("player_id")
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *Server) roomFromPath(r *http.Request) *rooms.Room {
	code, ok := rooms.NormalizeCode(r.PathValue("code"))
	if !ok {
		return nil
	}
	return s.Rooms.Get(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Server] Encode error: %v\n", err)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		log.Println(err)
		http.Error(w, "Error loading page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	hostID := playerID(r)
	if hostID == "" {
		hostID = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     "player_id",
			Value:    hostID,
			Path:     "/",
			HttpOnly: true,
		})
	}

	room, err := s.Rooms.Create(hostID)
	if err != nil {
		log.Println(err)
		http.Error(w, "Failed to create room", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "room_code",
		Value:    room.Code,
		Path:     "/",
		HttpOnly: true,
	})

	log.Printf("[Server] Created room %s\n", room.Code)
	writeJSON(w, http.StatusCreated, map[string]string{"code": room.Code})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	room := s.roomFromPath(r)
	if room == nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}
	snap, err := room.Snapshot(r.Context())
	if err != nil {
		http.Error(w, "Room closed", http.StatusGone)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"score": snap.Score,
		"phase": snap.Phase,
		"time":  gamedata.CeilSeconds(snap.TimeRemaining),
	})
}

// handleWS upgrades to a websocket and pumps messages between the
// connection and the room. The room's host plays, everyone else watches.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	room := s.roomFromPath(r)
	if room == nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	codec := s.Codec
	if name := r.URL.Query().Get("codec"); name != "" {
		c, err := wshub.CodecByName(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		codec = c
	}

	role := wshub.RoleSpectator
	if id := playerID(r); id != "" && id == room.HostID {
		role = wshub.RolePlayer
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	client := wshub.NewClient(uuid.New().String(), role, codec, conn)
	if err := room.Join(ctx, client); err != nil {
		conn.Close(websocket.StatusGoingAway, "room closed")
		return
	}
	defer room.Hub.Unregister(client.ID)
	log.Printf("[WS] %s joined %s as %s\n", client.ID, room.Code, role)

	go client.WritePump(ctx)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
				log.Printf("[WS] Read error: %v\n", err)
			}
			return
		}
		var msg wshub.ClientMessage
		if err := codec.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Bad message from %s: %v\n", client.ID, err)
			continue
		}
		if role != wshub.RolePlayer {
			continue
		}
		if err := s.handleMessage(ctx, room, msg); err != nil {
			log.Printf("[WS] %v\n", err)
			return
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, room *rooms.Room, msg wshub.ClientMessage) error {
	switch msg.Type {
	case wshub.MsgStart:
		if err := room.Start(ctx); err != nil {
			return fmt.Errorf("starting round in %s: %w", room.Code, err)
		}
	case wshub.MsgDown:
		if !room.Input(msg.PointerEvent()) {
			log.Printf("[WS] Input queue full in %s, dropping event\n", room.Code)
		}
	}
	return nil
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if s.Feed == nil {
		http.Error(w, "Feed disabled", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	msgChan := s.Feed.Subscribe()
	defer s.Feed.Unsubscribe(msgChan)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-msgChan:
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Msg, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rooms":  len(s.Rooms.List()),
	})
}
