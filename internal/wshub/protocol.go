package wshub

import (
	"tapnano/internal/hittest"
	"tapnano/internal/stats"
)

// Client -> Server message types
const (
	MsgStart = "start"
	MsgDown  = "down"
)

// Server -> Client message types
const (
	MsgWelcome = "welcome"
	MsgFrame   = "frame"
	MsgPrompt  = "prompt"
	MsgHide    = "hide"
	MsgRecap   = "recap"
)

// ClientMessage is the structure received from clients.
type ClientMessage struct {
	Type          string       `json:"t" msgpack:"t"`
	X             float64      `json:"x,omitempty" msgpack:"x,omitempty"`
	Y             float64      `json:"y,omitempty" msgpack:"y,omitempty"`
	Rect          hittest.Rect `json:"r" msgpack:"r"`
	SurfaceWidth  float64      `json:"sw,omitempty" msgpack:"sw,omitempty"`
	SurfaceHeight float64      `json:"sh,omitempty" msgpack:"sh,omitempty"`
}

// PointerEvent converts a "down" message into the hit tester's input.
func (m ClientMessage) PointerEvent() hittest.PointerEvent {
	return hittest.PointerEvent{
		X:             m.X,
		Y:             m.Y,
		Bounds:        m.Rect,
		SurfaceWidth:  m.SurfaceWidth,
		SurfaceHeight: m.SurfaceHeight,
	}
}

// Disk is one target as drawn on the client canvas.
type Disk struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	Color string  `json:"c" msgpack:"c"`
}

// ServerMessage is the structure sent to clients.
type ServerMessage struct {
	Type       string       `json:"t" msgpack:"t"`
	ClientID   string       `json:"id,omitempty" msgpack:"id,omitempty"`
	Role       Role         `json:"role,omitempty" msgpack:"role,omitempty"`
	Room       string       `json:"room,omitempty" msgpack:"room,omitempty"`
	Width      int          `json:"w,omitempty" msgpack:"w,omitempty"`
	Height     int          `json:"h,omitempty" msgpack:"h,omitempty"`
	Phase      string       `json:"ph,omitempty" msgpack:"ph,omitempty"`
	Disks      []Disk       `json:"d,omitempty" msgpack:"d,omitempty"`
	Score      int          `json:"s" msgpack:"s"`
	Time       int          `json:"tm" msgpack:"tm"`
	Prompt     string       `json:"p,omitempty" msgpack:"p,omitempty"`
	FinalScore int          `json:"f,omitempty" msgpack:"f,omitempty"`
	Recap      *stats.Recap `json:"rc,omitempty" msgpack:"rc,omitempty"`
}
