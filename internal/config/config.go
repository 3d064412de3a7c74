package config

import (
	"os"
	"strconv"
	"time"

	"tapnano/internal/gamedata"
)

type Config struct {
	Port          string
	RoundDuration int // seconds
	CanvasWidth   int
	CanvasHeight  int
	FrameRate     int // ticks per second for server-driven rooms
	RoomTTL       int // minutes
	WireCodec     string
	TermLog       string // log file for the terminal frontend
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		RoundDuration: getEnvInt("ROUND_DURATION", 20),
		CanvasWidth:   getEnvInt("CANVAS_WIDTH", 600),
		CanvasHeight:  getEnvInt("CANVAS_HEIGHT", 400),
		FrameRate:     getEnvInt("FRAME_RATE", 60),
		RoomTTL:       getEnvInt("ROOM_TTL_MINUTES", 60),
		WireCodec:     getEnv("WIRE_CODEC", "json"),
		TermLog:       getEnv("TERM_LOG", ""),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt falls back on unparsable and non-positive values.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

// Game is the round configuration every frontend passes to the core.
func (c Config) Game() gamedata.Config {
	return gamedata.Config{
		RoundDuration: c.RoundDuration,
		Width:         c.CanvasWidth,
		Height:        c.CanvasHeight,
	}
}

func (c Config) RoomTTLDuration() time.Duration {
	return time.Duration(c.RoomTTL) * time.Minute
}
