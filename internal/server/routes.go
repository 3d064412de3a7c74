package server

import (
	"embed"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tapnano/internal/broadcast"
	"tapnano/internal/config"
	"tapnano/internal/events"
	"tapnano/internal/metrics"
	"tapnano/internal/rooms"
	"tapnano/internal/wshub"
)

//go:embed static
var static embed.FS

func Run() error {
	appCfg := config.Load()

	codec, err := wshub.CodecByName(appCfg.WireCodec)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	bus := events.NewBus()
	srv := New(appCfg.Game(), rooms.Options{
		FrameRate: appCfg.FrameRate,
		TTL:       appCfg.RoomTTLDuration(),
		Bus:       bus,
		Metrics:   metrics.NewCollector(reg),
	}, codec)
	srv.Feed = broadcast.NewBroadcaster(bus)
	srv.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	defer srv.Rooms.Close()

	addr := "0.0.0.0:" + appCfg.Port
	log.Printf("[Server] Listening on http://localhost:%s (codec %s)\n", appCfg.Port, codec.Name())
	return http.ListenAndServe(addr, srv.Routes())
}

// Routes builds the HTTP handler for srv.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /rooms/{code}/ws", s.handleWS)
	mux.HandleFunc("GET /rooms/{code}/score", s.handleScore)
	mux.HandleFunc("GET /feed", s.handleFeed)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.Metrics != nil {
		mux.Handle("GET /metrics", s.Metrics)
	}
	return mux
}
