package rooms

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"tapnano/internal/events"
	"tapnano/internal/gamedata"
	"tapnano/internal/metrics"
)

const sweepInterval = 5 * time.Minute

type Options struct {
	FrameRate int
	TTL       time.Duration
	Bus       *events.Bus        // optional
	Metrics   *metrics.Collector // optional
}

type Store struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	cancel map[string]context.CancelFunc
	cfg    gamedata.Config
	opts   Options
	ctx    context.Context
	stop   context.CancelFunc
}

func NewStore(cfg gamedata.Config, opts Options) *Store {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	ctx, stop := context.WithCancel(context.Background())
	s := &Store{
		rooms:  make(map[string]*Room),
		cancel: make(map[string]context.CancelFunc),
		cfg:    cfg,
		opts:   opts,
		ctx:    ctx,
		stop:   stop,
	}
	go s.sweepStale()
	return s
}

// Create makes a room with a fresh code and starts its loop.
func (s *Store) Create(hostID string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for range 10 {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}

		var obs gamedata.Observer
		if s.opts.Metrics != nil {
			obs = s.opts.Metrics
			s.opts.Metrics.ActiveRooms.Inc()
		}
		room := newRoom(code, hostID, s.cfg, s.opts.FrameRate, s.opts.Bus, obs)
		ctx, cancel := context.WithCancel(s.ctx)
		s.rooms[code] = room
		s.cancel[code] = cancel
		go room.Run(ctx)
		log.Printf("[Room] Created %s\n", code)
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

func (s *Store) Get(code string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[code]
}

func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(code)
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}

// Close stops every room loop and the sweeper.
func (s *Store) Close() {
	s.stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	for code := range s.rooms {
		s.deleteLocked(code)
	}
}

func (s *Store) deleteLocked(code string) {
	if _, ok := s.rooms[code]; !ok {
		return
	}
	s.cancel[code]()
	delete(s.cancel, code)
	delete(s.rooms, code)
	if s.opts.Metrics != nil {
		s.opts.Metrics.ActiveRooms.Dec()
	}
}

func (s *Store) sweepStale() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(time.Now())
		}
	}
}

// Sweep removes rooms older than the TTL that nobody is connected to.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for code, room := range s.rooms {
		if now.Sub(room.CreatedAt) > s.opts.TTL && room.Hub.Len() == 0 {
			s.deleteLocked(code)
			log.Printf("[Room] Expired %s\n", code)
			removed++
		}
	}
	return removed
}
