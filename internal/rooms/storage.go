package rooms

import (
	"fmt"
	"sync"
	"time"
)

const staleTTL = 2 * time.Hour

// Store is the process-wide registry of active rooms, keyed by join PIN.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewStore() *Store {
	s := &Store{
		rooms: make(map[string]*Room),
	}
	go s.sweepStale()
	return s
}

// Create registers a new room owned by hostConn. PINs are retried on
// collision; with a 900000-value space exhausting 10 attempts means the
// registry is effectively full.
func (s *Store) Create(hostConn string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range 10 {
		pin, err := GeneratePIN()
		if err != nil {
			return nil, fmt.Errorf("generating room pin: %w", err)
		}
		if _, exists := s.rooms[pin]; exists {
			continue
		}
		room := New(pin, hostConn)
		s.rooms[pin] = room
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room pin after 10 attempts")
}

func (s *Store) Get(pin string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[pin]
}

func (s *Store) Delete(pin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, pin)
}

// FindByHost returns the room owned by a host connection, or nil. Linear
// scan; only called on disconnect.
func (s *Store) FindByHost(hostConn string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.HostConn == hostConn {
			return room
		}
	}
	return nil
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

func (s *Store) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for pin, room := range s.rooms {
			if now.Sub(room.CreatedAt) > staleTTL {
				delete(s.rooms, pin)
			}
		}
		s.mu.Unlock()
	}
}
