package players

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds the players of a single room. Join order is preserved so
// leaderboard ties can break in favor of whoever joined first.
type Store struct {
	mu      sync.Mutex
	players map[string]*Player
	order   []string
}

func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

// Add creates a player with a fresh id. Display names need not be unique.
func (s *Store) Add(name string, conn string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	player := &Player{ID: uuid.New().String(), Name: name, Conn: conn}
	s.players[player.ID] = player
	s.order = append(s.order, player.ID)
	return player
}

func (s *Store) Get(id string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[id]
}

// RemoveByConn removes the player attached to the given connection ref.
// Unknown connections are a no-op, returning nil.
func (s *Store) RemoveByConn(conn string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.players {
		if p.Conn != conn {
			continue
		}
		delete(s.players, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return p
	}
	return nil
}

// List returns players in join order.
func (s *Store) List() []*Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Player, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.players[id])
	}
	return list
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// Apply credits points to a player's score and sets their streak,
// returning the updated player.
func (s *Store) Apply(id string, points int, streak int) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[id]; ok {
		p.Score += points
		p.Streak = streak
		return p
	}
	return nil
}
