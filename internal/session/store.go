package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

// ErrNotFound is returned for unknown game ids.
var ErrNotFound = errors.New("game not found")

// Store keeps games in memory for the lifetime of the process.
type Store struct {
	mu    sync.Mutex
	games map[string]*Game
}

func NewStore() *Store {
	return &Store{games: make(map[string]*Game)}
}

// Create opens a new game on p under a fresh id.
func (s *Store) Create(p domain.Pattern) *Game {
	g := NewGame(uuid.NewString(), p)
	s.mu.Lock()
	s.games[g.ID] = g
	s.mu.Unlock()
	return g
}

// Update runs fn on the game while holding the store lock. fn must not keep
// references to the game after returning.
func (s *Store) Update(id string, fn func(g *Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

// Get is Update with a read-only intent.
func (s *Store) Get(id string, fn func(g *Game) error) error {
	return s.Update(id, fn)
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.games[id]
	delete(s.games, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}
