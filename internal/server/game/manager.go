// Package game keeps the in-memory human-versus-engine sessions served over
// HTTP.
package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
)

var (
	ErrNotFound     = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidSide  = errors.New("human side must be black or white")
	ErrInvalidDepth = errors.New("engine depth must be at least 1")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

// NewGame starts a session from the opening. When the engine plays Black it
// moves before NewGame returns.
func (m *Manager) NewGame(humanSide othello.Disc, spec match.Spec) (*Session, error) {
	if humanSide != othello.Black && humanSide != othello.White {
		return nil, ErrInvalidSide
	}
	if spec.Depth < 1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDepth, spec)
	}
	player, err := spec.Player()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		HumanSide: humanSide,
		Spec:      spec,
		CreatedAt: now,
		game:      othello.NewDefaultGame(),
		engine:    player,
		updatedAt: now,
	}
	if humanSide == othello.White {
		s.respond()
	}

	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()

	log.Debug().Str("game", s.ID).Str("human", humanSide.String()).Str("engine", spec.String()).Msg("game-created")
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Play applies the human's move in session id and lets the engine answer.
func (m *Manager) Play(id string, p othello.Position) (State, error) {
	s, err := m.Get(id)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.game.HasAnyValidMoves() {
		return State{}, ErrGameOver
	}
	if !s.game.IsValidMove(p, s.HumanSide) {
		return State{}, fmt.Errorf("%w: %s", ErrIllegalMove, p)
	}
	s.game.Place(p, s.HumanSide)
	s.respond()
	s.updatedAt = time.Now()

	log.Debug().Str("game", id).Str("move", p.String()).Int("replies", len(s.replies)).Msg("game-played")
	return s.snapshot(), nil
}

// Delete forgets a session. Unknown ids are not an error.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
