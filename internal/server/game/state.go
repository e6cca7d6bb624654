package game

import (
	"sync"
	"time"

	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
)

// Session is one human-versus-engine game. The engine's search instance
// belongs to the session and is only used under mu.
type Session struct {
	ID        string
	HumanSide othello.Disc
	Spec      match.Spec
	CreatedAt time.Time

	mu        sync.Mutex
	game      *othello.Game
	engine    match.Player
	updatedAt time.Time
	replies   []match.Ply
}

// State is a copy of a session taken under its lock.
type State struct {
	ID         string
	HumanSide  othello.Disc
	Spec       match.Spec
	Board      *othello.Board
	ValidMoves []othello.Position // the human's
	Black      int
	White      int
	Over       bool
	Winner     othello.Disc // Empty on a tie or while the game runs
	Replies    []match.Ply  // engine plies answering the last human action
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() State {
	st := State{
		ID:         s.ID,
		HumanSide:  s.HumanSide,
		Spec:       s.Spec,
		Board:      s.game.Board().Clone(),
		ValidMoves: s.game.ValidMoves(s.HumanSide),
		Black:      s.game.Count(othello.Black),
		White:      s.game.Count(othello.White),
		Over:       !s.game.HasAnyValidMoves(),
		Replies:    append([]match.Ply(nil), s.replies...),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.updatedAt,
	}
	if st.Over {
		if w, ok := s.game.Winner(); ok {
			st.Winner = w
		}
	}
	return st
}

// respond lets the engine move until the human has a legal move or the game
// is over. An engine that finds no move while the human is stuck ends the
// exchange.
func (s *Session) respond() {
	s.replies = s.replies[:0]
	engineSide := s.HumanSide.Opponent()
	for s.game.HasAnyValidMoves() {
		before := s.engine.Search.NodesGenerated()
		res := s.engine.Search.Search(s.game, engineSide, s.engine.Depth)
		if res.Found {
			s.game.Place(res.Move, engineSide)
		}
		s.replies = append(s.replies, match.Ply{
			Number:         len(s.replies) + 1,
			Side:           engineSide,
			Move:           res.Move,
			Found:          res.Found,
			Value:          res.Value,
			NodesExpanded:  s.engine.Search.NodesExpanded(),
			NodesGenerated: s.engine.Search.NodesGenerated() - before,
			Board:          s.game.Board().Encode(),
		})
		if !res.Found || len(s.game.ValidMoves(s.HumanSide)) > 0 {
			return
		}
	}
}
