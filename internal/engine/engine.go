package engine

import (
	"math"

	"github.com/rybergy/apollo/internal/othello"
)

// Evaluation is a score seen from the side that started the search.
type Evaluation int64

const (
	MinEvaluation Evaluation = math.MinInt64
	MaxEvaluation Evaluation = math.MaxInt64
)

// Heuristic scores a position from the perspective of side.
type Heuristic interface {
	Eval(g *othello.Game, side othello.Disc) Evaluation
}

// Result is what a search hands back. Found is false when the side to move
// had no legal move at the root or the depth budget was zero.
type Result struct {
	Move  othello.Position
	Found bool
	Value Evaluation
}

// Search picks a move for side looking depth plies ahead. An instance owns its
// heuristic and counters and must not be shared between goroutines.
type Search interface {
	Search(g *othello.Game, side othello.Disc, depth int) Result
	// NodesExpanded counts recursive calls made by the last Search.
	NodesExpanded() int
	// NodesGenerated counts successor states created since the instance was
	// built; it is not reset between searches.
	NodesGenerated() int
}
