package engine

import "github.com/rybergy/apollo/internal/othello"

// AlphaBetaOrdering sorts children by the full heuristic before recursing.
type AlphaBetaOrdering struct {
	tree
}

func NewAlphaBetaOrdering(h Heuristic) *AlphaBetaOrdering {
	s := &AlphaBetaOrdering{tree: tree{heuristic: h, prune: true}}
	s.score = h.Eval
	return s
}

// sampleStride picks every other row and column for the cheap ordering key.
const sampleStride = 2

// AlphaBetaOrderingUnit orders children with a sampled disc count instead of
// the leaf heuristic: cheaper per child, rougher ordering.
type AlphaBetaOrderingUnit struct {
	tree
}

func NewAlphaBetaOrderingUnit(h Heuristic) *AlphaBetaOrderingUnit {
	return &AlphaBetaOrderingUnit{tree: tree{heuristic: h, prune: true, score: sampledUnit}}
}

// sampledUnit is +1 per own disc and -1 per opponent disc over the cells whose
// row and column are both multiples of sampleStride.
func sampledUnit(g *othello.Game, side othello.Disc) Evaluation {
	b := g.Board()
	opp := side.Opponent()
	var eval Evaluation
	for r := 0; r < b.Height(); r += sampleStride {
		for c := 0; c < b.Width(); c += sampleStride {
			switch b.At(othello.Pos(r, c)) {
			case side:
				eval++
			case opp:
				eval--
			}
		}
	}
	return eval
}
