package engine

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/rybergy/apollo/internal/othello"
)

// Zero scores every position as 0.
type Zero struct{}

func NewZero() *Zero { return &Zero{} }

func (*Zero) Eval(*othello.Game, othello.Disc) Evaluation { return 0 }

// randomSpread bounds Random's output to [-randomSpread, randomSpread].
const randomSpread = 9

// Random is a noisy baseline: a fresh uniform draw on every call.
type Random struct{}

func NewRandom() *Random { return &Random{} }

func (*Random) Eval(*othello.Game, othello.Disc) Evaluation {
	return Evaluation(frand.Intn(2*randomSpread+1) - randomSpread)
}

// Unit is the disc differential.
type Unit struct{}

func NewUnit() *Unit { return &Unit{} }

func (*Unit) Eval(g *othello.Game, side othello.Disc) Evaluation {
	opp := side.Opponent()
	var sum Evaluation
	g.Board().Each(func(_ othello.Position, d othello.Disc) {
		switch d {
		case side:
			sum++
		case opp:
			sum--
		}
	})
	return sum
}

var cellWeights = [8][8]Evaluation{
	{120, -20, 20, 5, 5, 20, -20, 120},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{120, -20, 20, 5, 5, 20, -20, 120},
}

// Weighted sums the positional weight of every disc, signed by owner. It only
// knows the standard 8x8 board.
type Weighted struct{}

func NewWeighted() *Weighted { return &Weighted{} }

func (*Weighted) Eval(g *othello.Game, side othello.Disc) Evaluation {
	b := g.Board()
	if b.Width() != len(cellWeights[0]) || b.Height() != len(cellWeights) {
		panic(fmt.Sprintf("engine: weighted heuristic needs an 8x8 board, got %dx%d", b.Width(), b.Height()))
	}
	opp := side.Opponent()
	var sum Evaluation
	b.Each(func(p othello.Position, d othello.Disc) {
		switch d {
		case side:
			sum += cellWeights[p.Row][p.Col]
		case opp:
			sum -= cellWeights[p.Row][p.Col]
		}
	})
	return sum
}

// Mobility counts side's legal moves; the opponent's are ignored.
type Mobility struct{}

func NewMobility() *Mobility { return &Mobility{} }

func (*Mobility) Eval(g *othello.Game, side othello.Disc) Evaluation {
	return Evaluation(len(g.ValidMoves(side)))
}

const mobilityFactor = 5

// WeightedMobility is Weighted + 5*Mobility.
type WeightedMobility struct {
	weighted *Weighted
	mobility *Mobility
}

func NewWeightedMobility() *WeightedMobility {
	return &WeightedMobility{weighted: NewWeighted(), mobility: NewMobility()}
}

func (h *WeightedMobility) Eval(g *othello.Game, side othello.Disc) Evaluation {
	return h.weighted.Eval(g, side) + mobilityFactor*h.mobility.Eval(g, side)
}
