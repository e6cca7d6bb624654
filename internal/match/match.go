package match

import (
	"github.com/rybergy/apollo/internal/engine"
	"github.com/rybergy/apollo/internal/othello"
)

// Player is a search instance together with the depth it searches to.
type Player struct {
	Search engine.Search
	Depth  int
}

// Ply describes one turn of a match. Found is false when the side passed.
type Ply struct {
	Number         int               `json:"number"`
	Side           othello.Disc      `json:"side"`
	Move           othello.Position  `json:"move"`
	Found          bool              `json:"found"`
	Value          engine.Evaluation `json:"value"`
	NodesExpanded  int               `json:"nodes_expanded"`
	NodesGenerated int               `json:"nodes_generated"`
	Board          string            `json:"board"`
}

// Play runs black and white against each other on g until neither side can
// move. onPly, when set, sees every turn including passes. A round in which
// both players decline to move (depth 0) also ends the match.
func Play(g *othello.Game, black, white Player, onPly func(Ply)) {
	n := 0
	for g.HasAnyValidMoves() {
		n++
		b := turn(g, black, othello.Black, n, onPly)
		n++
		w := turn(g, white, othello.White, n, onPly)
		if !b && !w {
			return
		}
	}
}

func turn(g *othello.Game, p Player, side othello.Disc, n int, onPly func(Ply)) bool {
	before := p.Search.NodesGenerated()
	res := p.Search.Search(g, side, p.Depth)
	if res.Found {
		g.Place(res.Move, side)
	}
	if onPly == nil {
		return res.Found
	}
	onPly(Ply{
		Number:         n,
		Side:           side,
		Move:           res.Move,
		Found:          res.Found,
		Value:          res.Value,
		NodesExpanded:  p.Search.NodesExpanded(),
		NodesGenerated: p.Search.NodesGenerated() - before,
		Board:          g.Board().Encode(),
	})
	return res.Found
}
