package match

import (
	"lukechampine.com/frand"

	"github.com/rybergy/apollo/internal/engine"
	"github.com/rybergy/apollo/internal/othello"
)

// RandomGame plays moves random plies from the opening, alternating sides. A
// side without a legal move passes.
func RandomGame(moves int) *othello.Game {
	g := othello.NewDefaultGame()
	random := engine.NewMinimax(engine.NewRandom())
	side := othello.Black
	for i := 0; i < moves; i++ {
		if res := random.Search(g, side, 1); res.Found {
			g.Place(res.Move, side)
		}
		side = side.Opponent()
	}
	return g
}

// OpeningLength draws the number of random plies for one trial in
// [lower, upper). A collapsed range yields lower.
func OpeningLength(lower, upper int) int {
	if upper <= lower {
		return lower
	}
	return lower + frand.Intn(upper-lower)
}

// Winrate plays n games between a1 and a2 from random openings, swapping
// colours every game, and returns a1's share of wins. A drawn game counts
// for White.
func Winrate(a1, a2 Player, n, lower, upper int) float64 {
	if n <= 0 {
		return 0
	}
	wins := 0
	a1Black := true
	for i := 0; i < n; i++ {
		g := RandomGame(OpeningLength(lower, upper))
		if a1Black {
			Play(g, a1, a2, nil)
		} else {
			Play(g, a2, a1, nil)
		}
		w, ok := g.Winner()
		blackWon := ok && w == othello.Black
		if blackWon == a1Black {
			wins++
		}
		a1Black = !a1Black
	}
	return float64(wins) / float64(n)
}
