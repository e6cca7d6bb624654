package othello

// directions walked when validating and flipping, as (dRow, dCol).
var directions = [8][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
}

// Game is the rules engine around a single Board. It carries no side to move;
// callers always pass the side explicitly.
type Game struct {
	board *Board
}

func NewGame(b *Board) *Game {
	return &Game{board: b}
}

// NewDefaultGame starts from the standard opening.
func NewDefaultGame() *Game {
	return NewGame(DefaultBoard())
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Clone() *Game {
	return &Game{board: g.board.Clone()}
}

// ValidMoves lists the legal moves for side in row-major scan order.
func (g *Game) ValidMoves(side Disc) []Position {
	var moves []Position
	for r := 0; r < g.board.height; r++ {
		for c := 0; c < g.board.width; c++ {
			p := Position{Row: r, Col: c}
			if g.IsValidMove(p, side) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// IsValidMove reports whether side may drop a disc at p. Positions off the
// board are never valid.
func (g *Game) IsValidMove(p Position, side Disc) bool {
	if !g.board.InBounds(p) || g.board.At(p) != Empty {
		return false
	}
	for _, d := range directions {
		if g.flanks(p, side, d[0], d[1]) {
			return true
		}
	}
	return false
}

// flanks walks from p along (dr, dc) and reports whether one or more opponent
// discs are closed off by a disc of side.
func (g *Game) flanks(p Position, side Disc, dr, dc int) bool {
	between := side.Opponent()
	seen := false
	for step := 1; ; step++ {
		q := Position{Row: p.Row + step*dr, Col: p.Col + step*dc}
		if !g.board.InBounds(q) {
			return false
		}
		switch g.board.At(q) {
		case Empty:
			return false
		case between:
			seen = true
		default:
			return seen
		}
	}
}

// Place drops a disc for side at p and flips every flanked run. p must be a
// valid move; this is only asserted in apollodebug builds.
func (g *Game) Place(p Position, side Disc) {
	if assertPreconditions && !g.IsValidMove(p, side) {
		panic("othello: place at " + p.String() + " is not a valid move for " + side.String())
	}
	// Validity per direction is decided before anything changes so that
	// flipped discs never act as anchors for another ray.
	var flip [8]bool
	for i, d := range directions {
		flip[i] = g.flanks(p, side, d[0], d[1])
	}
	g.board.Set(p, side)
	between := side.Opponent()
	for i, d := range directions {
		if !flip[i] {
			continue
		}
		for step := 1; ; step++ {
			q := Position{Row: p.Row + step*d[0], Col: p.Col + step*d[1]}
			if !g.board.InBounds(q) || g.board.At(q) != between {
				break
			}
			g.board.Set(q, side)
		}
	}
}

// HasAnyValidMoves is true while at least one side can still move. It only
// turns false once both sides are stuck.
func (g *Game) HasAnyValidMoves() bool {
	for r := 0; r < g.board.height; r++ {
		for c := 0; c < g.board.width; c++ {
			p := Position{Row: r, Col: c}
			if g.IsValidMove(p, Black) || g.IsValidMove(p, White) {
				return true
			}
		}
	}
	return false
}

func (g *Game) Count(d Disc) int {
	n := 0
	for _, c := range g.board.cells {
		if c == d {
			n++
		}
	}
	return n
}

// Winner returns the side with strictly more discs; ok is false on a tie.
func (g *Game) Winner() (winner Disc, ok bool) {
	black, white := g.Count(Black), g.Count(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Empty, false
	}
}
