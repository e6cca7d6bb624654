package engine

// AlphaBeta prunes with alpha/beta bounds but keeps board-scan order, so how
// much it prunes depends entirely on where good moves sit on the board.
type AlphaBeta struct {
	tree
}

func NewAlphaBeta(h Heuristic) *AlphaBeta {
	return &AlphaBeta{tree: tree{heuristic: h, prune: true}}
}
