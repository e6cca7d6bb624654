package engine

// Minimax expands every child; nothing is pruned.
type Minimax struct {
	tree
}

func NewMinimax(h Heuristic) *Minimax {
	return &Minimax{tree: tree{heuristic: h}}
}
