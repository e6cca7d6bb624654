package engine

import (
	"sort"

	"github.com/rybergy/apollo/internal/othello"
)

type nodeKind int8

const (
	maxNode nodeKind = iota
	minNode
)

func (k nodeKind) opposite() nodeKind {
	if k == maxNode {
		return minNode
	}
	return maxNode
}

type successor struct {
	move  othello.Position
	game  *othello.Game
	score Evaluation // ordering key, only set by ordered searches
}

// scoreFunc gives a successor its ordering key, from root's perspective.
type scoreFunc func(child *othello.Game, root othello.Disc) Evaluation

// tree is the depth-first walk shared by every algorithm. Leaves are always
// scored from the root side's perspective: max nodes maximise and min nodes
// minimise that same number, nothing is negated.
type tree struct {
	heuristic Heuristic
	prune     bool
	score     scoreFunc // nil keeps board-scan order

	expanded  int
	generated int
}

func (t *tree) Search(g *othello.Game, side othello.Disc, depth int) Result {
	t.expanded = 0
	mv, found, value := t.explore(maxNode, g, side, side, depth, MinEvaluation, MaxEvaluation)
	return Result{Move: mv, Found: found, Value: value}
}

func (t *tree) NodesExpanded() int  { return t.expanded }
func (t *tree) NodesGenerated() int { return t.generated }

func (t *tree) explore(kind nodeKind, g *othello.Game, root, toMove othello.Disc, depth int, alpha, beta Evaluation) (othello.Position, bool, Evaluation) {
	t.expanded++

	if depth <= 0 {
		return othello.Position{}, false, t.heuristic.Eval(g, root)
	}

	succ := t.successors(kind, g, root, toMove)

	// A side without moves passes; the pass still costs one ply of depth.
	if len(succ) == 0 {
		_, _, value := t.explore(kind.opposite(), g, root, toMove.Opponent(), depth-1, alpha, beta)
		return othello.Position{}, false, value
	}

	t.generated += len(succ)

	var (
		bestMove othello.Position
		found    bool
	)
	if kind == maxNode {
		best := MinEvaluation
		for _, s := range succ {
			_, _, value := t.explore(minNode, s.game, root, toMove.Opponent(), depth-1, alpha, beta)
			if value > best || !found {
				best, bestMove, found = value, s.move, true
			}
			if !t.prune {
				continue
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return bestMove, found, best
	}

	worst := MaxEvaluation
	for _, s := range succ {
		_, _, value := t.explore(maxNode, s.game, root, toMove.Opponent(), depth-1, alpha, beta)
		if value < worst || !found {
			worst, bestMove, found = value, s.move, true
		}
		if !t.prune {
			continue
		}
		if worst < beta {
			beta = worst
		}
		if alpha >= beta {
			break
		}
	}
	return bestMove, found, worst
}

// successors clones the position once per legal move of toMove, in scan
// order, then sorts them when the algorithm orders moves.
func (t *tree) successors(kind nodeKind, g *othello.Game, root, toMove othello.Disc) []successor {
	moves := g.ValidMoves(toMove)
	if len(moves) == 0 {
		return nil
	}
	succ := make([]successor, len(moves))
	for i, mv := range moves {
		child := g.Clone()
		child.Place(mv, toMove)
		succ[i] = successor{move: mv, game: child}
	}
	if t.score == nil {
		return succ
	}
	for i := range succ {
		succ[i].score = t.score(succ[i].game, root)
	}
	orderSuccessors(kind, succ)
	return succ
}

// orderSuccessors puts the most promising child first: highest key at max
// nodes, lowest at min nodes. Equal keys keep scan order.
func orderSuccessors(kind nodeKind, succ []successor) {
	if kind == maxNode {
		sort.SliceStable(succ, func(i, j int) bool { return succ[i].score > succ[j].score })
		return
	}
	sort.SliceStable(succ, func(i, j int) bool { return succ[i].score < succ[j].score })
}
