package othello

import "testing"

func TestOpeningValidMoves(t *testing.T) {
	g := NewDefaultGame()
	got := g.ValidMoves(Black)
	want := []Position{Pos(2, 4), Pos(3, 5), Pos(4, 2), Pos(5, 3)}
	if len(got) != len(want) {
		t.Fatalf("black has %d opening moves, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("move %d = %v, want %v (scan order)", i, got[i], want[i])
		}
	}
	if n := len(g.ValidMoves(White)); n != 4 {
		t.Fatalf("white has %d opening moves, want 4", n)
	}
}

func TestIsValidMoveRejects(t *testing.T) {
	g := NewDefaultGame()
	t.Run("occupied", func(t *testing.T) {
		if g.IsValidMove(Pos(3, 3), Black) || g.IsValidMove(Pos(3, 4), Black) {
			t.Fatalf("occupied cells must be rejected")
		}
	})
	t.Run("no flank", func(t *testing.T) {
		if g.IsValidMove(Pos(0, 0), Black) || g.IsValidMove(Pos(2, 2), Black) {
			t.Fatalf("cells without a bounded run must be rejected")
		}
	})
	t.Run("out of bounds", func(t *testing.T) {
		for _, p := range []Position{{-1, 3}, {3, -1}, {8, 4}, {4, 8}} {
			if g.IsValidMove(p, Black) {
				t.Fatalf("%v is off the board", p)
			}
		}
	})
	t.Run("run reaching the edge", func(t *testing.T) {
		b := NewBoard(4, 1)
		b.Set(Pos(0, 1), White)
		b.Set(Pos(0, 2), White)
		b.Set(Pos(0, 3), White)
		if NewGame(b).IsValidMove(Pos(0, 0), Black) {
			t.Fatalf("an all-opponent run that exits the board must not validate")
		}
	})
	t.Run("run ending in empty", func(t *testing.T) {
		b := NewBoard(4, 1)
		b.Set(Pos(0, 1), White)
		if NewGame(b).IsValidMove(Pos(0, 0), Black) {
			t.Fatalf("run terminated by an empty cell must not validate")
		}
	})
}

func TestPlaceFlipsMultipleDirections(t *testing.T) {
	// Black at (2,2) closes a row to the right and a column downwards.
	b := NewBoard(5, 5)
	b.Set(Pos(2, 3), White)
	b.Set(Pos(2, 4), Black)
	b.Set(Pos(3, 2), White)
	b.Set(Pos(4, 2), Black)
	b.Set(Pos(1, 1), White) // no anchor behind it
	g := NewGame(b)
	g.Place(Pos(2, 2), Black)
	for _, p := range []Position{Pos(2, 2), Pos(2, 3), Pos(3, 2)} {
		if b.At(p) != Black {
			t.Fatalf("%v should be black after placement", p)
		}
	}
	if b.At(Pos(1, 1)) != White {
		t.Fatalf("unflanked disc must not flip")
	}
}

func TestPlaceOnlyFlipsFlankedRays(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(Pos(0, 1), White)
	b.Set(Pos(0, 2), Black)
	b.Set(Pos(1, 1), White) // diagonal run ends in an empty corner
	g := NewGame(b)
	g.Place(Pos(0, 0), Black)
	if b.At(Pos(0, 1)) != Black {
		t.Fatalf("(0,1) should flip")
	}
	if b.At(Pos(1, 1)) != White {
		t.Fatalf("(1,1) is not flanked and must stay white")
	}
}

func TestPlaceDiscAccounting(t *testing.T) {
	g := NewDefaultGame()
	side := Black
	for ply := 0; ply < 30; ply++ {
		moves := g.ValidMoves(side)
		if len(moves) == 0 {
			side = side.Opponent()
			if len(g.ValidMoves(side)) == 0 {
				return
			}
			continue
		}
		mv := moves[(ply*5)%len(moves)]
		own, opp := g.Count(side), g.Count(side.Opponent())
		g.Place(mv, side)
		newOwn, newOpp := g.Count(side), g.Count(side.Opponent())
		flipped := opp - newOpp
		if flipped < 1 {
			t.Fatalf("ply %d: a valid move must flip at least one disc", ply)
		}
		if newOwn != own+1+flipped {
			t.Fatalf("ply %d: own %d -> %d with %d flipped", ply, own, newOwn, flipped)
		}
		if newOwn+newOpp != own+opp+1 {
			t.Fatalf("ply %d: total discs must grow by exactly one", ply)
		}
		side = side.Opponent()
	}
}

func TestWinner(t *testing.T) {
	g := NewDefaultGame()
	if _, ok := g.Winner(); ok {
		t.Fatalf("opening is a tie")
	}
	g.Place(Pos(2, 4), Black)
	if w, ok := g.Winner(); !ok || w != Black {
		t.Fatalf("black should lead after the first move, got %v %v", w, ok)
	}
	b := NewBoard(3, 1)
	b.Set(Pos(0, 0), White)
	if w, ok := NewGame(b).Winner(); !ok || w != White {
		t.Fatalf("lone white disc should win, got %v %v", w, ok)
	}
}

func TestHasAnyValidMoves(t *testing.T) {
	if !NewDefaultGame().HasAnyValidMoves() {
		t.Fatalf("opening must have moves")
	}
	full := NewBoard(2, 2)
	full.Set(Pos(0, 0), Black)
	full.Set(Pos(0, 1), Black)
	full.Set(Pos(1, 0), White)
	full.Set(Pos(1, 1), White)
	if NewGame(full).HasAnyValidMoves() {
		t.Fatalf("full board has no moves")
	}
	// Black has no move, white still does: the game is not over.
	b := NewBoard(3, 1)
	b.Set(Pos(0, 0), White)
	b.Set(Pos(0, 1), Black)
	g := NewGame(b)
	if len(g.ValidMoves(Black)) != 0 || len(g.ValidMoves(White)) != 1 {
		t.Fatalf("unexpected move sets")
	}
	if !g.HasAnyValidMoves() {
		t.Fatalf("one side stuck is not terminal")
	}
}

func TestGameCloneIsIndependent(t *testing.T) {
	g := NewDefaultGame()
	c := g.Clone()
	c.Place(Pos(2, 4), Black)
	if g.Count(Black) != 2 {
		t.Fatalf("placing on the clone leaked into the original")
	}
}
