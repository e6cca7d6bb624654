package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistryBuildsEveryCombination(t *testing.T) {
	for _, a := range AlgorithmNames() {
		for _, h := range HeuristicNames() {
			s, err := New(a, h)
			if err != nil {
				t.Fatalf("New(%q, %q): %v", a, h, err)
			}
			if s == nil {
				t.Fatalf("New(%q, %q) returned nil", a, h)
			}
		}
	}
}

func TestRegistryConcreteTypes(t *testing.T) {
	h := NewUnit()
	cases := map[string]string{
		AlgorithmMinimax:      "*engine.Minimax",
		AlgorithmAlphaBeta:    "*engine.AlphaBeta",
		AlgorithmOrdering:     "*engine.AlphaBetaOrdering",
		AlgorithmOrderingUnit: "*engine.AlphaBetaOrderingUnit",
	}
	for name, want := range cases {
		s, err := NewSearch(name, h)
		if err != nil {
			t.Fatalf("NewSearch(%q): %v", name, err)
		}
		var got string
		switch s.(type) {
		case *Minimax:
			got = "*engine.Minimax"
		case *AlphaBeta:
			got = "*engine.AlphaBeta"
		case *AlphaBetaOrdering:
			got = "*engine.AlphaBetaOrdering"
		case *AlphaBetaOrderingUnit:
			got = "*engine.AlphaBetaOrderingUnit"
		}
		if got != want {
			t.Fatalf("%q built %s, want %s", name, got, want)
		}
	}
}

func TestRegistryUnknownNames(t *testing.T) {
	_, err := NewHeuristic("greedy")
	if !errors.Is(err, ErrUnknownHeuristic) || !strings.Contains(err.Error(), "greedy") {
		t.Fatalf("unexpected heuristic error: %v", err)
	}
	_, err = New("negamax", "unit")
	if !errors.Is(err, ErrUnknownAlgorithm) || !strings.Contains(err.Error(), "negamax") {
		t.Fatalf("unexpected algorithm error: %v", err)
	}
	_, err = New("ab", "nope")
	if !errors.Is(err, ErrUnknownHeuristic) {
		t.Fatalf("heuristic must be validated first, got %v", err)
	}
}

func TestNeedsStandardBoard(t *testing.T) {
	for _, name := range HeuristicNames() {
		want := name == HeuristicWeighted || name == HeuristicWeightedMobility
		if got := NeedsStandardBoard(name); got != want {
			t.Fatalf("NeedsStandardBoard(%q) = %v, want %v", name, got, want)
		}
	}
}
