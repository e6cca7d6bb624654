package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownHeuristic = errors.New("unknown heuristic function")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
)

// Heuristic and algorithm names accepted on the command line.
const (
	HeuristicZero             = "0"
	HeuristicRandom           = "random"
	HeuristicUnit             = "unit"
	HeuristicWeighted         = "weight"
	HeuristicMobility         = "mobility"
	HeuristicWeightedMobility = "weight-mobility"

	AlgorithmMinimax      = "mini"
	AlgorithmAlphaBeta    = "ab"
	AlgorithmOrdering     = "ab-order"
	AlgorithmOrderingUnit = "ab-order-unit"
)

func HeuristicNames() []string {
	return []string{
		HeuristicZero, HeuristicRandom, HeuristicUnit,
		HeuristicWeighted, HeuristicMobility, HeuristicWeightedMobility,
	}
}

func AlgorithmNames() []string {
	return []string{AlgorithmMinimax, AlgorithmAlphaBeta, AlgorithmOrdering, AlgorithmOrderingUnit}
}

func NewHeuristic(name string) (Heuristic, error) {
	switch name {
	case HeuristicZero:
		return NewZero(), nil
	case HeuristicRandom:
		return NewRandom(), nil
	case HeuristicUnit:
		return NewUnit(), nil
	case HeuristicWeighted:
		return NewWeighted(), nil
	case HeuristicMobility:
		return NewMobility(), nil
	case HeuristicWeightedMobility:
		return NewWeightedMobility(), nil
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownHeuristic, name)
}

// NewSearch wraps h, which the returned search then owns.
func NewSearch(name string, h Heuristic) (Search, error) {
	switch name {
	case AlgorithmMinimax:
		return NewMinimax(h), nil
	case AlgorithmAlphaBeta:
		return NewAlphaBeta(h), nil
	case AlgorithmOrdering:
		return NewAlphaBetaOrdering(h), nil
	case AlgorithmOrderingUnit:
		return NewAlphaBetaOrderingUnit(h), nil
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownAlgorithm, name)
}

// New builds a fresh heuristic and wraps it in the named algorithm.
func New(algorithm, heuristic string) (Search, error) {
	h, err := NewHeuristic(heuristic)
	if err != nil {
		return nil, err
	}
	return NewSearch(algorithm, h)
}

// NeedsStandardBoard reports whether the named heuristic only evaluates
// DefaultWidth x DefaultHeight boards.
func NeedsStandardBoard(heuristic string) bool {
	return heuristic == HeuristicWeighted || heuristic == HeuristicWeightedMobility
}
