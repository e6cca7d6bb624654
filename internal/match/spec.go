package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rybergy/apollo/internal/engine"
)

var ErrInvalidSpec = errors.New("invalid algorithm string")

// Spec names an algorithm/heuristic pair and, optionally, its depth.
type Spec struct {
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic"`
	Depth     int    `json:"depth"`
}

func (s Spec) String() string {
	return fmt.Sprintf("%s:%s:%d", s.Algorithm, s.Heuristic, s.Depth)
}

// Name is the spec without its depth, as used in benchmark headers.
func (s Spec) Name() string {
	return s.Algorithm + ":" + s.Heuristic
}

// ParseSpec reads "algorithm:heuristic:depth".
func ParseSpec(s string) (Spec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Spec{}, fmt.Errorf("%w: depth-suffixed '%s'", ErrInvalidSpec, s)
	}
	depth, err := strconv.Atoi(parts[2])
	if err != nil || depth < 0 {
		return Spec{}, fmt.Errorf("%w: bad depth '%s' in '%s'", ErrInvalidSpec, parts[2], s)
	}
	spec := Spec{Algorithm: parts[0], Heuristic: parts[1], Depth: depth}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// ParseSpecNoDepth reads "algorithm:heuristic"; the depth is supplied later.
func ParseSpecNoDepth(s string) (Spec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Spec{}, fmt.Errorf("%w: non-depth-suffixed '%s'", ErrInvalidSpec, s)
	}
	spec := Spec{Algorithm: parts[0], Heuristic: parts[1]}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Validate checks both names without keeping the result.
func (s Spec) Validate() error {
	_, err := s.Build()
	return err
}

// Build returns a new search instance; every caller gets its own.
func (s Spec) Build() (engine.Search, error) {
	return engine.New(s.Algorithm, s.Heuristic)
}

// Player builds a fresh instance bound to the spec's depth.
func (s Spec) Player() (Player, error) {
	search, err := s.Build()
	if err != nil {
		return Player{}, err
	}
	return Player{Search: search, Depth: s.Depth}, nil
}
