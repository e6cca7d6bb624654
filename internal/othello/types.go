package othello

import (
	"errors"
	"fmt"
	"strings"
)

// Disc is the state of a single cell.
type Disc int8

const (
	Empty Disc = iota
	Black
	White
)

// Opponent returns the other colour. Asking for the opponent of Empty is a bug
// in the caller and panics.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("othello: attempting to take opponent of empty disc")
	}
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Position addresses a cell and doubles as a move identifier.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pos(row, col int) Position { return Position{Row: row, Col: col} }

var ErrInvalidPosition = errors.New("invalid position")

// String renders the position in algebraic notation: column letter, then 1-based row.
func (p Position) String() string {
	if p.Col < 0 || p.Col >= 26 || p.Row < 0 {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePosition is the inverse of Position.String ("e3" -> row 2, col 4).
func ParsePosition(s string) (Position, error) {
	if len(s) < 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	ch := s[0]
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch < 'a' || ch > 'z' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	row := 0
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		row = row*10 + int(r-'0')
	}
	if row < 1 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return Position{Row: row - 1, Col: int(ch - 'a')}, nil
}

func (d Disc) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(d.String())), nil
}

func (d *Disc) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "black":
		*d = Black
	case "white":
		*d = White
	case "empty", "":
		*d = Empty
	default:
		return fmt.Errorf("unknown disc %q", text)
	}
	return nil
}
