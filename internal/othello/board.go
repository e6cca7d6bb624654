package othello

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 8
	DefaultHeight = 8
)

// Board is a dense width*height grid stored row-major in a flat slice.
type Board struct {
	width  int
	height int
	cells  []Disc
}

// NewBoard returns an all-Empty board. Both dimensions must be at least 1.
func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("othello: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Disc, width*height),
	}
}

// DefaultBoard is the standard 8x8 opening position.
func DefaultBoard() *Board {
	b := NewBoard(DefaultWidth, DefaultHeight)
	b.Set(Pos(3, 3), Black)
	b.Set(Pos(3, 4), White)
	b.Set(Pos(4, 3), White)
	b.Set(Pos(4, 4), Black)
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Len() int    { return len(b.cells) }

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < b.height && p.Col < b.width
}

func (b *Board) At(p Position) Disc {
	return b.cells[b.index(p)]
}

func (b *Board) Set(p Position, d Disc) {
	b.cells[b.index(p)] = d
}

func (b *Board) index(p Position) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("othello: position (%d,%d) out of board range %dx%d",
			p.Row, p.Col, b.height, b.width))
	}
	return p.Row*b.width + p.Col
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(p Position, d Disc)) {
	for i, d := range b.cells {
		fn(Position{Row: i / b.width, Col: i % b.width}, d)
	}
}

func (b *Board) Clone() *Board {
	c := &Board{width: b.width, height: b.height, cells: make([]Disc, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// CopyFrom overwrites b with src without allocating when sizes match.
func (b *Board) CopyFrom(src *Board) {
	if len(b.cells) != len(src.cells) {
		b.cells = make([]Disc, len(src.cells))
	}
	b.width, b.height = src.width, src.height
	copy(b.cells, src.cells)
}

func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func discGlyph(d Disc) string {
	switch d {
	case Black:
		return "███"
	case White:
		return "░░░"
	default:
		return "   "
	}
}

func gridLine(sb *strings.Builder, width int, left, mid, right string) {
	sb.WriteString(left)
	for i := 0; i < width-1; i++ {
		sb.WriteString("───")
		sb.WriteString(mid)
	}
	sb.WriteString("───")
	sb.WriteString(right)
	sb.WriteByte('\n')
}

// String renders the board as a boxed grid.
func (b *Board) String() string {
	var sb strings.Builder
	gridLine(&sb, b.width, "┌", "┬", "┐")
	for r := 0; r < b.height; r++ {
		sb.WriteString("│")
		for c := 0; c < b.width; c++ {
			sb.WriteString(discGlyph(b.cells[r*b.width+c]))
			sb.WriteString("│")
		}
		sb.WriteByte('\n')
		if r < b.height-1 {
			gridLine(&sb, b.width, "├", "┼", "┤")
		}
	}
	gridLine(&sb, b.width, "└", "┴", "┘")
	return sb.String()
}
