package othello

import (
	"errors"
	"fmt"
	"strings"
)

// Compact board form: rows top to bottom joined by '/', X black, O white,
// digits 1-9 compress runs of empty cells. The opening is
// "8/8/8/3XO3/3OX3/8/8/8".

var ErrInvalidBoardString = errors.New("invalid board string")

func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < b.width; c++ {
			d := b.cells[r*b.width+c]
			if d == Empty {
				empty++
				if empty == 9 {
					sb.WriteByte('9')
					empty = 0
				}
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if d == Black {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('O')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// DecodeBoard parses the compact form. Every row must have the same width.
func DecodeBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	decoded := make([][]Disc, 0, len(rows))
	width := -1
	for i, row := range rows {
		var line []Disc
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '9':
				for n := 0; n < int(ch-'0'); n++ {
					line = append(line, Empty)
				}
			case ch == 'X' || ch == 'x':
				line = append(line, Black)
			case ch == 'O' || ch == 'o':
				line = append(line, White)
			default:
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidBoardString, ch, i+1)
			}
		}
		if len(line) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrInvalidBoardString, i+1)
		}
		if width >= 0 && len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoardString, i+1, len(line), width)
		}
		width = len(line)
		decoded = append(decoded, line)
	}
	b := NewBoard(width, len(decoded))
	for r, line := range decoded {
		copy(b.cells[r*width:(r+1)*width], line)
	}
	return b, nil
}
