package minefield

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	layoutEmpty = '.'
	layoutMine  = 'X'
)

// NewFromLayout builds a board from a square description, one string per
// row, using '.' for empty cells and 'X' for mines. The board is returned only
// if the whole description is valid.
func NewFromLayout(lines []string, r Rand) (*Board, error) {
	side := len(lines)
	if side == 0 {
		return nil, LayoutError{message: "no rows"}
	}

	b := newBoard(side, r)
	mines := 0
	for row, line := range lines {
		if len(line) != side {
			return nil, LayoutError{
				Line:    row + 1,
				message: fmt.Sprintf("want %d cells, got %d", side, len(line)),
			}
		}
		for col := range len(line) {
			switch line[col] {
			case layoutEmpty:
			case layoutMine:
				b.cells[row*side+col].Kind = Mine
				mines++
			default:
				return nil, LayoutError{
					Line:    row + 1,
					Col:     col + 1,
					message: fmt.Sprintf("unexpected character %q", line[col]),
				}
			}
		}
	}
	b.total = mines
	b.remaining = mines

	Log.WithField("side", side).WithField("mines", mines).Debug("loaded layout")
	return b, nil
}

// ReadLayout reads a layout description line by line. Trailing blank lines
// and carriage returns are ignored.
func ReadLayout(rd io.Reader, r Rand) (*Board, error) {
	var lines []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read layout: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return NewFromLayout(lines, r)
}
