package minefield

import "strings"

// Render returns the player's view of the board, one byte slice per row. With
// revealMines set every mine is shown as 'X' whatever its status.
func (b *Board) Render(revealMines bool) [][]byte {
	rows := make([][]byte, b.side)
	for row := range b.side {
		line := make([]byte, b.side)
		for col := range b.side {
			c := b.cells[row*b.side+col]
			if revealMines && c.Kind == Mine {
				line[col] = layoutMine
			} else {
				line[col] = c.Glyph()
			}
		}
		rows[row] = line
	}
	return rows
}

func (b *Board) RenderLines(revealMines bool) []string {
	rows := b.Render(revealMines)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return lines
}

// Debug draws the real layout: mines as 'X', counts as digits and cells with
// no mined neighbours as '.'. Counts are zero until the first move.
func (b *Board) Debug() string {
	var sb strings.Builder
	for row := range b.side {
		for col := range b.side {
			c := b.cells[row*b.side+col]
			switch {
			case c.Kind == Mine:
				sb.WriteByte(layoutMine)
			case c.Count == 0:
				sb.WriteByte(layoutEmpty)
			default:
				sb.WriteByte('0' + c.Count)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
