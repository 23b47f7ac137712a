// Package board owns the fixed playing grid: collision tests, committing
// locked pieces and removing completed rows.
package board

import "go-tetris/internal/piece"

const (
	// Height is the number of rows in the grid.
	Height = 20
	// Width is the number of columns in the grid.
	Width = 10
)

// Board is a Height x Width grid of cell colors. Row 0 is the top.
type Board struct {
	rows [][]piece.Color
}

// New returns an empty board.
func New() *Board {
	b := &Board{rows: make([][]piece.Color, Height)}
	for y := range b.rows {
		b.rows[y] = emptyRow()
	}
	return b
}

func emptyRow() []piece.Color {
	return make([]piece.Color, Width)
}

// Width returns the number of columns.
func (b *Board) Width() int { return Width }

// Height returns the number of rows.
func (b *Board) Height() int { return Height }

// Cell returns the color at column x, row y. Coordinates outside the grid
// read as empty.
func (b *Board) Cell(x, y int) piece.Color {
	if !inside(x, y) {
		return piece.Empty
	}
	return b.rows[y][x]
}

// Set writes a color at column x, row y. Coordinates outside the grid are
// ignored.
func (b *Board) Set(x, y int, c piece.Color) {
	if inside(x, y) {
		b.rows[y][x] = c
	}
}

// Rows returns a deep copy of the grid in row-major order.
func (b *Board) Rows() [][]piece.Color {
	out := make([][]piece.Color, len(b.rows))
	for y, row := range b.rows {
		out[y] = append([]piece.Color(nil), row...)
	}
	return out
}

// IsBlocked reports whether p, offset by (dx, dy) and drawn with candidate
// (or its own shape when candidate is nil), would leave the grid sideways or
// through the floor, or overlap a filled cell. Cells above row 0 only
// collide with the walls.
func (b *Board) IsBlocked(p *piece.Piece, dx, dy int, candidate piece.Shape) bool {
	shape := candidate
	if shape == nil {
		shape = p.Shape
	}
	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			x := p.X + c + dx
			y := p.Y + r + dy
			if x < 0 || x >= Width || y >= Height {
				return true
			}
			if y >= 0 && b.rows[y][x] != piece.Empty {
				return true
			}
		}
	}
	return false
}

// Commit writes p's color into every grid cell its shape covers. The caller
// must have checked that p is not blocked where it rests.
func (b *Board) Commit(p *piece.Piece) {
	p.Cells(func(x, y int) {
		b.Set(x, y, p.Color)
	})
}

// ClearCompletedRows removes every fully filled row, inserting an empty row
// at the top for each, and returns how many were removed.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !b.rowComplete(y) {
			y--
			continue
		}
		// Row y now holds what was above it; check it again.
		copy(b.rows[1:y+1], b.rows[:y])
		b.rows[0] = emptyRow()
		cleared++
	}
	return cleared
}

// IsTopRowOccupied reports whether any cell of row 0 is filled.
func (b *Board) IsTopRowOccupied() bool {
	for _, c := range b.rows[0] {
		if c != piece.Empty {
			return true
		}
	}
	return false
}

func (b *Board) rowComplete(y int) bool {
	for _, c := range b.rows[y] {
		if c == piece.Empty {
			return false
		}
	}
	return true
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
