// Package piece holds the static tetromino tables and the factory that
// produces fresh, independently mutable pieces from them.
package piece

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a piece kind outside the seven canonical
// tetrominoes is requested.
var ErrUnknownKind = errors.New("unknown piece kind")

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every valid kind in table order.
var Kinds = []Kind{I, O, T, S, Z, J, L}

// Color is an opaque cell color. The empty string marks an empty cell.
type Color string

// Empty is the color of an unfilled grid cell.
const Empty Color = ""

// Shape is a rotation state: a matrix of filled (true) and empty cells.
type Shape [][]bool

// Piece is a tetromino placed on the grid. X and Y locate the top-left
// corner of the shape matrix.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	X     int
	Y     int
}

var templates = map[Kind][][]int{
	I: {{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	O: {{1, 1}, {1, 1}},
	T: {{0, 1, 0}, {1, 1, 1}, {0, 0, 0}},
	S: {{0, 1, 1}, {1, 1, 0}, {0, 0, 0}},
	Z: {{1, 1, 0}, {0, 1, 1}, {0, 0, 0}},
	J: {{1, 0, 0}, {1, 1, 1}, {0, 0, 0}},
	L: {{0, 0, 1}, {1, 1, 1}, {0, 0, 0}},
}

var colors = map[Kind]Color{
	I: "#00FFFF",
	O: "#FFFF00",
	T: "#800080",
	S: "#00FF00",
	Z: "#FF0000",
	J: "#0000FF",
	L: "#FFA500",
}

var names = map[Kind]string{I: "I", O: "O", T: "T", S: "S", Z: "Z", J: "J", L: "L"}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the seven tetrominoes.
func (k Kind) Valid() bool {
	_, ok := templates[k]
	return ok
}

// ParseKind maps a single-letter name ("I", "O", ...) to its kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range names {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ColorOf returns the display color of a kind.
func ColorOf(k Kind) Color {
	return colors[k]
}

// ShapeOf returns a fresh copy of the canonical orientation of k.
func ShapeOf(k Kind) (Shape, error) {
	tmpl, ok := templates[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	shape := make(Shape, len(tmpl))
	for r, row := range tmpl {
		shape[r] = make([]bool, len(row))
		for c, v := range row {
			shape[r][c] = v != 0
		}
	}
	return shape, nil
}

// Rotate returns the clockwise rotation of s: the transpose with each
// resulting row reversed. Non-square matrices are handled from their own
// dimensions.
func Rotate(s Shape) Shape {
	if len(s) == 0 {
		return Shape{}
	}
	rows, cols := len(s), len(s[0])
	rotated := make(Shape, cols)
	for c := range cols {
		rotated[c] = make([]bool, rows)
		for r := range rows {
			rotated[c][r] = s[rows-1-r][c]
		}
	}
	return rotated
}

// Clone returns a copy of s that shares no backing arrays with it.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Clone returns a deep copy of p.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// Cells calls fn with the grid coordinates of every filled cell of p.
func (p *Piece) Cells(fn func(x, y int)) {
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				fn(p.X+c, p.Y+r)
			}
		}
	}
}
