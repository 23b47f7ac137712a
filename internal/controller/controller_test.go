package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"
)

type fixed []int

func (f *fixed) IntN(n int) int {
	v := (*f)[0]
	if len(*f) > 1 {
		*f = (*f)[1:]
	}
	return v % n
}

// kinds builds a source that yields the given kinds in order, then repeats
// the last one.
func kinds(ks ...piece.Kind) *fixed {
	f := make(fixed, len(ks))
	for i, k := range ks {
		f[i] = int(k)
	}
	return &f
}

func newController(ks ...piece.Kind) *Controller {
	return New(board.New(), piece.NewFactory(kinds(ks...), board.Width))
}

func occupied(c *Controller) map[[2]int]bool {
	cells := map[[2]int]bool{}
	c.Active.Cells(func(x, y int) { cells[[2]int{x, y}] = true })
	return cells
}

func TestNew_DrawsActiveThenNext(t *testing.T) {
	c := newController(piece.T, piece.I)
	assert.Equal(t, piece.T, c.Active.Kind)
	assert.Equal(t, piece.I, c.Next.Kind)
	assert.Equal(t, 4, c.Active.X)
	assert.Equal(t, 0, c.Active.Y)
}

func TestMove_FreeAndBlocked(t *testing.T) {
	c := newController(piece.O)
	c.Board.Set(6, 0, "#FFFFFF")

	assert.True(t, c.Move(-1, 0))
	assert.Equal(t, 3, c.Active.X)
	assert.True(t, c.Move(1, 0))
	assert.False(t, c.Move(1, 0), "(6,0) is filled")
	assert.Equal(t, 4, c.Active.X, "a blocked move leaves the piece in place")
	assert.Equal(t, 0, c.Active.Y)
}

func TestMove_NeverLeavesBoundsOrOverlaps(t *testing.T) {
	for _, k := range piece.Kinds {
		c := newController(k)
		c.Board.Set(0, 19, "#FFFFFF")
		c.Board.Set(9, 12, "#FFFFFF")
		steps := [][2]int{{-1, 0}, {1, 0}, {0, 1}}
		for i := range 400 {
			d := steps[(i*7+i/3)%len(steps)]
			before := *c.Active
			moved := c.Move(d[0], d[1])
			for cell := range occupied(c) {
				x, y := cell[0], cell[1]
				require.True(t, x >= 0 && x < board.Width && y < board.Height, "kind %s out of bounds at %v", k, cell)
				if y >= 0 {
					require.Equal(t, piece.Empty, c.Board.Cell(x, y), "kind %s overlaps at %v", k, cell)
				}
			}
			if !moved {
				require.Equal(t, before.X, c.Active.X)
				require.Equal(t, before.Y, c.Active.Y)
			}
		}
	}
}

func TestRotate_AppliesClockwise(t *testing.T) {
	c := newController(piece.T)
	c.Active.Y = 5
	want := piece.Rotate(c.Active.Shape)

	assert.True(t, c.Rotate())
	assert.Equal(t, want, c.Active.Shape)
}

func TestRotate_RejectedAgainstWall(t *testing.T) {
	c := newController(piece.I)
	c.Active.Y = 5
	require.True(t, c.Rotate())
	// Vertical I occupies column X+2; push it flush with the left wall.
	for c.Move(-1, 0) {
	}
	require.Equal(t, -2, c.Active.X)

	before := c.Active.Shape.Clone()
	assert.False(t, c.Rotate(), "horizontal I would cross the left wall")
	assert.Equal(t, before, c.Active.Shape)
}

func TestRotate_RejectedAgainstCells(t *testing.T) {
	c := newController(piece.T)
	c.Active.Y = 5
	c.Board.Set(5, 7, "#FFFFFF")

	before := c.Active.Shape.Clone()
	assert.False(t, c.Rotate())
	assert.Equal(t, before, c.Active.Shape)
}

func TestHardDrop_EmptyBoard(t *testing.T) {
	for _, k := range piece.Kinds {
		c := newController(k)

		failures := 0
		drops := 0
		for {
			if !c.Move(0, 1) {
				failures++
				break
			}
			drops++
		}
		require.Equal(t, 1, failures)

		lowest := -1
		for cell := range occupied(c) {
			lowest = max(lowest, cell[1])
		}
		assert.Equal(t, board.Height-1, lowest, "kind %s rests on the floor", k)

		c2 := newController(k)
		assert.Equal(t, drops, c2.HardDrop(), "kind %s", k)
		assert.Equal(t, c.Active.Y, c2.Active.Y)
	}
}

func TestHardDrop_OntoStack(t *testing.T) {
	c := newController(piece.O)
	c.Board.Set(4, 10, "#FFFFFF")

	assert.Equal(t, 8, c.HardDrop())
	assert.Equal(t, 8, c.Active.Y)
	assert.Equal(t, 0, c.HardDrop(), "already resting")
}

func TestPromote(t *testing.T) {
	c := newController(piece.T, piece.S, piece.Z)
	assert.True(t, c.Promote())
	assert.Equal(t, piece.S, c.Active.Kind)
	assert.Equal(t, piece.Z, c.Next.Kind)

	c.Board.Set(5, 0, "#FFFFFF")
	assert.False(t, c.Promote(), "Z covers (5,0) at spawn")
	assert.Equal(t, piece.Z, c.Active.Kind)
}
