// Package controller moves the active piece around the board.
package controller

import (
	"go-tetris/internal/board"
	"go-tetris/internal/piece"
)

// Controller owns the active and next pieces of a round. Every move is
// validated against the board before it is applied.
type Controller struct {
	Board   *board.Board
	Active  *piece.Piece
	Next    *piece.Piece
	factory *piece.Factory
}

// New returns a controller with freshly drawn active and next pieces.
func New(b *board.Board, factory *piece.Factory) *Controller {
	return &Controller{
		Board:   b,
		Active:  factory.Random(),
		Next:    factory.Random(),
		factory: factory,
	}
}

// Move translates the active piece by (dx, dy) if the destination is free.
// It reports whether the piece moved.
func (c *Controller) Move(dx, dy int) bool {
	if c.Board.IsBlocked(c.Active, dx, dy, nil) {
		return false
	}
	c.Active.X += dx
	c.Active.Y += dy
	return true
}

// Rotate turns the active piece clockwise in place. A rotation that would
// collide is rejected without trying alternative offsets.
func (c *Controller) Rotate() bool {
	rotated := piece.Rotate(c.Active.Shape)
	if c.Board.IsBlocked(c.Active, 0, 0, rotated) {
		return false
	}
	c.Active.Shape = rotated
	return true
}

// HardDrop moves the active piece straight down as far as it goes and
// returns the number of rows travelled. Locking is left to the next tick.
func (c *Controller) HardDrop() int {
	rows := 0
	for c.Move(0, 1) {
		rows++
	}
	return rows
}

// Promote makes the next piece active and draws a new next piece. It
// returns false when the new active piece collides at its spawn position.
func (c *Controller) Promote() bool {
	c.Active = c.Next
	c.Next = c.factory.Random()
	return !c.Board.IsBlocked(c.Active, 0, 0, nil)
}
