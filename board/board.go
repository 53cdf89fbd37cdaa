// Package board holds the static geometry of a sliding-block puzzle:
// the grid dimensions, the exit for the target vehicle, and the Vehicle
// value type. A Board never changes after construction; everything that
// moves lives in the game package.
package board

import (
	"errors"
	"fmt"
)

// TargetID is the reserved vehicle id for the vehicle that must escape.
const TargetID = 'X'

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// A Vehicle is an immutable value. Row and Col are the anchor (the
// topmost/leftmost cell); the vehicle occupies Length consecutive cells
// from the anchor along its orientation axis.
type Vehicle struct {
	ID          byte
	Orientation Orientation
	Row         int
	Col         int
	Length      int
}

func (v Vehicle) String() string {
	return fmt.Sprintf("<%c %s (%d,%d) len %d>", v.ID, v.Orientation, v.Row, v.Col, v.Length)
}

// Occupies returns whether the vehicle covers the given cell.
func (v Vehicle) Occupies(row, col int) bool {
	if v.Orientation == Horizontal {
		return v.Row == row && v.Col <= col && col < v.Col+v.Length
	}
	return v.Col == col && v.Row <= row && row < v.Row+v.Length
}

// LastRow and LastCol locate the trailing cell (the one furthest from
// the anchor).
func (v Vehicle) LastRow() int {
	if v.Orientation == Vertical {
		return v.Row + v.Length - 1
	}
	return v.Row
}

func (v Vehicle) LastCol() int {
	if v.Orientation == Horizontal {
		return v.Col + v.Length - 1
	}
	return v.Col
}

// WithAnchor returns a copy of the vehicle moved so that its anchor is
// at (row, col). Orientation and length never change.
func (v Vehicle) WithAnchor(row, col int) Vehicle {
	v.Row = row
	v.Col = col
	return v
}

// A Board is the static part of a puzzle. The exit sits on the right
// edge of exitRow; a horizontal target vehicle escapes by reaching the
// last column of that row.
type Board struct {
	width   int
	height  int
	exitRow int
}

func New(width, height, exitRow int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board dimensions must be positive; got %dx%d", width, height)
	}
	if exitRow < 0 || exitRow >= height {
		return nil, errors.New("exit row does not lie on the grid boundary")
	}
	return &Board{width: width, height: height, exitRow: exitRow}, nil
}

func (b *Board) Width() int   { return b.width }
func (b *Board) Height() int  { return b.height }
func (b *Board) ExitRow() int { return b.exitRow }

// ExitCol is the column the target vehicle's leading cell must reach.
func (b *Board) ExitCol() int { return b.width - 1 }

// InBounds reports whether every cell the vehicle occupies lies on the
// grid.
func (b *Board) InBounds(v Vehicle) bool {
	if v.Row < 0 || v.Col < 0 || v.Length < 1 {
		return false
	}
	return v.LastRow() < b.height && v.LastCol() < b.width
}
