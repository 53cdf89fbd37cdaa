// Package game holds the dynamic part of a puzzle: the Position, an
// immutable snapshot of every vehicle's anchor at one point in a
// solution. Positions are the unit of search; a move always produces a
// new Position, never modifies one in place.
package game

import (
	"sort"
	"strings"

	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/zobrist"
)

// EmptyCell is the rune used for unoccupied cells in displays and in
// the text board format.
const EmptyCell = '.'

// A Position is a complete snapshot of the puzzle. Vehicles are kept
// sorted by id so that iteration order, the structural key, and
// successor generation order are all deterministic.
type Position struct {
	vehicles []board.Vehicle
	hash     uint64
}

// NewPosition builds a Position from a set of vehicles. The slice is
// copied; callers keep ownership of theirs.
func NewPosition(z *zobrist.Zobrist, vehicles []board.Vehicle) *Position {
	vs := make([]board.Vehicle, len(vehicles))
	copy(vs, vehicles)
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })
	return &Position{vehicles: vs, hash: z.Hash(vs)}
}

// Vehicles returns the position's vehicles in id order. The returned
// slice is the position's own backing array; callers must not mutate it.
func (p *Position) Vehicles() []board.Vehicle {
	return p.vehicles
}

// Vehicle looks up a vehicle by id.
func (p *Position) Vehicle(id byte) (board.Vehicle, bool) {
	i := sort.Search(len(p.vehicles), func(i int) bool { return p.vehicles[i].ID >= id })
	if i < len(p.vehicles) && p.vehicles[i].ID == id {
		return p.vehicles[i], true
	}
	return board.Vehicle{}, false
}

// Target returns the target vehicle.
func (p *Position) Target() (board.Vehicle, bool) {
	return p.Vehicle(board.TargetID)
}

// Hash is the position's zobrist hash.
func (p *Position) Hash() uint64 {
	return p.hash
}

// Key is the exact structural key over every (id, anchor) pair. Two
// positions of the same puzzle are equal iff their keys are equal; the
// zobrist hash is only a fast first-level filter on top of this.
func (p *Position) Key() string {
	var sb strings.Builder
	sb.Grow(len(p.vehicles) * 3)
	for _, v := range p.vehicles {
		sb.WriteByte(v.ID)
		sb.WriteByte(byte(v.Row))
		sb.WriteByte(byte(v.Col))
	}
	return sb.String()
}

// Equals reports structural equality: every vehicle at the same anchor.
func (p *Position) Equals(o *Position) bool {
	if len(p.vehicles) != len(o.vehicles) {
		return false
	}
	for i, v := range p.vehicles {
		if o.vehicles[i] != v {
			return false
		}
	}
	return true
}

// WithVehicle returns a new Position identical to p except that the
// vehicle at index idx is re-anchored at (row, col). The hash is
// updated incrementally from the parent's.
func (p *Position) WithVehicle(z *zobrist.Zobrist, idx int, row, col int) *Position {
	vs := make([]board.Vehicle, len(p.vehicles))
	copy(vs, p.vehicles)
	before := vs[idx]
	after := before.WithAnchor(row, col)
	vs[idx] = after
	return &Position{vehicles: vs, hash: z.AddMove(p.hash, before, after)}
}

// AtExit reports whether the target vehicle's leading cell has reached
// the exit boundary.
func (p *Position) AtExit(b *board.Board) bool {
	target, ok := p.Target()
	if !ok {
		return false
	}
	return target.Row == b.ExitRow() && target.LastCol() == b.ExitCol()
}

// Grid renders the occupancy grid, one byte per cell.
func (p *Position) Grid(b *board.Board) [][]byte {
	g := make([][]byte, b.Height())
	for r := range g {
		g[r] = make([]byte, b.Width())
		for c := range g[r] {
			g[r][c] = EmptyCell
		}
	}
	for _, v := range p.vehicles {
		for i := 0; i < v.Length; i++ {
			if v.Orientation == board.Horizontal {
				g[v.Row][v.Col+i] = v.ID
			} else {
				g[v.Row+i][v.Col] = v.ID
			}
		}
	}
	return g
}

// Display returns a printable multi-line rendering of the grid.
func (p *Position) Display(b *board.Board) string {
	var sb strings.Builder
	for _, row := range p.Grid(b) {
		sb.Write(row)
		sb.WriteRune('\n')
	}
	return sb.String()
}
