// Package movegen generates successor positions: every position
// reachable from a given one by sliding exactly one vehicle one or more
// contiguous empty cells along its own axis.
package movegen

import (
	"fmt"

	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/game"
	"github.com/domino14/gridlock/zobrist"
)

// A Move describes one slide. Offset is the signed number of cells the
// vehicle travels along its axis (negative is up/left). Cost equals the
// moved vehicle's length; this puzzle charges by vehicle size, not by
// distance travelled.
type Move struct {
	VehicleID byte
	Offset    int
	Cost      int
}

func (m Move) String() string {
	return fmt.Sprintf("<%c %+d (cost %d)>", m.VehicleID, m.Offset, m.Cost)
}

// A Successor pairs a reachable position with the move that produced it.
type Successor struct {
	Position *game.Position
	Move     Move
}

// Generator produces successors for one board. It keeps a scratch
// occupancy grid that is reused across calls, so a Generator must not
// be shared between concurrent searches.
type Generator struct {
	board   *board.Board
	zobrist *zobrist.Zobrist

	occ   [][]bool
	plays []Successor
}

func NewGenerator(b *board.Board, z *zobrist.Zobrist) *Generator {
	occ := make([][]bool, b.Height())
	for r := range occ {
		occ[r] = make([]bool, b.Width())
	}
	return &Generator{board: b, zobrist: z, occ: occ}
}

// GenAll generates every legal successor of p. Vehicles are visited in
// id order and offsets in increasing magnitude, up/left before
// down/right, so generation order is deterministic. The generator owns
// the returned slice; it is overwritten by the next call.
func (g *Generator) GenAll(p *game.Position) []Successor {
	g.plays = g.plays[:0]
	g.fillOccupancy(p)

	for idx, v := range p.Vehicles() {
		if v.Orientation == board.Horizontal {
			g.slideHorizontal(p, idx, v)
		} else {
			g.slideVertical(p, idx, v)
		}
	}
	return g.plays
}

func (g *Generator) fillOccupancy(p *game.Position) {
	for r := range g.occ {
		for c := range g.occ[r] {
			g.occ[r][c] = false
		}
	}
	for _, v := range p.Vehicles() {
		for i := 0; i < v.Length; i++ {
			if v.Orientation == board.Horizontal {
				g.occ[v.Row][v.Col+i] = true
			} else {
				g.occ[v.Row+i][v.Col] = true
			}
		}
	}
}

func (g *Generator) slideHorizontal(p *game.Position, idx int, v board.Vehicle) {
	// left
	for off := 1; v.Col-off >= 0 && !g.occ[v.Row][v.Col-off]; off++ {
		g.record(p, idx, v, v.Row, v.Col-off, -off)
	}
	// right; the leading edge is the trailing cell
	for off := 1; v.LastCol()+off < g.board.Width() && !g.occ[v.Row][v.LastCol()+off]; off++ {
		g.record(p, idx, v, v.Row, v.Col+off, off)
	}
}

func (g *Generator) slideVertical(p *game.Position, idx int, v board.Vehicle) {
	// up
	for off := 1; v.Row-off >= 0 && !g.occ[v.Row-off][v.Col]; off++ {
		g.record(p, idx, v, v.Row-off, v.Col, -off)
	}
	// down
	for off := 1; v.LastRow()+off < g.board.Height() && !g.occ[v.LastRow()+off][v.Col]; off++ {
		g.record(p, idx, v, v.Row+off, v.Col, off)
	}
}

func (g *Generator) record(p *game.Position, idx int, v board.Vehicle, row, col, offset int) {
	g.plays = append(g.plays, Successor{
		Position: p.WithVehicle(g.zobrist, idx, row, col),
		Move:     Move{VehicleID: v.ID, Offset: offset, Cost: v.Length},
	})
}
