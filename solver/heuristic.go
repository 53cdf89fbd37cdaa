package solver

import (
	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/game"
)

// BlockingVehicles is the blocking heuristic: the number of distinct
// vehicles occupying cells strictly between the target vehicle's
// leading edge and the exit, along the target's own row. It never
// exceeds the number of moves still needed under a unit-step cost
// model. The engine's cost model charges by vehicle length, so the
// strict A* admissibility argument doesn't carry over; the mixed model
// is kept as-is.
func BlockingVehicles(b *board.Board, p *game.Position) int {
	target, ok := p.Target()
	if !ok {
		return 0
	}
	lead := target.LastCol()
	count := 0
	for _, v := range p.Vehicles() {
		if v.ID == board.TargetID {
			continue
		}
		if blocks(v, target.Row, lead, b.ExitCol()) {
			count++
		}
	}
	return count
}

// blocks reports whether v occupies any cell of (row, lead+1..exitCol).
func blocks(v board.Vehicle, row, lead, exitCol int) bool {
	if v.Orientation == board.Horizontal {
		return v.Row == row && v.LastCol() > lead && v.Col <= exitCol
	}
	return v.Col > lead && v.Col <= exitCol && v.Row <= row && row <= v.LastRow()
}
