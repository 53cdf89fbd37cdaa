package solver

import (
	"github.com/domino14/gridlock/game"
	"github.com/domino14/gridlock/movegen"
)

// A node wraps one position in the search tree. The parent link is a
// one-directional back-reference used only for path reconstruction;
// nodes never point at their children.
type node struct {
	pos    *game.Position
	parent *node
	move   movegen.Move
	g      int
}

// path walks parent links back to the root and reverses, yielding the
// positions from the initial one to this node's inclusive, plus the
// moves between them (one fewer than positions).
func (n *node) path() ([]*game.Position, []movegen.Move) {
	var positions []*game.Position
	var moves []movegen.Move
	for cur := n; cur != nil; cur = cur.parent {
		positions = append(positions, cur.pos)
		if cur.parent != nil {
			moves = append(moves, cur.move)
		}
	}
	for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
		positions[i], positions[j] = positions[j], positions[i]
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return positions, moves
}
