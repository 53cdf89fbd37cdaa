package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gridlock/board"
)

func TestAddMoveMatchesFullHash(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(6, 6)

	vehicles := []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 0, Length: 2},
		{ID: 'A', Orientation: board.Vertical, Row: 1, Col: 3, Length: 3},
		{ID: 'B', Orientation: board.Horizontal, Row: 5, Col: 2, Length: 2},
	}
	h0 := z.Hash(vehicles)

	// slide X one to the right
	before := vehicles[0]
	after := before.WithAnchor(2, 1)
	incremental := z.AddMove(h0, before, after)

	moved := []board.Vehicle{after, vehicles[1], vehicles[2]}
	is.Equal(incremental, z.Hash(moved))

	// sliding back restores the original hash
	is.Equal(z.AddMove(incremental, after, before), h0)
}

func TestHashOrderIndependent(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(6, 6)

	a := board.Vehicle{ID: 'A', Orientation: board.Horizontal, Row: 0, Col: 0, Length: 2}
	b := board.Vehicle{ID: 'B', Orientation: board.Vertical, Row: 3, Col: 4, Length: 2}
	is.Equal(z.Hash([]board.Vehicle{a, b}), z.Hash([]board.Vehicle{b, a}))
}

func TestDistinctAnchorsDistinctHashes(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(6, 6)

	v := board.Vehicle{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 0, Length: 2}
	h1 := z.Hash([]board.Vehicle{v})
	h2 := z.Hash([]board.Vehicle{v.WithAnchor(2, 1)})
	is.True(h1 != h2)
}
