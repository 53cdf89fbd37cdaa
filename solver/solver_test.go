package solver

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/game"
	"github.com/domino14/gridlock/movegen"
	"github.com/domino14/gridlock/zobrist"
)

func simpleVehicles() []board.Vehicle {
	// A blocks row 2 at column 3 and must slide fully down (one move,
	// cost 3) before X can run to the exit (one move, cost 2).
	return []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 0, Length: 2},
		{ID: 'A', Orientation: board.Vertical, Row: 0, Col: 3, Length: 3},
		{ID: 'B', Orientation: board.Horizontal, Row: 4, Col: 1, Length: 2},
	}
}

func frozenVehicles() []board.Vehicle {
	// Column 2 is completely full; nothing on the board can move.
	return []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 0, Length: 2},
		{ID: 'F', Orientation: board.Vertical, Row: 0, Col: 2, Length: 3},
		{ID: 'G', Orientation: board.Vertical, Row: 3, Col: 2, Length: 3},
	}
}

// assertValidPath checks that every consecutive pair of positions is a
// legal single-vehicle slide, by regenerating successors, and that the
// goal holds only at the final position.
func assertValidPath(t *testing.T, b *board.Board, path []*game.Position) {
	t.Helper()
	is := is.New(t)
	z := &zobrist.Zobrist{}
	z.Initialize(b.Width(), b.Height())
	gen := movegen.NewGenerator(b, z)

	for i := 0; i+1 < len(path); i++ {
		is.True(!path[i].AtExit(b)) // goal must hold only at the end
		cur := game.NewPosition(z, path[i].Vehicles())
		next := game.NewPosition(z, path[i+1].Vehicles())
		legal := false
		for _, succ := range gen.GenAll(cur) {
			if succ.Position.Equals(next) {
				legal = true
				break
			}
		}
		is.True(legal)
	}
	is.True(path[len(path)-1].AtExit(b))
}

func TestSolveSimplePuzzle(t *testing.T) {
	b, err := board.New(6, 6, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			is := is.New(t)
			s, err := New(b, simpleVehicles(), WithAlgorithm(alg))
			is.NoErr(err)
			res, err := s.Solve(context.Background())
			is.NoErr(err)
			is.True(res.Found)
			is.True(len(res.Path) >= 2)
			is.Equal(len(res.Moves), len(res.Path)-1)
			assertValidPath(t, b, res.Path)
		})
	}
}

func TestSolveOptimalCost(t *testing.T) {
	is := is.New(t)
	b, err := board.New(6, 6, 2)
	is.NoErr(err)

	// The only way out is A down 3 (cost 3) then X right 4 (cost 2).
	for _, alg := range []Algorithm{AStar, UCS} {
		s, err := New(b, simpleVehicles(), WithAlgorithm(alg))
		is.NoErr(err)
		res, err := s.Solve(context.Background())
		is.NoErr(err)
		is.True(res.Found)
		is.Equal(res.Cost, 5)
		is.Equal(len(res.Path), 3)
	}

	// BFS minimizes move count, which here coincides.
	s, err := New(b, simpleVehicles(), WithAlgorithm(BFS))
	is.NoErr(err)
	res, err := s.Solve(context.Background())
	is.NoErr(err)
	is.Equal(len(res.Path), 3)
}

func TestSolveAlreadyAtExit(t *testing.T) {
	b, err := board.New(6, 6, 2)
	if err != nil {
		t.Fatal(err)
	}
	vehicles := []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 4, Length: 2},
	}
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			is := is.New(t)
			s, err := New(b, vehicles, WithAlgorithm(alg))
			is.NoErr(err)
			res, err := s.Solve(context.Background())
			is.NoErr(err)
			is.True(res.Found)
			is.Equal(len(res.Path), 1)
			is.Equal(len(res.Moves), 0)
			is.Equal(res.Cost, 0)
			is.True(res.Path[0].Equals(s.InitialPosition()))
		})
	}
}

func TestSolveNoSolution(t *testing.T) {
	b, err := board.New(6, 6, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			is := is.New(t)
			s, err := New(b, frozenVehicles(), WithAlgorithm(alg))
			is.NoErr(err)
			res, err := s.Solve(context.Background())
			is.NoErr(err) // exhaustion is not an error
			is.True(!res.Found)
			is.Equal(len(res.Path), 0)
		})
	}
}

func TestSolveDeterministic(t *testing.T) {
	is := is.New(t)
	b, err := board.New(6, 6, 2)
	is.NoErr(err)

	s1, err := New(b, simpleVehicles())
	is.NoErr(err)
	r1, err := s1.Solve(context.Background())
	is.NoErr(err)

	s2, err := New(b, simpleVehicles())
	is.NoErr(err)
	r2, err := s2.Solve(context.Background())
	is.NoErr(err)

	is.Equal(len(r1.Path), len(r2.Path))
	for i := range r1.Path {
		is.True(r1.Path[i].Equals(r2.Path[i]))
	}
	is.Equal(r1.Moves, r2.Moves)
}

func TestSolveCancellation(t *testing.T) {
	is := is.New(t)
	b, err := board.New(6, 6, 2)
	is.NoErr(err)
	s, err := New(b, simpleVehicles())
	is.NoErr(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Solve(ctx)
	is.Equal(err, context.Canceled)
}

func TestSolveTableExhaustion(t *testing.T) {
	is := is.New(t)
	b, err := board.New(6, 6, 2)
	is.NoErr(err)

	s, err := New(b, simpleVehicles(), WithMaxTableEntries(2))
	is.NoErr(err)
	_, err = s.Solve(context.Background())
	is.Equal(err, ErrTableFull)
}

func TestNewValidation(t *testing.T) {
	is := is.New(t)
	b, err := board.New(6, 6, 2)
	is.NoErr(err)

	// no target
	_, err = New(b, []board.Vehicle{
		{ID: 'A', Orientation: board.Horizontal, Row: 0, Col: 0, Length: 2},
	})
	is.Equal(err, ErrNoTargetVehicle)

	// vertical target
	_, err = New(b, []board.Vehicle{
		{ID: 'X', Orientation: board.Vertical, Row: 2, Col: 0, Length: 2},
	})
	is.True(err != nil)

	// target off the exit row
	_, err = New(b, []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 1, Col: 0, Length: 2},
	})
	is.True(err != nil)

	// out of bounds
	_, err = New(b, []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 5, Length: 2},
	})
	is.True(err != nil)

	// overlap
	_, err = New(b, []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 0, Length: 2},
		{ID: 'A', Orientation: board.Vertical, Row: 1, Col: 1, Length: 3},
	})
	is.True(err != nil)

	// duplicate ids
	_, err = New(b, []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Row: 2, Col: 0, Length: 2},
		{ID: 'A', Orientation: board.Vertical, Row: 3, Col: 0, Length: 2},
		{ID: 'A', Orientation: board.Vertical, Row: 3, Col: 5, Length: 2},
	})
	is.True(err != nil)
}

func TestParseAlgorithm(t *testing.T) {
	is := is.New(t)
	for _, alg := range Algorithms() {
		parsed, err := ParseAlgorithm(alg.String())
		is.NoErr(err)
		is.Equal(parsed, alg)
	}
	_, err := ParseAlgorithm("dijkstra")
	is.True(err != nil)
}
