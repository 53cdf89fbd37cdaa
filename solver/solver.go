// Package solver searches for a cheapest sequence of vehicle slides
// that frees the target vehicle to the exit. One Solver owns one
// search's frontier and best-cost table exclusively; independent
// solvers may run concurrently with no coordination, but a single
// Solver must not be shared across goroutines.
package solver

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/game"
	"github.com/domino14/gridlock/movegen"
	"github.com/domino14/gridlock/zobrist"
)

var (
	ErrNoTargetVehicle = errors.New("solver: no target vehicle in initial position")
)

// Result is the outcome of one search. Found is false when the frontier
// was exhausted without reaching a goal; that is a normal outcome for
// unsolvable boards, not an error.
type Result struct {
	Found bool
	// Path runs from the initial position to the goal inclusive.
	Path []*game.Position
	// Moves has one entry per transition, len(Path)-1 of them.
	Moves []movegen.Move
	// Cost is the summed cost of Moves.
	Cost           int
	NodesExpanded  uint64
	NodesGenerated uint64
}

type Option func(*Solver)

func WithAlgorithm(a Algorithm) Option {
	return func(s *Solver) { s.alg = a }
}

// WithMaxTableEntries caps the best-cost table (and the blind
// strategies' explored set). Zero means the memory-derived default.
func WithMaxTableEntries(n int) Option {
	return func(s *Solver) { s.maxTableEntries = n }
}

type Solver struct {
	board   *board.Board
	zobrist *zobrist.Zobrist
	gen     *movegen.Generator
	initial *game.Position

	alg             Algorithm
	maxTableEntries int

	nodesExpanded  uint64
	nodesGenerated uint64
}

// New validates the initial vehicles against the board and prepares a
// solver. Validation is fail-fast here so that Solve can trust its
// input completely: out-of-bounds anchors, overlaps, duplicate ids, a
// missing or vertical target, or a target off the exit row are all
// construction errors.
func New(b *board.Board, vehicles []board.Vehicle, opts ...Option) (*Solver, error) {
	if err := validate(b, vehicles); err != nil {
		return nil, err
	}
	z := &zobrist.Zobrist{}
	z.Initialize(b.Width(), b.Height())

	s := &Solver{
		board:   b,
		zobrist: z,
		gen:     movegen.NewGenerator(b, z),
		initial: game.NewPosition(z, vehicles),
		alg:     AStar,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxTableEntries <= 0 {
		s.maxTableEntries = defaultMaxTableEntries()
	}
	return s, nil
}

func validate(b *board.Board, vehicles []board.Vehicle) error {
	seen := map[byte]bool{}
	var target *board.Vehicle
	for i, v := range vehicles {
		if seen[v.ID] {
			return fmt.Errorf("duplicate vehicle id %c", v.ID)
		}
		seen[v.ID] = true
		if !b.InBounds(v) {
			return fmt.Errorf("vehicle %c out of bounds: %s", v.ID, v)
		}
		if v.ID == board.TargetID {
			target = &vehicles[i]
		}
	}
	if target == nil {
		return ErrNoTargetVehicle
	}
	if target.Orientation != board.Horizontal {
		return errors.New("target vehicle must be horizontal")
	}
	if target.Row != b.ExitRow() {
		return fmt.Errorf("target vehicle on row %d but exit is on row %d", target.Row, b.ExitRow())
	}
	for i := 0; i < len(vehicles); i++ {
		for j := i + 1; j < len(vehicles); j++ {
			if overlap(vehicles[i], vehicles[j]) {
				return fmt.Errorf("vehicles %c and %c overlap", vehicles[i].ID, vehicles[j].ID)
			}
		}
	}
	return nil
}

func overlap(a, b board.Vehicle) bool {
	for i := 0; i < a.Length; i++ {
		r, c := a.Row, a.Col
		if a.Orientation == board.Horizontal {
			c += i
		} else {
			r += i
		}
		if b.Occupies(r, c) {
			return true
		}
	}
	return false
}

// InitialPosition returns the position the search starts from.
func (s *Solver) InitialPosition() *game.Position {
	return s.initial
}

func (s *Solver) Board() *board.Board {
	return s.board
}

// Solve runs the configured search strategy to completion. The context
// is only checked between loop iterations; when it never fires, the
// search behaves exactly like the uncancellable algorithm. Returns a
// non-nil error only for cancellation or resource exhaustion; an
// unsolvable board yields Found == false and a nil error.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	s.nodesExpanded = 0
	s.nodesGenerated = 0
	log.Debug().
		Stringer("algorithm", s.alg).
		Int("vehicles", len(s.initial.Vehicles())).
		Msg("starting search")

	var res *Result
	var err error
	switch s.alg {
	case AStar:
		res, err = s.bestFirst(ctx, true)
	case UCS:
		res, err = s.bestFirst(ctx, false)
	case BFS:
		res, err = s.blind(ctx, false)
	case DFS:
		res, err = s.blind(ctx, true)
	default:
		return nil, fmt.Errorf("unknown algorithm %v", s.alg)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().
		Bool("found", res.Found).
		Uint64("expanded", res.NodesExpanded).
		Int("pathLength", len(res.Path)).
		Msg("search finished")
	return res, nil
}

// bestFirst is A* when useHeuristic is set, uniform-cost search
// otherwise (UCS is just A* with a zero heuristic).
func (s *Solver) bestFirst(ctx context.Context, useHeuristic bool) (*Result, error) {
	table := newCostTable(s.maxTableEntries)
	root := &node{pos: s.initial}
	if err := table.store(root.pos.Hash(), root.pos.Key(), 0); err != nil {
		return nil, err
	}

	fr := frontier{}
	heap.Init(&fr)
	var seq uint64
	f0 := 0
	if useHeuristic {
		f0 = BlockingVehicles(s.board, root.pos)
	}
	heap.Push(&fr, &frontierItem{n: root, f: f0, seq: seq})
	seq++

	for fr.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := heap.Pop(&fr).(*frontierItem)
		cur := item.n

		// A relaxed entry leaves its older, costlier frontier item
		// behind; skip those.
		if best, ok := table.lookup(cur.pos.Hash(), cur.pos.Key()); ok && cur.g > best {
			continue
		}
		if cur.pos.AtExit(s.board) {
			return s.success(cur), nil
		}
		s.nodesExpanded++

		for _, succ := range s.gen.GenAll(cur.pos) {
			g := cur.g + succ.Move.Cost
			hash, key := succ.Position.Hash(), succ.Position.Key()
			if best, ok := table.lookup(hash, key); ok && g >= best {
				continue
			}
			if err := table.store(hash, key, g); err != nil {
				return nil, err
			}
			child := &node{pos: succ.Position, parent: cur, move: succ.Move, g: g}
			s.nodesGenerated++
			f := g
			if useHeuristic {
				f += BlockingVehicles(s.board, succ.Position)
			}
			heap.Push(&fr, &frontierItem{n: child, f: f, seq: seq})
			seq++
		}
	}
	return s.exhausted(), nil
}

// blind is breadth-first search, or depth-first when lifo is set. Both
// use a one-shot explored set and test the goal as successors are
// generated.
func (s *Solver) blind(ctx context.Context, lifo bool) (*Result, error) {
	root := &node{pos: s.initial}
	if root.pos.AtExit(s.board) {
		return s.success(root), nil
	}

	explored := newCostTable(s.maxTableEntries)
	if err := explored.store(root.pos.Hash(), root.pos.Key(), 0); err != nil {
		return nil, err
	}

	queue := []*node{root}
	head := 0
	for head < len(queue) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var cur *node
		if lifo {
			cur = queue[len(queue)-1]
			queue = queue[:len(queue)-1]
		} else {
			cur = queue[head]
			queue[head] = nil
			head++
		}
		s.nodesExpanded++

		for _, succ := range s.gen.GenAll(cur.pos) {
			hash, key := succ.Position.Hash(), succ.Position.Key()
			if _, ok := explored.lookup(hash, key); ok {
				continue
			}
			if err := explored.store(hash, key, 0); err != nil {
				return nil, err
			}
			child := &node{pos: succ.Position, parent: cur, move: succ.Move, g: cur.g + succ.Move.Cost}
			s.nodesGenerated++
			if child.pos.AtExit(s.board) {
				return s.success(child), nil
			}
			queue = append(queue, child)
		}
	}
	return s.exhausted(), nil
}

func (s *Solver) success(goal *node) *Result {
	positions, moves := goal.path()
	return &Result{
		Found:          true,
		Path:           positions,
		Moves:          moves,
		Cost:           goal.g,
		NodesExpanded:  s.nodesExpanded,
		NodesGenerated: s.nodesGenerated,
	}
}

func (s *Solver) exhausted() *Result {
	return &Result{
		Found:          false,
		NodesExpanded:  s.nodesExpanded,
		NodesGenerated: s.nodesGenerated,
	}
}
