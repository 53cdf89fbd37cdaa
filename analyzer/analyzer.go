// Package analyzer benchmarks every search strategy over a catalog of
// puzzles and reports per-run metrics: wall time, nodes expanded and
// generated, solution length and cost, and heap allocation. Puzzles run
// in parallel; the four strategies for one puzzle run sequentially so
// their timings don't fight each other for the same cores.
package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/gridlock/rhp"
	"github.com/domino14/gridlock/solver"
)

type CatalogEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Catalog struct {
	Puzzles []CatalogEntry `yaml:"puzzles"`
}

// LoadCatalog reads a YAML puzzle catalog. Relative puzzle paths are
// resolved against the catalog file's directory.
func LoadCatalog(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	if err := yaml.Unmarshal(content, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range cat.Puzzles {
		if !filepath.IsAbs(cat.Puzzles[i].Path) {
			cat.Puzzles[i].Path = filepath.Join(dir, cat.Puzzles[i].Path)
		}
	}
	return &cat, nil
}

// Metrics is one (puzzle, algorithm) benchmark run.
type Metrics struct {
	Puzzle    string
	PuzzleID  string
	Algorithm string
	Solved    bool
	// SolutionMoves is the number of transitions in the returned path.
	SolutionMoves  int
	SolutionCost   int
	NodesExpanded  uint64
	NodesGenerated uint64
	SearchTime     time.Duration
	// HeapAllocBytes is the total allocation during the search, a
	// proxy for the memory pressure of the frontier and table.
	HeapAllocBytes uint64
}

type Analyzer struct {
	workers int
}

// NewAnalyzer creates an analyzer that benchmarks up to workers puzzles
// concurrently. workers < 1 means one per CPU.
func NewAnalyzer(workers int) *Analyzer {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Analyzer{workers: workers}
}

// Run benchmarks every algorithm against every puzzle in the catalog.
// Results come back grouped by puzzle in catalog order, algorithms in
// their stable order within each puzzle.
func (a *Analyzer) Run(ctx context.Context, catalogPath string) ([]Metrics, error) {
	cat, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	perPuzzle := make([][]Metrics, len(cat.Puzzles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, entry := range cat.Puzzles {
		i, entry := i, entry
		g.Go(func() error {
			ms, err := a.runPuzzle(ctx, entry)
			if err != nil {
				return fmt.Errorf("puzzle %s: %w", entry.Name, err)
			}
			perPuzzle[i] = ms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Metrics
	for _, ms := range perPuzzle {
		all = append(all, ms...)
	}
	return all, nil
}

func (a *Analyzer) runPuzzle(ctx context.Context, entry CatalogEntry) ([]Metrics, error) {
	content, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, err
	}
	puzzleID := fmt.Sprintf("%016x", xxhash.Sum64(content))

	var ms []Metrics
	for _, alg := range solver.Algorithms() {
		b, vehicles, err := rhp.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		s, err := solver.New(b, vehicles, solver.WithAlgorithm(alg))
		if err != nil {
			return nil, err
		}

		runtime.GC()
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		start := time.Now()
		res, err := s.Solve(ctx)
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)
		if err != nil {
			return nil, err
		}

		m := Metrics{
			Puzzle:         entry.Name,
			PuzzleID:       puzzleID,
			Algorithm:      alg.String(),
			Solved:         res.Found,
			SolutionMoves:  len(res.Moves),
			SolutionCost:   res.Cost,
			NodesExpanded:  res.NodesExpanded,
			NodesGenerated: res.NodesGenerated,
			SearchTime:     elapsed,
			HeapAllocBytes: after.TotalAlloc - before.TotalAlloc,
		}
		ms = append(ms, m)
		log.Info().
			Str("puzzle", entry.Name).
			Stringer("algorithm", alg).
			Bool("solved", res.Found).
			Dur("time", elapsed).
			Uint64("expanded", res.NodesExpanded).
			Msg("benchmark run done")
	}
	return ms, nil
}
