package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

var csvHeader = []string{
	"puzzle", "puzzle_id", "algorithm", "solved", "solution_moves",
	"solution_cost", "nodes_expanded", "nodes_generated",
	"search_time_s", "heap_alloc_bytes",
}

// WriteCSV writes one row per benchmark run.
func WriteCSV(w io.Writer, metrics []Metrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	records := lo.Map(metrics, func(m Metrics, _ int) []string {
		return []string{
			m.Puzzle,
			m.PuzzleID,
			m.Algorithm,
			strconv.FormatBool(m.Solved),
			strconv.Itoa(m.SolutionMoves),
			strconv.Itoa(m.SolutionCost),
			strconv.FormatUint(m.NodesExpanded, 10),
			strconv.FormatUint(m.NodesGenerated, 10),
			strconv.FormatFloat(m.SearchTime.Seconds(), 'f', 6, 64),
			strconv.FormatUint(m.HeapAllocBytes, 10),
		}
	})
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// A Summary aggregates every run of one algorithm across the catalog.
type Summary struct {
	Algorithm         string
	Puzzles           int
	Solved            int
	MeanTime          time.Duration
	StdDevTime        time.Duration
	MeanNodesExpanded float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%-6s solved %d/%d  time %v ± %v  nodes expanded %.1f",
		s.Algorithm, s.Solved, s.Puzzles, s.MeanTime.Round(time.Microsecond),
		s.StdDevTime.Round(time.Microsecond), s.MeanNodesExpanded)
}

// Summarize groups metrics by algorithm, preserving first-seen order.
func Summarize(metrics []Metrics) []Summary {
	byAlg := lo.GroupBy(metrics, func(m Metrics) string { return m.Algorithm })
	order := lo.Uniq(lo.Map(metrics, func(m Metrics, _ int) string { return m.Algorithm }))

	return lo.Map(order, func(alg string, _ int) Summary {
		ms := byAlg[alg]
		times := lo.Map(ms, func(m Metrics, _ int) float64 { return m.SearchTime.Seconds() })
		nodes := lo.Map(ms, func(m Metrics, _ int) float64 { return float64(m.NodesExpanded) })
		meanT, stdT := stat.MeanStdDev(times, nil)
		if len(times) < 2 {
			stdT = 0
		}
		return Summary{
			Algorithm:         alg,
			Puzzles:           len(ms),
			Solved:            lo.CountBy(ms, func(m Metrics) bool { return m.Solved }),
			MeanTime:          time.Duration(meanT * float64(time.Second)),
			StdDevTime:        time.Duration(stdT * float64(time.Second)),
			MeanNodesExpanded: stat.Mean(nodes, nil),
		}
	})
}
