package solver

import "fmt"

// Algorithm selects the search strategy. AStar is the default; the
// blind strategies exist mostly for comparison runs.
type Algorithm uint8

const (
	AStar Algorithm = iota
	UCS
	BFS
	DFS
)

var algorithmNames = map[Algorithm]string{
	AStar: "astar",
	UCS:   "ucs",
	BFS:   "bfs",
	DFS:   "dfs",
}

func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", a)
}

// ParseAlgorithm maps a name like "astar" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q (want astar, ucs, bfs, or dfs)", name)
}

// Algorithms lists every strategy in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, UCS, BFS, DFS}
}
