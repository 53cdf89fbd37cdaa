package solver

// The frontier is a min-heap keyed on f, with the insertion sequence
// number as the secondary key. Ties on f are broken in favor of the
// earlier-pushed node, which keeps exploration order (and therefore the
// particular optimal solution returned among equal-cost ones) fully
// deterministic.

type frontierItem struct {
	n   *node
	f   int
	seq uint64
}

type frontier []*frontierItem

func (fr frontier) Len() int { return len(fr) }

func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	return fr[i].seq < fr[j].seq
}

func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

func (fr *frontier) Push(x any) {
	*fr = append(*fr, x.(*frontierItem))
}

func (fr *frontier) Pop() any {
	old := *fr
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*fr = old[:n-1]
	return item
}
