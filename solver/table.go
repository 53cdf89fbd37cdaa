package solver

import (
	"errors"

	"github.com/pbnjay/memory"
)

// ErrTableFull is returned when the best-cost table hits its configured
// entry limit. Adversarial or very large boards can grow the table
// without bound; this surfaces that to the caller instead of letting
// the process die.
var ErrTableFull = errors.New("solver: best-cost table is full")

// Rough per-entry footprint: bucket slot, key string, map overhead.
const approxEntryBytes = 96

// defaultMaxTableEntries sizes the table off total system memory, the
// same way the memory-hungry caches elsewhere are sized. A quarter of
// RAM is far more than any reasonable puzzle needs.
func defaultMaxTableEntries() int {
	return int(memory.TotalMemory() / 4 / approxEntryBytes)
}

type tableEntry struct {
	key string
	g   int
}

// costTable maps positions to the lowest path cost found so far. The
// zobrist hash is the bucket index; the exact structural key is stored
// and verified on every probe, so hash collisions cannot corrupt a
// search. Updating an existing entry with a strictly better cost is a
// relaxation, not a re-insertion ban.
type costTable struct {
	buckets    map[uint64][]tableEntry
	entries    int
	maxEntries int
}

func newCostTable(maxEntries int) *costTable {
	return &costTable{
		buckets:    make(map[uint64][]tableEntry),
		maxEntries: maxEntries,
	}
}

func (t *costTable) lookup(hash uint64, key string) (int, bool) {
	for _, e := range t.buckets[hash] {
		if e.key == key {
			return e.g, true
		}
	}
	return 0, false
}

func (t *costTable) store(hash uint64, key string, g int) error {
	bucket := t.buckets[hash]
	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].g = g
			return nil
		}
	}
	if t.entries >= t.maxEntries {
		return ErrTableFull
	}
	t.buckets[hash] = append(bucket, tableEntry{key: key, g: g})
	t.entries++
	return nil
}

func (t *costTable) len() int { return t.entries }
