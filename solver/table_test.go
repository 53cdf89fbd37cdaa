package solver

import (
	"testing"

	"github.com/matryer/is"
)

func TestCostTableStoreLookup(t *testing.T) {
	is := is.New(t)
	tbl := newCostTable(10)

	_, ok := tbl.lookup(42, "k1")
	is.True(!ok)

	is.NoErr(tbl.store(42, "k1", 7))
	g, ok := tbl.lookup(42, "k1")
	is.True(ok)
	is.Equal(g, 7)
	is.Equal(tbl.len(), 1)

	// relaxation: same key, better cost, updated in place
	is.NoErr(tbl.store(42, "k1", 5))
	g, _ = tbl.lookup(42, "k1")
	is.Equal(g, 5)
	is.Equal(tbl.len(), 1)
}

func TestCostTableCollidingHashes(t *testing.T) {
	is := is.New(t)
	tbl := newCostTable(10)

	// two distinct keys in the same bucket stay distinct
	is.NoErr(tbl.store(42, "k1", 1))
	is.NoErr(tbl.store(42, "k2", 2))
	g, ok := tbl.lookup(42, "k1")
	is.True(ok)
	is.Equal(g, 1)
	g, ok = tbl.lookup(42, "k2")
	is.True(ok)
	is.Equal(g, 2)
	is.Equal(tbl.len(), 2)
}

func TestCostTableFull(t *testing.T) {
	is := is.New(t)
	tbl := newCostTable(1)

	is.NoErr(tbl.store(1, "k1", 1))
	err := tbl.store(2, "k2", 2)
	is.Equal(err, ErrTableFull)

	// updates to existing entries still succeed at the cap
	is.NoErr(tbl.store(1, "k1", 0))
}
