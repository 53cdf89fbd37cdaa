package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load())
	is.Equal(c.Algorithm, "astar")
	is.Equal(c.Debug, false)
	is.Equal(c.Workers, 0)
}

func TestLoadEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("GRIDLOCK_ALGORITHM", "bfs")
	t.Setenv("GRIDLOCK_DEBUG", "true")
	t.Setenv("GRIDLOCK_MAX_TABLE_ENTRIES", "1000")

	c := &Config{}
	is.NoErr(c.Load())
	is.Equal(c.Algorithm, "bfs")
	is.Equal(c.Debug, true)
	is.Equal(c.MaxTableEntries, 1000)
}
