package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gridlock/config"
	"github.com/domino14/gridlock/rhp"
	"github.com/domino14/gridlock/solver"
)

var (
	algorithmFlag = flag.String("algorithm", "", "search strategy: astar, ucs, bfs, or dfs")
	debugFlag     = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	cfg := &config.Config{}
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *algorithmFlag != "" {
		cfg.Algorithm = *algorithmFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: solve [-algorithm astar|ucs|bfs|dfs] path/to/board.txt")
		os.Exit(1)
	}

	alg, err := solver.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	b, vehicles, err := rhp.ParseFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("path", flag.Arg(0)).Msg("could not load board")
	}

	s, err := solver.New(b, vehicles,
		solver.WithAlgorithm(alg),
		solver.WithMaxTableEntries(cfg.MaxTableEntries))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid puzzle")
	}

	res, err := s.Solve(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	if !res.Found {
		fmt.Println("No solution found.")
		os.Exit(1)
	}

	fmt.Printf("Solution found in %d moves using %s.\n",
		len(res.Moves), strings.ToUpper(alg.String()))
	for i, pos := range res.Path {
		fmt.Printf("Move %d:\n", i)
		fmt.Println(pos.Display(b))
	}
	log.Debug().
		Int("cost", res.Cost).
		Uint64("expanded", res.NodesExpanded).
		Uint64("generated", res.NodesGenerated).
		Msg("search stats")
}
