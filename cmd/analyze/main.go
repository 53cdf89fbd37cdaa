package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gridlock/analyzer"
	"github.com/domino14/gridlock/config"
)

var (
	catalogFlag = flag.String("catalog", "", "path to a YAML puzzle catalog")
	outFlag     = flag.String("out", "", "write CSV results to this file (default stdout)")
	workersFlag = flag.Int("workers", 0, "number of puzzles to benchmark concurrently (0 = one per CPU)")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	cfg := &config.Config{}
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *catalogFlag != "" {
		cfg.CatalogPath = *catalogFlag
	}
	if *outFlag != "" {
		cfg.CSVOut = *outFlag
	}
	if *workersFlag != 0 {
		cfg.Workers = *workersFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a := analyzer.NewAnalyzer(cfg.Workers)
	metrics, err := a.Run(context.Background(), cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	out := os.Stdout
	if cfg.CSVOut != "" {
		f, err := os.Create(cfg.CSVOut)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output file")
		}
		defer f.Close()
		out = f
	}
	if err := analyzer.WriteCSV(out, metrics); err != nil {
		log.Fatal().Err(err).Msg("writing csv")
	}

	for _, s := range analyzer.Summarize(metrics) {
		fmt.Fprintln(os.Stderr, s)
	}
}
