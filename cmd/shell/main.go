package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/game"
	"github.com/domino14/gridlock/rhp"
	"github.com/domino14/gridlock/solver"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path/to/board.txt> - load a puzzle\n")
	io.WriteString(w, "solve [astar|ucs|bfs|dfs] - solve the loaded puzzle; defaults to astar\n")
	io.WriteString(w, "show - display the current step of the solution\n")
	io.WriteString(w, "n - next step\n")
	io.WriteString(w, "b - previous step\n")
	io.WriteString(w, "step <n> - go to step <n>\n")
	io.WriteString(w, "exit - leave the shell\n")
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

type shell struct {
	board    *board.Board
	vehicles []board.Vehicle
	solution *solver.Result
	step     int
}

func (sh *shell) load(path string, w io.Writer) {
	b, vehicles, err := rhp.ParseFile(path)
	if err != nil {
		showMessage("error: "+err.Error(), w)
		return
	}
	sh.board = b
	sh.vehicles = vehicles
	sh.solution = nil
	sh.step = 0
	showMessage(fmt.Sprintf("loaded %dx%d board with %d vehicles",
		b.Width(), b.Height(), len(vehicles)), w)
	sh.showVehicles(w)
}

func (sh *shell) showVehicles(w io.Writer) {
	z := solverPreview(sh.board, sh.vehicles)
	if z != nil {
		showMessage(z.Display(sh.board), w)
	}
}

// solverPreview renders the initial position without committing to a
// search.
func solverPreview(b *board.Board, vehicles []board.Vehicle) *game.Position {
	s, err := solver.New(b, vehicles)
	if err != nil {
		return nil
	}
	return s.InitialPosition()
}

func (sh *shell) solve(algname string, w io.Writer) {
	if sh.board == nil {
		showMessage("load a board first", w)
		return
	}
	if algname == "" {
		algname = "astar"
	}
	alg, err := solver.ParseAlgorithm(algname)
	if err != nil {
		showMessage("error: "+err.Error(), w)
		return
	}
	s, err := solver.New(sh.board, sh.vehicles, solver.WithAlgorithm(alg))
	if err != nil {
		showMessage("error: "+err.Error(), w)
		return
	}
	res, err := s.Solve(context.Background())
	if err != nil {
		showMessage("error: "+err.Error(), w)
		return
	}
	if !res.Found {
		showMessage("no solution found", w)
		return
	}
	sh.solution = res
	sh.step = 0
	showMessage(fmt.Sprintf("solved in %d moves (cost %d, %d nodes expanded)",
		len(res.Moves), res.Cost, res.NodesExpanded), w)
	sh.show(w)
}

func (sh *shell) show(w io.Writer) {
	if sh.solution == nil {
		showMessage("no solution yet; use solve", w)
		return
	}
	header := fmt.Sprintf("step %d/%d", sh.step, len(sh.solution.Path)-1)
	if sh.step > 0 {
		header += " " + sh.solution.Moves[sh.step-1].String()
	}
	showMessage(header, w)
	showMessage(sh.solution.Path[sh.step].Display(sh.board), w)
}

func (sh *shell) goTo(step int, w io.Writer) {
	if sh.solution == nil {
		showMessage("no solution yet; use solve", w)
		return
	}
	if step < 0 || step >= len(sh.solution.Path) {
		showMessage("step out of range", w)
		return
	}
	sh.step = step
	sh.show(w)
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	l, err := readline.NewEx(&readline.Config{
		Prompt:              "gridlock> ",
		HistoryFile:         "/tmp/gridlock_readline.tmp",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	defer l.Close()

	sh := &shell{}
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "load":
			if len(args) != 1 {
				showMessage("need a board file path", l.Stderr())
				break
			}
			sh.load(args[0], l.Stderr())
		case "solve":
			algname := ""
			if len(args) > 0 {
				algname = args[0]
			}
			sh.solve(algname, l.Stderr())
		case "show":
			sh.show(l.Stderr())
		case "n":
			sh.goTo(sh.step+1, l.Stderr())
		case "b":
			sh.goTo(sh.step-1, l.Stderr())
		case "step":
			if len(args) != 1 {
				showMessage("need a step number", l.Stderr())
				break
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				showMessage("badly formatted step number", l.Stderr())
				break
			}
			sh.goTo(n, l.Stderr())
		case "help":
			usage(l.Stderr())
		case "exit", "quit":
			os.Exit(0)
		default:
			usage(l.Stderr())
		}
	}
}
