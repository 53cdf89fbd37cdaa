// Package rhp parses the plain-text Rush Hour position format. Each
// line is one grid row; '.' marks an empty cell and any other printable
// character is a vehicle id, repeated once per occupied cell. 'X' is
// the target vehicle. Lines shorter than the widest one are padded with
// empty cells on the right. The exit is the right edge of the target
// vehicle's row.
package rhp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/domino14/gridlock/board"
	"github.com/domino14/gridlock/game"
)

type cell struct {
	row, col int
}

// Parse reads a position from r and returns its board geometry and
// vehicles.
func Parse(r io.Reader) (*board.Board, []board.Vehicle, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	// drop trailing blank lines
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, nil, errors.New("empty board description")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	height := len(rows)

	coords := map[byte][]cell{}
	for r, row := range rows {
		for c := 0; c < width; c++ {
			ch := byte(game.EmptyCell)
			if c < len(row) {
				ch = row[c]
			}
			if ch == game.EmptyCell || ch == ' ' {
				continue
			}
			coords[ch] = append(coords[ch], cell{row: r, col: c})
		}
	}

	ids := make([]byte, 0, len(coords))
	for id := range coords {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	vehicles := make([]board.Vehicle, 0, len(ids))
	for _, id := range ids {
		v, err := vehicleFromCells(id, coords[id])
		if err != nil {
			return nil, nil, err
		}
		vehicles = append(vehicles, v)
	}

	target := -1
	for i, v := range vehicles {
		if v.ID == board.TargetID {
			target = i
		}
	}
	if target == -1 {
		return nil, nil, fmt.Errorf("board has no target vehicle %c", board.TargetID)
	}
	if vehicles[target].Orientation != board.Horizontal {
		return nil, nil, errors.New("target vehicle must be horizontal")
	}

	b, err := board.New(width, height, vehicles[target].Row)
	if err != nil {
		return nil, nil, err
	}
	return b, vehicles, nil
}

// ParseFile is Parse on the contents of path.
func ParseFile(path string) (*board.Board, []board.Vehicle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f)
}

// vehicleFromCells derives one vehicle from its occupied cells, which
// arrive in row-major order so the first one is the anchor. A
// single-cell vehicle is treated as horizontal.
func vehicleFromCells(id byte, cells []cell) (board.Vehicle, error) {
	first, last := cells[0], cells[len(cells)-1]
	orient := board.Horizontal
	if len(cells) > 1 && first.col == last.col {
		orient = board.Vertical
	}
	for i, c := range cells {
		switch orient {
		case board.Horizontal:
			if c.row != first.row || c.col != first.col+i {
				return board.Vehicle{}, fmt.Errorf("vehicle %c is not a contiguous horizontal run", id)
			}
		case board.Vertical:
			if c.col != first.col || c.row != first.row+i {
				return board.Vehicle{}, fmt.Errorf("vehicle %c is not a contiguous vertical run", id)
			}
		}
	}
	return board.Vehicle{
		ID:          id,
		Orientation: orient,
		Row:         first.row,
		Col:         first.col,
		Length:      len(cells),
	}, nil
}
