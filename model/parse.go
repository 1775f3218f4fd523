package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmpty  = errors.New("grid text is empty")
	ErrRagged = errors.New("grid rows differ in length")
	ErrSymbol = errors.New("unknown grid symbol")
)

// ParseGrid reads a board drawn with '#' for walls and '.' or ' ' for open cells. Blank lines
// before and after the board are ignored.
func ParseGrid(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	var open []bool
	rows, cols := 0, -1
	ended := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			// blank lines may surround the board but not split it
			ended = cols != -1
			continue
		}
		if ended {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrRagged, rows)
		}
		if cols == -1 {
			cols = len(line)
		}
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, rows, len(line), cols)
		}
		for i, char := range line {
			switch char {
			case '#':
				open = append(open, false)
			case '.', ' ':
				open = append(open, true)
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrSymbol, char, rows, i)
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rows == 0 || cols <= 0 {
		return nil, ErrEmpty
	}
	return NewGrid(rows, cols, open)
}

func ParseLines(lines ...string) (*Grid, error) {
	return ParseGrid(strings.NewReader(strings.Join(lines, "\n")))
}
