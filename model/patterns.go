package model

import (
	"bufio"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Plaintext pattern symbols
const (
	patternAlive   = 'O'
	patternAltLive = '*'
	patternDead    = '.'
	patternComment = "!"
)

// Seed fills the grid with living cells at the given density
func Seed(g *Grid[Cell], density float64, rng *rand.Rand) {
	for col := range g.cols {
		for row := range g.rows {
			g.Set(CellOf(rng.Float64() < density), row, col)
		}
	}
}

// stamp sets the live cells of pattern with its top-left corner at (row, col).
// Cells falling outside the grid are dropped.
func stamp(g *Grid[Cell], pattern [][]bool, row, col int) {
	for r, line := range pattern {
		for c, alive := range line {
			if alive && g.Contains(row+r, col+c) {
				g.Set(Alive, row+r, col+c)
			}
		}
	}
}

// AddGlider adds a south-east travelling glider at the specified position
func AddGlider(g *Grid[Cell], row, col int) {
	stamp(g, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}, row, col)
}

// AddBlinker adds a horizontal blinker oscillator
func AddBlinker(g *Grid[Cell], row, col int) {
	stamp(g, [][]bool{{true, true, true}}, row, col)
}

// AddInterestingPatterns adds gliders and blinkers sized to the grid, then
// sprinkles random life at the given density.
func AddInterestingPatterns(g *Grid[Cell], density float64, rng *rand.Rand) {
	Seed(g, density, rng)

	if g.rows < 10 || g.cols < 10 {
		return
	}
	AddGlider(g, 5, 5)
	if g.cols >= 20 && g.rows >= 15 {
		AddGlider(g, 5, g.cols-8)
	}

	AddBlinker(g, g.rows/4, g.cols/4)
	if g.cols >= 30 {
		AddBlinker(g, 3*g.rows/4, 3*g.cols/4)
	}
}

/*
ParsePattern reads a plaintext pattern into a grid sized to fit it.

Each non-comment line is a row: 'O' or '*' is alive, '.' is dead. Lines
starting with '!' are comments. Short rows are padded with dead cells.
*/
func ParsePattern(text string) (*Grid[Cell], error) {
	var (
		lines   [][]bool
		cols    int
		scanner = bufio.NewScanner(strings.NewReader(text))
	)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, patternComment) {
			continue
		}

		row := make([]bool, 0, len(line))
		for i, r := range line {
			switch r {
			case patternAlive, patternAltLive:
				row = append(row, true)
			case patternDead:
				row = append(row, false)
			default:
				return nil, errors.Errorf("[ParsePattern] unexpected %q at line %d column %d", r, lineNo, i+1)
			}
		}
		lines = append(lines, row)
		cols = max(cols, len(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] failed to scan pattern")
	}

	// trailing blank lines carry no cells
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	g := NewGrid[Cell](len(lines), cols)
	stamp(g, lines, 0, 0)
	return g, nil
}

// FormatPattern renders a grid in the plaintext format ParsePattern reads
func FormatPattern(g *Grid[Cell]) string {
	var sb strings.Builder
	for row := range g.rows {
		for col := range g.cols {
			if g.Get(row, col).IsAlive() {
				sb.WriteRune(patternAlive)
			} else {
				sb.WriteRune(patternDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
