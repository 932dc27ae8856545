package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearHome = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display renders the grid row by row
func (r *TerminalRenderer) Display(g *Grid[Cell]) error {
	w := bufio.NewWriter(r.out)
	rows, cols := g.Size()
	for row := range rows {
		for col := range cols {
			if g.Get(row, col).IsAlive() {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen and homes the cursor
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClearHome)
	return err
}
