package model

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Grid is a fixed-size dense 2D container. Elements are stored column-major,
// so the slot for (row, col) is col*rows + row.
//
// Out-of-range coordinates are caller bugs: Get, Set and Neighbours panic
// rather than clamp or wrap.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

// NewGrid creates a rows x cols grid of zero values
func NewGrid[T any](rows, cols int) *Grid[T] {
	mustDimensions("NewGrid", rows, cols)
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// GridFromSlice creates a grid holding a copy of values, which must have
// exactly rows*cols elements in column-major order.
func GridFromSlice[T any](values []T, rows, cols int) *Grid[T] {
	mustDimensions("GridFromSlice", rows, cols)
	if len(values) != rows*cols {
		panic(errors.Errorf("[GridFromSlice] got %d values for a %dx%d grid, want %d",
			len(values), rows, cols, rows*cols))
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: slices.Clone(values),
	}
}

// Size returns the grid dimensions
func (g *Grid[T]) Size() (rows, cols int) {
	return g.rows, g.cols
}

// Get returns the element at (row, col)
func (g *Grid[T]) Get(row, col int) T {
	g.mustContain("Grid.Get", row, col)
	return g.cells[g.index(row, col)]
}

// Set overwrites the element at (row, col)
func (g *Grid[T]) Set(value T, row, col int) {
	g.mustContain("Grid.Set", row, col)
	g.cells[g.index(row, col)] = value
}

// Contains reports whether (row, col) is a valid coordinate
func (g *Grid[T]) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

/*
Neighbours yields every in-bounds coordinate within one step of (row, col),
diagonals included, excluding (row, col) itself. Edges are clamped, not
wrapped: an interior cell has 8 neighbours, an edge cell 5 and a corner 3.

The sequence is lazy and can be ranged over any number of times. The grid must
not be mutated while a sequence is being consumed.
*/
func (g *Grid[T]) Neighbours(row, col int) iter.Seq2[int, int] {
	g.mustContain("Grid.Neighbours", row, col)

	var (
		minRow = max(row-1, 0)
		maxRow = min(row+1, g.rows-1)
		minCol = max(col-1, 0)
		maxCol = min(col+1, g.cols-1)
	)

	return func(yield func(int, int) bool) {
		for r := minRow; r <= maxRow; r++ {
			for c := minCol; c <= maxCol; c++ {
				if r == row && c == col {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		rows:  g.rows,
		cols:  g.cols,
		cells: slices.Clone(g.cells),
	}
}

// Values returns a copy of the elements in column-major order, the same
// layout GridFromSlice accepts.
func (g *Grid[T]) Values() []T {
	return slices.Clone(g.cells)
}

// Equal reports whether a and b have the same dimensions and elements
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.cells, b.cells)
}

func (g *Grid[T]) index(row, col int) int {
	return col*g.rows + row
}

func (g *Grid[T]) mustContain(op string, row, col int) {
	if !g.Contains(row, col) {
		panic(errors.Errorf("[%s] coordinate (%d, %d) out of bounds for %dx%d grid",
			op, row, col, g.rows, g.cols))
	}
}

func mustDimensions(op string, rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(errors.Errorf("[%s] negative dimensions %dx%d", op, rows, cols))
	}
}
