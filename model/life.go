package model

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gridlife/rules"
)

/*
GameOfLife owns the current generation of a Conway's Game of Life simulation.

Each step computes the successor into a fresh grid from the current one and
then swaps it in, so an installed generation is never written again. Readers
on other goroutines observe either the old or the new generation, never a mix.
*/
type GameOfLife struct {
	// stepMu serialises steps; mu guards the generation swap.
	stepMu     sync.Mutex
	mu         sync.RWMutex
	grid       *Grid[Cell]
	generation int
}

// FromGrid starts a simulation with a copy of grid as generation 0
func FromGrid(grid *Grid[Cell]) *GameOfLife {
	return &GameOfLife{grid: grid.Clone()}
}

// Grid returns the current generation. Callers must treat it as read-only.
func (g *GameOfLife) Grid() *Grid[Cell] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.grid
}

// Generation returns the number of steps applied so far
func (g *GameOfLife) Generation() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

// Population returns the number of live cells in the current generation
func (g *GameOfLife) Population() int {
	return CountLivingCells(g.Grid())
}

// Step advances the simulation by exactly one generation
func (g *GameOfLife) Step() {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()

	current := g.Grid()
	rows, cols := current.Size()
	next := NewGrid[Cell](rows, cols)
	nextColumns(current, next, 0, cols)
	g.install(next)
}

/*
StepParallel advances the simulation by one generation, splitting the columns
into contiguous ranges evaluated concurrently. workers <= 0 uses one worker per CPU.

If ctx is cancelled before every range finishes, the partial successor is
dropped, the current generation stays installed and the context error is returned.
*/
func (g *GameOfLife) StepParallel(ctx context.Context, workers int) error {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()

	current := g.Grid()
	rows, cols := current.Size()
	next := NewGrid[Cell](rows, cols)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	colsPerWorker := max((cols+workers-1)/workers, 1) // Ceiling division

	eg, ctx := errgroup.WithContext(ctx)
	for startCol := 0; startCol < cols; startCol += colsPerWorker {
		endCol := min(startCol+colsPerWorker, cols)

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nextColumns(current, next, startCol, endCol)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	g.install(next)
	return nil
}

func (g *GameOfLife) install(next *Grid[Cell]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.grid = next
	g.generation++
}

// nextColumns writes the successor state of columns [startCol, endCol) of
// current into next, which must start all Dead.
func nextColumns(current, next *Grid[Cell], startCol, endCol int) {
	rows, _ := current.Size()
	for col := startCol; col < endCol; col++ {
		for row := 0; row < rows; row++ {
			alive := current.Get(row, col).IsAlive()
			if rules.Next(alive, liveNeighbours(current, row, col)) {
				next.Set(Alive, row, col)
			}
		}
	}
}

// liveNeighbours counts live neighbours of (row, col), stopping at rules.Saturation
func liveNeighbours(g *Grid[Cell], row, col int) int {
	count := 0
	for r, c := range g.Neighbours(row, col) {
		if g.Get(r, c).IsAlive() {
			count++
			if count >= rules.Saturation {
				break
			}
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func CountLivingCells(g *Grid[Cell]) (count int) {
	for _, cell := range g.cells {
		if cell.IsAlive() {
			count++
		}
	}
	return
}
