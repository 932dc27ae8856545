package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gridlife/model"
	"github.com/sheikhrachel/gridlife/utils"
)

// initialGrid builds generation 0 from the pattern file, or from random
// patterns when none is configured
func initialGrid(config utils.Config) (*model.Grid[model.Cell], error) {
	if config.PatternFile == "" {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid := model.NewGrid[model.Cell](config.Rows, config.Cols)
		model.AddInterestingPatterns(grid, config.RandomDensity, rand.New(rand.NewSource(seed)))
		return grid, nil
	}

	data, err := os.ReadFile(config.PatternFile)
	if err != nil {
		return nil, errors.Wrapf(err, "[initialGrid] failed to read pattern file: %+v", config.PatternFile)
	}
	pattern, err := model.ParsePattern(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[initialGrid] failed to parse pattern file: %+v", config.PatternFile)
	}
	return centre(pattern, config.Rows, config.Cols), nil
}

// centre places pattern in the middle of a rows x cols grid, growing the grid
// if the pattern does not fit
func centre(pattern *model.Grid[model.Cell], rows, cols int) *model.Grid[model.Cell] {
	pRows, pCols := pattern.Size()
	rows, cols = max(rows, pRows), max(cols, pCols)
	offRow, offCol := (rows-pRows)/2, (cols-pCols)/2

	grid := model.NewGrid[model.Cell](rows, cols)
	for row := range pRows {
		for col := range pCols {
			grid.Set(pattern.Get(row, col), row+offRow, col+offCol)
		}
	}
	return grid
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, game *model.GameOfLife) {
	rows, cols := game.Grid().Size()
	fmt.Fprintf(w, "Grid: %dx%d | Workers: %d | Initial living cells: %s\n",
		rows, cols, config.Workers, humanize.Comma(int64(game.Population())))
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// gameStatus summarises the current generation for display
func gameStatus(population int, stagnant bool) string {
	switch {
	case population == 0:
		return "Extinct"
	case stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, game *model.GameOfLife, status string, stats *utils.Stats) {
	rows, cols := game.Grid().Size()
	population := game.Population()
	density := float64(population) / float64(max(rows*cols, 1)) * 100

	fmt.Fprintf(w, "Gen: %s | Living: %s | Density: %.1f%% | Status: %s\n",
		humanize.Comma(int64(game.Generation())), humanize.Comma(int64(population)), density, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// checkStopConditions determines if the game should stop and why
func checkStopConditions(population int, stagnant bool, config utils.Config, generation int) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnant && config.StopOnStagnation {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
