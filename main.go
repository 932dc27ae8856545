package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/gridlife/model"
	"github.com/sheikhrachel/gridlife/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config, err = utils.LoadConfig("")
	}
	if err != nil {
		log.Fatalf("load config: %+v", err)
	}

	grid, err := initialGrid(config)
	if err != nil {
		log.Fatalf("initial grid: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, model.FromGrid(grid)); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("run: %+v", err)
	}
}

// run drives the simulation until a stop condition is met or ctx is cancelled
func run(ctx context.Context, config utils.Config, game *model.GameOfLife) error {
	var (
		renderer = model.NewTerminalRenderer(os.Stdout)
		history  = model.NewHistory(config.StagnationWindow)
		stats    = utils.NewStats()
		ticker   = time.NewTicker(max(config.FrameRate, time.Millisecond))
	)
	defer ticker.Stop()

	displayGameInfo(os.Stdout, config, game)

	lastFrameTime := time.Now()
	for {
		frameStart := time.Now()
		population := game.Population()
		stagnant := history.Observe(game.Grid())
		stats.Update(game.Generation(), population, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := renderer.Clear(); err != nil {
			return err
		}
		displayGameStatus(os.Stdout, game, gameStatus(population, stagnant), stats)
		if err := renderer.Display(game.Grid()); err != nil {
			return err
		}

		if done, reason := checkStopConditions(population, stagnant, config, game.Generation()); done {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			return nil
		}

		if config.Workers == 1 {
			game.Step()
		} else if err := game.StepParallel(ctx, config.Workers); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				game.Generation(), stats.Runtime().Seconds())
			return nil
		case <-ticker.C:
		}
	}
}
