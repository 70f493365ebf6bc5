package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/gridfile"
	"github.com/pdrpinto/gridpath/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%s[APP] [FATAL] %v%s", config.LogErrorColor, err, config.LogColorReset)
	}

	flag.StringVar(&cfg.GridFile, "grid", cfg.GridFile, "grid description (.yaml, .yml or .json)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines for batch queries")
	flag.BoolVar(&cfg.Trace, "trace", cfg.Trace, "print a frame for every expansion of the primary query")
	flag.BoolVar(&cfg.LogExpansions, "v", cfg.LogExpansions, "log every node expansion")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, cfg))
}

func run(ctx context.Context, cfg config.Config) int {
	description, err := gridfile.Load(cfg.GridFile)
	if err != nil {
		log.Printf("%s[APP] [ERROR] %v%s", config.LogErrorColor, err, config.LogColorReset)
		return 1
	}
	grid := description.Grid
	log.Printf("%s[APP] [INFO] loaded %s (%dx%d)%s", config.LogInfoColor, cfg.GridFile, grid.Width(), grid.Height(), config.LogColorReset)

	finder := &gridpath.PathFinder{Workers: cfg.Workers}
	if cfg.LogExpansions {
		finder.Observer = func(expansion gridpath.Expansion[gridpath.Point]) {
			log.Printf("%s[SEARCH] [DEBUG] expanding %v g=%.3f h=%.3f f=%.3f%s",
				config.LogDebugColor, expansion.Node, expansion.GScore, expansion.HScore, expansion.FCost, config.LogColorReset)
		}
	}

	var result gridpath.Result[gridpath.Point]
	if cfg.Trace {
		result, err = trace(grid, description.Start, description.Goal, finder.Observer)
	} else {
		result, err = finder.Search(grid, description.Start, description.Goal)
	}

	status := 0
	switch {
	case errors.Is(err, gridpath.ErrNotFound):
		log.Printf("%s[APP] [INFO] no path from %v to %v after %d expansions%s",
			config.LogInfoColor, description.Start, description.Goal, result.ExpandedNodes, config.LogColorReset)
		status = 2
	case err != nil:
		log.Printf("%s[APP] [ERROR] %v%s", config.LogErrorColor, err, config.LogColorReset)
		return 1
	default:
		log.Printf("%s[APP] [INFO] path of %d cells, cost %.3f, %d expansions%s",
			config.LogInfoColor, len(result.Path), result.TotalCost, result.ExpandedNodes, config.LogColorReset)
		fmt.Println(formatPath(result.Path))
	}
	if err := render.Grid(os.Stdout, grid, result.Path, description.Start, description.Goal); err != nil {
		log.Printf("%s[APP] [ERROR] render: %v%s", config.LogErrorColor, err, config.LogColorReset)
		return 1
	}

	if len(description.Queries) == 0 {
		return status
	}
	results, err := finder.SearchBatch(ctx, grid, description.Queries)
	if err != nil {
		log.Printf("%s[APP] [ERROR] batch: %v%s", config.LogErrorColor, err, config.LogColorReset)
		return 1
	}
	for _, queryResult := range results {
		if queryResult.Err != nil {
			log.Printf("[BATCH] [INFO] %s %v -> %v: %v", queryResult.ID, queryResult.Query.Start, queryResult.Query.Goal, queryResult.Err)
			continue
		}
		log.Printf("[BATCH] [INFO] %s %v -> %v: cost %.3f, %d cells",
			queryResult.ID, queryResult.Query.Start, queryResult.Query.Goal, queryResult.Result.TotalCost, len(queryResult.Result.Path))
	}
	return status
}

// trace runs the primary query through a Stepper and prints every frame.
func trace(grid *gridpath.Grid, start, goal gridpath.Point, observer func(gridpath.Expansion[gridpath.Point])) (gridpath.Result[gridpath.Point], error) {
	if err := gridpath.ValidateEndpoints(grid, start, goal); err != nil {
		return gridpath.Result[gridpath.Point]{}, err
	}
	var options []gridpath.Option[gridpath.Point]
	if observer != nil {
		options = append(options, gridpath.WithObserver(observer))
	}
	stepper := gridpath.NewStepper[gridpath.Point](grid, start, goal, gridpath.Euclidean, options...)
	for {
		snapshot, err := stepper.Step()
		if err != nil {
			return gridpath.Result[gridpath.Point]{ExpandedNodes: snapshot.StepIndex}, err
		}
		fmt.Printf("step %d current=%v f=%.3f\n", snapshot.StepIndex, snapshot.Current, snapshot.FCost)
		if err := render.Frame(os.Stdout, grid, snapshot, start, goal); err != nil {
			return gridpath.Result[gridpath.Point]{}, err
		}
		fmt.Println()
		if !snapshot.Done {
			continue
		}
		if !snapshot.Found {
			return gridpath.Result[gridpath.Point]{ExpandedNodes: snapshot.StepIndex}, gridpath.ErrNotFound
		}
		return gridpath.Result[gridpath.Point]{
			Path:          snapshot.Path,
			TotalCost:     snapshot.TotalCost,
			ExpandedNodes: snapshot.StepIndex,
			Found:         true,
		}, nil
	}
}

func formatPath(path []gridpath.Point) string {
	cells := make([]string, len(path))
	for i, p := range path {
		cells[i] = p.String()
	}
	return strings.Join(cells, " ")
}
