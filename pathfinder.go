package gridpath

import "fmt"

// PathFinder searches Grids with A* and the Euclidean heuristic.
// The zero value is ready to use.
type PathFinder struct {
	// Observer, when set, receives every expansion. SearchBatch calls it from
	// several goroutines at once.
	Observer func(Expansion[Point])

	// Workers bounds SearchBatch concurrency; <= 0 means runtime.NumCPU().
	Workers int
}

// Search returns the lowest-cost 8-connected path from start to goal.
//
// Bad dimensions or out-of-bounds endpoints fail with ErrInvalidInput and
// blocked endpoints with ErrImpassableEndpoint, both before searching.
// An unreachable goal returns ErrNotFound.
func (finder *PathFinder) Search(grid *Grid, start, goal Point) (Result[Point], error) {
	if err := ValidateEndpoints(grid, start, goal); err != nil {
		return Result[Point]{}, err
	}

	var options []Option[Point]
	if finder.Observer != nil {
		options = append(options, WithObserver(finder.Observer))
	}
	return Search[Point](grid, start, goal, Euclidean, options...)
}

// ValidateEndpoints runs the checks Search performs before expanding
// anything, for callers that drive a Stepper over a Grid themselves.
func ValidateEndpoints(grid *Grid, start, goal Point) error {
	if grid == nil || grid.width < 1 || grid.height < 1 {
		return fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	endpoints := []struct {
		name  string
		point Point
	}{{"start", start}, {"goal", goal}}
	for _, endpoint := range endpoints {
		if !grid.InBounds(endpoint.point) {
			return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidInput, endpoint.name, endpoint.point, grid.width, grid.height)
		}
	}
	for _, endpoint := range endpoints {
		if !grid.Passable(endpoint.point) {
			return fmt.Errorf("%w: %s %v is blocked", ErrImpassableEndpoint, endpoint.name, endpoint.point)
		}
	}
	return nil
}
