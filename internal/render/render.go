// Package render draws grids, paths and search frames as ASCII.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/pdrpinto/gridpath"
)

// Grid writes one line per row: '#' blocked, '.' open, a digit for integer
// terrain costs up to 9, '~' for any other cost, '*' on the path, 'S' and
// 'G' at the endpoints.
func Grid(w io.Writer, grid *gridpath.Grid, path []gridpath.Point, start, goal gridpath.Point) error {
	onPath := make(map[gridpath.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	return draw(w, grid, func(p gridpath.Point) (rune, bool) {
		switch {
		case p == start:
			return 'S', true
		case p == goal:
			return 'G', true
		case onPath[p]:
			return '*', true
		}
		return 0, false
	})
}

// Frame renders a Stepper snapshot: 'o' open, 'x' closed, '@' the node just
// expanded, and the path once found.
func Frame(w io.Writer, grid *gridpath.Grid, snapshot gridpath.StepSnapshot[gridpath.Point], start, goal gridpath.Point) error {
	onPath := make(map[gridpath.Point]bool, len(snapshot.Path))
	for _, p := range snapshot.Path {
		onPath[p] = true
	}
	return draw(w, grid, func(p gridpath.Point) (rune, bool) {
		switch {
		case p == start:
			return 'S', true
		case p == goal:
			return 'G', true
		case onPath[p]:
			return '*', true
		case !snapshot.Done && p == snapshot.Current:
			return '@', true
		case snapshot.Closed[p]:
			return 'x', true
		case snapshot.Open[p]:
			return 'o', true
		}
		return 0, false
	})
}

func draw(w io.Writer, grid *gridpath.Grid, overlay func(gridpath.Point) (rune, bool)) error {
	out := bufio.NewWriter(w)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := gridpath.Point{X: x, Y: y}
			symbol, ok := overlay(p)
			if !ok {
				symbol = cell(grid, p)
			}
			if _, err := out.WriteRune(symbol); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return out.Flush()
}

func cell(grid *gridpath.Grid, p gridpath.Point) rune {
	if !grid.Passable(p) {
		return '#'
	}
	cost := grid.TerrainCost(p)
	switch {
	case cost == 1:
		return '.'
	case cost <= 9 && cost == math.Trunc(cost):
		return rune('0' + int(cost))
	}
	return '~'
}
