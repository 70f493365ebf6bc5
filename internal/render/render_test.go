package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func testGrid(t *testing.T) *gridpath.Grid {
	t.Helper()
	grid, err := gridpath.NewGrid(4, 3)
	require.NoError(t, err)
	require.NoError(t, grid.SetBlocked(gridpath.Point{X: 1, Y: 1}, true))
	require.NoError(t, grid.SetTerrainCost(gridpath.Point{X: 3, Y: 0}, 3))
	require.NoError(t, grid.SetTerrainCost(gridpath.Point{X: 2, Y: 2}, 2.5))
	return grid
}

func TestGrid(t *testing.T) {
	grid := testGrid(t)
	start, goal := gridpath.Point{X: 0, Y: 0}, gridpath.Point{X: 3, Y: 2}

	var finder gridpath.PathFinder
	result, err := finder.Search(grid, start, goal)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, Grid(&out, grid, result.Path, start, goal))
	assert.Equal(t, "S*.3\n.#*.\n..~G\n", out.String())
}

func TestGridWithoutPath(t *testing.T) {
	grid := testGrid(t)

	var out strings.Builder
	require.NoError(t, Grid(&out, grid, nil, gridpath.Point{X: 0, Y: 2}, gridpath.Point{X: 2, Y: 0}))
	assert.Equal(t, "..G3\n.#..\nS.~.\n", out.String())
}

func TestFrame(t *testing.T) {
	grid := testGrid(t)
	start, goal := gridpath.Point{X: 0, Y: 0}, gridpath.Point{X: 3, Y: 2}
	stepper := gridpath.NewStepper[gridpath.Point](grid, start, goal, gridpath.Euclidean)

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, Frame(&out, grid, snapshot, start, goal))
	assert.Equal(t, "So.3\no#..\n..~G\n", out.String())

	snapshot, err = stepper.Step()
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, Frame(&out, grid, snapshot, start, goal))
	assert.Equal(t, "S@o3\no#o.\n..~G\n", out.String())
}
