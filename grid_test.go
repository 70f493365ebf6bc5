package gridpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {math.MaxInt/2 + 1, 2}, {2, math.MaxInt}} {
		_, err := NewGrid(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidInput, "size %v", size)
	}

	grid, err := NewGrid(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.True(t, grid.InBounds(Point{3, 1}))
	assert.False(t, grid.InBounds(Point{4, 1}))
	assert.False(t, grid.InBounds(Point{0, -1}))
}

func TestGridSetters(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, grid.SetBlocked(Point{3, 0}, true), ErrInvalidInput)
	assert.ErrorIs(t, grid.SetTerrainCost(Point{-1, 0}, 2), ErrInvalidInput)
	assert.ErrorIs(t, grid.SetTerrainCost(Point{1, 1}, 0.5), ErrInvalidInput)
	assert.ErrorIs(t, grid.SetTerrainCost(Point{1, 1}, math.Inf(1)), ErrInvalidInput)
	assert.ErrorIs(t, grid.SetTerrainCost(Point{1, 1}, math.NaN()), ErrInvalidInput)

	require.NoError(t, grid.SetBlocked(Point{0, 1}, true))
	require.NoError(t, grid.SetTerrainCost(Point{2, 2}, 3))
	assert.False(t, grid.Passable(Point{0, 1}))
	assert.False(t, grid.Passable(Point{5, 5}))
	assert.Equal(t, 3.0, grid.TerrainCost(Point{2, 2}))
	assert.Equal(t, 1.0, grid.TerrainCost(Point{1, 1}))
}

func TestNeighborsSkipOutOfBounds(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)

	neighbors := grid.Neighbors(Point{0, 0})
	ids := make([]Point, 0, len(neighbors))
	for _, n := range neighbors {
		ids = append(ids, n.ID)
	}
	// nothing is clamped back onto the grid
	assert.Equal(t, []Point{{1, 0}, {0, 1}, {1, 1}}, ids)
	assert.Len(t, grid.Neighbors(Point{1, 1}), 8)
}

func TestNeighborCosts(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, grid.SetBlocked(Point{1, 0}, true))
	require.NoError(t, grid.SetTerrainCost(Point{2, 2}, 2))

	costs := map[Point]float64{}
	for _, n := range grid.Neighbors(Point{1, 1}) {
		costs[n.ID] = n.Cost
	}
	assert.NotContains(t, costs, Point{1, 0})
	assert.Len(t, costs, 7)
	assert.Equal(t, 1.0, costs[Point{0, 1}])
	assert.Equal(t, math.Sqrt2, costs[Point{0, 0}])
	assert.Equal(t, 2*math.Sqrt2, costs[Point{2, 2}])
}

func TestEuclidean(t *testing.T) {
	assert.Equal(t, 5.0, Euclidean(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, Euclidean(Point{2, 2}, Point{2, 2}))
	assert.InDelta(t, math.Sqrt2, Euclidean(Point{1, 1}, Point{0, 0}), 1e-12)
}

func TestPathCost(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, grid.SetTerrainCost(Point{2, 1}, 4))

	cost, err := PathCost(grid, []Point{{0, 0}, {1, 1}, {2, 1}})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2+4, cost, 1e-12)

	_, err = PathCost(grid, []Point{{0, 0}, {2, 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = PathCost(grid, []Point{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
