package gridpath

import (
	"fmt"
	"math"
)

// Point is a cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// neighborOffsets lists the 8 directions in the fixed order Neighbors uses.
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a W×H map of passable and blocked cells with an optional terrain
// cost multiplier per cell. Searches only read it; mutating a Grid while a
// search over it is running is a data race.
type Grid struct {
	width   int
	height  int
	blocked []bool
	terrain []float64 // nil until a non-default cost is set
}

// NewGrid returns an all-passable grid with uniform terrain.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidInput, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: grid size %dx%d overflows", ErrInvalidInput, width, height)
	}
	return &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies in [0,W)×[0,H).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Point) int { return p.Y*g.width + p.X }

// SetBlocked marks p as impassable (or passable again).
func (g *Grid) SetBlocked(p Point, blocked bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidInput, p, g.width, g.height)
	}
	g.blocked[g.index(p)] = blocked
	return nil
}

// SetTerrainCost sets the multiplier applied to moves into p. Costs below 1
// would make the Euclidean heuristic inadmissible and are rejected.
func (g *Grid) SetTerrainCost(p Point, cost float64) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidInput, p, g.width, g.height)
	}
	if cost < 1 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: terrain cost %v at %v must be a finite value >= 1", ErrInvalidInput, cost, p)
	}
	if g.terrain == nil {
		if cost == 1 {
			return nil
		}
		g.terrain = make([]float64, g.width*g.height)
		for i := range g.terrain {
			g.terrain[i] = 1
		}
	}
	g.terrain[g.index(p)] = cost
	return nil
}

// Passable reports whether p is in bounds and not blocked.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && !g.blocked[g.index(p)]
}

// TerrainCost returns the multiplier for p, 1 when none was set.
func (g *Grid) TerrainCost(p Point) float64 {
	if g.terrain == nil || !g.InBounds(p) {
		return 1
	}
	return g.terrain[g.index(p)]
}

// Neighbors implements Graph. Out-of-bounds and blocked cells are skipped;
// orthogonal moves cost 1 and diagonal moves √2, scaled by the destination's
// terrain cost.
func (g *Grid) Neighbors(p Point) []Neighbor[Point] {
	neighbors := make([]Neighbor[Point], 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		next := Point{p.X + offset.X, p.Y + offset.Y}
		if !g.Passable(next) {
			continue
		}
		neighbors = append(neighbors, Neighbor[Point]{ID: next, Cost: stepLength(offset) * g.TerrainCost(next)})
	}
	return neighbors
}

// Euclidean is the straight-line distance between two cells. With every step
// costing at least its length it is admissible and consistent.
func Euclidean(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// PathCost recomputes the cost of walking path on g under the Neighbors cost
// model. Non-adjacent steps or blocked cells return ErrInvalidInput.
func PathCost(g *Grid, path []Point) (float64, error) {
	total := 0.0
	for i, p := range path {
		if !g.Passable(p) {
			return 0, fmt.Errorf("%w: path cell %v is not passable", ErrInvalidInput, p)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dx, dy := abs(p.X-prev.X), abs(p.Y-prev.Y)
		if dx > 1 || dy > 1 || dx+dy == 0 {
			return 0, fmt.Errorf("%w: %v -> %v is not a single step", ErrInvalidInput, prev, p)
		}
		total += stepLength(Point{p.X - prev.X, p.Y - prev.Y}) * g.TerrainCost(p)
	}
	return total, nil
}

func stepLength(offset Point) float64 {
	if offset.X != 0 && offset.Y != 0 {
		return math.Sqrt2
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
