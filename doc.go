// Package gridpath finds minimum-cost paths on 2D grids with A*.
//
// It exposes three entry points:
//
//   - PathFinder.Search: validate a Grid and endpoints, then search to completion.
//   - PathFinder.SearchBatch: run many independent queries over one shared grid
//     on a worker pool.
//   - Stepper: iterate any search one expansion at a time to drive UIs or
//     debugging tools.
//
// Grids are 8-connected. Moving into a cell costs the step length (1 or √2)
// times the cell's terrain cost, and the Euclidean distance is used as the
// heuristic, so returned paths are optimal. Equal-priority frontier nodes are
// ordered by heuristic and then insertion order, which makes results
// reproducible.
//
// The generic Search works on any Graph and is what the grid code builds on.
// All per-search bookkeeping is owned by the call; graphs are only read.
package gridpath
