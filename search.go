package gridpath

import (
	"fmt"
	"math"

	"github.com/pdrpinto/gridpath/internal"
)

type stepStatus int

const (
	stepExpanded stepStatus = iota
	stepFound
	stepExhausted
)

type stepOutcome[NodeType comparable] struct {
	status stepStatus
	item   *PriorityQueueItem[NodeType]
}

// searchState is everything one search owns: g/h/f live in the open set
// items, predecessors in cameFrom. Nothing is written back to the graph.
type searchState[NodeType comparable] struct {
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]
	observer  func(Expansion[NodeType])

	open     *openSet[NodeType]
	closed   map[NodeType]bool
	cameFrom map[NodeType]NodeType
	expanded int
}

func newSearchState[NodeType comparable](
	graph Graph[NodeType],
	start NodeType,
	goal NodeType,
	heuristic Heuristic[NodeType],
	observer func(Expansion[NodeType]),
) *searchState[NodeType] {
	state := &searchState[NodeType]{
		graph:     graph,
		start:     start,
		goal:      goal,
		heuristic: heuristic,
		observer:  observer,
		open:      newOpenSet[NodeType](),
		closed:    make(map[NodeType]bool),
		cameFrom:  make(map[NodeType]NodeType),
	}
	state.open.push(start, 0, heuristic(start, goal))
	return state
}

// advance pops the best open node, closes it and relaxes its neighbors.
// Reaching the goal stops before any relaxation.
func (state *searchState[NodeType]) advance() (stepOutcome[NodeType], error) {
	if state.open.Len() == 0 {
		return stepOutcome[NodeType]{status: stepExhausted}, nil
	}

	currentItem := state.open.popMin()
	currentNode := currentItem.Node
	state.closed[currentNode] = true
	state.expanded++

	if state.observer != nil {
		state.observer(Expansion[NodeType]{
			Node:   currentNode,
			GScore: currentItem.GScore,
			HScore: currentItem.HScore,
			FCost:  currentItem.FCost,
			Step:   state.expanded,
		})
	}

	if currentNode == state.goal {
		return stepOutcome[NodeType]{status: stepFound, item: currentItem}, nil
	}

	for _, neighbor := range state.graph.Neighbors(currentNode) {
		if neighbor.Cost < 0 || math.IsNaN(neighbor.Cost) {
			return stepOutcome[NodeType]{}, fmt.Errorf("%w: edge %v -> %v has cost %v", ErrInvalidInput, currentNode, neighbor.ID, neighbor.Cost)
		}
		if state.closed[neighbor.ID] {
			continue
		}
		tentativeG := currentItem.GScore + neighbor.Cost
		if item, inOpen := state.open.lookup(neighbor.ID); !inOpen {
			state.open.push(neighbor.ID, tentativeG, state.heuristic(neighbor.ID, state.goal))
			state.cameFrom[neighbor.ID] = currentNode
		} else if tentativeG < item.GScore {
			state.open.decrease(item, tentativeG)
			state.cameFrom[neighbor.ID] = currentNode
		}
	}

	return stepOutcome[NodeType]{status: stepExpanded, item: currentItem}, nil
}

func (state *searchState[NodeType]) path() ([]NodeType, error) {
	path, err := internal.ReconstructPath(state.cameFrom, state.goal, state.start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}
	return path, nil
}
