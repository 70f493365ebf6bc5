package gridpath

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Expansion is reported to the observer each time a node leaves the open set.
type Expansion[NodeType comparable] struct {
	Node   NodeType
	GScore float64
	HScore float64
	FCost  float64
	Step   int
}

// Options defines parameters for the search.
type Options[NodeType comparable] struct {
	Observer func(Expansion[NodeType])
}

// Option is a function that modifies Options.
type Option[NodeType comparable] func(*Options[NodeType])

// WithObserver registers a callback invoked once per expanded node, in
// expansion order, from the goroutine running the search.
func WithObserver[NodeType comparable](observer func(Expansion[NodeType])) Option[NodeType] {
	return func(options *Options[NodeType]) { options.Observer = observer }
}

// Search runs A* from startNode to goalNode to completion.
//
// Ties on f are broken by the smaller heuristic value and then by insertion
// order, so identical inputs always produce identical paths. Closed nodes are
// never reopened, which is correct for consistent heuristics.
//
// When the goal is unreachable the returned error is ErrNotFound and
// Result.Found is false.
func Search[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option[NodeType],
) (Result[NodeType], error) {
	searchOptions := Options[NodeType]{}
	for _, option := range options {
		option(&searchOptions)
	}

	if startNode == goalNode {
		return Result[NodeType]{
			Path:  []NodeType{startNode},
			Found: true,
		}, nil
	}

	state := newSearchState(graph, startNode, goalNode, heuristic, searchOptions.Observer)
	for {
		outcome, err := state.advance()
		if err != nil {
			return Result[NodeType]{ExpandedNodes: state.expanded}, err
		}
		switch outcome.status {
		case stepExhausted:
			return Result[NodeType]{
				ExpandedNodes: state.expanded,
				Found:         false,
			}, ErrNotFound
		case stepFound:
			path, err := state.path()
			if err != nil {
				return Result[NodeType]{ExpandedNodes: state.expanded}, err
			}
			return Result[NodeType]{
				Path:          path,
				TotalCost:     outcome.item.GScore,
				ExpandedNodes: state.expanded,
				Found:         true,
			}, nil
		}
	}
}
