package internal

import (
	"errors"
	"fmt"
)

// ErrMissingPredecessor is returned when the cameFrom chain breaks before
// reaching the start node.
var ErrMissingPredecessor = errors.New("missing predecessor")

// ReconstructPath rebuilds the start..current path from the cameFrom map.
// A broken or cyclic chain is reported as ErrMissingPredecessor instead of
// returning a truncated path.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) ([]NodeType, error) {
	path := []NodeType{current}
	for current != start {
		// a valid chain never has more links than the map holds
		if len(path) > len(cameFrom) {
			return nil, fmt.Errorf("%w: predecessor chain from %v does not reach %v", ErrMissingPredecessor, path[0], start)
		}
		previousNode, exists := cameFrom[current]
		if !exists {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrMissingPredecessor, current)
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
