package gridpath

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	GScore    float64
	HScore    float64
	FCost     float64
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	TotalCost float64
	StepIndex int
}

// Stepper drives the same search as Search one expansion at a time, for
// visualisation and debugging. It is not safe for concurrent use.
type Stepper[NodeType comparable] struct {
	state     *searchState[NodeType]
	stepCount int
	done      bool
	found     bool
	path      []NodeType
	totalCost float64
}

// NewStepper prepares a search without expanding anything yet. An observer
// set through options is called once per Step that expands a node.
func NewStepper[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option[NodeType],
) *Stepper[NodeType] {
	searchOptions := Options[NodeType]{}
	for _, option := range options {
		option(&searchOptions)
	}
	return &Stepper[NodeType]{
		state: newSearchState(graph, startNode, goalNode, heuristic, searchOptions.Observer),
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// An exhausted frontier yields Done without Found. Once the search is done
// every further call returns the final snapshot. A start equal to the goal
// finishes on the first step.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.snapshot(StepSnapshot[NodeType]{}), nil
	}
	if s.state.start == s.state.goal {
		s.stepCount++
		s.done, s.found = true, true
		s.path = []NodeType{s.state.start}
		return s.snapshot(StepSnapshot[NodeType]{Current: s.state.start}), nil
	}

	outcome, err := s.state.advance()
	if err != nil {
		// the failing node was already closed
		s.stepCount = s.state.expanded
		s.done = true
		return s.snapshot(StepSnapshot[NodeType]{}), err
	}

	switch outcome.status {
	case stepExhausted:
		s.done = true
		return s.snapshot(StepSnapshot[NodeType]{}), nil
	case stepFound:
		path, err := s.state.path()
		s.stepCount++
		s.done = true
		if err != nil {
			return s.snapshot(s.current(outcome.item)), err
		}
		s.found = true
		s.path = path
		s.totalCost = outcome.item.GScore
		return s.snapshot(s.current(outcome.item)), nil
	default:
		s.stepCount++
		return s.snapshot(s.current(outcome.item)), nil
	}
}

// Done reports whether the search has finished.
func (s *Stepper[NodeType]) Done() bool { return s.done }

func (s *Stepper[NodeType]) current(item *PriorityQueueItem[NodeType]) StepSnapshot[NodeType] {
	return StepSnapshot[NodeType]{
		Current: item.Node,
		GScore:  item.GScore,
		HScore:  item.HScore,
		FCost:   item.FCost,
	}
}

func (s *Stepper[NodeType]) snapshot(base StepSnapshot[NodeType]) StepSnapshot[NodeType] {
	base.Open = s.state.open.nodes()
	base.Closed = copyBoolMap(s.state.closed)
	base.CameFrom = copyCameFrom(s.state.cameFrom)
	base.Done = s.done
	base.Found = s.found
	base.Path = append([]NodeType(nil), s.path...)
	base.TotalCost = s.totalCost
	base.StepIndex = s.stepCount
	return base
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
func copyCameFrom[T comparable](m map[T]T) map[T]T {
	if m == nil {
		return nil
	}
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
