package gridpath

import "container/heap"

type PriorityQueueItem[NodeType comparable] struct {
	Node         NodeType
	GScore       float64
	HScore       float64
	FCost        float64
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue orders items by FCost, then HScore, then Sequence (first
// insertion wins). It implements heap.Interface.
type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.HScore != b.HScore {
		return a.HScore < b.HScore
	}
	return a.Sequence < b.Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// openSet pairs the heap with a membership index so lookups and decrease-key
// don't need a scan.
type openSet[NodeType comparable] struct {
	queue    PriorityQueue[NodeType]
	index    map[NodeType]*PriorityQueueItem[NodeType]
	sequence uint64
}

func newOpenSet[NodeType comparable]() *openSet[NodeType] {
	return &openSet[NodeType]{
		queue: make(PriorityQueue[NodeType], 0),
		index: make(map[NodeType]*PriorityQueueItem[NodeType]),
	}
}

func (set *openSet[NodeType]) Len() int { return set.queue.Len() }

func (set *openSet[NodeType]) lookup(node NodeType) (*PriorityQueueItem[NodeType], bool) {
	item, ok := set.index[node]
	return item, ok
}

func (set *openSet[NodeType]) push(node NodeType, gScore, hScore float64) *PriorityQueueItem[NodeType] {
	item := &PriorityQueueItem[NodeType]{
		Node:     node,
		GScore:   gScore,
		HScore:   hScore,
		FCost:    gScore + hScore,
		Sequence: set.sequence,
	}
	set.sequence++
	heap.Push(&set.queue, item)
	set.index[node] = item
	return item
}

// decrease lowers an item's g (and f) in place. h and Sequence are unchanged.
func (set *openSet[NodeType]) decrease(item *PriorityQueueItem[NodeType], gScore float64) {
	item.GScore = gScore
	item.FCost = gScore + item.HScore
	heap.Fix(&set.queue, item.IndexInQueue)
}

func (set *openSet[NodeType]) popMin() *PriorityQueueItem[NodeType] {
	item := heap.Pop(&set.queue).(*PriorityQueueItem[NodeType])
	delete(set.index, item.Node)
	return item
}

func (set *openSet[NodeType]) nodes() map[NodeType]bool {
	m := make(map[NodeType]bool, len(set.index))
	for node := range set.index {
		m[node] = true
	}
	return m
}
