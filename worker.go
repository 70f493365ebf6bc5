package gridpath

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Query is one start/goal pair of a batch.
type Query struct {
	ID    string
	Start Point
	Goal  Point
}

// QueryResult is the worker's answer for one Query.
type QueryResult struct {
	ID     string
	Query  Query
	Result Result[Point]
	Err    error
}

// searchTask carries a query and its position in the batch to a worker.
type searchTask struct {
	position int
	query    Query
}

// SearchBatch runs every query against the same grid on a pool of workers.
// Results come back in query order and queries without an ID get a random
// UUID. Per-query failures (ErrNotFound included) are reported in
// QueryResult.Err; the returned error is only set when ctx is done first.
//
// The grid is shared read-only by all workers and must not be modified until
// SearchBatch returns.
func (finder *PathFinder) SearchBatch(contextObject context.Context, grid *Grid, queries []Query) ([]QueryResult, error) {
	numberOfWorkers := finder.Workers
	if numberOfWorkers <= 0 {
		numberOfWorkers = runtime.NumCPU()
	}
	if numberOfWorkers > len(queries) {
		numberOfWorkers = len(queries)
	}

	results := make([]QueryResult, len(queries))
	taskChannel := make(chan searchTask)

	var waitGroup sync.WaitGroup
	for i := 0; i < numberOfWorkers; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for {
				select {
				case <-contextObject.Done():
					return
				case task, ok := <-taskChannel:
					if !ok {
						return
					}
					result, err := finder.Search(grid, task.query.Start, task.query.Goal)
					// each worker writes only its own slots
					results[task.position] = QueryResult{
						ID:     task.query.ID,
						Query:  task.query,
						Result: result,
						Err:    err,
					}
				}
			}
		}()
	}

dispatch:
	for position, query := range queries {
		if query.ID == "" {
			query.ID = uuid.NewString()
		}
		select {
		case <-contextObject.Done():
			break dispatch
		case taskChannel <- searchTask{position: position, query: query}:
		}
	}
	close(taskChannel)
	waitGroup.Wait()

	if err := contextObject.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
