package cloudgov

import (
	"context"
	"sync"
	"time"

	"github.com/datagov-metrics/cloudgov/internal/constants"
)

// ReleaseOperation represents a single dataset release in a batch.
type ReleaseOperation struct {
	DatasetID string
	Metadata  map[string]interface{}
	Callback  func(result *ReleaseResult)
}

// ReleaseResult represents the outcome of one release in a batch.
type ReleaseResult struct {
	DatasetID string
	Success   bool
	Error     error
	Duration  time.Duration
}

// BatchReleaser executes dataset releases with bounded concurrency.
type BatchReleaser struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchReleaser creates a new batch releaser.
func NewBatchReleaser(client Client, concurrency int) *BatchReleaser {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchReleaser{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the timeout applied to each release.
func (b *BatchReleaser) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of releases. Results keep the order of operations
// whatever the concurrency; with a concurrency of one the releases
// themselves run strictly in order.
func (b *BatchReleaser) Execute(ctx context.Context, operations []ReleaseOperation) ([]ReleaseResult, error) {
	results := make([]ReleaseResult, len(operations))

	type indexedOperation struct {
		index     int
		operation ReleaseOperation
	}

	work := make(chan indexedOperation)

	var waitGroup sync.WaitGroup

	for worker := 0; worker < b.concurrency; worker++ {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			for item := range work {
				// Execute release with timeout
				opCtx, cancel := context.WithTimeout(ctx, b.timeout)

				start := time.Now()
				result := ReleaseResult{DatasetID: item.operation.DatasetID}

				err := b.client.Datasets().Release(opCtx, item.operation.DatasetID, item.operation.Metadata)
				cancel()

				result.Success = err == nil
				result.Error = err
				result.Duration = time.Since(start)
				results[item.index] = result

				// Call callback if provided
				if item.operation.Callback != nil {
					item.operation.Callback(&result)
				}
			}
		}()
	}

	for index, operation := range operations {
		work <- indexedOperation{index: index, operation: operation}
	}

	close(work)
	waitGroup.Wait()

	return results, nil
}

// CountResults tallies a batch into succeeded and failed releases.
func CountResults(results []ReleaseResult) (succeeded, failed int) {
	for _, result := range results {
		if result.Success {
			succeeded++
		} else {
			failed++
		}
	}

	return succeeded, failed
}
