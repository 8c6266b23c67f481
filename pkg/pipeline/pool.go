/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pool.go
Description: Bounded worker pool that fans candidate strings out to
concurrent scorers and reassembles results in deterministic order. Mirrors
the fuzzer's worker-pool concurrency shape (context cancellation, WaitGroup
draining, per-worker stats) applied to a synchronous scoring workload
instead of subprocess execution.
*/

package pipeline

import (
	"context"
	"sort"

	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/logging"
	"github.com/kleascm/stranger-strings/pkg/scoring"

	"sync"
)

// encodingPriority breaks ties between candidates that share an offset,
// preferring the more specific decoding. Kept local to the pipeline so
// result ordering doesn't depend on package-private details of encoding.
var encodingPriority = map[encoding.Encoding]int{
	encoding.ASCII:   0,
	encoding.UTF8:    1,
	encoding.UTF16LE: 2,
	encoding.UTF16BE: 3,
	encoding.Latin1:  4,
	encoding.Latin9:  5,
}

// Pool scores candidates concurrently across a fixed number of workers.
type Pool struct {
	size       int
	dispatcher *scoring.Dispatcher
	logger     *logging.Logger
}

// NewPool builds a pool of size workers backed by dispatcher. size is
// clamped to at least 1.
func NewPool(size int, dispatcher *scoring.Dispatcher, logger *logging.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size, dispatcher: dispatcher, logger: logger}
}

// Run scores every candidate and returns results ordered by (offset,
// encoding priority, normalized string) regardless of the order in which
// workers finished — the pool's only externally visible order guarantee.
// Run returns early with whatever it collected so far if ctx is cancelled.
func (p *Pool) Run(ctx context.Context, candidates []encoding.Candidate) []scoring.Result {
	queue := NewCandidateQueue()
	for _, c := range candidates {
		queue.Put(c)
	}

	jobs := make(chan encoding.Candidate)
	out := make(chan scoring.Result, len(candidates))

	var wg sync.WaitGroup
	wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		w := newWorker(i, p.dispatcher, p.logger)
		go w.run(jobs, out, &wg)
	}

	go func() {
		defer close(jobs)
		for {
			c, ok := queue.Get()
			if !ok {
				return
			}
			select {
			case jobs <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]scoring.Result, 0, len(candidates))
	for {
		select {
		case r, ok := <-out:
			if !ok {
				return sortResults(results)
			}
			results = append(results, r)
		case <-ctx.Done():
			return sortResults(results)
		}
	}
}

func sortResults(results []scoring.Result) []scoring.Result {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		if pa, pb := encodingPriority[a.Encoding], encodingPriority[b.Encoding]; pa != pb {
			return pa < pb
		}
		return a.Normalized < b.Normalized
	})
	return results
}
