/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: worker.go
Description: Pool worker for concurrent candidate scoring. Pulls candidates
off a shared channel, scores each through the dispatcher, and reports
performance stats the same way the fuzzer's worker tracked execution counts.
*/

package pipeline

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/logging"
	"github.com/kleascm/stranger-strings/pkg/scoring"
)

// worker scores candidates pulled from a shared jobs channel until it's
// closed or the pool's context is cancelled.
type worker struct {
	id         int
	dispatcher *scoring.Dispatcher
	logger     *logging.Logger

	processed int64
	errors    int64
	startTime time.Time
}

func newWorker(id int, d *scoring.Dispatcher, logger *logging.Logger) *worker {
	return &worker{id: id, dispatcher: d, logger: logger, startTime: time.Now()}
}

// run drains jobs, scores each one, and sends successful results to out.
// A candidate that fails to score (only possible if the model was never
// loaded) is logged and skipped rather than aborting the whole run.
func (w *worker) run(jobs <-chan encoding.Candidate, out chan<- scoring.Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for c := range jobs {
		result, err := w.dispatcher.Score(c)
		if err != nil {
			atomic.AddInt64(&w.errors, 1)
			if w.logger != nil {
				w.logger.LogWorkerError(w.id, err, map[string]interface{}{
					"offset":   c.Offset,
					"encoding": string(c.Encoding),
				})
			}
			continue
		}
		atomic.AddInt64(&w.processed, 1)
		out <- result
	}
}

func (w *worker) stats() map[string]interface{} {
	return map[string]interface{}{
		"id":        w.id,
		"processed": atomic.LoadInt64(&w.processed),
		"errors":    atomic.LoadInt64(&w.errors),
		"uptime":    time.Since(w.startTime),
	}
}
