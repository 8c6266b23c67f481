/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: queue.go
Description: Priority queue for candidate scheduling. Feeds the worker pool
candidates in ascending file-offset order using a binary heap, the same
structure the fuzzer used to schedule test cases by priority.
*/

package pipeline

import (
	"sync"
	"time"

	"github.com/kleascm/stranger-strings/pkg/encoding"
)

// queueItem wraps a candidate with the heap priority derived from it.
// Priority is the negated offset so the max-heap below pops the lowest
// offset first, keeping scan order close to file order even before the
// pool's own final sort runs.
type queueItem struct {
	candidate encoding.Candidate
	priority  int64
}

// CandidateQueue is a thread-safe, offset-ordered priority queue of
// extracted candidates, backed by a binary heap for O(log n) operations.
type CandidateQueue struct {
	heap []queueItem
	mu   sync.RWMutex
	size int

	insertions int64
	removals   int64
	lastAccess time.Time
}

// NewCandidateQueue creates an empty candidate queue.
func NewCandidateQueue() *CandidateQueue {
	return &CandidateQueue{heap: make([]queueItem, 0, 256)}
}

// Put adds a candidate to the queue, ordered by ascending offset.
func (q *CandidateQueue) Put(c encoding.Candidate) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.heap = append(q.heap, queueItem{candidate: c, priority: -c.Offset})
	q.size++
	q.insertions++
	q.lastAccess = time.Now()

	q.bubbleUp(q.size - 1)
}

// Get removes and returns the lowest-offset candidate. The second return
// value is false if the queue is empty.
func (q *CandidateQueue) Get() (encoding.Candidate, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return encoding.Candidate{}, false
	}

	root := q.heap[0]
	q.removals++
	q.lastAccess = time.Now()

	q.heap[0] = q.heap[q.size-1]
	q.heap = q.heap[:q.size-1]
	q.size--

	if q.size > 0 {
		q.bubbleDown(0)
	}

	return root.candidate, true
}

// Peek returns the lowest-offset candidate without removing it.
func (q *CandidateQueue) Peek() (encoding.Candidate, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.size == 0 {
		return encoding.Candidate{}, false
	}
	return q.heap[0].candidate, true
}

// Size returns the current number of queued candidates.
func (q *CandidateQueue) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.size
}

// IsEmpty reports whether the queue has no queued candidates.
func (q *CandidateQueue) IsEmpty() bool {
	return q.Size() == 0
}

// Clear removes every queued candidate.
func (q *CandidateQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.heap = q.heap[:0]
	q.size = 0
}

// GetStats returns queue throughput statistics.
func (q *CandidateQueue) GetStats() map[string]interface{} {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return map[string]interface{}{
		"size":       q.size,
		"capacity":   cap(q.heap),
		"insertions": q.insertions,
		"removals":   q.removals,
		"last_access": q.lastAccess,
	}
}

// bubbleUp restores heap order after an insertion at index.
func (q *CandidateQueue) bubbleUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if q.heap[index].priority > q.heap[parent].priority {
			q.heap[index], q.heap[parent] = q.heap[parent], q.heap[index]
			index = parent
		} else {
			break
		}
	}
}

// bubbleDown restores heap order after a removal at index.
func (q *CandidateQueue) bubbleDown(index int) {
	for {
		left := 2*index + 1
		right := 2*index + 2
		largest := index

		if left < q.size && q.heap[left].priority > q.heap[largest].priority {
			largest = left
		}
		if right < q.size && q.heap[right].priority > q.heap[largest].priority {
			largest = right
		}

		if largest == index {
			break
		}
		q.heap[index], q.heap[largest] = q.heap[largest], q.heap[index]
		index = largest
	}
}

// GetBatch drains up to count lowest-offset candidates from the queue.
func (q *CandidateQueue) GetBatch(count int) []encoding.Candidate {
	q.mu.Lock()
	defer q.mu.Unlock()

	if count <= 0 || q.size == 0 {
		return nil
	}
	if count > q.size {
		count = q.size
	}

	result := make([]encoding.Candidate, count)
	for i := 0; i < count; i++ {
		result[i] = q.heap[0].candidate

		q.heap[0] = q.heap[q.size-1]
		q.heap = q.heap[:q.size-1]
		q.size--

		if q.size > 0 {
			q.bubbleDown(0)
		}
	}

	q.removals += int64(count)
	q.lastAccess = time.Now()

	return result
}

// ValidateHeap reports whether the max-heap property holds, for tests.
func (q *CandidateQueue) ValidateHeap() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for i := 0; i < q.size; i++ {
		left := 2*i + 1
		right := 2*i + 2
		if left < q.size && q.heap[i].priority < q.heap[left].priority {
			return false
		}
		if right < q.size && q.heap[i].priority < q.heap[right].priority {
			return false
		}
	}
	return true
}
