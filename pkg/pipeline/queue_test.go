/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: queue_test.go
Description: Tests for the candidate priority queue's offset ordering and
heap invariants.
*/

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/stranger-strings/pkg/encoding"
)

func TestCandidateQueueOrdersByOffset(t *testing.T) {
	q := NewCandidateQueue()
	q.Put(encoding.Candidate{Offset: 300, Raw: "c"})
	q.Put(encoding.Candidate{Offset: 10, Raw: "a"})
	q.Put(encoding.Candidate{Offset: 150, Raw: "b"})

	first, ok := q.Get()
	require.True(t, ok)
	assert.Equal(t, int64(10), first.Offset)

	second, ok := q.Get()
	require.True(t, ok)
	assert.Equal(t, int64(150), second.Offset)

	third, ok := q.Get()
	require.True(t, ok)
	assert.Equal(t, int64(300), third.Offset)

	_, ok = q.Get()
	assert.False(t, ok)
}

func TestCandidateQueueMaintainsHeapInvariant(t *testing.T) {
	q := NewCandidateQueue()
	offsets := []int64{50, 5, 400, 30, 1, 900, 12}
	for _, off := range offsets {
		q.Put(encoding.Candidate{Offset: off})
		assert.True(t, q.ValidateHeap())
	}
	assert.Equal(t, len(offsets), q.Size())
}

func TestCandidateQueueGetBatch(t *testing.T) {
	q := NewCandidateQueue()
	for _, off := range []int64{40, 10, 20, 30} {
		q.Put(encoding.Candidate{Offset: off})
	}

	batch := q.GetBatch(2)
	require.Len(t, batch, 2)
	assert.Equal(t, int64(10), batch[0].Offset)
	assert.Equal(t, int64(20), batch[1].Offset)
	assert.Equal(t, 2, q.Size())
}

func TestCandidateQueuePeekDoesNotRemove(t *testing.T) {
	q := NewCandidateQueue()
	q.Put(encoding.Candidate{Offset: 10})

	peeked, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, int64(10), peeked.Offset)
	assert.Equal(t, 1, q.Size())
}
