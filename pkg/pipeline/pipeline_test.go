/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline_test.go
Description: Tests for the concurrent scoring pool, focused on deterministic
result ordering independent of worker scheduling.
*/

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/model"
	"github.com/kleascm/stranger-strings/pkg/scoring"
)

func buildHelloModel(t *testing.T) *model.TrigramModel {
	t.Helper()
	content := strings.Join([]string{
		"# Model Type: lowercase",
		"[^]\th\te\t10",
		"h\te\tl\t15",
		"e\tl\tl\t20",
		"l\tl\to\t25",
		"l\to\t[$]\t8",
	}, "\n")
	m, err := model.ParseModel(strings.NewReader(content))
	require.NoError(t, err)
	return m
}

func TestPoolOrdersResultsByOffset(t *testing.T) {
	dispatcher := scoring.NewDispatcher(buildHelloModel(t))
	pool := NewPool(4, dispatcher, nil)

	candidates := []encoding.Candidate{
		{Offset: 300, Encoding: encoding.ASCII, Raw: "world"},
		{Offset: 10, Encoding: encoding.ASCII, Raw: "hello"},
		{Offset: 150, Encoding: encoding.ASCII, Raw: "hello"},
	}

	results := pool.Run(context.Background(), candidates)
	require.Len(t, results, 3)
	assert.Equal(t, int64(10), results[0].Offset)
	assert.Equal(t, int64(150), results[1].Offset)
	assert.Equal(t, int64(300), results[2].Offset)
}

func TestPoolBreaksOffsetTiesByEncodingPriority(t *testing.T) {
	dispatcher := scoring.NewDispatcher(buildHelloModel(t))
	pool := NewPool(2, dispatcher, nil)

	candidates := []encoding.Candidate{
		{Offset: 50, Encoding: encoding.Latin1, Raw: "hello"},
		{Offset: 50, Encoding: encoding.ASCII, Raw: "hello"},
	}

	results := pool.Run(context.Background(), candidates)
	require.Len(t, results, 2)
	assert.Equal(t, encoding.ASCII, results[0].Encoding)
	assert.Equal(t, encoding.Latin1, results[1].Encoding)
}

func TestPoolHandlesEmptyCandidateList(t *testing.T) {
	dispatcher := scoring.NewDispatcher(buildHelloModel(t))
	pool := NewPool(3, dispatcher, nil)

	results := pool.Run(context.Background(), nil)
	assert.Empty(t, results)
}

func TestPoolRespectsContextCancellation(t *testing.T) {
	dispatcher := scoring.NewDispatcher(buildHelloModel(t))
	pool := NewPool(1, dispatcher, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := pool.Run(ctx, []encoding.Candidate{{Offset: 0, Encoding: encoding.ASCII, Raw: "hello"}})
	assert.LessOrEqual(t, len(results), 1)
}
