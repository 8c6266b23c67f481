/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encoding_test.go
Description: Tests for multi-encoding string extraction.
*/

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractASCII(t *testing.T) {
	e := NewExtractor([]Encoding{ASCII}, 4)
	data := []byte("Hello\x00World\x01Test")
	candidates := e.Extract(data)

	require.Len(t, candidates, 3)
	assert.Equal(t, "Hello", candidates[0].Raw)
	assert.Equal(t, "World", candidates[1].Raw)
	assert.Equal(t, "Test", candidates[2].Raw)
	assert.Equal(t, ASCII, candidates[0].Encoding)
}

func TestExtractASCIIRespectsMinLength(t *testing.T) {
	e := NewExtractor([]Encoding{ASCII}, 8)
	data := []byte("Hi\x00Test\x00LongEnoughString")
	candidates := e.Extract(data)

	require.Len(t, candidates, 1)
	assert.Equal(t, "LongEnoughString", candidates[0].Raw)
}

func TestExtractUTF8Unicode(t *testing.T) {
	e := NewExtractor([]Encoding{UTF8}, 2)
	data := []byte("Hi\x00你好世界\x00Bye")
	candidates := e.Extract(data)

	var found bool
	for _, c := range candidates {
		if c.Raw == "你好世界" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExtractUTF16LE(t *testing.T) {
	e := NewExtractor([]Encoding{UTF16LE}, 3)
	data := []byte{'H', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0, 0, 0}
	candidates := e.Extract(data)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Hello", candidates[0].Raw)
	assert.Equal(t, UTF16LE, candidates[0].Encoding)
}

func TestExtractLatin1(t *testing.T) {
	e := NewExtractor([]Encoding{Latin1}, 3)
	data := []byte{'c', 'a', 'f', 0xE9} // "caf" + é (0xE9 in Latin-1)
	candidates := e.Extract(data)

	require.Len(t, candidates, 1)
	assert.Equal(t, "café", candidates[0].Raw)
}

func TestExtractDeduplicatesAcrossEncodings(t *testing.T) {
	e := NewAllEncodingsExtractor(4)
	data := []byte("Hello World")
	candidates := e.Extract(data)

	seen := make(map[string]bool)
	for _, c := range candidates {
		key := c.Raw
		assert.False(t, seen[key], "duplicate candidate for %q at offset %d encoding %s", c.Raw, c.Offset, c.Encoding)
		seen[key] = true
	}
}

func TestExtractOffsetsAreByteAccurate(t *testing.T) {
	e := NewExtractor([]Encoding{ASCII}, 4)
	data := []byte("\x00\x00\x00Hello\x00")
	candidates := e.Extract(data)

	require.Len(t, candidates, 1)
	assert.Equal(t, int64(3), candidates[0].Offset)
}
