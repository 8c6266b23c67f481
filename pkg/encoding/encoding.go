/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encoding.go
Description: Multi-encoding string extraction from raw binary buffers. Walks
a buffer once per configured encoding, decoding byte runs into printable-rune
candidates tagged with their origin offset and encoding, the way a binary
string-dumping tool has to when it doesn't know up front which encoding any
given region of the file actually uses.
*/

package encoding

import (
	"encoding/binary"
	"sort"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies which decoding was used to produce a Candidate.
type Encoding string

const (
	ASCII    Encoding = "ASCII"
	UTF8     Encoding = "UTF-8"
	UTF16LE  Encoding = "UTF-16LE"
	UTF16BE  Encoding = "UTF-16BE"
	Latin1   Encoding = "Latin-1"
	Latin9   Encoding = "Latin-9"
)

// All lists every encoding the extractor knows how to decode, in the
// priority order used to break ties when the same offset yields a valid
// candidate under more than one encoding.
func All() []Encoding {
	return []Encoding{ASCII, UTF8, UTF16LE, UTF16BE, Latin1, Latin9}
}

// priority ranks encodings for deterministic candidate ordering; lower
// sorts first. ASCII is the most specific decoding (every ASCII byte is
// also valid UTF-8 and Latin-1) so it's preferred when offsets collide.
func priority(e Encoding) int {
	switch e {
	case ASCII:
		return 0
	case UTF8:
		return 1
	case UTF16LE:
		return 2
	case UTF16BE:
		return 3
	case Latin1:
		return 4
	case Latin9:
		return 5
	default:
		return 99
	}
}

// Candidate is a decoded run of printable characters pulled out of a binary
// buffer under one encoding, not yet normalized or scored.
type Candidate struct {
	Offset     int64
	Encoding   Encoding
	Raw        string
	ByteLength int
}

// Extractor walks a buffer for each configured encoding, collecting runs of
// at least MinLength printable characters.
type Extractor struct {
	Encodings []Encoding
	MinLength int
}

// NewExtractor builds an extractor over the given encodings.
func NewExtractor(encodings []Encoding, minLength int) *Extractor {
	return &Extractor{Encodings: encodings, MinLength: minLength}
}

// NewAllEncodingsExtractor builds an extractor that tries every supported
// encoding.
func NewAllEncodingsExtractor(minLength int) *Extractor {
	return NewExtractor(All(), minLength)
}

// Extract runs every configured encoding over buffer and returns the
// merged, deduplicated, deterministically ordered candidate set.
func (e *Extractor) Extract(buffer []byte) []Candidate {
	var all []Candidate
	for _, enc := range e.Encodings {
		all = append(all, e.extractWith(buffer, enc)...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Offset != all[j].Offset {
			return all[i].Offset < all[j].Offset
		}
		if all[i].Raw != all[j].Raw {
			return all[i].Raw < all[j].Raw
		}
		return priority(all[i].Encoding) < priority(all[j].Encoding)
	})

	return dedup(all)
}

func dedup(sorted []Candidate) []Candidate {
	out := sorted[:0:0]
	for i, c := range sorted {
		if i > 0 && c.Offset == sorted[i-1].Offset && c.Raw == sorted[i-1].Raw {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (e *Extractor) extractWith(buffer []byte, enc Encoding) []Candidate {
	switch enc {
	case ASCII:
		return e.extractASCII(buffer)
	case UTF8:
		return e.extractUTF8(buffer)
	case UTF16LE:
		return e.extractUTF16(buffer, binary.LittleEndian, UTF16LE)
	case UTF16BE:
		return e.extractUTF16(buffer, binary.BigEndian, UTF16BE)
	case Latin1:
		return e.extractSingleByte(buffer, charmap.ISO8859_1, Latin1)
	case Latin9:
		return e.extractSingleByte(buffer, charmap.ISO8859_15, Latin9)
	default:
		return nil
	}
}

// isPrintable reports whether r belongs in an extracted run: tab or
// printable ASCII/Unicode, excluding control characters and the Unicode
// replacement character a bad decode produces.
func isPrintable(r rune) bool {
	if r == '\t' {
		return true
	}
	if r == '�' {
		return false
	}
	if r < 0x20 || unicode.IsControl(r) {
		return false
	}
	return true
}

// runCollector accumulates a pending run of printable runes and flushes it
// into candidates once it ends, shared by every encoding's walk.
type runCollector struct {
	minLength  int
	encoding   Encoding
	runes      []rune
	startByte  int64
	out        []Candidate
}

func newRunCollector(minLength int, enc Encoding) *runCollector {
	return &runCollector{minLength: minLength, encoding: enc}
}

func (c *runCollector) push(r rune, byteOffset int64) {
	if len(c.runes) == 0 {
		c.startByte = byteOffset
	}
	c.runes = append(c.runes, r)
}

func (c *runCollector) flush(endByte int64) {
	if len(c.runes) >= c.minLength {
		c.out = append(c.out, Candidate{
			Offset:     c.startByte,
			Encoding:   c.encoding,
			Raw:        string(c.runes),
			ByteLength: int(endByte - c.startByte),
		})
	}
	c.runes = c.runes[:0]
}

func (e *Extractor) extractASCII(buffer []byte) []Candidate {
	c := newRunCollector(e.MinLength, ASCII)
	for i, b := range buffer {
		if (b >= 0x20 && b <= 0x7E) || b == '\t' {
			c.push(rune(b), int64(i))
		} else {
			c.flush(int64(i))
		}
	}
	c.flush(int64(len(buffer)))
	return c.out
}

func (e *Extractor) extractUTF8(buffer []byte) []Candidate {
	c := newRunCollector(e.MinLength, UTF8)
	i := 0
	for i < len(buffer) {
		r, size := decodeUTF8Rune(buffer[i:])
		if size == 0 {
			c.flush(int64(i))
			i++
			continue
		}
		if isPrintable(r) {
			c.push(r, int64(i))
		} else {
			c.flush(int64(i))
		}
		i += size
	}
	c.flush(int64(len(buffer)))
	return c.out
}

// decodeUTF8Rune decodes one UTF-8 rune from b, returning size 0 on an
// invalid leading byte so the caller can skip it and resynchronize.
func decodeUTF8Rune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	b0 := b[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0&0xE0 == 0xC0 && len(b) >= 2:
		return rune(b0&0x1F)<<6 | rune(b[1]&0x3F), 2
	case b0&0xF0 == 0xE0 && len(b) >= 3:
		return rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	case b0&0xF8 == 0xF0 && len(b) >= 4:
		return rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	default:
		return 0, 0
	}
}

func (e *Extractor) extractUTF16(buffer []byte, order binary.ByteOrder, enc Encoding) []Candidate {
	c := newRunCollector(e.MinLength, enc)
	i := 0
	for i+1 < len(buffer) {
		unit := order.Uint16(buffer[i:])
		var r rune
		size := 2
		if unit >= 0xD800 && unit <= 0xDBFF && i+3 < len(buffer) {
			low := order.Uint16(buffer[i+2:])
			if low >= 0xDC00 && low <= 0xDFFF {
				r = ((rune(unit) - 0xD800) << 10) | (rune(low) - 0xDC00) + 0x10000
				size = 4
			} else {
				r = '�'
			}
		} else if unit >= 0xD800 && unit <= 0xDFFF {
			r = '�'
		} else {
			r = rune(unit)
		}

		if isPrintable(r) {
			c.push(r, int64(i))
		} else {
			c.flush(int64(i))
		}
		i += size
	}
	c.flush(int64(len(buffer)))
	return c.out
}

// extractSingleByte maps each raw byte to its Unicode rune through the given
// single-byte charmap and collects printable runs.
func (e *Extractor) extractSingleByte(buffer []byte, cm *charmap.Charmap, enc Encoding) []Candidate {
	c := newRunCollector(e.MinLength, enc)
	for i, b := range buffer {
		r := cm.DecodeByte(b)
		if isPrintable(r) {
			c.push(r, int64(i))
		} else {
			c.flush(int64(i))
		}
	}
	c.flush(int64(len(buffer)))
	return c.out
}
