/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Parser for the .sng trigram model file format. Reads tab-separated
count lines plus a "Model Type:" comment header and produces a loaded
TrigramModel. Pure function of its input reader — no filesystem access lives
here, so the core stays free of file I/O per the library's external-collaborator
boundary.
*/

package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const modelTypePrefix = "Model Type: "

// ParseModel reads a .sng model from r and returns a fully loaded
// TrigramModel. The caller owns opening and closing the underlying file;
// this package never touches the filesystem directly.
func ParseModel(r io.Reader) (*TrigramModel, error) {
	counts := NewTrigramCounts()
	var modelType string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if idx := strings.Index(line, modelTypePrefix); idx >= 0 {
				modelType = strings.TrimSpace(line[idx+len(modelTypePrefix):])
			}
			continue
		}

		if err := parseDataLine(line, lineNo, counts); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if modelType == "" {
		return nil, &ParseError{Reason: "model file does not declare a Model Type"}
	}

	m := NewTrigramModel()
	m.Load(counts, ModelType(modelType))
	return m, nil
}

func parseDataLine(line string, lineNo int, counts *TrigramCounts) error {
	parts := strings.Split(line, "\t")
	if len(parts) != 4 {
		return &ParseError{Line: lineNo, Reason: "expected 4 tab-separated fields"}
	}

	count, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return &ParseError{Line: lineNo, Reason: "invalid count: " + parts[3]}
	}

	tok0, tok1, tok2 := parts[0], parts[1], parts[2]

	switch {
	case tok0 == BeginToken && tok2 != EndToken:
		b, err := symForToken(tok1, lineNo)
		if err != nil {
			return err
		}
		c, err := symForToken(tok2, lineNo)
		if err != nil {
			return err
		}
		counts.Add(Begin, b, c, uint32(count))

	case tok2 == EndToken:
		a, err := symForToken(tok0, lineNo)
		if err != nil {
			return err
		}
		b, err := symForToken(tok1, lineNo)
		if err != nil {
			return err
		}
		counts.Add(a, b, End, uint32(count))

	default:
		a, err := symForToken(tok0, lineNo)
		if err != nil {
			return err
		}
		b, err := symForToken(tok1, lineNo)
		if err != nil {
			return err
		}
		c, err := symForToken(tok2, lineNo)
		if err != nil {
			return err
		}
		counts.Add(a, b, c, uint32(count))
	}

	return nil
}

// symForToken converts one field of a data line to a logical symbol.
// Tokens are either a single literal character or one of the bracketed
// descriptions the .sng format reserves ([SP], [HT]); [^]/[$] are invalid
// in this position and rejected.
func symForToken(tok string, lineNo int) (Sym, error) {
	switch tok {
	case BeginToken, EndToken:
		return 0, &ParseError{Line: lineNo, Reason: "unexpected marker in character position: " + tok}
	case SpaceToken:
		return SymForRuneOrErr(' ', lineNo)
	case TabToken:
		return Tab, nil
	}

	runes := []rune(tok)
	if len(runes) != 1 {
		return 0, &ParseError{Line: lineNo, Reason: "unknown character token: " + tok}
	}
	return SymForRuneOrErr(runes[0], lineNo)
}

// SymForRuneOrErr wraps SymForRune with a ParseError for model-loading
// call sites that need a line number in the error message.
func SymForRuneOrErr(r rune, lineNo int) (Sym, error) {
	s, ok := SymForRune(r)
	if !ok {
		return 0, &ParseError{Line: lineNo, Reason: "character outside model alphabet"}
	}
	return s, nil
}
