/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: alphabet.go
Description: Logical character alphabet for the trigram model. Maps printable ASCII
plus the BEGIN/END/TAB sentinels onto a dense index space; triples of these
indices are the keys under which trigram counts and probabilities are stored.
*/

package model

import "fmt"

// Sym is a logical character in the trigram alphabet: printable ASCII
// (0x20-0x7E) or one of the three sentinel symbols.
type Sym int

const (
	// symASCIIBase is where printable ASCII (space through '~') begins in
	// the dense index space.
	symASCIIBase = 0
	// symASCIICount is the number of printable ASCII code points covered.
	symASCIICount = 0x7E - 0x20 + 1 // 95

	// Begin is the sentinel framing the start of a string.
	Begin Sym = symASCIICount
	// End is the sentinel framing the end of a string.
	End Sym = symASCIICount + 1
	// Tab is the sentinel standing in for a literal tab character.
	Tab Sym = symASCIICount + 2
)

// AlphabetSize is the total number of distinct logical characters: 95
// printable ASCII code points plus the three sentinels.
const AlphabetSize = symASCIICount + 3

// BeginToken and friends are the textual tokens used in .sng model files.
const (
	BeginToken = "[^]"
	EndToken   = "[$]"
	SpaceToken = "[SP]"
	TabToken   = "[HT]"
)

// SymForRune maps a decoded rune to its logical-alphabet symbol. Returns
// false for any rune outside printable ASCII and the tab character — the
// caller is responsible for rejecting such input before scoring.
func SymForRune(r rune) (Sym, bool) {
	switch {
	case r == '\t':
		return Tab, true
	case r >= 0x20 && r <= 0x7E:
		return Sym(symASCIIBase + int(r) - 0x20), true
	default:
		return 0, false
	}
}

// RuneForSym is the inverse of SymForRune for printable symbols; sentinels
// have no rune representation and return false.
func RuneForSym(s Sym) (rune, bool) {
	if s >= 0 && s < Begin {
		return rune(int(s) + 0x20), true
	}
	return 0, false
}

// String renders a symbol using the same token spellings a .sng file uses,
// for diagnostics and error messages.
func (s Sym) String() string {
	switch s {
	case Begin:
		return BeginToken
	case End:
		return EndToken
	case Tab:
		return TabToken
	}
	if r, ok := RuneForSym(s); ok {
		if r == ' ' {
			return SpaceToken
		}
		return string(r)
	}
	return fmt.Sprintf("<sym:%d>", int(s))
}

// Trigram is an ordered triple of logical characters, used as a map key.
type Trigram struct {
	A, B, C Sym
}
