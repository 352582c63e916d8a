package chartparse

import (
	"fmt"
	"math"

	"github.com/cnf/structhash"
)

// --- Phrases ---------------------------------------------------------------

// Phrase is the unit of work for a chart. Phrases are either input units, added
// by clients, or derived phrases, created by merging two adjacent phrases.
//
// The chart parser dispatches on the tag of a phrase and never inspects anything
// else, apart from an optional rank (see Ranked). Phrases should be treated as
// immutable values: a derived phrase may share its constituents with other
// derivations.
type Phrase interface {
	Tag() string
}

// Ranked is implemented by phrases which carry a rank, i.e. a non-negative cost.
// Phrases not implementing Ranked have rank 0.
//
// By convention, a rank counts the grammar violations within a derivation, but
// clients are free to use any cost model. Ranks must not be negative or NaN; this
// is not checked.
type Ranked interface {
	Phrase
	Rank() float64
}

// Infinity is the rank bound to use for unbounded parsing.
var Infinity = math.Inf(1)

// RankOf returns the rank of a phrase, or 0 if p does not carry one.
func RankOf(p Phrase) float64 {
	if r, ok := p.(Ranked); ok {
		return r.Rank()
	}
	return 0
}

// Unit is an unsophisticated phrase type, consisting of a tag and a cost only.
// It is useful for tag-only grammars and for testing.
type Unit struct {
	Label string
	Cost  float64
}

// Tag is part of interface Phrase.
func (u Unit) Tag() string {
	return u.Label
}

// Rank is part of interface Ranked.
func (u Unit) Rank() float64 {
	return u.Cost
}

func (u Unit) String() string {
	if u.Cost == 0 {
		return u.Label
	}
	return fmt.Sprintf("%s/%g", u.Label, u.Cost)
}

var _ Ranked = Unit{}

// Fingerprint returns a hash of the structure of a phrase. Two phrases with equal
// fingerprints are structurally identical, which usually means that a grammar
// licensed the same derivation twice. The chart does not de-duplicate results,
// clients may use fingerprints to do so.
//
// Fingerprint considers exported fields only. It returns the empty string for
// nil and for phrases which cannot be hashed.
func Fingerprint(p Phrase) string {
	if p == nil {
		return ""
	}
	h, err := structhash.Hash(p, 1)
	if err != nil {
		return ""
	}
	return p.Tag() + ":" + h
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. Every phrase on
// a chart covers a span of input units. A span denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Adjacent is true if s ends where other starts.
func (s Span) Adjacent(other Span) bool {
	return s[1] == other[0]
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
