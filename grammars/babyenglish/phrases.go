package babyenglish

import (
	"strings"

	"github.com/npillmayer/chartparse"
)

// Tags of the word classes.
const (
	Determiner  = "D"
	Noun        = "N"
	Preposition = "P"
)

// Word is an input token: a word of a given class.
type Word struct {
	Class string
	Orth  string
}

// Tag is part of interface chartparse.Phrase.
func (w Word) Tag() string {
	return w.Class
}

func (w Word) String() string {
	return w.Orth
}

// Complex is a phrase derived by merging a head with a modifier.
// Nouns with a prepositional modifier keep the tag of the noun, while a preposition
// with its noun ("marked noun") keeps the tag of the preposition.
type Complex struct {
	Class      string
	Head       chartparse.Phrase
	Mod        chartparse.Phrase
	Errors     []string
	Cost       float64
	Determined bool // for nouns only
}

// Tag is part of interface chartparse.Phrase.
func (c *Complex) Tag() string {
	return c.Class
}

// Rank is part of interface chartparse.Ranked.
func (c *Complex) Rank() float64 {
	return c.Cost
}

func (c *Complex) String() string {
	return Print(c)
}

var _ chartparse.Ranked = (*Complex)(nil)

func derive(class string, head, mod chartparse.Phrase, errors []string) *Complex {
	return &Complex{
		Class:  class,
		Head:   head,
		Mod:    mod,
		Errors: errors,
		Cost:   chartparse.RankOf(head) + chartparse.RankOf(mod) + float64(len(errors)),
	}
}

// determined is true for nouns carrying a determiner, either directly or through
// their head.
func determined(p chartparse.Phrase) bool {
	if c, ok := p.(*Complex); ok {
		return c.Determined
	}
	return false
}

// MakeWord creates a word phrase. It is a lexicon.Maker.
func MakeWord(tag, orth string) chartparse.Phrase {
	return Word{Class: tag, Orth: orth}
}

// Print returns a phrase in bracket notation: [head modifier]. Phrases with
// rank > 0 are prefixed by an asterisk.
func Print(p chartparse.Phrase) string {
	var b strings.Builder
	printTo(&b, p)
	return b.String()
}

func printTo(b *strings.Builder, p chartparse.Phrase) {
	switch x := p.(type) {
	case Word:
		b.WriteString(x.Orth)
	case *Complex:
		if x.Cost > 0 {
			b.WriteByte('*')
		}
		b.WriteByte('[')
		printTo(b, x.Head)
		b.WriteByte(' ')
		printTo(b, x.Mod)
		b.WriteByte(']')
	default:
		b.WriteString("[??]")
	}
}

// AllErrors collects the errors of a phrase and of all its constituents,
// innermost first.
func AllErrors(p chartparse.Phrase) []string {
	c, ok := p.(*Complex)
	if !ok {
		return nil
	}
	errs := append(AllErrors(c.Head), AllErrors(c.Mod)...)
	return append(errs, c.Errors...)
}
