/*
Package lexicon maps input tokens to unit phrases for a chart.

A lexicon assigns exactly one tag to every word it knows. Lexica are either
constructed in code or loaded from YAML documents of the form

    name: baby-english
    words:
      D: [a, the]
      N: [car, dog, house]
      P: [in, on]

Feed reads tokens from a scanner.Tokenizer, looks up their tags and adds one
phrase per token to a chart. Creating the phrase is left to a grammar-specific
Maker, as the lexicon knows nothing about phrase types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/chart"
	"github.com/npillmayer/chartparse/scanner"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'chartparse.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.lexicon")
}

// Lexicon is a table of words and their tags.
type Lexicon struct {
	Name string
	tags map[string]string // word → tag
}

// New creates a lexicon from a map of tags to words. It is an error for a word to
// be listed with more than one tag.
func New(name string, words map[string][]string) (*Lexicon, error) {
	lex := &Lexicon{Name: name, tags: make(map[string]string)}
	tags := make([]string, 0, len(words))
	for tag := range words {
		tags = append(tags, tag)
	}
	sort.Strings(tags) // deterministic error messages
	for _, tag := range tags {
		if tag == "" {
			return nil, fmt.Errorf("lexicon %q: empty tag", name)
		}
		for _, w := range words[tag] {
			if old, ok := lex.tags[w]; ok && old != tag {
				return nil, fmt.Errorf("lexicon %q: word %q is listed as %s and as %s", name, w, old, tag)
			}
			lex.tags[w] = tag
		}
	}
	tracer().Debugf("lexicon %q has %d words", name, len(lex.tags))
	return lex, nil
}

type document struct {
	Name  string              `yaml:"name"`
	Words map[string][]string `yaml:"words"`
}

// Load reads a lexicon from a YAML document.
func Load(r io.Reader) (*Lexicon, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot read lexicon: %w", err)
	}
	if len(doc.Words) == 0 {
		return nil, fmt.Errorf("lexicon %q contains no words", doc.Name)
	}
	return New(doc.Name, doc.Words)
}

// Tag returns the tag of a word. If the word is unknown, Tag tries its lower-case
// form.
func (lex *Lexicon) Tag(word string) (string, bool) {
	if tag, ok := lex.tags[word]; ok {
		return tag, true
	}
	tag, ok := lex.tags[strings.ToLower(word)]
	return tag, ok
}

// Words returns all words of a lexicon, sorted.
func (lex *Lexicon) Words() []string {
	words := make([]string, 0, len(lex.tags))
	for w := range lex.tags {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Maker creates a unit phrase for a word with a given tag.
type Maker func(tag, word string) chartparse.Phrase

// Feed reads tokens from a tokenizer until EOF and adds a phrase for each of them
// to a chart. It returns the number of phrases added. Feed stops at the first
// unknown word and returns an error; phrases for the words before it remain on
// the chart.
func (lex *Lexicon) Feed(c *chart.Chart, tok scanner.Tokenizer, mk Maker) (int, error) {
	cnt := 0
	for t := tok.NextToken(); t.TokType() != scanner.EOF; t = tok.NextToken() {
		tag, ok := lex.Tag(t.Lexeme())
		if !ok {
			return cnt, fmt.Errorf("unknown word %q at %v", t.Lexeme(), t.Span())
		}
		p := mk(tag, t.Lexeme())
		if p == nil {
			return cnt, fmt.Errorf("cannot make phrase for %q (%s)", t.Lexeme(), tag)
		}
		c.Add(p)
		cnt++
	}
	tracer().Debugf("fed %d phrases into chart", cnt)
	return cnt, nil
}

// FeedText tokenizes a text with the Go tokenizer and feeds its words into a
// chart, as Feed does. Comments and punctuation are skipped. sourceID names the
// text in error messages of the tokenizer.
func (lex *Lexicon) FeedText(c *chart.Chart, sourceID string, text io.Reader, mk Maker) (int, error) {
	var scanErr error
	tok := scanner.GoTokenizer(sourceID, text, scanner.SkipComments(true))
	tok.SetErrorHandler(func(err error) {
		if scanErr == nil {
			scanErr = err
		}
	})
	n, err := lex.Feed(c, scanner.SkipPunctuation(tok), mk)
	if err == nil && scanErr != nil {
		err = fmt.Errorf("cannot read %s: %w", sourceID, scanErr)
	}
	return n, err
}
