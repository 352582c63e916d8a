package lexicon

import (
	"strings"
	"testing"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/chart"
	"github.com/npillmayer/chartparse/grammar"
	"github.com/npillmayer/chartparse/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const doc = `
name: tiny
words:
  hello: [hello, hi]
  world: [world]
`

func unitMaker(tag, word string) chartparse.Phrase {
	return chartparse.Unit{Label: tag}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.lexicon")
	defer teardown()
	//
	lex, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if lex.Name != "tiny" {
		t.Errorf("expected lexicon to be named 'tiny', is %q", lex.Name)
	}
	if tag, ok := lex.Tag("hi"); !ok || tag != "hello" {
		t.Errorf("expected 'hi' to be tagged hello, is %q", tag)
	}
	if tag, ok := lex.Tag("World"); !ok || tag != "world" {
		t.Errorf("expected lookup to fall back to lower case, got %q", tag)
	}
	if _, ok := lex.Tag("moon"); ok {
		t.Errorf("expected 'moon' to be unknown")
	}
	if w := strings.Join(lex.Words(), " "); w != "hello hi world" {
		t.Errorf("unexpected word list %q", w)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.lexicon")
	defer teardown()
	//
	for _, input := range []string{
		"name: empty\n",
		"name: bad\nwords: [1, 2]\n",
		"name: unknown\nwords:\n  N: [dog]\nverbs: []\n",
		"name: ambiguous\nwords:\n  N: [walk]\n  V: [walk]\n",
	} {
		if _, err := Load(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for lexicon %q", input)
		} else {
			t.Logf("error = %v", err)
		}
	}
}

func TestFeed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.lexicon")
	defer teardown()
	//
	lex, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	rules := grammar.NewRuleset(grammar.Rule{
		LHS: "hello",
		RHS: "world",
		Merge: func(lhs, rhs chartparse.Phrase) []chartparse.Phrase {
			return []chartparse.Phrase{chartparse.Unit{Label: "greeting"}}
		},
	})
	c := chart.New(rules)
	n, err := lex.Feed(c, scanner.GoTokenizer("test", strings.NewReader("Hi world")), unitMaker)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 phrases to be fed, got %d / %v", n, err)
	}
	r := c.Parse(chartparse.Infinity)
	if len(r) != 1 || r[0].Tag() != "greeting" {
		t.Errorf("expected greeting, got %v", r)
	}
}

func TestFeedUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.lexicon")
	defer teardown()
	//
	lex, _ := New("tiny", map[string][]string{"hello": {"hello"}})
	c := chart.New(grammar.NewRuleset())
	n, err := lex.Feed(c, scanner.GoTokenizer("test", strings.NewReader("hello moon hello")), unitMaker)
	if err == nil {
		t.Fatalf("expected unknown word to produce an error")
	}
	if !strings.Contains(err.Error(), `"moon"`) || !strings.Contains(err.Error(), "(6…10)") {
		t.Errorf("expected error to name word and span, is %q", err.Error())
	}
	if n != 1 || c.Len() != 1 {
		t.Errorf("expected 1 phrase on the chart before the unknown word, have %d", c.Len())
	}
}

func TestFeedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.lexicon")
	defer teardown()
	//
	lex, _ := New("tiny", map[string][]string{"hello": {"hello", "hi"}, "world": {"world"}})
	c := chart.New(grammar.NewRuleset())
	n, err := lex.FeedText(c, "greeting", strings.NewReader("Hi, world! // hello"), unitMaker)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 words to be fed, got %d / %v", n, err)
	}
	if c.Len() != 2 {
		t.Errorf("expected punctuation and comments to be skipped, chart has %d units", c.Len())
	}
}
