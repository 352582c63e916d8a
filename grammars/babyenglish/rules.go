package babyenglish

import (
	"strings"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/chart"
	"github.com/npillmayer/chartparse/grammar"
	"github.com/npillmayer/chartparse/lexicon"
	"github.com/npillmayer/chartparse/scanner"
	"github.com/npillmayer/chartparse/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Error messages recorded with derived phrases.
const (
	ErrAlreadyDetermined = "Noun already has determiner"
	ErrIncomplete        = "Noun phrase is not complete"
)

func errorIf(condition bool, message string) []string {
	if condition {
		return []string{message}
	}
	return nil
}

// Rules returns the rules of the grammar.
func Rules() []grammar.Rule {
	return []grammar.Rule{
		{LHS: Determiner, RHS: Noun, Merge: determine},
		{LHS: Preposition, RHS: Noun, Merge: mark},
		{LHS: Noun, RHS: Preposition, Merge: modify},
	}
}

// Ruleset returns a ruleset for the grammar.
func Ruleset() *grammar.Ruleset {
	rs, err := grammar.NewRulesetBuilder("baby-english").Add(Rules()...).Ruleset()
	if err != nil { // cannot happen
		panic(err)
	}
	return rs
}

// D N ⇒ N
func determine(det, noun chartparse.Phrase) []chartparse.Phrase {
	n := derive(Noun, noun, det, errorIf(determined(noun), ErrAlreadyDetermined))
	n.Determined = true
	return []chartparse.Phrase{n}
}

// P N ⇒ P, for bare prepositions only
func mark(prep, noun chartparse.Phrase) []chartparse.Phrase {
	if _, ok := prep.(Word); !ok {
		return nil
	}
	return []chartparse.Phrase{
		derive(Preposition, prep, noun, errorIf(!determined(noun), ErrIncomplete)),
	}
}

// N P ⇒ N, for marked nouns only
func modify(noun, marked chartparse.Phrase) []chartparse.Phrase {
	if _, ok := marked.(*Complex); !ok {
		return nil
	}
	n := derive(Noun, noun, marked, errorIf(!determined(noun), ErrIncomplete))
	n.Determined = determined(noun)
	return []chartparse.Phrase{n}
}

// --- Lexicon ---------------------------------------------------------------

const words = `
name: baby-english
words:
  D: [a, the]
  N: [car, dog, house, hill]
  P: [in, on]
`

// Lexicon returns the vocabulary of the grammar.
func Lexicon() *lexicon.Lexicon {
	lex, err := lexicon.Load(strings.NewReader(words))
	if err != nil { // cannot happen
		panic(err)
	}
	return lex
}

// Lexer returns a lexmachine-based scanner for sentences, splitting them into
// words at white space.
func Lexer() (*lexmach.LMAdapter, error) {
	setup := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z])+`), lexmach.MakeToken("WORD", scanner.Ident))
		lexer.Add([]byte(`( |\,|\.|\t|\n|\r)+`), lexmach.Skip)
	}
	return lexmach.NewLMAdapter(setup, nil, nil, nil)
}

// Parse parses a sentence, using lexicon lex (if nil, the default lexicon is used).
// It returns all readings with rank up to maxRank.
func Parse(sentence string, maxRank float64, lex *lexicon.Lexicon) ([]chartparse.Phrase, error) {
	c, err := NewChart(sentence, lex)
	if err != nil {
		return nil, err
	}
	return c.Parse(maxRank), nil
}

// NewChart creates a chart for the grammar and feeds a sentence into it, using
// lexicon lex (if nil, the default lexicon is used). Clients have to call Parse
// on the chart.
func NewChart(sentence string, lex *lexicon.Lexicon) (*chart.Chart, error) {
	if lex == nil {
		lex = Lexicon()
	}
	LM, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := LM.Scanner(sentence)
	if err != nil {
		return nil, err
	}
	c := chart.New(Ruleset())
	n, err := lex.Feed(c, sc, MakeWord)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("sentence %q has %d words", sentence, n)
	return c, nil
}
