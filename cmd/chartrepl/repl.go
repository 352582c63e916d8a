package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/chart"
	"github.com/npillmayer/chartparse/grammar"
	"github.com/npillmayer/chartparse/grammars/babyenglish"
	"github.com/npillmayer/chartparse/lexicon"
	"github.com/npillmayer/chartparse/scanner/lexmach"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	maxRank  float64
	lex      *lexicon.Lexicon
	lexer    *lexmach.LMAdapter
	goTokens bool // tokenize with the Go tokenizer instead of lexer
	rules    *grammar.Ruleset
	chart    *chart.Chart
	sentence []string
	repl     *readline.Instance
}

// NewIntp creates an interpreter for the baby-english grammar. If lex is nil,
// the built-in lexicon is used.
func NewIntp(lex *lexicon.Lexicon, maxRank float64) (*Intp, error) {
	if lex == nil {
		lex = babyenglish.Lexicon()
	}
	lexer, err := babyenglish.Lexer()
	if err != nil {
		return nil, err
	}
	rules := babyenglish.Ruleset()
	rules.Dump() // only visible in debug mode
	return &Intp{
		maxRank: maxRank,
		lex:     lex,
		lexer:   lexer,
		rules:   rules,
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// UseTokenizer selects the tokenizer for sentences: "words" (lexmachine, the
// default) or "go" (Go tokens, comments and punctuation skipped).
func (intp *Intp) UseTokenizer(name string) error {
	switch strings.ToLower(name) {
	case "", "words":
		intp.goTokens = false
	case "go":
		intp.goTokens = true
	default:
		return fmt.Errorf("unknown tokenizer %q", name)
	}
	return nil
}

// Eval evaluates a line of input, either a command or a sentence.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.chart, intp.sentence = nil, nil
		if err := intp.feed(line); err != nil {
			return false, err
		}
		return false, intp.show(intp.parse())
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":rank":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :rank N|inf")
		}
		r, err := parseRank(args[1])
		if err != nil {
			return false, err
		}
		intp.maxRank = r
		pterm.Info.Printf("rank bound is %s\n", rankString(r))
	case ":more":
		if intp.chart == nil {
			return false, fmt.Errorf("no sentence to parse")
		}
		return false, intp.show(intp.parse())
	case ":add":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: :add word…")
		}
		if intp.chart == nil {
			return false, fmt.Errorf("no sentence to extend")
		}
		if err := intp.feed(strings.Join(args[1:], " ")); err != nil {
			return false, err
		}
		return false, intp.show(intp.parse())
	case ":rules":
		for _, pair := range intp.rules.Pairs() {
			pterm.Info.Printf("%s %s\n", pair[0], pair[1])
		}
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}

// feed adds the words of some input to the current chart, creating a new one if
// necessary. If the input contains an unknown word, the chart is incomplete and
// will be discarded, together with the current sentence.
func (intp *Intp) feed(input string) error {
	if intp.chart == nil {
		intp.chart = chart.New(intp.rules)
	}
	mk := func(tag, word string) chartparse.Phrase {
		intp.sentence = append(intp.sentence, word)
		return babyenglish.MakeWord(tag, word)
	}
	var err error
	if intp.goTokens {
		_, err = intp.lex.FeedText(intp.chart, "input", strings.NewReader(input), mk)
	} else {
		var sc *lexmach.LMScanner
		if sc, err = intp.lexer.Scanner(input); err == nil {
			_, err = intp.lex.Feed(intp.chart, sc, mk)
		}
	}
	if err != nil {
		intp.chart, intp.sentence = nil, nil
		return fmt.Errorf("%w; sentence discarded", err)
	}
	return nil
}

func (intp *Intp) parse() ([]chartparse.Phrase, error) {
	return intp.chart.TryParse(intp.maxRank)
}

func (intp *Intp) show(readings []chartparse.Phrase, err error) error {
	if err != nil {
		return err
	}
	tracer().Infof("\"%s\" has %d reading(s) with rank ≤ %s", strings.Join(intp.sentence, " "),
		len(readings), rankString(intp.maxRank))
	seen := make(map[string]int)
	for i, p := range readings {
		fp := chartparse.Fingerprint(p)
		if j, dup := seen[fp]; dup && fp != "" {
			pterm.Warning.Printf("reading %d duplicates reading %d\n", i+1, j+1)
		} else {
			seen[fp] = i
		}
		pterm.Info.Printf("%d: %s (rank %g)\n", i+1, babyenglish.Print(p), chartparse.RankOf(p))
		for _, e := range babyenglish.AllErrors(p) {
			pterm.Println("   " + e)
		}
		root := pterm.NewTreeFromLeveledList(leveledPhrase(p, pterm.LeveledList{}, 0))
		pterm.DefaultTree.WithRoot(root).Render()
	}
	return nil
}

// leveledPhrase flattens a phrase into a leveled list, suitable for pterm trees.
func leveledPhrase(p chartparse.Phrase, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := p.(type) {
	case *babyenglish.Complex:
		text := x.Class
		if x.Cost > 0 {
			text = fmt.Sprintf("%s *%g", x.Class, x.Cost)
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
		ll = leveledPhrase(x.Head, ll, level+1)
		ll = leveledPhrase(x.Mod, ll, level+1)
	case babyenglish.Word:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  x.Class + " " + x.Orth,
		})
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: p.Tag()})
	}
	return ll
}

// parseRank reads a rank bound: a non-negative number or "inf".
func parseRank(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "inf", "infinity", "∞":
		return chartparse.Infinity, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("illegal rank bound %q: %w", s, err)
	}
	if r < 0 || math.IsNaN(r) {
		return 0, fmt.Errorf("illegal rank bound %q: negative", s)
	}
	return r, nil
}

func rankString(r float64) string {
	if r == chartparse.Infinity {
		return "∞"
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}
