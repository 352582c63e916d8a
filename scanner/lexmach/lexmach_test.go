package lexmach

import (
	"testing"

	"github.com/npillmayer/chartparse/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"a car",
	"a dog in a house",
	"Hello, World!",
	"a  dog\n\ton   a hill // with comment",
	"",
}

var tokenCounts = []int{2, 5, 4, 5, 0}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("a  house")
	if err != nil {
		t.Fatal(err)
	}
	toks := scanner.Tokens(sc)
	if len(toks) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(toks))
	}
	if sp := toks[1].Span(); sp.From() != 3 || sp.To() != 8 {
		t.Errorf("Expected 'house' to span (3…8), spans %v", sp)
	}
	if toks[1].TokType() != scanner.TokType(tokenIds["WORD"]) {
		t.Errorf("Expected 'house' to be a word, is %d", toks[1].TokType())
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("a # car")
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	sc.SetErrorHandler(func(e error) {
		t.Logf("scanner error: %v", e)
		errcnt++
	})
	if toks := scanner.Tokens(sc); len(toks) != 2 {
		t.Errorf("Expected illegal input to be skipped, got %d tokens", len(toks))
	}
	if errcnt == 0 {
		t.Errorf("Expected error handler to be called")
	}
}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|')*`), MakeToken("WORD", tokenIds["WORD"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{",", ".", "!", "?"}
	keywords = []string{}
	tokenIds = make(map[string]int)
	tokenIds["WORD"] = scanner.Ident
	for i, lit := range literals {
		tokenIds[lit] = i + 10
	}
}
