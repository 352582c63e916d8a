/*
Package scanner defines an interface for scanners producing the input of a chart.

Charts consume phrases, not text. Scanners split an input text into tokens, which
are then mapped to phrases, usually by a lexicon (see package lexicon).

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// TokType is a category type for a Token. We do not define any constants apart
// from the ones above, as it is up to applications to define them.
type TokType int

// Token represents an input token. Tokens are produced by a scanner.
//
// An example would be a token for a word:
//
//    TokType = Ident       // identifier for this kind of tokens (application specific)
//    Lexeme  = "house"     // lexeme as it appeared in the input stream
//    Span    = 67…72       // occurred from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() chartparse.Span
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	return DefaultToken{
		kind:   TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   chartparse.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   TokType
	lexeme string
	span   chartparse.Span
}

// MakeDefaultToken creates a token. Mostly used by scanner implementations.
func MakeDefaultToken(typ TokType, lexeme string, span chartparse.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() chartparse.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q|%d%v", t.lexeme, t.kind, t.span)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// Tokens drains a tokenizer, returning all tokens up to (and excluding) EOF.
func Tokens(t Tokenizer) []Token {
	var toks []Token
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}

// SkipPunctuation wraps a tokenizer, dropping all single-character tokens,
// i.e. tokens which are neither EOF nor one of the token classes above.
// Clients feeding words into a chart use it to ignore commas and full stops.
func SkipPunctuation(t Tokenizer) Tokenizer {
	return punctuationFilter{t}
}

type punctuationFilter struct {
	Tokenizer
}

func (f punctuationFilter) NextToken() Token {
	tok := f.Tokenizer.NextToken()
	for tok.TokType() >= 0 {
		tracer().Debugf("skipping %v", tok)
		tok = f.Tokenizer.NextToken()
	}
	return tok
}
