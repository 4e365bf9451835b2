// Package participlex adapts a *chevrotain.Lexer[string] into participle/v2's
// lexer.Definition, so a catalog built for the engine can drive a participle
// parser directly instead of participle's own regexp-based stateful lexer.
package participlex

import (
	"io"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aitoroses/chevrotain"
)

// Definition wraps a compiled chevrotain lexer as a participle lexer.Definition.
// Tokenize runs eagerly on Lex/LexBytes/LexString (the engine scans a
// complete input string, not a stream), and the resulting lexer.Lexer just
// replays the already-produced token slice.
type Definition struct {
	lx     *chevrotain.Lexer[string]
	mode   string
	typeOf map[string]lexer.TokenType
	symbol map[string]lexer.TokenType

	mu         sync.Mutex
	lastErrors []chevrotain.LexError
}

// New builds a Definition over lx. classOrder lists every descriptor class
// name the catalog can produce; participle requires a TokenType (a negative
// rune, by convention) per symbol, so classes are assigned consecutive
// negative values in the order given. initialMode selects the mode
// Tokenize starts in ("" uses the lexer's own default).
func New(lx *chevrotain.Lexer[string], classOrder []string, initialMode string) *Definition {
	typeOf := make(map[string]lexer.TokenType, len(classOrder))
	symbol := map[string]lexer.TokenType{"EOF": lexer.EOF}

	for i, class := range classOrder {
		tt := lexer.TokenType(-(rune(i) + 2)) //nolint:mnd // participle reserves -1 for EOF
		typeOf[class] = tt
		symbol[class] = tt
	}

	return &Definition{lx: lx, mode: initialMode, typeOf: typeOf, symbol: symbol}
}

// Symbols implements lexer.Definition.
func (d *Definition) Symbols() map[string]lexer.TokenType { return d.symbol }

// Lex implements lexer.Definition.
//
//nolint:ireturn // required by participle's lexer.Definition interface.
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return d.LexString(filename, string(data))
}

// LexString implements lexer.StringDefinition for efficiency, avoiding the
// io.Reader round-trip when the caller already has the input in memory.
//
//nolint:ireturn // required by participle's lexer.StringDefinition interface.
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	res, err := d.lx.Tokenize(input, d.mode)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.lastErrors = res.Errors
	d.mu.Unlock()

	return &tokenStream{filename: filename, tokens: res.Tokens, typeOf: d.typeOf}, nil
}

// LexBytes implements lexer.BytesDefinition, avoiding the io.Reader
// round-trip when the caller already holds the input as a byte slice; the
// bytes are converted to a string once and handed to LexString.
//
//nolint:ireturn // required by participle's lexer.BytesDefinition interface.
func (d *Definition) LexBytes(filename string, data []byte) (lexer.Lexer, error) {
	return d.LexString(filename, string(data))
}

// Errors returns the lexing errors recorded by the most recent Lex/LexString
// call. Unlike participle's own lexer, chevrotain never fails a scan outright
// on bad input - these are diagnostics a caller can surface after parsing,
// not a reason Lex itself returned an error.
func (d *Definition) Errors() []chevrotain.LexError {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastErrors
}

// tokenStream replays an already-scanned token slice as a participle
// lexer.Lexer.
type tokenStream struct {
	filename string
	tokens   []chevrotain.Token[string]
	typeOf   map[string]lexer.TokenType
	pos      int
}

// Next implements lexer.Lexer.
func (s *tokenStream) Next() (lexer.Token, error) {
	if s.pos >= len(s.tokens) {
		return lexer.EOFToken(s.eofPosition()), nil
	}

	t := s.tokens[s.pos]
	s.pos++

	return lexer.Token{
		Type:  s.typeOf[t.Class],
		Value: t.Image,
		Pos: lexer.Position{
			Filename: s.filename,
			Offset:   t.StartOffset,
			Line:     t.StartLine,
			Column:   t.StartColumn,
		},
	}, nil
}

func (s *tokenStream) eofPosition() lexer.Position {
	if len(s.tokens) == 0 {
		return lexer.Position{Filename: s.filename, Line: 1, Column: 1}
	}

	last := s.tokens[len(s.tokens)-1]

	return lexer.Position{
		Filename: s.filename,
		Offset:   last.StartOffset + len(last.Image),
		Line:     last.StartLine,
		Column:   last.StartColumn + len([]rune(last.Image)),
	}
}
