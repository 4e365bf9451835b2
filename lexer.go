package chevrotain

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

// errUnknownMode wraps a Tokenize call naming a mode absent from the
// Lexer's definition.
var errUnknownMode = errors.New("chevrotain: unknown mode")

// Lexer is a compiled, immutable token-dispatch table for one or more
// lexing modes. A *Lexer is safe to share across goroutines: Tokenize
// allocates all of its mutable scan state (offset, mode stack, output
// accumulators) locally to the call, and the compiled mode tables are never
// written to after New/NewMulti returns.
type Lexer[C comparable] struct {
	modes       map[string]*compiledMode[C]
	defaultMode string
	groupNames  []string
	defErrors   DefinitionErrors
	deferErrors bool
	logger      *zap.Logger
}

// Option configures a Lexer at construction time.
type Option[C comparable] func(*lexerConfig[C])

type lexerConfig[C comparable] struct {
	deferDefinitionErrors bool
	logger                *zap.Logger
}

// DeferDefinitionErrors makes New/NewMulti return a usable *Lexer even when
// the catalog fails validation; the errors are exposed via DefinitionErrors
// and any subsequent Tokenize call fails with *ErrDefinitionErrors instead.
func DeferDefinitionErrors[C comparable]() Option[C] {
	return func(c *lexerConfig[C]) { c.deferDefinitionErrors = true }
}

// WithLogger attaches a zap logger that receives a Debug-level trace of
// every matched token (mode, class, image, skipped) and every resync span
// during Tokenize, plus a Warn for each ignored zero-length match. Mode
// pushes/pops and longer-alt overrides are not logged as separate events. A
// nil logger (the default) disables tracing entirely.
func WithLogger[C comparable](logger *zap.Logger) Option[C] {
	return func(c *lexerConfig[C]) { c.logger = logger }
}

// New builds a Lexer from a flat descriptor list, implicitly named
// DefaultMode.
func New[C comparable](descriptors []Descriptor[C], opts ...Option[C]) (*Lexer[C], error) {
	return NewMulti(map[string][]Descriptor[C]{DefaultMode: descriptors}, opts...)
}

// NewMulti builds a Lexer from a mapping of mode name to descriptor list.
// Construction runs the Pattern Validator over every mode and, if the
// catalog is clean, the Catalog Analyzer; both cache their results on the
// returned Lexer. If validation fails and DeferDefinitionErrors was not
// passed, New/NewMulti returns the accumulated DefinitionErrors as the
// error.
func NewMulti[C comparable](defs map[string][]Descriptor[C], opts ...Option[C]) (*Lexer[C], error) {
	if len(defs) == 0 {
		return nil, &DefinitionError{Kind: MissingPattern, Message: "no modes defined"}
	}

	cfg := &lexerConfig[C]{}
	for _, opt := range opts {
		opt(cfg)
	}

	// When the catalog doesn't use DefaultMode as one of its mode names,
	// fall back to whichever mode happens to come out of the map first.
	// This is only a fallback for Tokenize's initialMode == "" case; a
	// caller with more than one mode should pass initialMode explicitly.
	defaultMode := DefaultMode
	if _, ok := defs[DefaultMode]; !ok {
		for name := range defs {
			defaultMode = name

			break
		}
	}

	modes, groupNames, errs := validateAndCompile(defs)

	l := &Lexer[C]{
		modes:       modes,
		defaultMode: defaultMode,
		groupNames:  groupNames,
		defErrors:   errs,
		deferErrors: cfg.deferDefinitionErrors,
		logger:      cfg.logger,
	}

	if len(errs) > 0 && !cfg.deferDefinitionErrors {
		return nil, errs
	}

	return l, nil
}

// DefinitionErrors returns the definition errors found at construction time,
// if any. Non-empty only when the Lexer was built with DeferDefinitionErrors
// and the catalog failed validation.
func (l *Lexer[C]) DefinitionErrors() DefinitionErrors { return l.defErrors }

// TraceWith returns a shallow copy of l with tracing attached to logger,
// leaving the receiver itself unmodified. It's the builder-style
// counterpart to WithLogger, for a caller that only gets a *Lexer after
// construction (a CLI resolving --verbose after NewMulti, say) and has no
// opportunity to pass an Option up front.
func (l *Lexer[C]) TraceWith(logger *zap.Logger) *Lexer[C] {
	traced := *l
	traced.logger = logger

	return &traced
}

// scanState holds the mutable, per-call state of a single Tokenize
// invocation.
type scanState[C comparable] struct {
	input       string
	offset      int
	line        int
	column      int
	modeStack   []string
	current     *compiledMode[C]
	tokens      []Token[C]
	groups      map[string][]Token[C]
	errors      []LexError
	logger      *zap.Logger
}

// Tokenize scans input in its entirety, starting in initialMode (or the
// Lexer's default mode, if initialMode is empty). It always returns a
// well-formed Result: lexing errors are recorded in Result.Errors and never
// abort the scan.
func (l *Lexer[C]) Tokenize(input string, initialMode string) (*Result[C], error) {
	if len(l.defErrors) > 0 {
		return nil, &ErrDefinitionErrors{Errors: l.defErrors}
	}

	mode := initialMode
	if mode == "" {
		mode = l.defaultMode
	}

	cm, ok := l.modes[mode]
	if !ok {
		return nil, fmt.Errorf("%w: mode %q is not defined", errUnknownMode, mode)
	}

	groups := make(map[string][]Token[C], len(l.groupNames))
	for _, name := range l.groupNames {
		groups[name] = []Token[C]{}
	}

	st := &scanState[C]{
		input:     input,
		line:      1,
		column:    1,
		modeStack: []string{mode},
		current:   cm,
		groups:    groups,
		logger:    l.logger,
	}

	for st.offset < len(input) {
		l.step(st)
	}

	return &Result[C]{Tokens: st.tokens, Groups: st.groups, Errors: st.errors}, nil
}

// step performs one iteration of the main loop (spec.md §4.3): find the
// first matching pattern in the current mode, apply the longer-alt
// override, dispatch the token, update position and mode stack; or, on no
// match, resync by skipping one character at a time.
func (l *Lexer[C]) step(st *scanState[C]) {
	idx, lexeme, ok := firstMatch(st.current, st.input, st.offset)
	if !ok {
		l.recover(st)

		return
	}

	if alt := st.current.longerAltIdx[idx]; alt >= 0 {
		if altLexeme, matched, _ := st.current.patterns[alt].matchAt(st.input, st.offset); matched && len(altLexeme) > len(lexeme) {
			idx, lexeme = alt, altLexeme
		}
	}

	l.emit(st, idx, lexeme)
}

// firstMatch scans pattern indices in declaration order and returns the
// first one that matches at offset, without regard to longer-alt.
func firstMatch[C comparable](cm *compiledMode[C], input string, offset int) (int, string, bool) {
	for i, p := range cm.patterns {
		if lexeme, matched, err := p.matchAt(input, offset); err == nil && matched {
			return i, lexeme, true
		}
	}

	return 0, "", false
}

// anyMatch reports whether any pattern in cm matches at offset, used during
// error recovery to decide when to stop skipping.
func anyMatch[C comparable](cm *compiledMode[C], input string, offset int) bool {
	_, _, ok := firstMatch(cm, input, offset)

	return ok
}

func (l *Lexer[C]) emit(st *scanState[C], idx int, lexeme string) {
	runeLen := utf8.RuneCountInString(lexeme)
	if runeLen == 0 {
		// The validator only probes each pattern against "", so a pattern
		// that matches empty only in context (a lookahead, say) can still
		// produce a zero-length match here. Treat it as "no match" rather
		// than spin forever.
		if l.logger != nil {
			l.logger.Warn("zero-length match ignored", zap.Int("offset", st.offset))
		}

		l.recover(st)

		return
	}

	group := st.current.group[idx]

	startOffset, startLine, startColumn := st.offset, st.line, st.column

	adv := advancePosition(lexeme, runeLen, st.line, st.column, st.current.canLineTerminate[idx])

	st.offset += len(lexeme)
	st.line = adv.line
	st.column = adv.column

	if !group.skip {
		tok := Token[C]{
			Image:       lexeme,
			StartOffset: startOffset,
			StartLine:   startLine,
			StartColumn: startColumn,
			Class:       st.current.ownerClass[idx],
		}

		if !adv.endUnset {
			tok.EndLine = adv.endLine
			tok.EndColumn = adv.endColumn
		}

		if group.name == "" {
			st.tokens = append(st.tokens, tok)
		} else {
			st.groups[group.name] = append(st.groups[group.name], tok)
		}
	}

	if l.logger != nil {
		l.logger.Debug("matched token",
			zap.String("mode", st.current.name),
			zap.String("class", fmt.Sprintf("%v", st.current.ownerClass[idx])),
			zap.String("image", lexeme),
			zap.Bool("skipped", group.skip))
	}

	l.transitionMode(st, idx)
}

// transitionMode applies this token's pop/push directives, in that order
// (spec.md §4.3: "this allows a single token to pop-then-push, effecting a
// mode replacement"). Popping the last remaining mode is a recoverable
// lexing error; the stack is left unchanged and scanning continues in the
// same mode.
func (l *Lexer[C]) transitionMode(st *scanState[C], idx int) {
	if st.current.popMode[idx] {
		if len(st.modeStack) <= 1 {
			st.errors = append(st.errors, LexError{
				Line: st.line, Column: st.column, Length: 0,
				Message: "cannot pop mode: only one mode remains on the stack",
			})
		} else {
			st.modeStack = st.modeStack[:len(st.modeStack)-1]
		}
	}

	if push := st.current.pushMode[idx]; push != "" {
		st.modeStack = append(st.modeStack, push)
	}

	l.currentMode(st)
}

// recover implements step 3 of the main loop: skip one character at a
// time, re-testing every pattern in the current mode after each skip, until
// a match is found or the input is exhausted. A single LexError is emitted
// for the whole skipped span.
func (l *Lexer[C]) recover(st *scanState[C]) {
	errStart := st.offset
	errLine, errColumn := st.line, st.column

	for st.offset < len(st.input) {
		r, size := utf8.DecodeRuneInString(st.input[st.offset:])

		if r == '\n' || (r == '\r' && !followedByLF(st.input, st.offset, size)) {
			st.line++
			st.column = 1
		} else {
			st.column++
		}

		st.offset += size

		if st.offset >= len(st.input) {
			break
		}

		if anyMatch(l.currentMode(st), st.input, st.offset) {
			break
		}
	}

	st.errors = append(st.errors, LexError{
		Line: errLine, Column: errColumn, Length: st.offset - errStart,
		Message: "unexpected character: " + st.input[errStart:min(st.offset, errStart+1)],
	})

	if l.logger != nil {
		l.logger.Debug("resynced after lex error",
			zap.Int("offset", errStart), zap.Int("length", st.offset-errStart))
	}
}

func followedByLF(input string, offset, size int) bool {
	next := offset + size
	if next >= len(input) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(input[next:])

	return r == '\n'
}

// currentMode re-resolves the compiled mode table for the stack's current
// top. The Lexer's modes map is immutable, so this is just a lookup; it
// exists so st.current always mirrors st.modeStack after a push/pop.
func (l *Lexer[C]) currentMode(st *scanState[C]) *compiledMode[C] {
	top := st.modeStack[len(st.modeStack)-1]
	st.current = l.modes[top]

	return st.current
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
