// Package chevrotain implements a fault-tolerant, table-driven lexical
// analyzer engine. It scans a complete in-memory input string and partitions
// it into a sequence of typed tokens according to a caller-supplied catalog
// of token descriptors, producing precise diagnostics on lexical errors
// without aborting the scan.
//
// The engine is generic over the descriptor's class identity (the C type
// parameter): callers typically use a small int or string enum to tag token
// kinds. The engine itself never interprets a class value beyond rendering
// it with fmt for error and log messages (longer-alt resolution goes by
// descriptor pointer, not by class) - it is deliberately agnostic to whatever category hierarchy a downstream parser
// wants to build on top of the returned descriptor identities.
package chevrotain

import "fmt"

// sentinel is the marker type behind Skipped and NotApplicable. It is
// unexported so that only the exported package-level values can ever
// compare equal to it.
type sentinel struct{ name string }

func (s sentinel) String() string { return s.name }

// Skipped is the marker value for a Descriptor's Group field: a match is
// consumed and discarded (no token is produced), e.g. whitespace or
// comments.
var Skipped = sentinel{"SKIPPED"}

// NotApplicable is the marker value for a Descriptor's Pattern field: the
// descriptor is a category marker only and is never matched directly. It is
// excluded from the compiled pattern arrays, though it may still be
// referenced as another descriptor's longer_alt target (where, having no
// pattern, the reference simply resolves to "no override").
var NotApplicable = sentinel{"NOT_APPLICABLE"}

// DefaultGroup is the canonical name of the primary token stream. A
// Descriptor with Group == nil or Group == DefaultGroup is routed there.
const DefaultGroup = "default"

// DefaultMode is the implicit mode name used by New when the caller supplies
// a flat descriptor list instead of a mode map.
const DefaultMode = "default_mode"

// Descriptor is a caller-supplied token descriptor: an opaque class identity
// plus the metadata the Catalog Analyzer needs to compile a dispatch table.
// All fields except Class and Pattern are optional.
type Descriptor[C comparable] struct {
	// Class is the descriptor's identity, returned on every Token matched
	// against this descriptor. Two descriptors are never compared for
	// equality by Class; the engine tracks descriptors by pointer identity
	// internally (so that repeated classes in a catalog are legal).
	Class C

	// Pattern is either a regular expression source string or the
	// NotApplicable sentinel. A nil Pattern is a definition error
	// (MISSING_PATTERN).
	Pattern any

	// Flags holds regex mode letters in the style of a JS regex literal's
	// flags ("i" for case-insensitive, "s" for dot-matches-newline). The
	// letters "g" and "m" are forbidden (UNSUPPORTED_FLAGS_FOUND): matches
	// must be anchored at the start of the remaining input, so a global or
	// multi-line flag has no coherent meaning here.
	Flags string

	// Group selects the output channel for a successful match: nil or
	// DefaultGroup routes to the primary token stream, the Skipped sentinel
	// discards the match, and any other string routes to a named bucket.
	// Any other type is a definition error (INVALID_GROUP_TYPE_FOUND).
	Group any

	// LongerAlt references another descriptor (typically later in the
	// same mode's list) to re-try after a successful match. If the
	// alternative matches a strictly longer lexeme, it wins.
	LongerAlt *Descriptor[C]

	// PushMode names a mode to push onto the mode stack after this token is
	// consumed. Must name a mode present in the lexer definition
	// (PUSH_MODE_DOES_NOT_EXIST).
	PushMode string

	// PopMode pops the current mode after this token is consumed. If this
	// and PushMode are both set, the pop happens before the push.
	PopMode bool

	// LineBreaks declares whether this pattern can match a line terminator.
	// If nil, the analyzer derives it by inspecting the pattern source.
	LineBreaks *bool
}

// groupDisposition returns the descriptor's Group interpreted as a disposition, and
// reports whether the value was one of the legal shapes (nil, a string, or
// Skipped).
func groupDisposition(g any) (disposition string, skip bool, ok bool) {
	switch v := g.(type) {
	case nil:
		return DefaultGroup, false, true
	case sentinel:
		if v == Skipped {
			return "", true, true
		}

		return "", false, false
	case string:
		if v == "" {
			return DefaultGroup, false, true
		}

		return v, false, true
	default:
		return "", false, false
	}
}

// Token is a single lexical element produced by Tokenize. EndLine and
// EndColumn are 0 when the match contains exactly one line terminator and
// that terminator is its last character (the terminator only moves the
// position of the following token) - callers should treat 0 as "unset",
// never as a valid line or column.
type Token[C comparable] struct {
	Image       string
	StartOffset int
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
	Class       C
}

// String renders a Token for debugging/logging purposes.
func (t Token[C]) String() string {
	return fmt.Sprintf("%v(%q)@%d:%d", t.Class, t.Image, t.StartLine, t.StartColumn)
}

// Result is the output of a single Tokenize call.
type Result[C comparable] struct {
	Tokens []Token[C]
	Groups map[string][]Token[C]
	Errors []LexError
}
