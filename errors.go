package chevrotain

import (
	"fmt"
	"strings"
)

// DefinitionErrorKind enumerates the ways a descriptor catalog can fail
// validation. These are caught once, at construction time.
type DefinitionErrorKind int

const (
	// MissingPattern: a descriptor's Pattern field is nil.
	MissingPattern DefinitionErrorKind = iota
	// InvalidPattern: Pattern is present but is neither a valid regular
	// expression string nor the NotApplicable sentinel.
	InvalidPattern
	// EOIAnchorFound: the pattern contains an end-of-input anchor ($),
	// which is forbidden because matches are attempted against a sliding
	// prefix of the remaining input.
	EOIAnchorFound
	// UnsupportedFlagsFound: the pattern declares the global or
	// multi-line flag.
	UnsupportedFlagsFound
	// DuplicatePatternsFound: two descriptors in the same mode share an
	// identical pattern and flags.
	DuplicatePatternsFound
	// InvalidGroupTypeFound: Group is neither nil, a string, nor Skipped.
	InvalidGroupTypeFound
	// PushModeDoesNotExist: PushMode names a mode absent from the
	// definition.
	PushModeDoesNotExist
	// EmptyMatchPossible: the pattern can match the empty string, which
	// would make the lex loop spin forever at a fixed offset. Not part of
	// the original enumerated kinds, but spec-sanctioned ("the analyzer
	// should surface this as a definition error where feasible") and
	// feasible to detect by probing the compiled pattern against "".
	EmptyMatchPossible
)

// String returns the kind's canonical upper-snake-case name, matching the
// vocabulary callers see in error messages.
func (k DefinitionErrorKind) String() string {
	switch k {
	case MissingPattern:
		return "MISSING_PATTERN"
	case InvalidPattern:
		return "INVALID_PATTERN"
	case EOIAnchorFound:
		return "EOI_ANCHOR_FOUND"
	case UnsupportedFlagsFound:
		return "UNSUPPORTED_FLAGS_FOUND"
	case DuplicatePatternsFound:
		return "DUPLICATE_PATTERNS_FOUND"
	case InvalidGroupTypeFound:
		return "INVALID_GROUP_TYPE_FOUND"
	case PushModeDoesNotExist:
		return "PUSH_MODE_DOES_NOT_EXIST"
	case EmptyMatchPossible:
		return "EMPTY_MATCH_POSSIBLE"
	default:
		return "UNKNOWN"
	}
}

// DefinitionError describes one problem found in a descriptor catalog.
type DefinitionError struct {
	Kind    DefinitionErrorKind
	Mode    string
	Class   string // fmt-rendered descriptor identity, for display only
	Message string
}

func (e *DefinitionError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("%s: mode %q, descriptor %s: %s", e.Kind, e.Mode, e.Class, e.Message)
	}

	return fmt.Sprintf("%s: mode %q: %s", e.Kind, e.Mode, e.Message)
}

// DefinitionErrors aggregates every error found while validating a catalog.
// Construction fails with this type (unless deferred) so callers can inspect
// every problem at once instead of fixing one definition error at a time.
type DefinitionErrors []*DefinitionError

func (e DefinitionErrors) Error() string {
	msgs := make([]string, len(e))
	for i, de := range e {
		msgs[i] = de.Error()
	}

	return strings.Join(msgs, "; ")
}

// LexError is a recoverable error encountered while scanning: either an
// unrecognized span of input that was skipped during resync, or an attempt
// to pop the last remaining mode off the stack. LexError never aborts a
// Tokenize call.
type LexError struct {
	Line    int
	Column  int
	Length  int
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ErrDefinitionErrors is returned by Tokenize when the Lexer was constructed
// with deferred definition-error handling and the catalog failed validation.
type ErrDefinitionErrors struct {
	Errors DefinitionErrors
}

func (e *ErrDefinitionErrors) Error() string {
	return fmt.Sprintf("lexer definition is invalid: %s", e.Errors.Error())
}

func (e *ErrDefinitionErrors) Unwrap() error { return e.Errors }
