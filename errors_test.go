package chevrotain

import (
	"strings"
	"testing"
)

func TestDefinitionErrorKindString(t *testing.T) {
	t.Parallel()

	cases := map[DefinitionErrorKind]string{
		MissingPattern:         "MISSING_PATTERN",
		InvalidPattern:         "INVALID_PATTERN",
		EOIAnchorFound:         "EOI_ANCHOR_FOUND",
		UnsupportedFlagsFound:  "UNSUPPORTED_FLAGS_FOUND",
		DuplicatePatternsFound: "DUPLICATE_PATTERNS_FOUND",
		InvalidGroupTypeFound:  "INVALID_GROUP_TYPE_FOUND",
		PushModeDoesNotExist:   "PUSH_MODE_DOES_NOT_EXIST",
		EmptyMatchPossible:     "EMPTY_MATCH_POSSIBLE",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestDefinitionErrorsErrorJoinsMessages(t *testing.T) {
	t.Parallel()

	errs := DefinitionErrors{
		&DefinitionError{Kind: MissingPattern, Mode: "m1", Message: "no pattern"},
		&DefinitionError{Kind: DuplicatePatternsFound, Mode: "m1", Class: "B", Message: "dup"},
	}

	msg := errs.Error()

	if !strings.Contains(msg, "MISSING_PATTERN") || !strings.Contains(msg, "DUPLICATE_PATTERNS_FOUND") {
		t.Fatalf("expected joined message to mention both kinds, got %q", msg)
	}
}

func TestLexErrorFormatting(t *testing.T) {
	t.Parallel()

	e := LexError{Line: 4, Column: 7, Length: 2, Message: "unexpected character: !"}

	if got, want := e.Error(), "4:7: unexpected character: !"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrDefinitionErrorsUnwrap(t *testing.T) {
	t.Parallel()

	inner := DefinitionErrors{&DefinitionError{Kind: MissingPattern, Message: "x"}}
	wrapped := &ErrDefinitionErrors{Errors: inner}

	unwrapped, ok := wrapped.Unwrap().(DefinitionErrors)
	if !ok {
		t.Fatal("expected Unwrap to return DefinitionErrors")
	}

	if len(unwrapped) != 1 {
		t.Fatalf("got %d errors, want 1", len(unwrapped))
	}
}
