package chevrotain

import "testing"

func TestCountLineTerminators(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"":         0,
		"abc":      0,
		"a\nb":     1,
		"a\r\nb":   1,
		"a\rb":     1,
		"a\r\n\nb": 2,
		"\r\r":     2,
		"\r\n\r\n": 2,
	}

	for input, want := range cases {
		if got := countLineTerminators(input); got != want {
			t.Errorf("countLineTerminators(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestFindLastLineTerminatorIndex(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"":       -1,
		"abc":    -1,
		"a\nb":   1,
		"a\nb\n": 3,
		"\r\n":   1,
	}

	for input, want := range cases {
		if got := findLastLineTerminatorIndex(input); got != want {
			t.Errorf("findLastLineTerminatorIndex(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestAdvancePositionSingleLineToken(t *testing.T) {
	t.Parallel()

	a := advancePosition("ab", 2, 1, 1, false)

	if a.line != 1 || a.column != 3 {
		t.Fatalf("got line=%d column=%d, want line=1 column=3", a.line, a.column)
	}

	if a.endUnset {
		t.Fatal("expected end position to be set for a single-line token")
	}

	if a.endLine != 1 || a.endColumn != 2 {
		t.Fatalf("got endLine=%d endColumn=%d, want endLine=1 endColumn=2", a.endLine, a.endColumn)
	}
}

func TestAdvancePositionCRLFSkippedSpan(t *testing.T) {
	t.Parallel()

	a := advancePosition("\r\n", 2, 1, 3, true)

	if a.line != 2 || a.column != 1 {
		t.Fatalf("got line=%d column=%d, want line=2 column=1", a.line, a.column)
	}
}

func TestAdvancePositionTrailingLineTerminatorIsUnset(t *testing.T) {
	t.Parallel()

	a := advancePosition("x\n", 2, 1, 1, true)

	if !a.endUnset {
		t.Fatal("expected end position to be unset for a single trailing line terminator")
	}
}

func TestAdvancePositionMultipleLineTerminatorsEndsSet(t *testing.T) {
	t.Parallel()

	// "/* x\n */\n" - two line terminators, the last of which is also the
	// final character; per spec.md §4.3 this is NOT the single-trailing-LT
	// case (that only applies when there is exactly one LT), so end_line
	// and end_column are computed, not left unset.
	a := advancePosition("/* x\n */\n", 9, 1, 1, true)

	if a.endUnset {
		t.Fatal("expected end position to be set when more than one line terminator is present")
	}

	if a.line != 3 || a.column != 1 {
		t.Fatalf("got line=%d column=%d, want line=3 column=1", a.line, a.column)
	}

	if a.endLine != 2 || a.endColumn != 1 {
		t.Fatalf("got endLine=%d endColumn=%d, want endLine=2 endColumn=1", a.endLine, a.endColumn)
	}
}

func TestAdvancePositionLineTerminatorNotLastChar(t *testing.T) {
	t.Parallel()

	a := advancePosition("a\nbc", 4, 1, 1, true)

	if a.line != 2 {
		t.Fatalf("got line=%d, want 2", a.line)
	}

	// lastLTIdx=1, column = L - lastLTIdx = 4-1 = 3
	if a.column != 3 {
		t.Fatalf("got column=%d, want 3", a.column)
	}

	if a.endUnset {
		t.Fatal("expected end position to be set")
	}

	if a.endLine != 2 || a.endColumn != 2 {
		t.Fatalf("got endLine=%d endColumn=%d, want endLine=2 endColumn=2", a.endLine, a.endColumn)
	}
}
