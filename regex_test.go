package chevrotain

import "testing"

func TestCompilePatternAnchorsAtOffset(t *testing.T) {
	t.Parallel()

	cp, err := compilePattern(`[a-z]+`, "")
	if err != nil {
		t.Fatalf("compilePattern: %v", err)
	}

	lexeme, ok, err := cp.matchAt("  abc", 2)
	if err != nil || !ok {
		t.Fatalf("matchAt(offset=2) = (%q, %v, %v), want a match", lexeme, ok, err)
	}

	if lexeme != "abc" {
		t.Fatalf("got lexeme %q, want %q", lexeme, "abc")
	}

	// The engine must never scan forward past the requested offset.
	if _, ok, _ := cp.matchAt("  abc", 0); ok {
		t.Fatal("expected no match at offset 0 (leading spaces), anchoring must not scan forward")
	}
}

func TestCompilePatternIgnoreCaseFlag(t *testing.T) {
	t.Parallel()

	cp, err := compilePattern("abc", "i")
	if err != nil {
		t.Fatalf("compilePattern: %v", err)
	}

	if _, ok, err := cp.matchAt("ABC", 0); err != nil || !ok {
		t.Fatalf("expected case-insensitive match, got ok=%v err=%v", ok, err)
	}
}

func TestMatchesEmpty(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		`[a-z]+`: false,
		`[a-z]*`: true,
		`a?`:     true,
		`a`:      false,
	}

	for source, want := range cases {
		cp, err := compilePattern(source, "")
		if err != nil {
			t.Fatalf("compilePattern(%q): %v", source, err)
		}

		got, err := cp.matchesEmpty()
		if err != nil {
			t.Fatalf("matchesEmpty(%q): %v", source, err)
		}

		if got != want {
			t.Errorf("matchesEmpty(%q) = %v, want %v", source, got, want)
		}
	}
}

func TestContainsUnescapedDollar(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"foo$":     true,
		`foo\$`:    false,
		`foo\\$`:   true,
		`foo\\\$`:  false,
		"foo":      false,
		"$":        true,
		`\$`:       false,
	}

	for source, want := range cases {
		if got := containsUnescapedDollar(source); got != want {
			t.Errorf("containsUnescapedDollar(%q) = %v, want %v", source, got, want)
		}
	}
}

func TestMayMatchLineTerminator(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		`[a-z]+`:  false,
		`\d+`:     false,
		`\s+`:     true,
		`.`:       true,
		"a\nb":    true,
		`[^"]*`:   true,
		`[a-z\n]`: true,
	}

	for source, want := range cases {
		if got := mayMatchLineTerminator(source); got != want {
			t.Errorf("mayMatchLineTerminator(%q) = %v, want %v", source, got, want)
		}
	}
}
