package chevrotain

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// compiledPattern binds a descriptor's regex source to a regexp2.Regexp
// that is always anchored at the very start of the string handed to it.
//
// regexp2 has no notion of "match only at position zero without scanning
// forward" built into FindStringMatch, so every source pattern is wrapped
// in a non-capturing group prefixed with \A (true start-of-string, unlike
// ^ which without the singleline-negating multi-line flag already behaves
// the same way here, but \A is unambiguous regardless of flags). Matching
// is then always performed against the remaining suffix of the input
// (input[offset:]), which keeps the "anchored at position zero of the
// remaining input" contract from spec.md §4.3 without depending on
// FindStringMatchStartingAt's offset semantics.
type compiledPattern struct {
	source string
	flags  string
	re     *regexp2.Regexp
}

func compilePattern(source, flags string) (*compiledPattern, error) {
	opts := regexp2.None
	if strings.Contains(flags, "i") {
		opts |= regexp2.IgnoreCase
	}

	if strings.Contains(flags, "s") {
		opts |= regexp2.Singleline
	}

	re, err := regexp2.Compile(`\A(?:`+source+`)`, opts)
	if err != nil {
		return nil, err
	}

	return &compiledPattern{source: source, flags: flags, re: re}, nil
}

// matchAt attempts to match the pattern against input[offset:], returning
// the matched lexeme and whether a match was found. It never scans forward:
// a regexp2 match against an \A-anchored pattern either matches at the
// first character of the supplied substring or not at all.
func (p *compiledPattern) matchAt(input string, offset int) (string, bool, error) {
	m, err := p.re.FindStringMatch(input[offset:])
	if err != nil {
		return "", false, err
	}

	if m == nil {
		return "", false, nil
	}

	return m.String(), true, nil
}

// matchesEmpty reports whether the pattern matches the empty string, used
// by the validator to reject descriptors that would stall the lex loop at
// a fixed offset forever (spec.md §4.3, "zero-length matches must not be
// produced").
func (p *compiledPattern) matchesEmpty() (bool, error) {
	m, err := p.re.FindStringMatch("")
	if err != nil {
		return false, err
	}

	return m != nil && m.String() == "", nil
}

// containsUnescapedDollar reports whether source contains a literal `$`
// that is not preceded by an odd number of backslashes (i.e. not escaped).
// Used to reject end-of-input anchors (EOI_ANCHOR_FOUND): matches are
// always attempted against a sliding prefix of the remaining input, so `$`
// can never mean "end of the whole input" the way a caller likely intends.
func containsUnescapedDollar(source string) bool {
	backslashes := 0

	for _, r := range source {
		switch r {
		case '\\':
			backslashes++
		case '$':
			if backslashes%2 == 0 {
				return true
			}

			backslashes = 0
		default:
			backslashes = 0
		}
	}

	return false
}

// mayMatchLineTerminator does a conservative syntactic scan of a regex
// source for constructs that can consume "\n", "\r", or an explicit escape
// for either, used to derive can_line_terminate when a descriptor doesn't
// declare it explicitly. False negatives are possible for exotic patterns
// (e.g. a Unicode property escape that happens to include a line
// separator); callers who need precision should set LineBreaks explicitly.
func mayMatchLineTerminator(source string) bool {
	runes := []rune(source)

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			if i+1 < len(runes) {
				switch runes[i+1] {
				case 'n', 'r', 's', 'S', 'W', 'D':
					return true
				}

				i++
			}
		case '.':
			// "." matches any char except line terminators unless the
			// caller set the Singleline ("s") flag - conservatively assume
			// it might, since the analyzer doesn't have flags in scope
			// here and false positives just mean a slightly slower
			// position recompute, not a correctness bug.
			return true
		case '\n', '\r':
			return true
		case '[':
			// A character class: look for a literal newline/CR, or a
			// negated class (negated classes commonly admit "\n").
			end := strings.IndexRune(string(runes[i:]), ']')
			if end < 0 {
				return true
			}

			class := string(runes[i : i+end+1])
			if strings.HasPrefix(class, "[^") {
				return true
			}

			if strings.ContainsAny(class, "\n\r") || strings.Contains(class, `\n`) || strings.Contains(class, `\r`) || strings.Contains(class, `\s`) {
				return true
			}

			i += end
		}
	}

	return false
}
