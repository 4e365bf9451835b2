package chevrotain

// countLineTerminators returns the number of line terminators in s, where a
// line terminator is "\n", a "\r" not immediately followed by "\n", or
// "\r\n" (counted once).
func countLineTerminators(s string) int {
	runes := []rune(s)
	count := 0

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\n':
			count++
		case '\r':
			count++

			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++ // the paired \n is part of the same terminator
			}
		}
	}

	return count
}

// findLastLineTerminatorIndex returns the 0-based rune index of the last
// "\n" or "\r" in s, or -1 if s contains no line terminator.
func findLastLineTerminatorIndex(s string) int {
	runes := []rune(s)

	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '\n' || runes[i] == '\r' {
			return i
		}
	}

	return -1
}

// advance holds the result of folding a matched lexeme into the scanner's
// running line/column state.
type advance struct {
	line        int
	column      int
	endLine     int
	endColumn   int
	endUnset    bool
	ltCount     int
	lastLTIndex int
}

// advancePosition computes the new line/column after consuming a lexeme of
// rune length runeLen from startLine/startColumn, and (for non-skipped
// tokens) the lexeme's end position, following the rules in spec.md §4.3.
//
// canLineTerminate gates whether the lexeme is even inspected for line
// terminators; when false, the result is equivalent to a lexeme with zero
// line terminators (end_line = start_line, end_column = start_column+L-1).
func advancePosition(lexeme string, runeLen, startLine, startColumn int, canLineTerminate bool) advance {
	a := advance{
		line:        startLine,
		column:      startColumn + runeLen,
		lastLTIndex: -1,
	}

	if canLineTerminate {
		a.ltCount = countLineTerminators(lexeme)
		if a.ltCount > 0 {
			a.lastLTIndex = findLastLineTerminatorIndex(lexeme)
			a.line = startLine + a.ltCount
			a.column = runeLen - a.lastLTIndex
		}
	}

	lastCharIsLT := a.lastLTIndex >= 0 && a.lastLTIndex == runeLen-1

	switch {
	case a.ltCount == 1 && lastCharIsLT:
		a.endUnset = true
	case lastCharIsLT:
		a.endLine = a.line - 1
		a.endColumn = a.column
	default:
		a.endLine = a.line
		a.endColumn = a.column - 1
	}

	return a
}
