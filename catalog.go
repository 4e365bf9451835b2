package chevrotain

import "fmt"

// groupEntry records the output disposition for a compiled pattern slot:
// skip (no token), the default stream, or a named bucket.
type groupEntry struct {
	skip bool
	name string // "" for the default stream, a bucket name otherwise
}

// compiledMode is the parallel-array dispatch table for a single mode,
// built once by compileCatalog and never mutated afterward.
type compiledMode[C comparable] struct {
	name             string
	patterns         []*compiledPattern
	ownerClass       []C
	group            []groupEntry
	longerAltIdx     []int // -1 when unset
	canLineTerminate []bool
	pushMode         []string // "" when unset
	popMode          []bool
}

// validateAndCompile runs the Pattern Validator and, if the catalog is
// clean, the Catalog Analyzer, over every mode in defs. It returns the
// compiled modes (nil on failure), the set of every named group mentioned
// anywhere in the catalog (returned even when validation fails), and any
// definition errors found.
func validateAndCompile[C comparable](defs map[string][]Descriptor[C]) (map[string]*compiledMode[C], []string, DefinitionErrors) {
	var errs DefinitionErrors

	groupSet := map[string]struct{}{}
	modes := make(map[string]*compiledMode[C], len(defs))

	for modeName, descriptors := range defs {
		modeErrs := validateMode(modeName, descriptors, defs)
		errs = append(errs, modeErrs...)

		for _, d := range descriptors {
			if name, skip, ok := groupDisposition(d.Group); ok && !skip && name != DefaultGroup {
				groupSet[name] = struct{}{}
			}
		}
	}

	groupNames := make([]string, 0, len(groupSet))
	for name := range groupSet {
		groupNames = append(groupNames, name)
	}

	if len(errs) > 0 {
		return nil, groupNames, errs
	}

	for modeName, descriptors := range defs {
		cm, modeErrs := compileMode(modeName, descriptors)
		errs = append(errs, modeErrs...)
		modes[modeName] = cm
	}

	if len(errs) > 0 {
		return nil, groupNames, errs
	}

	return modes, groupNames, nil
}

// validateMode implements the Pattern Validator (spec.md §4.1) for one
// mode's descriptor list.
func validateMode[C comparable](modeName string, descriptors []Descriptor[C], allModes map[string][]Descriptor[C]) DefinitionErrors {
	var errs DefinitionErrors

	seenPatterns := map[string]bool{}

	for _, d := range descriptors {
		class := fmt.Sprintf("%v", d.Class)

		switch pat := d.Pattern.(type) {
		case nil:
			errs = append(errs, &DefinitionError{
				Kind: MissingPattern, Mode: modeName, Class: class,
				Message: "descriptor has no pattern",
			})

			continue
		case sentinel:
			if pat != NotApplicable {
				errs = append(errs, &DefinitionError{
					Kind: InvalidPattern, Mode: modeName, Class: class,
					Message: "pattern is neither a string nor the NotApplicable sentinel",
				})
			}

			continue
		case string:
			if containsUnescapedDollar(pat) {
				errs = append(errs, &DefinitionError{
					Kind: EOIAnchorFound, Mode: modeName, Class: class,
					Message: "pattern contains an end-of-input anchor ($)",
				})
			}

			if containsUnsupportedFlags(d.Flags) {
				errs = append(errs, &DefinitionError{
					Kind: UnsupportedFlagsFound, Mode: modeName, Class: class,
					Message: fmt.Sprintf("flags %q include the global or multi-line flag", d.Flags),
				})
			}

			cp, err := compilePattern(pat, d.Flags)
			if err != nil {
				errs = append(errs, &DefinitionError{
					Kind: InvalidPattern, Mode: modeName, Class: class,
					Message: fmt.Sprintf("invalid pattern %q: %v", pat, err),
				})

				continue
			}

			if empty, err := cp.matchesEmpty(); err == nil && empty {
				errs = append(errs, &DefinitionError{
					Kind: EmptyMatchPossible, Mode: modeName, Class: class,
					Message: fmt.Sprintf("pattern %q can match the empty string", pat),
				})
			}

			key := d.Flags + "\x00" + pat
			if seenPatterns[key] {
				errs = append(errs, &DefinitionError{
					Kind: DuplicatePatternsFound, Mode: modeName, Class: class,
					Message: fmt.Sprintf("pattern %q is already used by another descriptor in this mode", pat),
				})
			}

			seenPatterns[key] = true
		default:
			errs = append(errs, &DefinitionError{
				Kind: InvalidPattern, Mode: modeName, Class: class,
				Message: fmt.Sprintf("pattern has unsupported type %T", pat),
			})

			continue
		}

		if _, _, ok := groupDisposition(d.Group); !ok {
			errs = append(errs, &DefinitionError{
				Kind: InvalidGroupTypeFound, Mode: modeName, Class: class,
				Message: fmt.Sprintf("group has unsupported type %T", d.Group),
			})
		}

		if d.PushMode != "" {
			if _, ok := allModes[d.PushMode]; !ok {
				errs = append(errs, &DefinitionError{
					Kind: PushModeDoesNotExist, Mode: modeName, Class: class,
					Message: fmt.Sprintf("push_mode %q does not exist", d.PushMode),
				})
			}
		}
	}

	return errs
}

func containsUnsupportedFlags(flags string) bool {
	for _, r := range flags {
		if r == 'g' || r == 'm' {
			return true
		}
	}

	return false
}

// compileMode implements the Catalog Analyzer (spec.md §4.2): it resolves
// longer_alt references to compiled indices, derives can_line_terminate
// where not declared, and builds the parallel arrays the lex loop dispatches
// against. Descriptors with Pattern == NotApplicable are excluded from the
// arrays entirely.
func compileMode[C comparable](modeName string, descriptors []Descriptor[C]) (*compiledMode[C], DefinitionErrors) {
	cm := &compiledMode[C]{name: modeName}
	compiledIndexByDescriptor := make(map[*Descriptor[C]]int)

	for i := range descriptors {
		d := &descriptors[i]
		if d.Pattern == NotApplicable {
			continue
		}

		source, _ := d.Pattern.(string)

		cp, err := compilePattern(source, d.Flags)
		if err != nil {
			// Already reported during validation; skip silently here.
			continue
		}

		lineBreaks := d.LineBreaks != nil && *d.LineBreaks
		if d.LineBreaks == nil {
			lineBreaks = mayMatchLineTerminator(source)
		}

		name, skip, _ := groupDisposition(d.Group)
		if name == DefaultGroup {
			name = "" // normalize: "" means "the default stream" downstream
		}

		compiledIndexByDescriptor[d] = len(cm.patterns)

		cm.patterns = append(cm.patterns, cp)
		cm.ownerClass = append(cm.ownerClass, d.Class)
		cm.group = append(cm.group, groupEntry{skip: skip, name: name})
		cm.canLineTerminate = append(cm.canLineTerminate, lineBreaks)
		cm.pushMode = append(cm.pushMode, d.PushMode)
		cm.popMode = append(cm.popMode, d.PopMode)
		cm.longerAltIdx = append(cm.longerAltIdx, -1) // filled in below
	}

	for i := range descriptors {
		d := &descriptors[i]

		idx, ok := compiledIndexByDescriptor[d]
		if !ok || d.LongerAlt == nil {
			continue
		}

		if altIdx, ok := compiledIndexByDescriptor[d.LongerAlt]; ok {
			cm.longerAltIdx[idx] = altIdx
		}
		// If the target has no pattern (absent or NotApplicable), the
		// reference simply resolves to "unset" - not an error.
	}

	return cm, nil
}
