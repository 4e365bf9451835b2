// Package catalogcfg loads a descriptor catalog for the chevrotain lexer
// engine from a declarative YAML file, so a caller can define token modes
// without writing Go literals.
package catalogcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aitoroses/chevrotain"
)

// ErrConfigNotFound is returned by FindConfig when no catalog file is found
// walking up from the starting directory.
var ErrConfigNotFound = errors.New("catalogcfg: no catalog file found")

// DefaultConfigNames are the filenames FindConfig searches for, in order.
var DefaultConfigNames = []string{".lexcat.yaml", ".lexcat.yml", "lexcat.yaml", "lexcat.yml"}

// Catalog is the root of a YAML catalog document: a set of named modes,
// each a list of descriptors in priority order.
type Catalog struct {
	Modes map[string][]Descriptor `yaml:"modes"`

	// DefaultMode names the mode Tokenize should start in when the caller
	// doesn't say otherwise. If it is empty, LoadFile sets it to
	// chevrotain.DefaultMode when the catalog defines a mode of that name.
	DefaultMode string `yaml:"default_mode,omitempty"`
}

// Descriptor is the YAML shape of a chevrotain.Descriptor[string]. Pattern
// and Group accept either a plain string or the special value "n/a" /
// "skip" respectively, mirroring the sentinel values the engine uses.
type Descriptor struct {
	Class      string  `yaml:"class"`
	Pattern    string  `yaml:"pattern"`
	Flags      string  `yaml:"flags,omitempty"`
	Group      string  `yaml:"group,omitempty"`
	LongerAlt  string  `yaml:"longer_alt,omitempty"`
	PushMode   string  `yaml:"push_mode,omitempty"`
	PopMode    bool    `yaml:"pop_mode,omitempty"`
	LineBreaks *bool   `yaml:"line_breaks,omitempty"`
}

// FindConfig searches for a catalog file starting from dir and walking up
// through parent directories.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for d := absDir; ; d = filepath.Dir(d) {
		if path, ok := firstExistingConfig(d); ok {
			return path, nil
		}

		if filepath.Dir(d) == d {
			return "", ErrConfigNotFound
		}
	}
}

// firstExistingConfig reports the first of DefaultConfigNames present in
// dir, if any.
func firstExistingConfig(dir string) (string, bool) {
	for _, name := range DefaultConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// Load finds and parses the nearest catalog file walking up from dir.
func Load(dir string) (*Catalog, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadFile(path)
}

// LoadFile parses a catalog from a specific path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cat Catalog

	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("catalogcfg: parsing %s: %w", path, err)
	}

	if cat.DefaultMode == "" {
		if _, ok := cat.Modes[chevrotain.DefaultMode]; ok {
			cat.DefaultMode = chevrotain.DefaultMode
		}
	}

	return &cat, nil
}

// Build compiles the catalog into a *chevrotain.Lexer[string], resolving
// LongerAlt references by class name within the same mode and validating
// Group/Pattern sentinel spellings.
func (c *Catalog) Build(opts ...chevrotain.Option[string]) (*chevrotain.Lexer[string], error) {
	defs := make(map[string][]chevrotain.Descriptor[string], len(c.Modes))

	byClass := make(map[string]map[string]*chevrotain.Descriptor[string], len(c.Modes))

	for modeName, yamlDescs := range c.Modes {
		compiled := make([]chevrotain.Descriptor[string], len(yamlDescs))
		byName := make(map[string]*chevrotain.Descriptor[string], len(yamlDescs))

		for i, yd := range yamlDescs {
			d, err := toDescriptor(yd)
			if err != nil {
				return nil, fmt.Errorf("catalogcfg: mode %q, class %q: %w", modeName, yd.Class, err)
			}

			compiled[i] = d
			byName[yd.Class] = &compiled[i]
		}

		defs[modeName] = compiled
		byClass[modeName] = byName
	}

	for modeName, yamlDescs := range c.Modes {
		for i, yd := range yamlDescs {
			if yd.LongerAlt == "" {
				continue
			}

			alt, ok := byClass[modeName][yd.LongerAlt]
			if !ok {
				return nil, fmt.Errorf("catalogcfg: mode %q, class %q: longer_alt %q not found in the same mode",
					modeName, yd.Class, yd.LongerAlt)
			}

			defs[modeName][i].LongerAlt = alt
		}
	}

	return chevrotain.NewMulti(defs, opts...)
}

func toDescriptor(yd Descriptor) (chevrotain.Descriptor[string], error) {
	d := chevrotain.Descriptor[string]{
		Class:      yd.Class,
		Flags:      yd.Flags,
		PushMode:   yd.PushMode,
		PopMode:    yd.PopMode,
		LineBreaks: yd.LineBreaks,
	}

	switch yd.Pattern {
	case "":
		return d, fmt.Errorf("missing pattern")
	case "n/a":
		d.Pattern = chevrotain.NotApplicable
	default:
		d.Pattern = yd.Pattern
	}

	switch yd.Group {
	case "":
		d.Group = nil
	case "skip":
		d.Group = chevrotain.Skipped
	default:
		d.Group = yd.Group
	}

	return d, nil
}
