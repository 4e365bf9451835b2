package catalogcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aitoroses/chevrotain/catalogcfg"
)

const sampleYAML = `
default_mode: default_mode
modes:
  default_mode:
    - class: WhiteSpace
      pattern: \s+
      group: skip
    - class: Do
      pattern: do
      longer_alt: Identifier
    - class: Identifier
      pattern: '[a-zA-Z_]\w*'
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "lexcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadFileAndBuild(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, sampleYAML)

	cat, err := catalogcfg.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "default_mode", cat.DefaultMode)

	lx, err := cat.Build()
	require.NoError(t, err)

	res, err := lx.Tokenize("donald", "")
	require.NoError(t, err)
	require.Len(t, res.Tokens, 1)
	require.Equal(t, "Identifier", res.Tokens[0].Class)
}

func TestBuildRejectsUnknownLongerAlt(t *testing.T) {
	t.Parallel()

	cat := &catalogcfg.Catalog{
		Modes: map[string][]catalogcfg.Descriptor{
			"default_mode": {
				{Class: "Do", Pattern: "do", LongerAlt: "Nope"},
			},
		},
	}

	_, err := cat.Build()
	require.Error(t, err)
}

func TestFindConfigWalksUpDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "lexcat.yaml"), []byte(sampleYAML), 0o600))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := catalogcfg.FindConfig(nested)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "lexcat.yaml"), found)
}

func TestFindConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := catalogcfg.FindConfig(t.TempDir())
	require.ErrorIs(t, err, catalogcfg.ErrConfigNotFound)
}
