package participlex_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"

	"github.com/aitoroses/chevrotain"
	"github.com/aitoroses/chevrotain/participlex"
)

func buildLexer(t *testing.T) *chevrotain.Lexer[string] {
	t.Helper()

	lx, err := chevrotain.New([]chevrotain.Descriptor[string]{
		{Class: "WhiteSpace", Pattern: `\s+`, Group: chevrotain.Skipped},
		{Class: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Class: "Number", Pattern: `\d+`},
	})
	require.NoError(t, err)

	return lx
}

func TestDefinitionLexStringProducesParticipleTokens(t *testing.T) {
	t.Parallel()

	def := participlex.New(buildLexer(t), []string{"Ident", "Number"}, "")

	lx, err := def.LexString("input.txt", "foo 42")
	require.NoError(t, err)

	first, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, "foo", first.Value)
	require.Equal(t, def.Symbols()["Ident"], first.Type)

	second, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, "42", second.Value)
	require.Equal(t, def.Symbols()["Number"], second.Type)

	eof, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.EOF, eof.Type)
}

func TestDefinitionSurfacesLexErrors(t *testing.T) {
	t.Parallel()

	def := participlex.New(buildLexer(t), []string{"Ident", "Number"}, "")

	_, err := def.LexString("input.txt", "foo !! 42")
	require.NoError(t, err)
	require.NotEmpty(t, def.Errors())
}
