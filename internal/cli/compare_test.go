package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqdiff/sequence"
)

// collect tokenizes per cfg and returns the engine's runs.
func collect(t *testing.T, cfg Config, textA, textB string) []sequence.Run {
	t.Helper()

	a, b, isCommon, err := tokenize(cfg, textA, textB)
	require.NoError(t, err)
	runs, err := sequence.Collect(a.n, b.n, isCommon)
	require.NoError(t, err)

	return runs
}

func TestTokenize_Runes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Unit = UnitRunes

	assert.Equal(t, []sequence.Run{{N: 1, A: 0, B: 0}, {N: 1, A: 2, B: 2}}, collect(t, cfg, "aXc", "ayc"))

	cfg.IgnoreCase = true
	assert.Equal(t, []sequence.Run{{N: 3, A: 0, B: 0}}, collect(t, cfg, "aXc", "axc"))

	cfg.IgnoreSpace = true
	assert.Equal(t, []sequence.Run{{N: 3, A: 0, B: 0}}, collect(t, cfg, "a\tb", "A b"))
}

func TestTokenize_WordsIgnoreCase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Unit = UnitWords
	assert.Len(t, collect(t, cfg, "The cat sat", "the cat sat"), 1)

	cfg.IgnoreCase = true
	assert.Equal(t, []sequence.Run{{N: 3, A: 0, B: 0}}, collect(t, cfg, "The cat sat", "the cat sat"))
}

func TestTokenize_LinesIgnoreSpace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreSpace = true
	runs := collect(t, cfg, "if x {\n\treturn\n}\n", "if x{\n    return\n}\n")
	assert.Equal(t, []sequence.Run{{N: 3, A: 0, B: 0}}, runs)
}

// TestTokenize_TokenText checks display text keeps the original spelling.
func TestTokenize_TokenText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreCase = true
	a, b, _, err := tokenize(cfg, "Alpha\nbeta\n", "ALPHA\n")
	require.NoError(t, err)
	assert.Equal(t, 2, a.n)
	assert.Equal(t, 1, b.n)
	assert.Equal(t, "Alpha", a.text(0))
	assert.Equal(t, "Alpha", b.text(0))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, `"one"`, preview("one\r\n"))
	long := preview(strings.Repeat("x", 100))
	assert.Equal(t, previewWidth, len([]rune(long))-2)
}
