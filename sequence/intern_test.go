package sequence_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqdiff/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterner_DenseIDs(t *testing.T) {
	in := sequence.NewInterner(nil)
	assert.Equal(t, 0, in.Intern("a"))
	assert.Equal(t, 1, in.Intern("b"))
	assert.Equal(t, 0, in.Intern("a"))
	assert.Equal(t, 2, in.Len())
	assert.Equal(t, "b", in.Token(1))
}

// TestInterner_Key checks tokens are grouped by key but keep their first spelling.
func TestInterner_Key(t *testing.T) {
	in := sequence.NewInterner(strings.ToLower)
	first := in.Intern("Hello")
	assert.Equal(t, first, in.Intern("HELLO"))
	assert.Equal(t, "Hello", in.Token(first))
}

// TestInterner_Lines covers each newline mode on the same text.
func TestInterner_Lines(t *testing.T) {
	text := "a\r\na\nb"
	cases := []struct {
		name string
		mode sequence.NewlineMode
		want []string
	}{
		{"Raw", sequence.NewlineRaw, []string{"a\r\n", "a\n", "b"}},
		{"LF", sequence.NewlineLF, []string{"a\r", "a", "b"}},
		{"CRLF", sequence.NewlineCRLF, []string{"a", "a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := sequence.NewInterner(nil)
			ids := in.Lines(text, tc.mode)
			require.Len(t, ids, len(tc.want))
			got := make([]string, len(ids))
			for i, id := range ids {
				got[i] = in.Token(id)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInterner_LinesEdges(t *testing.T) {
	in := sequence.NewInterner(nil)
	assert.Empty(t, in.Lines("", sequence.NewlineLF))
	assert.Len(t, in.Lines("x\n", sequence.NewlineLF), 1)
	assert.Len(t, in.Lines("\n\n", sequence.NewlineLF), 2)
}

func TestInterner_Words(t *testing.T) {
	in := sequence.NewInterner(nil)
	ids := in.Words("  to be\tor not\nto be ")
	assert.Equal(t, []int{0, 1, 2, 3, 0, 1}, ids)
}

// TestInterner_LineDiff diffs two texts through shared ids.
func TestInterner_LineDiff(t *testing.T) {
	in := sequence.NewInterner(nil)
	a := in.Lines("one\ntwo\nthree\n", sequence.NewlineLF)
	b := in.Lines("one\n2\nthree\n", sequence.NewlineLF)

	runs := sequence.Common(a, b)
	assert.Equal(t, []sequence.Run{{N: 1, A: 0, B: 0}, {N: 1, A: 2, B: 2}}, runs)
}
