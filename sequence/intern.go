package sequence

import (
	"strings"
	"unicode"
)

// NewlineMode controls how Lines treats line terminators.
type NewlineMode int

const (
	// NewlineRaw keeps each line's terminator, so "a\n" and "a" differ.
	NewlineRaw NewlineMode = iota

	// NewlineLF drops a trailing "\n".
	NewlineLF

	// NewlineCRLF drops a trailing "\n" and one "\r" before it.
	NewlineCRLF
)

// Interner assigns dense ids to tokens. Equal tokens get equal ids, so
// token sequences can be diffed with Common on []int.
type Interner struct {
	tokens []string
	index  map[string]int
	key    func(string) string
}

// NewInterner returns an empty Interner. If key is non-nil, tokens are
// interned by key(token) (for example strings.ToLower), while Token still
// returns the first spelling seen.
func NewInterner(key func(string) string) *Interner {
	return &Interner{
		tokens: make([]string, 0, 64),
		index:  make(map[string]int),
		key:    key,
	}
}

// Intern returns the id of token, assigning the next free id on first use.
func (in *Interner) Intern(token string) int {
	k := token
	if in.key != nil {
		k = in.key(token)
	}
	if id, ok := in.index[k]; ok {
		return id
	}
	id := len(in.tokens)
	in.index[k] = id
	in.tokens = append(in.tokens, token)

	return id
}

// Token returns the token interned as id.
func (in *Interner) Token(id int) string {
	return in.tokens[id]
}

// Len returns the number of distinct tokens.
func (in *Interner) Len() int {
	return len(in.tokens)
}

// Lines splits text into lines, interns them and returns their ids.
// A final line without terminator is kept; an empty text has no lines.
func (in *Interner) Lines(text string, mode NewlineMode) []int {
	ids := make([]int, 0, strings.Count(text, "\n")+1)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		end := strings.IndexByte(part, '\n')
		if end == -1 {
			ids = append(ids, in.Intern(trimEOL(part, mode, false)))
			break
		}
		ids = append(ids, in.Intern(trimEOL(part[:end+1], mode, true)))
		pos += end + 1
	}

	return ids
}

// Words splits text on Unicode white space, interns the fields and
// returns their ids.
func (in *Interner) Words(text string) []int {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	ids := make([]int, len(fields))
	for i, f := range fields {
		ids[i] = in.Intern(f)
	}

	return ids
}

// trimEOL strips the terminator of one line according to mode.
func trimEOL(line string, mode NewlineMode, terminated bool) string {
	switch mode {
	case NewlineLF:
		return strings.TrimSuffix(line, "\n")
	case NewlineCRLF:
		line = strings.TrimSuffix(line, "\n")
		if terminated || strings.HasSuffix(line, "\r") {
			line = strings.TrimSuffix(line, "\r")
		}
		return line
	default:
		return line
	}
}
