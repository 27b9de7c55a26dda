package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/seqdiff/sequence"
)

// summary is what stats prints with --format json.
type summary struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Unit       string  `json:"unit"`
	ALength    int     `json:"a_length"`
	BLength    int     `json:"b_length"`
	Common     int     `json:"common"`
	Distance   int     `json:"distance"`
	Similarity float64 `json:"similarity"`
}

// report is the result of comparing two inputs. With --format json the
// runs command prints it whole; runs is [] when nothing is common.
type report struct {
	summary
	Runs []sequence.Run `json:"runs"`

	// token returns the text of element i of the first input, for display.
	token func(i int) string
}

// tokens is one input split into comparable elements.
type tokens struct {
	n    int
	text func(i int) string
}

// compare reads both inputs, tokenizes them per cfg and runs the engine.
// A path of "-" reads stdin; at most one of the two may be "-".
func compare(ctx context.Context, cfg Config, stdin io.Reader, pathA, pathB string) (*report, error) {
	if pathA == "-" && pathB == "-" {
		return nil, fmt.Errorf("%w: only one input can be read from stdin", ErrInvalidConfig)
	}
	logger := loggerFromContext(ctx)

	textA, err := readInput(stdin, pathA)
	if err != nil {
		return nil, err
	}
	textB, err := readInput(stdin, pathB)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tok := startTimer(logger, "Tokenized inputs")
	a, b, isCommon, err := tokenize(cfg, textA, textB)
	if err != nil {
		return nil, err
	}
	tok.stop("unit", cfg.Unit, "a", a.n, "b", b.n)

	cmp := startTimer(logger, "Compared inputs")
	runs, err := sequence.Collect(a.n, b.n, isCommon)
	if err != nil {
		return nil, fmt.Errorf("compare %s and %s: %w", pathA, pathB, err)
	}
	cmp.stop("runs", len(runs))

	if runs == nil {
		runs = []sequence.Run{}
	}

	return &report{
		summary: summary{
			A:          pathA,
			B:          pathB,
			Unit:       cfg.Unit,
			ALength:    a.n,
			BLength:    b.n,
			Common:     sequence.Length(runs),
			Distance:   sequence.EditDistance(a.n, b.n, runs),
			Similarity: sequence.Similarity(a.n, b.n, runs),
		},
		Runs:  runs,
		token: a.text,
	}, nil
}

// readInput returns the contents of path, or of stdin for "-".
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// tokenize splits both texts into the configured unit and returns the
// predicate that compares them. ignore_case and ignore_space change only
// the predicate, never the positions reported.
func tokenize(cfg Config, textA, textB string) (a, b tokens, isCommon func(i, j int) bool, err error) {
	if cfg.Unit == UnitRunes {
		ra, rb := []rune(textA), []rune(textB)
		eq := runeEqual(cfg)
		a = tokens{n: len(ra), text: func(i int) string { return string(ra[i]) }}
		b = tokens{n: len(rb), text: func(i int) string { return string(rb[i]) }}
		return a, b, func(i, j int) bool { return eq(ra[i], rb[j]) }, nil
	}

	mode, err := cfg.newlineMode()
	if err != nil {
		return tokens{}, tokens{}, nil, err
	}
	in := sequence.NewInterner(tokenKey(cfg))
	var idsA, idsB []int
	if cfg.Unit == UnitWords {
		idsA, idsB = in.Words(textA), in.Words(textB)
	} else {
		idsA, idsB = in.Lines(textA, mode), in.Lines(textB, mode)
	}

	a = tokens{n: len(idsA), text: func(i int) string { return in.Token(idsA[i]) }}
	b = tokens{n: len(idsB), text: func(i int) string { return in.Token(idsB[i]) }}
	return a, b, func(i, j int) bool { return idsA[i] == idsB[j] }, nil
}

// tokenKey returns the interning key for cfg, or nil for exact matching.
func tokenKey(cfg Config) func(string) string {
	switch {
	case cfg.IgnoreCase && cfg.IgnoreSpace:
		return func(s string) string { return strings.ToLower(stripSpace(s)) }
	case cfg.IgnoreCase:
		return strings.ToLower
	case cfg.IgnoreSpace:
		return stripSpace
	default:
		return nil
	}
}

// stripSpace removes every white space rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// runeEqual returns the rune predicate for cfg. With ignore_space any two
// white space runes are equal.
func runeEqual(cfg Config) func(x, y rune) bool {
	return func(x, y rune) bool {
		if x == y {
			return true
		}
		if cfg.IgnoreSpace && unicode.IsSpace(x) && unicode.IsSpace(y) {
			return true
		}
		return cfg.IgnoreCase && unicode.ToLower(x) == unicode.ToLower(y)
	}
}
