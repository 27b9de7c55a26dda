package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings and numbers
	colorGreen = lipgloss.Color("35")  // Green - similarity
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - previews
)

// previewWidth caps the token preview shown beside each run.
const previewWidth = 48

// styles are bound to one writer so colors are dropped when it is not a
// terminal.
type styles struct {
	title  lipgloss.Style
	number lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		number: r.NewStyle().Foreground(colorCyan),
		value:  r.NewStyle().Foreground(colorWhite),
		dim:    r.NewStyle().Foreground(colorDim),
		good:   r.NewStyle().Foreground(colorGreen),
	}
}

// renderReport writes rep in cfg.Format. withRuns selects the runs command
// output over the stats-only summary.
func renderReport(w io.Writer, cfg Config, rep *report, withRuns bool) error {
	if cfg.Format == FormatJSON {
		if !withRuns {
			return renderJSON(w, rep.summary)
		}
		return renderJSON(w, rep)
	}

	s := newStyles(w)
	fmt.Fprintf(w, "%s %s %s %s\n",
		s.title.Render(appName), s.value.Render(rep.A), s.value.Render(rep.B), s.dim.Render("("+rep.Unit+")"))
	if withRuns {
		renderRuns(w, s, rep)
	}
	renderSummary(w, s, rep)

	return nil
}

// renderRuns writes one line per run: its "n@a,b" form, the ranges in both
// inputs and a preview of its first element.
func renderRuns(w io.Writer, s styles, rep *report) {
	for _, r := range rep.Runs {
		fmt.Fprintf(w, "  %s  a[%d:%d] b[%d:%d]  %s\n",
			s.number.Render(r.String()),
			r.A, r.A+r.N, r.B, r.B+r.N,
			s.dim.Render(preview(rep.token(r.A))))
	}
}

func renderSummary(w io.Writer, s styles, rep *report) {
	fmt.Fprintf(w, "common %s  distance %s  similarity %s\n",
		s.number.Render(strconv.Itoa(rep.Common)),
		s.number.Render(strconv.Itoa(rep.Distance)),
		s.good.Render(strconv.FormatFloat(rep.Similarity, 'f', 3, 64)))
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// preview quotes tok on one line, cut to previewWidth runes.
func preview(tok string) string {
	tok = strings.TrimRight(tok, "\r\n")
	if r := []rune(tok); len(r) > previewWidth {
		tok = string(r[:previewWidth-1]) + "…"
	}
	return strconv.Quote(tok)
}
