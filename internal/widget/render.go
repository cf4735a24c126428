package widget

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/autocomplete/internal/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

const (
	ColorGray      = lipgloss.Color("8")  // Footer and placeholder
	ColorWhite     = lipgloss.Color("15") // Highlighted row text
	ColorHighlight = lipgloss.Color("33") // Highlighted row background
)

// RenderConfig holds styling configuration for the widget.
type RenderConfig struct {
	// PromptStyle is the style applied to the prompt string.
	PromptStyle lipgloss.Style

	// TextStyle is the style applied to the input text.
	TextStyle lipgloss.Style

	// PlaceholderStyle is the style applied to the placeholder.
	PlaceholderStyle lipgloss.Style

	// RowStyle is the style for unhighlighted suggestion rows.
	RowStyle lipgloss.Style

	// HighlightStyle is the style for the highlighted suggestion row.
	HighlightStyle lipgloss.Style

	// MatchStyle is layered over the row style for the matched prefix.
	MatchStyle lipgloss.Style

	// FooterStyle is the style for the match count line.
	FooterStyle lipgloss.Style
}

// DefaultRenderConfig returns a RenderConfig with the default styles.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PromptStyle:      lipgloss.NewStyle(),
		TextStyle:        lipgloss.NewStyle(),
		PlaceholderStyle: lipgloss.NewStyle().Foreground(ColorGray),
		RowStyle:         lipgloss.NewStyle(),
		HighlightStyle: lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorHighlight),
		MatchStyle:  lipgloss.NewStyle().Bold(true),
		FooterStyle: lipgloss.NewStyle().Foreground(ColorGray),
	}
}

// Renderer turns suggestion rows into terminal lines.
type Renderer struct {
	config RenderConfig
	width  int
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RenderConfig) *Renderer {
	return &Renderer{
		config: config,
		width:  80,
	}
}

// SetWidth sets the terminal width lines are truncated to.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Width returns the current terminal width.
func (r *Renderer) Width() int {
	return r.width
}

// Config returns the current render configuration.
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// RenderDropdown renders one line per row followed by a footer showing how
// many of total candidates matched. It returns "" when there are no rows.
func (r *Renderer) RenderDropdown(rows []suggest.Row, total int) string {
	if len(rows) == 0 {
		return ""
	}

	// Pad every row to the widest candidate so the highlight is a solid bar
	inner := 0
	for _, row := range rows {
		if w := ansi.StringWidth(row.Value); w > inner {
			inner = w
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		lines = append(lines, r.fit(r.renderRow(row, inner)))
	}

	footer := fmt.Sprintf(" %s of %s", humanize.Comma(int64(len(rows))), humanize.Comma(int64(total)))
	lines = append(lines, r.fit(r.config.FooterStyle.Render(footer)))

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRow(row suggest.Row, inner int) string {
	style := r.config.RowStyle
	if row.Highlighted {
		style = r.config.HighlightStyle
	}
	match := r.config.MatchStyle.Inherit(style)

	pad := ""
	if w := ansi.StringWidth(row.Value); w < inner {
		pad = strings.Repeat(" ", inner-w)
	}

	return style.Render(" ") +
		match.Render(row.Matched) +
		style.Render(row.Rest+pad+" ")
}

func (r *Renderer) fit(line string) string {
	if ansi.StringWidth(line) <= r.width {
		return line
	}
	return truncate.StringWithTail(line, uint(r.width), "…")
}
