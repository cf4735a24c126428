// Package styles colors the CLI's own messages, which are written outside
// the Bubble Tea view.
package styles

import (
	"io"

	"github.com/muesli/termenv"
)

// Palette renders messages for one output. Colors are dropped when the
// output is not a terminal.
type Palette struct {
	out *termenv.Output
}

// New returns a Palette for w.
func New(w io.Writer, opts ...termenv.OutputOption) Palette {
	return Palette{out: termenv.NewOutput(w, opts...)}
}

// Error renders s in red.
func (p Palette) Error(s string) string {
	return p.out.String(s).Foreground(p.out.Color("9")).String()
}

// Warning renders s in bold yellow.
func (p Palette) Warning(s string) string {
	return p.out.String(s).Foreground(p.out.Color("11")).Bold().String()
}

// Hint renders s in gray.
func (p Palette) Hint(s string) string {
	return p.out.String(s).Foreground(p.out.Color("8")).String()
}
