// Package form hosts an autocomplete widget on the alternate screen: a label,
// the widget, and a submit button, optionally pushed down by a top margin.
// Mouse rows are screen rows, so every hit test is relative to that margin.
package form

import (
	"strings"

	"github.com/atinylittleshell/autocomplete/internal/pointer"
	"github.com/atinylittleshell/autocomplete/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ResultType indicates how the form was finished.
type ResultType int

const (
	// ResultNone indicates no result yet (still editing).
	ResultNone ResultType = iota
	// ResultSubmit indicates the user submitted the form.
	ResultSubmit
	// ResultInterrupt indicates the user interrupted (Ctrl+C).
	ResultInterrupt
)

// Result contains the outcome of a form session.
type Result struct {
	// Type indicates what action caused the form to complete.
	Type ResultType
	// Value is the submitted text (empty for interrupt).
	Value string
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Foreground(widget.ColorWhite).
			Background(widget.ColorHighlight).
			Padding(0, 1)
)

const buttonLabel = "Submit"

// Config holds configuration for creating a new form Model.
type Config struct {
	// Label is shown above the input.
	Label string

	// Widget configures the autocomplete input. Its Router is set by the form.
	Widget widget.Config

	// MaxWidth caps the width reported to the widget; 0 means no cap.
	MaxWidth int

	// MarginTop is the number of blank rows drawn above the label.
	MarginTop int

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Model is the Bubble Tea model for the form.
type Model struct {
	label    string
	field    widget.Model
	router   *pointer.Router
	maxWidth int
	top      int
	result   Result
	logger   *zap.Logger
}

// New creates a new form. Call Close when the program has finished.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := pointer.NewRouter()

	widgetConfig := cfg.Widget
	widgetConfig.Router = router
	if widgetConfig.Logger == nil {
		widgetConfig.Logger = logger
	}

	top := cfg.MarginTop
	if top < 0 {
		top = 0
	}

	field := widget.New(widgetConfig)
	field.SetOrigin(top + fieldOffset)

	return Model{
		label:    cfg.Label,
		field:    field,
		router:   router,
		maxWidth: cfg.MaxWidth,
		top:      top,
		result:   Result{Type: ResultNone},
		logger:   logger,
	}
}

// The label takes the first line below the margin and the widget the next.
const fieldOffset = 1

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.field.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.maxWidth > 0 && msg.Width > m.maxWidth {
			msg.Width = m.maxWidth
		}
		return m.updateField(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case widget.SubmitMsg:
		return m.finish(Result{Type: ResultSubmit, Value: msg.Value})

	case widget.InterruptMsg:
		return m.finish(Result{Type: ResultInterrupt})

	case widget.CommitMsg:
		m.logger.Info("suggestion selected", zap.String("value", msg.Value))
		return m, nil
	}

	return m.updateField(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.result.Type {
	case ResultSubmit:
		return labelStyle.Render(m.label) + ": " + m.result.Value + "\n"
	case ResultInterrupt:
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", m.top))
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	b.WriteString(buttonStyle.Render(buttonLabel))
	b.WriteString("\n")
	return b.String()
}

// Result returns the current result. Check Type != ResultNone to see if complete.
func (m Model) Result() Result {
	return m.result
}

// Field returns the hosted widget (for testing).
func (m Model) Field() widget.Model {
	return m.field
}

// Close releases the widget's resources.
func (m Model) Close() {
	m.field.Close()
}

func (m Model) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.field.Update(msg)
	m.field = updated.(widget.Model)
	return m, cmd
}

// buttonRow is the screen row of the submit button for the current layout.
func (m Model) buttonRow() int {
	return m.top + fieldOffset + m.field.Height() + 1
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Measure before dispatching: closing the dropdown moves the button
	onButton := msg.Action == tea.MouseActionPress &&
		msg.Button == tea.MouseButtonLeft &&
		msg.Y == m.buttonRow() &&
		msg.X >= 0 && msg.X < lipgloss.Width(buttonStyle.Render(buttonLabel))

	cmd := m.router.Dispatch(msg)

	if onButton {
		return m.finish(Result{Type: ResultSubmit, Value: m.field.Value()})
	}
	return m, cmd
}

func (m Model) finish(result Result) (tea.Model, tea.Cmd) {
	m.result = result
	m.logger.Debug("form finished",
		zap.Int("type", int(result.Type)),
		zap.String("value", result.Value),
	)
	return m, tea.Quit
}
