// Package widget provides the autocomplete input as a Bubble Tea component:
// a text field with a dropdown of prefix matches that can be driven by the
// keyboard or the mouse.
package widget

import (
	"strings"

	"github.com/atinylittleshell/autocomplete/internal/pointer"
	"github.com/atinylittleshell/autocomplete/internal/suggest"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SubmitMsg is emitted when Enter is pressed while the dropdown is closed.
type SubmitMsg struct {
	Value string
}

// InterruptMsg is emitted when the user abandons input (Ctrl+C).
type InterruptMsg struct{}

// CommitMsg is emitted after a suggestion has been written into the input.
type CommitMsg struct {
	Value string
}

// Config holds configuration for creating a new Model.
type Config struct {
	// Prompt is the prompt string shown before the text.
	Prompt string

	// Placeholder is shown while the input is empty.
	Placeholder string

	// Candidates is the list suggestions are drawn from.
	Candidates []string

	// Width is the initial terminal width.
	Width int

	// KeyMap provides key bindings. If nil, DefaultKeyMap is used.
	KeyMap *KeyMap

	// RenderConfig provides styling. If nil, DefaultRenderConfig is used.
	RenderConfig *RenderConfig

	// Router delivers mouse events. If nil, the widget ignores the mouse.
	Router *pointer.Router

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// bounds is where the widget was last laid out on screen.
type bounds struct {
	// origin is the screen row of the input line
	origin int
	width  int
}

// Model is the Bubble Tea model for the autocomplete widget. Its state lives
// behind pointers so that copies made by Update and the mouse subscription
// all see the same input.
type Model struct {
	input    *textinput.Model
	session  *suggest.Session
	keymap   *KeyMap
	renderer *Renderer
	bounds   *bounds

	unsubscribe func()

	logger *zap.Logger
}

// New creates a new widget Model with the given configuration. When a Router
// is configured the widget subscribes to it; call Close to release it.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keymap := cfg.KeyMap
	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	renderConfig := cfg.RenderConfig
	if renderConfig == nil {
		defaultConfig := DefaultRenderConfig()
		renderConfig = &defaultConfig
	}

	width := cfg.Width
	if width <= 0 {
		width = 80
	}

	input := textinput.New()
	input.Prompt = cfg.Prompt
	input.Placeholder = cfg.Placeholder
	input.PromptStyle = renderConfig.PromptStyle
	input.TextStyle = renderConfig.TextStyle
	input.PlaceholderStyle = renderConfig.PlaceholderStyle
	input.Focus()

	renderer := NewRenderer(*renderConfig)
	renderer.SetWidth(width)

	m := Model{
		input:       &input,
		session:     suggest.NewSession(cfg.Candidates),
		keymap:      keymap,
		renderer:    renderer,
		bounds:      &bounds{width: width},
		unsubscribe: func() {},
		logger:      logger,
	}

	if cfg.Router != nil {
		m.unsubscribe = cfg.Router.Subscribe(m.handleMouse)
	}

	return m
}

// Init implements tea.Model. It starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. It handles all input events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil

	case tea.BlurMsg:
		m.closeSuggestions("focus lost")
		return m, nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m.handleKeyMsg(msg)

	case pasteMsg:
		return m.handlePaste(string(msg))
	}

	return m.updateInput(msg)
}

// View implements tea.Model. It renders the input line and, when open, the
// suggestion rows below it.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())

	dropdown := m.renderer.RenderDropdown(m.session.Rows(), len(m.session.Candidates()))
	if dropdown != "" {
		b.WriteString("\n")
		b.WriteString(dropdown)
	}
	return b.String()
}

// Close releases the widget's mouse subscription.
func (m Model) Close() {
	m.unsubscribe()
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the input text and rebuilds the suggestions.
func (m *Model) SetValue(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.session.SetQuery(m.input.Value())
}

// SetCandidates replaces the candidate list. A closed dropdown stays closed
// until the text changes.
func (m *Model) SetCandidates(candidates []string) {
	m.session.SetCandidates(candidates)
}

// Session returns the suggestion state (for testing).
func (m Model) Session() *suggest.Session {
	return m.session
}

// Focus gives the widget keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus and closes the suggestions.
func (m *Model) Blur() {
	m.input.Blur()
	m.closeSuggestions("blurred")
}

// Focused returns whether the widget has keyboard focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetOrigin records the screen row the input line is drawn on.
func (m *Model) SetOrigin(row int) {
	m.bounds.origin = row
}

// SetWidth sets the terminal width.
func (m *Model) SetWidth(width int) {
	if width <= 0 {
		return
	}
	m.bounds.width = width
	m.renderer.SetWidth(width)
}

// Height returns the number of lines View produces.
func (m Model) Height() int {
	if !m.session.IsOpen() {
		return 1
	}
	// input line + rows + footer
	return 1 + len(m.session.Suggestions()) + 1
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Lookup(msg) {
	case ActionNext:
		m.session.Next()
		return m, nil

	case ActionPrevious:
		m.session.Previous()
		return m, nil

	case ActionSelect:
		if active, ok := m.session.Active(); ok {
			return m, m.commit(active)
		}
		if m.session.IsOpen() {
			return m, nil
		}
		value := m.input.Value()
		return m, func() tea.Msg { return SubmitMsg{Value: value} }

	case ActionClose:
		m.closeSuggestions("escape")
		return m, nil

	case ActionInterrupt:
		return m, func() tea.Msg { return InterruptMsg{} }

	case ActionPaste:
		return m, Paste
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the text input and re-filters if the text changed.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()

	updated, cmd := m.input.Update(msg)
	*m.input = updated

	if after := updated.Value(); after != before {
		m.session.SetQuery(after)
		m.logger.Debug("suggestions updated",
			zap.String("query", after),
			zap.Int("matches", len(m.session.Suggestions())),
		)
	}
	return m, cmd
}

// handlePaste inserts pasted text at the cursor.
func (m Model) handlePaste(text string) (tea.Model, tea.Cmd) {
	pasted := sanitizeRunes([]rune(text))
	if len(pasted) == 0 {
		return m, nil
	}

	runes := []rune(m.input.Value())
	pos := m.input.Position()
	if pos > len(runes) {
		pos = len(runes)
	}

	result := make([]rune, 0, len(runes)+len(pasted))
	result = append(result, runes[:pos]...)
	result = append(result, pasted...)
	result = append(result, runes[pos:]...)

	m.input.SetValue(string(result))
	m.input.SetCursor(pos + len(pasted))
	m.session.SetQuery(m.input.Value())

	m.logger.Debug("pasted into input", zap.Int("runes", len(pasted)))
	return m, nil
}

// handleMouse is the widget's pointer subscription. A left press on a
// suggestion commits it; a press outside the widget closes the dropdown.
func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	row := msg.Y - m.bounds.origin
	inside := row >= 0 && row < m.Height() && msg.X >= 0 && msg.X < m.bounds.width
	if !inside {
		m.closeSuggestions("outside click")
		return nil
	}

	suggestions := m.session.Suggestions()
	if row >= 1 && row <= len(suggestions) {
		return m.commit(suggestions[row-1])
	}
	return nil
}

// commit writes value into the input and closes the dropdown.
func (m Model) commit(value string) tea.Cmd {
	if !m.session.Commit(value) {
		return nil
	}
	m.input.SetValue(value)
	m.input.CursorEnd()

	m.logger.Debug("suggestion committed", zap.String("value", value))
	return func() tea.Msg { return CommitMsg{Value: value} }
}

func (m Model) closeSuggestions(reason string) {
	if !m.session.IsOpen() {
		return
	}
	m.session.Close()
	m.logger.Debug("suggestions closed", zap.String("reason", reason))
}

// pasteMsg is sent when paste content is available.
type pasteMsg string

// Paste returns a command that reads from the clipboard.
func Paste() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return pasteMsg(str)
}

// sanitizeRunes replaces tabs and newlines with spaces.
func sanitizeRunes(runes []rune) []rune {
	result := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '\t', '\n', '\r':
			result[i] = ' '
		default:
			result[i] = r
		}
	}
	return result
}
