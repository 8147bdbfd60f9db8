package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jotter/internal/tui/theme"
)

var (
	inputPromptStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	inputBoxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Primary).Padding(0, 1)
)

// TextInput is a single-line prompt with optional validation
type TextInput struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
}

// NewTextInput creates a focused text input prefilled with value
func NewTextInput(prompt, value string, validator func(string) error) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return &TextInput{Input: ti, Prompt: prompt, Validator: validator}
}

// Update returns (value, done, cancelled). done is set once enter passes
// validation; esc cancels.
func (m *TextInput) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if m.Validator != nil {
				if err := m.Validator(m.Value()); err != nil {
					m.Error = err.Error()
					return nil, false, false
				}
			}
			return nil, true, false
		case "esc":
			return nil, false, true
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.Error = ""
	return cmd, false, false
}

func (m *TextInput) View() string {
	var b strings.Builder
	b.WriteString(inputPromptStyle.Render(m.Prompt+": ") + m.Input.View() + "\n")
	if m.Error != "" {
		b.WriteString(theme.Error.Render("Error: "+m.Error) + "\n")
	}
	b.WriteString(theme.Muted.Render("[enter] confirm  [esc] cancel"))
	return inputBoxStyle.Width(m.Width).Render(b.String())
}

// Value returns the trimmed input
func (m *TextInput) Value() string {
	return strings.TrimSpace(m.Input.Value())
}

// SetWidth sets the outer box width
func (m *TextInput) SetWidth(w int) {
	m.Width = w - 4
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ") - 1
}
