package live

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user cancels a prompt with ctrl-c or esc.
var ErrInterrupted = errors.New("interrupted")

// promptModel asks for one line of input using a text field.
type promptModel struct {
	label     string
	input     textinput.Model
	validate  func(string) error
	err       error
	value     string
	done      bool
	cancelled bool
	noColor   bool
}

// newPromptModel builds a focused prompt. validate may be nil.
func newPromptModel(label, placeholder string, validate func(string) error, noColor bool) promptModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 60
	input.Focus()
	return promptModel{
		label:    label,
		input:    input,
		validate: validate,
		noColor:  noColor,
	}
}

// Init starts the cursor blink.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit, cancel and editing keys.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

// View renders the label, the field and the last validation error.
func (m promptModel) View() string {
	if m.done {
		return stylize(m.label, m.noColor, colorLabel) + " " + m.value + "\n"
	}
	if m.cancelled {
		return ""
	}
	view := stylize(m.label, m.noColor, colorLabel) + "\n" + m.input.View() + "\n"
	if m.err != nil {
		view += stylize(m.err.Error(), m.noColor, colorError) + "\n"
	}
	return view
}

// keyModel waits for any key press.
type keyModel struct {
	label     string
	pressed   bool
	cancelled bool
	noColor   bool
}

// Init waits for input.
func (m keyModel) Init() tea.Cmd { return nil }

// Update quits on the first key.
func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type == tea.KeyCtrlC {
			m.cancelled = true
		} else {
			m.pressed = true
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the pause hint until a key is pressed.
func (m keyModel) View() string {
	if m.pressed || m.cancelled {
		return ""
	}
	return stylize(m.label, m.noColor, colorMuted) + "\n"
}
