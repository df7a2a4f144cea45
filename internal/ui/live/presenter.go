// Package live implements an interactive terminal presenter built on Bubble Tea.
package live

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"sdjquiz/internal/session"
)

// Options configures the live presenter.
type Options struct {
	NoColor bool
}

// Presenter renders screens with lipgloss and runs one short Bubble Tea
// program per prompt.
type Presenter struct {
	in      io.Reader
	out     io.Writer
	noColor bool
	run     func(tea.Model) (tea.Model, error)
}

var _ session.Presenter = (*Presenter)(nil)

// New builds a live presenter reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Presenter {
	p := &Presenter{in: in, out: out, noColor: opts.NoColor}
	p.run = p.runProgram
	return p
}

func (p *Presenter) runProgram(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out))
	return program.Run()
}

// AskFilePath asks for the quiz file location.
func (p *Presenter) AskFilePath() (string, error) {
	fmt.Fprintln(p.out, stylizeBold("Welcome to SDJQUIZ", p.noColor, colorTitle))
	return p.ask("Enter the path to the quiz file", "quiz.yml", requireValue)
}

// Clear wipes the screen.
func (p *Presenter) Clear() error {
	_, err := io.WriteString(p.out, "\033[H\033[2J")
	return err
}

// Pause waits for any key.
func (p *Presenter) Pause() error {
	final, err := p.run(keyModel{label: "Press any key to continue...", noColor: p.noColor})
	if err != nil {
		return err
	}
	if model, ok := final.(keyModel); ok && model.cancelled {
		return ErrInterrupted
	}
	return nil
}

// ShowError prints an error line.
func (p *Presenter) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.out, renderError(err, p.noColor))
}

// ShowGreeting prints the quiz summary card.
func (p *Presenter) ShowGreeting(greeting session.Greeting) {
	fmt.Fprintln(p.out, renderGreeting(greeting, p.width(), p.noColor))
}

// AskQuestionCount asks how many questions to play; empty input keeps the default.
func (p *Presenter) AskQuestionCount(defaultCount int) (int, error) {
	label := fmt.Sprintf("How many questions do you want [%d]", defaultCount)
	value, err := p.ask(label, strconv.Itoa(defaultCount), validateCount)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return defaultCount, nil
	}
	return strconv.Atoi(value)
}

// ShowQuestion prints the question card.
func (p *Presenter) ShowQuestion(view session.QuestionView) {
	fmt.Fprintln(p.out, renderQuestion(view, p.width(), p.noColor))
}

// AskAnswer reads the raw selection. Validation stays with the engine so it
// can re-prompt with its own message.
func (p *Presenter) AskAnswer() (string, error) {
	return p.ask("Your answer (ie: 1 or 1,3,7)", "1", nil)
}

// ShowResult prints the outcome table and the final score.
func (p *Presenter) ShowResult(result session.Result) {
	fmt.Fprintln(p.out, renderResult(result, p.noColor))
	if table := renderResultTable(result, p.noColor); table != "" {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, table)
		fmt.Fprintln(p.out, renderSummary(summarize(result.Outcomes), p.noColor))
	}
}

func (p *Presenter) ask(label, placeholder string, validate func(string) error) (string, error) {
	final, err := p.run(newPromptModel(label, placeholder, validate, p.noColor))
	if err != nil {
		return "", err
	}
	model, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if model.cancelled {
		return "", ErrInterrupted
	}
	if !model.done {
		return "", io.EOF
	}
	return model.value, nil
}

// width returns the terminal width of out, or 0 when unknown.
func (p *Presenter) width() int {
	file, ok := p.out.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func requireValue(value string) error {
	if value == "" {
		return errors.New("a value is required")
	}
	return nil
}

func validateCount(value string) error {
	if value == "" {
		return nil
	}
	count, err := strconv.Atoi(value)
	if err != nil || count < 0 {
		return errors.New("please enter a number")
	}
	return nil
}
