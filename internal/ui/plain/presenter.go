// Package plain implements a line oriented terminal presenter.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"sdjquiz/internal/session"
	"sdjquiz/internal/ui"
)

// Options configures the plain presenter.
type Options struct {
	NoColor bool
}

// Presenter writes prompts and screens as plain lines and reads answers line
// by line. It is used when stdout is not a terminal or the live UI is off.
type Presenter struct {
	in      io.Reader
	reader  *bufio.Reader
	out     io.Writer
	heading *color.Color
	muted   *color.Color
	errText *color.Color
	good    *color.Color
	bad     *color.Color
}

var _ session.Presenter = (*Presenter)(nil)

// New builds a presenter reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Presenter {
	p := &Presenter{
		in:      in,
		reader:  bufio.NewReader(in),
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		muted:   color.New(color.FgHiBlack),
		errText: color.New(color.FgRed),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgYellow),
	}
	if opts.NoColor || !isTerminal(out) {
		for _, c := range []*color.Color{p.heading, p.muted, p.errText, p.good, p.bad} {
			c.DisableColor()
		}
	}
	return p
}

// AskFilePath asks for the quiz file location.
func (p *Presenter) AskFilePath() (string, error) {
	fmt.Fprintln(p.out, "Welcome to SDJQUIZ...")
	return promptString(p.reader, p.out, "Enter the path to the quiz file")
}

// Clear wipes the screen when writing to a terminal.
func (p *Presenter) Clear() error {
	if !isTerminal(p.out) {
		return nil
	}
	_, err := io.WriteString(p.out, "\033[H\033[2J")
	return err
}

// Pause waits for a key press on a terminal, or for a line otherwise.
func (p *Presenter) Pause() error {
	fmt.Fprintln(p.out)
	p.muted.Fprint(p.out, "Press ENTER to continue...")
	if file, ok := p.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) && p.reader.Buffered() == 0 {
		err := readKey(file)
		fmt.Fprintln(p.out)
		return err
	}
	_, err := readLine(p.reader)
	fmt.Fprintln(p.out)
	if err == io.EOF {
		return nil
	}
	return err
}

// ShowError prints an error line.
func (p *Presenter) ShowError(err error) {
	if err == nil {
		return
	}
	p.errText.Fprintf(p.out, "ERROR: %v\n", err)
}

// ShowGreeting prints the quiz summary.
func (p *Presenter) ShowGreeting(greeting session.Greeting) {
	p.heading.Fprintf(p.out, "Welcome to the quiz: %s\n", ui.TitleCase(greeting.Title))
	fmt.Fprintf(p.out, "Description: %s\n", ui.TitleCase(greeting.Description))
	fmt.Fprintf(p.out, "Number of questions: %d\n", greeting.QuestionsCount)
	fmt.Fprintf(p.out, "Maximum score: %d\n\n", greeting.MaxScore)
}

// AskQuestionCount asks how many questions to play; empty input keeps the default.
func (p *Presenter) AskQuestionCount(defaultCount int) (int, error) {
	return promptCount(p.reader, p.out, "How many questions do you want", defaultCount)
}

// ShowQuestion prints the question and its numbered answers.
func (p *Presenter) ShowQuestion(view session.QuestionView) {
	p.heading.Fprintf(p.out, "----[ %s ]----\n", ui.QuestionHeader(view))
	fmt.Fprintln(p.out, view.Text)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, ui.SelectHint(view))
	for i, answer := range view.Answers {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, answer)
	}
	fmt.Fprintln(p.out)
}

// AskAnswer reads the raw selection line.
func (p *Presenter) AskAnswer() (string, error) {
	fmt.Fprint(p.out, "Your answer (ie: 1 or 1,3,7): ")
	line, err := readLine(p.reader)
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

// ShowResult prints the final score and a line per question.
func (p *Presenter) ShowResult(result session.Result) {
	p.heading.Fprintf(p.out, "Your result for quiz : %s\n\n", ui.TitleCase(result.Title))
	for i, outcome := range result.Outcomes {
		mark := p.bad
		if outcome.Correct {
			mark = p.good
		}
		fmt.Fprintf(p.out, "%3d. %s ", i+1, outcome.Title)
		mark.Fprintln(p.out, ui.OutcomeMark(outcome))
	}
	if len(result.Outcomes) > 0 {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, ui.ScoreLine(result))
}

// isTerminal reports whether a writer is a TTY.
func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// readKey reads a single key press in raw mode.
func readKey(file *os.File) error {
	state, err := term.MakeRaw(int(file.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(int(file.Fd()), state)
	buf := make([]byte, 1)
	if _, err := file.Read(buf); err != nil {
		return err
	}
	// ctrl-c arrives as a byte in raw mode
	if buf[0] == 3 {
		return ErrInterrupted
	}
	return nil
}
