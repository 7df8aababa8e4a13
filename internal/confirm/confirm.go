package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// None stands in for the first record of an empty extraction.
const None = "<none>"

// ErrUserAborted is returned when the operator declines the prompt.
var ErrUserAborted = errors.New("user interruption: the process has been interrupted")

// ErrNotTerminal is wrapped in a PromptError when the prompt has no terminal
// to ask on.
var ErrNotTerminal = errors.New("stdin is not a terminal (use --yes to skip confirmation)")

// PromptError reports a failure of the prompt itself, as opposed to a "no".
type PromptError struct {
	Err error
}

func (e *PromptError) Error() string { return "confirmation prompt: " + e.Err.Error() }

func (e *PromptError) Unwrap() error { return e.Err }

// Summary describes both extractions for the operator.
type Summary struct {
	CountA int
	FirstA string
	CountB int
	FirstB string
}

// NewSummary builds a Summary from the source and destination values.
func NewSummary(a, b []string) Summary {
	return Summary{
		CountA: len(a),
		FirstA: first(a),
		CountB: len(b),
		FirstB: first(b),
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return None
	}
	return values[0]
}

func (s Summary) String() string {
	return fmt.Sprintf("src has %d records, first record: %s\ndst has %d records, first record: %s",
		s.CountA, s.FirstA, s.CountB, s.FirstB)
}

// Gate decides whether the run may proceed.
type Gate interface {
	Confirm(s Summary) (bool, error)
}

// Check asks g and converts a negative answer into ErrUserAborted. Prompt
// failures are returned unchanged.
func Check(g Gate, s Summary) error {
	ok, err := g.Confirm(s)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserAborted
	}
	return nil
}

type always bool

func (a always) Confirm(Summary) (bool, error) { return bool(a), nil }

// Always returns a Gate that gives answer without asking.
func Always(answer bool) Gate { return always(answer) }

// Prompt asks "Is this correct? [y/N]" and reads the answer from In. An empty
// answer means no.
type Prompt struct {
	In  io.Reader
	Out io.Writer
	// RequireTTY refuses to ask unless In is a terminal.
	RequireTTY bool
}

// NewPrompt returns a Prompt on the process's stdin and stderr.
func NewPrompt() *Prompt {
	return &Prompt{In: os.Stdin, Out: os.Stderr, RequireTTY: true}
}

// Confirm implements Gate.
func (p *Prompt) Confirm(s Summary) (bool, error) {
	if p.RequireTTY && !isTerminal(p.In) {
		return false, &PromptError{Err: ErrNotTerminal}
	}

	fmt.Fprintf(p.Out, "\n%s\n\n", s)
	r := bufio.NewReader(p.In)
	for {
		fmt.Fprint(p.Out, "Is this correct? [y/N] ")

		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return false, &PromptError{Err: err}
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.Out, "Please answer y or n.")
		if err != nil {
			return false, &PromptError{Err: err}
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
