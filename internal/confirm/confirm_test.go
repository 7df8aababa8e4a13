package confirm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	s := NewSummary([]string{"p/1", "p/2"}, nil)

	assert.Equal(t, Summary{CountA: 2, FirstA: "p/1", CountB: 0, FirstB: None}, s)
	assert.Equal(t,
		"src has 2 records, first record: p/1\ndst has 0 records, first record: <none>",
		s.String())
}

func TestCheck(t *testing.T) {
	s := NewSummary([]string{"a"}, []string{"b"})

	assert.NoError(t, Check(Always(true), s))
	assert.ErrorIs(t, Check(Always(false), s), ErrUserAborted)

	failing := gateFunc(func(Summary) (bool, error) {
		return false, &PromptError{Err: io.ErrUnexpectedEOF}
	})
	err := Check(failing, s)
	var pe *PromptError
	require.True(t, errors.As(err, &pe))
	assert.NotErrorIs(t, err, ErrUserAborted)
}

func TestPrompt_Answers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"long yes", "YES\n", true},
		{"yes without newline", "y", true},
		{"no", "n\n", false},
		{"default is no", "\n", false},
		{"retry after invalid", "maybe\nyes\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Prompt{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.Confirm(NewSummary([]string{"a"}, []string{"b"}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Is this correct? [y/N]")
			assert.Contains(t, out.String(), "src has 1 records, first record: a")
		})
	}
}

func TestPrompt_RetryMessage(t *testing.T) {
	var out bytes.Buffer
	p := &Prompt{In: strings.NewReader("maybe\nn\n"), Out: &out}

	got, err := p.Confirm(Summary{})
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "Please answer y or n.")
}

func TestPrompt_EOFIsPromptError(t *testing.T) {
	for _, input := range []string{"", "maybe"} {
		p := &Prompt{In: strings.NewReader(input), Out: io.Discard}

		_, err := p.Confirm(Summary{})
		var pe *PromptError
		require.True(t, errors.As(err, &pe), "input %q: got %v", input, err)
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestPrompt_RequiresTerminal(t *testing.T) {
	p := &Prompt{In: strings.NewReader("y\n"), Out: io.Discard, RequireTTY: true}

	_, err := p.Confirm(Summary{})
	assert.ErrorIs(t, err, ErrNotTerminal)
}

type gateFunc func(Summary) (bool, error)

func (f gateFunc) Confirm(s Summary) (bool, error) { return f(s) }
