package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestLinePrompterAsk(t *testing.T) {
	t.Run("writes question verbatim and strips only the terminator", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("  1.0.0 \r\ny\n"), &out)

		answer, err := p.Ask(context.Background(), "Which version? ")
		require.NoError(t, err)
		require.Equal(t, "  1.0.0 ", answer)

		answer, err = p.Ask(context.Background(), "Continue? (y/n) ")
		require.NoError(t, err)
		require.Equal(t, "y", answer)

		require.Equal(t, "Which version? Continue? (y/n) ", out.String())
	})

	t.Run("empty line is a valid answer", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("\n"), io.Discard)
		answer, err := p.Ask(context.Background(), "Press Enter ")
		require.NoError(t, err)
		require.Equal(t, "", answer)
	})

	t.Run("final unterminated line is returned", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("2.0.0"), io.Discard)
		answer, err := p.Ask(context.Background(), "? ")
		require.NoError(t, err)
		require.Equal(t, "2.0.0", answer)
	})

	t.Run("exhausted input returns EOF", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader(""), io.Discard)
		_, err := p.Ask(context.Background(), "? ")
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("canceled context is reported before reading", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewLinePrompter(strings.NewReader("x\n"), io.Discard).Ask(ctx, "? ")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"auto", "line", "survey", "tui"} {
		mode, err := ParseMode(name)
		require.NoError(t, err)
		require.Equal(t, Mode(name), mode)
	}

	mode, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeAuto, mode)

	_, err = ParseMode("gui")
	require.Error(t, err)
}

func TestNewSelectsImplementation(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	p, err := New(ModeAuto, in, &out)
	require.NoError(t, err)
	require.IsType(t, &LinePrompter{}, p, "buffers are never terminals")

	p, err = New(ModeSurvey, in, &out)
	require.NoError(t, err)
	require.IsType(t, &SurveyPrompter{}, p)

	p, err = New(ModeTUI, in, &out)
	require.NoError(t, err)
	require.IsType(t, &TeaPrompter{}, p)

	_, err = New(Mode("bogus"), in, &out)
	require.Error(t, err)
}

func TestTerminalPromptersHonorNoInteractive(t *testing.T) {
	t.Setenv("GRELEASE_TEST_NO_INTERACTIVE", "1")

	_, err := NewSurveyPrompter().Ask(context.Background(), "? ")
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = NewTeaPrompter(strings.NewReader(""), io.Discard).Ask(context.Background(), "? ")
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}

func TestTextInputModel(t *testing.T) {
	t.Run("enter submits typed value", func(t *testing.T) {
		var m tea.Model = newTextInputModel("Which version? ")
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1.2.3")})
		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)

		final := m.(textInputModel)
		require.True(t, final.done)
		require.NoError(t, final.err)
		require.Equal(t, "1.2.3", final.textInput.Value())
		require.Empty(t, final.View())
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		var m tea.Model = newTextInputModel("Which version? ")
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.ErrorIs(t, m.(textInputModel).err, ErrCanceled)
	})

	t.Run("view shows trimmed question", func(t *testing.T) {
		m := newTextInputModel("Which version? (Last release: ---) ")
		require.Contains(t, m.View(), "Which version? (Last release: ---)")
	})
}
