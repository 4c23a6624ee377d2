package interactive

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/numanalyzer/internal/console"
)

// choicePrompt is shown under the numbered menu.
const choicePrompt = "Enter choice (1-7): "

// Selector obtains the next menu choice.
// It returns io.EOF when no more choices can be read.
type Selector interface {
	Select(ctx context.Context) (Choice, error)
}

// LineSelector prints the numbered menu and reads the choice as a line.
type LineSelector struct {
	out      io.Writer
	prompter *console.Prompter
	theme    *console.Theme
}

// NewLineSelector creates a LineSelector sharing the session's prompter.
func NewLineSelector(out io.Writer, prompter *console.Prompter, theme *console.Theme) *LineSelector {
	return &LineSelector{out: out, prompter: prompter, theme: theme}
}

// Select prints the menu and returns the parsed choice.
// Unknown input yields ChoiceInvalid and a nil error.
func (s *LineSelector) Select(ctx context.Context) (Choice, error) {
	if err := ctx.Err(); err != nil {
		return ChoiceInvalid, err
	}
	if _, err := io.WriteString(s.out, renderMenu(s.theme)); err != nil {
		return ChoiceInvalid, err
	}
	line, err := s.prompter.ReadLine(ctx, choicePrompt)
	if err != nil {
		return ChoiceInvalid, err
	}
	return ParseChoice(line), nil
}

// TeaSelector shows the menu as a bubbletea picker navigated with the
// arrow keys. Quitting the picker selects ChoiceExit.
type TeaSelector struct {
	in    io.Reader
	out   io.Writer
	theme *console.Theme
}

// NewTeaSelector creates a TeaSelector reading keys from in.
// in and out should be a terminal.
func NewTeaSelector(in io.Reader, out io.Writer, theme *console.Theme) *TeaSelector {
	return &TeaSelector{in: in, out: out, theme: theme}
}

// Select runs the picker until an entry is chosen or the picker is quit.
func (s *TeaSelector) Select(ctx context.Context) (Choice, error) {
	p := tea.NewProgram(
		newMenuModel(s.theme),
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	finalModel, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ChoiceInvalid, ctxErr
		}
		return ChoiceInvalid, fmt.Errorf("failed to show menu: %w", err)
	}

	result, ok := finalModel.(menuModel)
	if !ok || result.quitting {
		return ChoiceExit, nil
	}
	return result.chosen, nil
}
