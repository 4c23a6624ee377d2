package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/numanalyzer/internal/model"
)

// Re-prompt messages shown when input does not parse.
const (
	InvalidNumberMessage  = "❌ Invalid number. Try again."
	InvalidIntegerMessage = "❌ Invalid input. Please enter an integer."
)

// lineResult is the outcome of one line read.
type lineResult struct {
	line string
	err  error
}

// Prompter reads answers to prompts line by line.
// Prompts and error lines go to the output writer; nothing is written to
// the input side. A Prompter is not safe for concurrent use.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	theme  *Theme

	// pending holds the read still in flight after a cancelled ReadLine.
	// Only one read runs at a time, so no input is consumed ahead of a
	// prompt.
	pending chan lineResult
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
// If theme is nil, output is unstyled.
func NewPrompter(in io.Reader, out io.Writer, theme *Theme) *Prompter {
	if theme == nil {
		theme = PlainTheme(out)
	}
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		theme:  theme,
	}
}

// ReadLine writes prompt and returns the next line with surrounding
// whitespace removed. A final line without a newline is returned normally;
// io.EOF is returned only when no input is left. If ctx is done before a
// line arrives, ReadLine returns ctx.Err() and the line is kept for the
// next call.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", err
		}
	}

	if p.pending == nil {
		ch := make(chan lineResult, 1)
		p.pending = ch
		go func() {
			line, err := p.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	var r lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-p.pending:
		p.pending = nil
	}

	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimSpace(r.line), nil
		}
		return "", r.err
	}
	return strings.TrimSpace(r.line), nil
}

// ReadNumber prompts until the answer parses as a Number.
// It returns io.EOF when input runs out and ctx.Err() once ctx is done.
func (p *Prompter) ReadNumber(ctx context.Context, prompt string) (model.Number, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.Number{}, err
		}

		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return model.Number{}, err
		}

		n, err := model.ParseNumber(line)
		if err == nil {
			return n, nil
		}
		if err := p.Errorln(InvalidNumberMessage); err != nil {
			return model.Number{}, err
		}
	}
}

// ReadInteger prompts until the answer parses as an integer.
// "12.0" is accepted; "12.5" is re-prompted.
func (p *Prompter) ReadInteger(ctx context.Context, prompt string) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		v, err := model.ParseInteger(line)
		if err == nil {
			return v, nil
		}
		if err := p.Errorln(InvalidIntegerMessage); err != nil {
			return 0, err
		}
	}
}

// WaitForEnter writes prompt and consumes one line.
// Reaching the end of input is reported as io.EOF.
func (p *Prompter) WaitForEnter(ctx context.Context, prompt string) error {
	_, err := p.ReadLine(ctx, prompt)
	return err
}

// Errorln writes msg as a styled error line.
func (p *Prompter) Errorln(msg string) error {
	_, err := fmt.Fprintln(p.out, p.theme.Failure(msg))
	return err
}
