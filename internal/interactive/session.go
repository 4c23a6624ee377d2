package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/numanalyzer/internal/analysis"
	"github.com/nao1215/numanalyzer/internal/config"
	"github.com/nao1215/numanalyzer/internal/console"
	"github.com/nao1215/numanalyzer/internal/model"
	"github.com/nao1215/numanalyzer/internal/report"
)

// Fixed session texts.
const (
	GoodbyeMessage       = "👋 Thanks for using Number Analyzer! Stay curious!"
	InvalidChoiceMessage = "Invalid choice! Try again."
	ContinuePrompt       = "Press Enter to continue..."
)

// Session runs the interactive menu loop.
type Session struct {
	out      io.Writer
	cfg      *config.Config
	theme    *console.Theme
	prompter *console.Prompter
	picker   *console.Picker
	selector Selector
	logger   *slog.Logger
	format   report.NumberFormatter
}

// Option configures a Session.
type Option func(*Session)

// WithConfig sets the configuration. The default is config.NewConfig().
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithTheme sets the output theme. The default is unstyled.
func WithTheme(theme *console.Theme) Option {
	return func(s *Session) {
		if theme != nil {
			s.theme = theme
		}
	}
}

// WithPicker sets the motivational message picker.
func WithPicker(p *console.Picker) Option {
	return func(s *Session) {
		if p != nil {
			s.picker = p
		}
	}
}

// WithSelector replaces the line-based menu selector.
func WithSelector(sel Selector) Option {
	return func(s *Session) {
		if sel != nil {
			s.selector = sel
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a Session reading answers from in and writing to out.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		out:    out,
		cfg:    config.NewConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.theme == nil {
		s.theme = console.PlainTheme(out)
	}
	if s.picker == nil {
		s.picker = console.NewPicker(s.cfg.Messages)
	}
	s.prompter = console.NewPrompter(in, out, s.theme)
	if s.selector == nil {
		s.selector = NewLineSelector(out, s.prompter, s.theme)
	}
	s.format = report.NewNumberFormatter(s.cfg.GroupDigits)

	return s
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// End of input is a normal exit and returns nil; cancellation returns
// ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	for {
		choice, err := s.selector.Select(ctx)
		if err != nil {
			return s.finish(err)
		}
		s.logger.Debug("menu choice", "choice", int(choice))

		if choice == ChoiceExit {
			return s.finish(nil)
		}

		if choice == ChoiceInvalid {
			if err := s.prompter.Errorln(InvalidChoiceMessage); err != nil {
				return err
			}
		} else if err := s.runAction(ctx, choice); err != nil {
			return s.finish(err)
		}

		if err := s.prompter.WaitForEnter(ctx, "\n"+s.theme.Highlight(ContinuePrompt)); err != nil {
			return s.finish(err)
		}
	}
}

// finish prints the goodbye line and maps end of input to a clean exit.
func (s *Session) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if _, werr := fmt.Fprintln(s.out, s.theme.Success(GoodbyeMessage)); werr != nil {
		return werr
	}
	return nil
}

// runAction runs one menu action and then shows a motivational message.
func (s *Session) runAction(ctx context.Context, choice Choice) error {
	var err error
	switch choice {
	case ChoiceAnalyze:
		err = s.comprehensiveAnalysis(ctx)
	case ChoicePrime:
		err = s.checkInteger(ctx, "\nEnter an integer to check: ",
			analysis.IsPrime, "Prime!", "Not Prime!")
	case ChoiceArmstrong:
		err = s.checkInteger(ctx, "\nEnter an integer: ",
			analysis.IsArmstrong, "✨ Armstrong Number!", "Not Armstrong.")
	case ChoicePerfect:
		err = s.checkInteger(ctx, "\nEnter an integer: ",
			analysis.IsPerfect, "⭐ Perfect Number!", "Not Perfect.")
	case ChoicePrimeRange:
		err = s.primeRange(ctx)
	case ChoiceGCD:
		err = s.gcdLCM(ctx)
	default:
		return fmt.Errorf("unknown menu choice %d", int(choice))
	}
	if err != nil {
		return err
	}

	return s.motivate()
}

func (s *Session) motivate() error {
	if s.cfg.Quiet {
		return nil
	}
	_, err := fmt.Fprintln(s.out, "\n"+s.theme.Info(s.picker.Pick()))
	return err
}

func (s *Session) simpleWriter() *report.SimpleWriter {
	return report.NewSimpleWriter(s.out,
		report.WithStyler(s.theme),
		report.WithNumberFormatter(s.format),
		report.WithShowInput(false),
	)
}

func (s *Session) comprehensiveAnalysis(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.out, "\n"+s.theme.Title("========== COMPREHENSIVE NUMBER ANALYSIS ==========")); err != nil {
		return err
	}

	n, err := s.prompter.ReadNumber(ctx, "Enter any number: ")
	if err != nil {
		return err
	}
	s.logger.Debug("analyzing", "number", n.String(), "kind", n.Kind().String())

	_, err = s.simpleWriter().Write(analysis.AnalyzeNumber(n.String(), n))
	return err
}

// checkInteger reads an integer and prints yes or no for one predicate.
func (s *Session) checkInteger(ctx context.Context, prompt string, check func(model.Number) bool, yes, no string) error {
	v, err := s.prompter.ReadInteger(ctx, prompt)
	if err != nil {
		return err
	}

	line := s.theme.Failure(no)
	if check(model.Int(v)) {
		line = s.theme.Success(yes)
	}
	_, err = fmt.Fprintln(s.out, line)
	return err
}

func (s *Session) primeRange(ctx context.Context) error {
	start, err := s.prompter.ReadInteger(ctx, "Start: ")
	if err != nil {
		return err
	}
	end, err := s.prompter.ReadInteger(ctx, "End: ")
	if err != nil {
		return err
	}

	if err := s.cfg.CheckRange(start, end); err != nil {
		s.logger.Debug("range rejected", "start", start, "end", end, "error", err)
		return s.prompter.Errorln("❌ " + err.Error())
	}

	if _, err := fmt.Fprintln(s.out); err != nil {
		return err
	}
	_, err = s.simpleWriter().WritePrimes(analysis.PrimesInRange(start, end))
	return err
}

func (s *Session) gcdLCM(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.out, "\n"+s.theme.Title("GCD & LCM CALCULATOR")); err != nil {
		return err
	}

	a, err := s.prompter.ReadInteger(ctx, "Enter first number: ")
	if err != nil {
		return err
	}
	b, err := s.prompter.ReadInteger(ctx, "Enter second number: ")
	if err != nil {
		return err
	}

	_, err = s.simpleWriter().WriteDivisibility(analysis.Divide(a, b))
	return err
}
