package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nao1215/numanalyzer/internal/analysis"
	"github.com/nao1215/numanalyzer/internal/console"
	"github.com/nao1215/numanalyzer/internal/model"
	"github.com/nao1215/numanalyzer/internal/report"
	"github.com/spf13/cobra"
)

// ErrUnknownProperty is returned when check is given a property it does
// not know.
var ErrUnknownProperty = errors.New("unknown property")

// propertyCheck pairs a special property predicate with its label.
type propertyCheck struct {
	label string
	test  func(model.Number) bool
}

// propertyChecks maps the check command's property names to predicates.
var propertyChecks = map[string]propertyCheck{
	"prime":      {label: model.LabelPrime, test: analysis.IsPrime},
	"armstrong":  {label: model.LabelArmstrong, test: analysis.IsArmstrong},
	"perfect":    {label: model.LabelPerfect, test: analysis.IsPerfect},
	"fibonacci":  {label: model.LabelFibonacci, test: analysis.IsFibonacci},
	"palindrome": {label: model.LabelPalindrome, test: analysis.IsPalindrome},
	"square":     {label: model.LabelPerfectSquare, test: analysis.IsPerfectSquare},
	"cube":       {label: model.LabelPerfectCube, test: analysis.IsPerfectCube},
}

// propertyNames returns the check property names in sorted order.
func propertyNames() []string {
	names := make([]string, 0, len(propertyChecks))
	for name := range propertyChecks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <property> <number>",
		Short: "Test a single special property of a number",
		Long: `Check tests whether one special property holds for a number.

Properties: ` + strings.Join(propertyNames(), ", ") + `

Every property except palindrome holds only for integers.

Examples:
  numanalyzer check prime 97
  numanalyzer check perfect 28
  numanalyzer check palindrome 12.21`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: propertyNames(),
		RunE:      runCheckCmd,
	}
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	name := strings.ToLower(args[0])
	check, ok := propertyChecks[name]
	if !ok {
		return fmt.Errorf("%w %q (want one of: %s)", ErrUnknownProperty, args[0], strings.Join(propertyNames(), ", "))
	}

	n, err := model.ParseNumber(args[1])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[1], err)
	}

	holds := check.test(n)
	logger.Debug("property checked", "property", name, "input", args[1], "holds", holds)

	out := cmd.OutOrStdout()
	theme := console.NewTheme(out, cfg.Color)
	value := report.NewNumberFormatter(cfg.GroupDigits).Number(n)
	if holds {
		_, err = fmt.Fprintf(out, "%s %s is %s %s\n", theme.Success("✓"), value, article(check.label), check.label)
	} else {
		_, err = fmt.Fprintf(out, "%s %s is not %s %s\n", theme.Failure("✗"), value, article(check.label), check.label)
	}
	return err
}

// article returns the indefinite article for label.
func article(label string) string {
	if label != "" && strings.ContainsRune("AEIOU", rune(label[0])) {
		return "an"
	}
	return "a"
}
