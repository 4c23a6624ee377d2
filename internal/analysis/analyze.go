package analysis

import (
	"strings"

	"github.com/nao1215/numanalyzer/internal/model"
)

// Analyze parses raw user input and computes the comprehensive report.
// The only errors are the parse errors of model.ParseNumber.
func Analyze(input string) (*model.Report, error) {
	n, err := model.ParseNumber(input)
	if err != nil {
		return nil, err
	}
	return AnalyzeNumber(strings.TrimSpace(input), n), nil
}

// AnalyzeNumber computes the comprehensive report for an already parsed value.
func AnalyzeNumber(input string, n model.Number) *model.Report {
	return &model.Report{
		Input:   input,
		Kind:    n.Kind(),
		Basic:   BasicProperties(n),
		Special: SpecialProperties(n),
	}
}
