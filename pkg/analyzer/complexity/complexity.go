// Package complexity flags tangled conditionals and functions whose
// cyclomatic estimate exceeds the project cutoff. The two checks emit
// independent suggestions for a file; they are never merged.
package complexity

import (
	"context"
	"fmt"

	"github.com/xkazm04/refract/pkg/analyzer"
	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
	"github.com/xkazm04/refract/pkg/requirement"
)

// Detector supplies the complexity findings for the scanner.
type Detector interface {
	HighConditionals(content string) []detector.Conditional
	ComplexFunctions(content string) []detector.Function
}

// Scanner emits complexity suggestions for a corpus.
type Scanner struct {
	det Detector
}

var _ analyzer.CategoryScanner = (*Scanner)(nil)

// Option is a functional option for configuring Scanner.
type Option func(*Scanner)

// WithDetector substitutes the default line-based detector.
func WithDetector(d Detector) Option {
	return func(s *Scanner) {
		s.det = d
	}
}

// New creates a complexity scanner with default detectors.
func New(opts ...Option) *Scanner {
	s := &Scanner{det: sourceDetector{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Category implements analyzer.CategoryScanner.
func (s *Scanner) Category() models.Category {
	return models.CategoryComplexity
}

// Scan evaluates every file independently.
func (s *Scanner) Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if sug, ok := s.conditionals(f); ok {
			suggestions = append(suggestions, sug)
		}
		if sug, ok := s.functions(f); ok {
			suggestions = append(suggestions, sug)
		}
	}
	return suggestions, nil
}

func (s *Scanner) conditionals(f models.FileAnalysis) (models.Suggestion, bool) {
	conds := s.det.HighConditionals(f.Content)
	if len(conds) == 0 {
		return models.Suggestion{}, false
	}

	lines := make([]int, len(conds))
	for i, c := range conds {
		lines[i] = c.Line
	}

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorSimplifyConditionals, f.Path),
		Type:  models.RefactorSimplifyConditionals,
		Title: "Simplify complex conditionals",
		Description: fmt.Sprintf("%s has %d conditionals combining three or more boolean operators.",
			f.Path, len(conds)),
		Category:     models.CategoryComplexity,
		Severity:     models.SeverityHigh,
		Effort:       models.EffortMedium,
		Impact:       models.ImpactHigh,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Extract compound conditions into named predicates and flatten nested branches with early returns.",
		RefactorSteps: []string{
			"Name each compound boolean expression as a predicate.",
			"Flatten nesting with early returns.",
		},
		CleanArchitecturePrinciple: "Keep It Simple",
		RequirementTemplate:        requirement.Generate(models.RefactorSimplifyConditionals, f.Path, lines),
	}, true
}

func (s *Scanner) functions(f models.FileAnalysis) (models.Suggestion, bool) {
	funcs := s.det.ComplexFunctions(f.Content)
	if len(funcs) == 0 {
		return models.Suggestion{}, false
	}

	lines := make([]int, len(funcs))
	for i, fn := range funcs {
		lines[i] = fn.StartLine
	}

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorReduceComplexity, f.Path),
		Type:  models.RefactorReduceComplexity,
		Title: "Reduce function complexity",
		Description: fmt.Sprintf("%s has %d functions over the cyclomatic complexity cutoff.",
			f.Path, len(funcs)),
		Category:     models.CategoryComplexity,
		Severity:     models.SeverityHigh,
		Effort:       models.EffortHigh,
		Impact:       models.ImpactHigh,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Split independent branches into separate functions and replace branch ladders with lookup tables.",
		RefactorSteps: []string{
			"Split independent branches into helpers.",
			"Replace branch ladders with data-driven dispatch where natural.",
			"Verify behavior is unchanged for every input.",
		},
		CleanArchitecturePrinciple: "Keep It Simple",
		RequirementTemplate:        requirement.Generate(models.RefactorReduceComplexity, f.Path, lines),
	}, true
}

// sourceDetector is the default Detector backed by the line-based
// estimators in pkg/detector.
type sourceDetector struct{}

func (sourceDetector) HighConditionals(content string) []detector.Conditional {
	return detector.HighConditionals(content)
}

func (sourceDetector) ComplexFunctions(content string) []detector.Function {
	return detector.ComplexFunctions(content, detector.DefaultComplexityCutoff)
}
