// Package coupling flags files with excessive or dead import surfaces.
package coupling

import (
	"context"
	"fmt"

	"github.com/xkazm04/refract/pkg/analyzer"
	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
	"github.com/xkazm04/refract/pkg/requirement"
)

// Detector supplies the import census for the scanner.
type Detector interface {
	Imports(content string) []detector.Import
	UnusedImports(content string) []detector.Import
}

// Thresholds are the trigger cutoffs for coupling suggestions.
type Thresholds struct {
	// ImportTrigger emits a high-coupling suggestion above this many
	// imports; ImportHigh escalates severity.
	ImportTrigger int
	ImportHigh    int
}

// DefaultThresholds returns the documented trigger cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ImportTrigger: 15,
		ImportHigh:    25,
	}
}

// Scanner emits coupling suggestions for a corpus.
type Scanner struct {
	det        Detector
	thresholds Thresholds
}

var _ analyzer.CategoryScanner = (*Scanner)(nil)

// Option is a functional option for configuring Scanner.
type Option func(*Scanner)

// WithDetector substitutes the default import detector.
func WithDetector(d Detector) Option {
	return func(s *Scanner) {
		s.det = d
	}
}

// WithThresholds sets custom trigger cutoffs.
func WithThresholds(t Thresholds) Option {
	return func(s *Scanner) {
		s.thresholds = t
	}
}

// New creates a coupling scanner with default detectors and cutoffs.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		det:        sourceDetector{},
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Category implements analyzer.CategoryScanner.
func (s *Scanner) Category() models.Category {
	return models.CategoryCoupling
}

// Scan evaluates every file independently. High coupling and unused
// imports are separate suggestions; a file can trigger both.
func (s *Scanner) Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if sug, ok := s.highCoupling(f); ok {
			suggestions = append(suggestions, sug)
		}
		if sug, ok := s.unusedImports(f); ok {
			suggestions = append(suggestions, sug)
		}
	}
	return suggestions, nil
}

func (s *Scanner) highCoupling(f models.FileAnalysis) (models.Suggestion, bool) {
	imports := s.det.Imports(f.Content)
	if len(imports) <= s.thresholds.ImportTrigger {
		return models.Suggestion{}, false
	}

	severity := models.SeverityMedium
	if len(imports) >= s.thresholds.ImportHigh {
		severity = models.SeverityHigh
	}

	lines := importLines(imports)
	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorReduceCoupling, f.Path),
		Type:  models.RefactorReduceCoupling,
		Title: "Reduce module coupling",
		Description: fmt.Sprintf("%s imports %d modules, coupling it to much of the codebase.",
			f.Path, len(imports)),
		Category:     models.CategoryCoupling,
		Severity:     severity,
		Effort:       models.EffortHigh,
		Impact:       models.ImpactHigh,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Split responsibilities so the file needs fewer collaborators, and invert concrete dependencies behind interfaces.",
		RefactorSteps: []string{
			"Group the imports by the responsibility they serve.",
			"Move responsibilities with their dependencies into separate modules.",
			"Introduce narrow interfaces for the dependencies that remain.",
		},
		CleanArchitecturePrinciple: "Dependency Inversion Principle",
		RequirementTemplate:        requirement.Generate(models.RefactorReduceCoupling, f.Path, lines),
	}, true
}

func (s *Scanner) unusedImports(f models.FileAnalysis) (models.Suggestion, bool) {
	unused := s.det.UnusedImports(f.Content)
	if len(unused) == 0 {
		return models.Suggestion{}, false
	}

	lines := importLines(unused)
	names := make([]string, len(unused))
	for i, imp := range unused {
		names[i] = imp.Name
	}

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorRemoveUnusedImports, f.Path),
		Type:  models.RefactorRemoveUnusedImports,
		Title: "Remove unused imports",
		Description: fmt.Sprintf("%s imports %d bindings it never uses: %s.",
			f.Path, len(unused), joinLimited(names, 5)),
		Category:     models.CategoryCoupling,
		Severity:     models.SeverityLow,
		Effort:       models.EffortLow,
		Impact:       models.ImpactLow,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Delete the unused import bindings.",
		RefactorSteps: []string{
			"Remove each unreferenced import binding.",
			"Keep intentional side-effect imports.",
		},
		AutoFixAvailable:    true,
		RequirementTemplate: requirement.Generate(models.RefactorRemoveUnusedImports, f.Path, lines),
	}, true
}

func importLines(imports []detector.Import) []int {
	lines := make([]int, len(imports))
	for i, imp := range imports {
		lines[i] = imp.Line
	}
	return lines
}

func joinLimited(names []string, max int) string {
	if len(names) <= max {
		out := ""
		for i, n := range names {
			if i > 0 {
				out += ", "
			}
			out += n
		}
		return out
	}
	return fmt.Sprintf("%s and %d more", joinLimited(names[:max], max), len(names)-max)
}

// sourceDetector is the default Detector backed by the line-based import
// census in pkg/detector.
type sourceDetector struct{}

func (sourceDetector) Imports(content string) []detector.Import {
	return detector.Imports(content)
}

func (sourceDetector) UnusedImports(content string) []detector.Import {
	return detector.UnusedImports(content)
}
