// Package antipattern detects common coding anti-patterns: god functions,
// leftover console statements, and `any` type escapes.
package antipattern

import (
	"context"
	"fmt"

	"github.com/xkazm04/refract/pkg/analyzer"
	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
	"github.com/xkazm04/refract/pkg/requirement"
)

// Detector supplies the per-file findings this scanner evaluates.
type Detector interface {
	LongFunctions(content string) []detector.Function
	ConsoleStatements(content string) []detector.Finding
	AnyTypeUsages(content string) []detector.Finding
}

// Thresholds are the trigger cutoffs for each anti-pattern suggestion.
type Thresholds struct {
	// GodFunctionHigh escalates the god-function suggestion to high
	// severity at this many long functions.
	GodFunctionHigh int
	// ConsoleTrigger emits the console-cleanup suggestion above this
	// many console statements.
	ConsoleTrigger int
	// AnyTrigger emits the type-safety suggestion above this many `any`
	// usages; AnyHigh escalates it to high severity.
	AnyTrigger int
	AnyHigh    int
}

// DefaultThresholds returns the documented trigger cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		GodFunctionHigh: 3,
		ConsoleTrigger:  3,
		AnyTrigger:      5,
		AnyHigh:         10,
	}
}

// Scanner emits anti-pattern suggestions for a corpus.
type Scanner struct {
	det        Detector
	thresholds Thresholds
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

// WithThresholds sets custom trigger cutoffs.
func WithThresholds(t Thresholds) Option {
	return func(s *Scanner) {
		s.thresholds = t
	}
}

// New creates an anti-pattern scanner with default detectors and cutoffs.
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
	return models.CategoryAntiPattern
}

// Scan evaluates every file independently; iteration order does not change
// the suggestion set.
func (s *Scanner) Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if sug, ok := s.godFunction(f); ok {
			suggestions = append(suggestions, sug)
		}
		if sug, ok := s.consoleCleanup(f); ok {
			suggestions = append(suggestions, sug)
		}
		if sug, ok := s.typeSafety(f); ok {
			suggestions = append(suggestions, sug)
		}
	}
	return suggestions, nil
}

func (s *Scanner) godFunction(f models.FileAnalysis) (models.Suggestion, bool) {
	funcs := s.det.LongFunctions(f.Content)
	if len(funcs) < 1 {
		return models.Suggestion{}, false
	}

	severity := models.SeverityMedium
	if len(funcs) >= s.thresholds.GodFunctionHigh {
		severity = models.SeverityHigh
	}

	lines := make([]int, len(funcs))
	for i, fn := range funcs {
		lines[i] = fn.StartLine
	}

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorGodFunction, f.Path),
		Type:  models.RefactorGodFunction,
		Title: "Break up oversized functions",
		Description: fmt.Sprintf("%s contains %d functions exceeding the long-function limit.",
			f.Path, len(funcs)),
		Category:     models.CategoryAntiPattern,
		Severity:     severity,
		Effort:       models.EffortMedium,
		Impact:       models.ImpactHigh,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Extract each distinct responsibility into its own focused function and let the original delegate.",
		RefactorSteps: []string{
			"List the responsibilities each long function mixes.",
			"Extract each responsibility into a named helper.",
			"Reduce the original function to orchestration.",
		},
		CleanArchitecturePrinciple: "Single Responsibility Principle",
		RequirementTemplate:        requirement.Generate(models.RefactorGodFunction, f.Path, lines),
	}, true
}

func (s *Scanner) consoleCleanup(f models.FileAnalysis) (models.Suggestion, bool) {
	findings := s.det.ConsoleStatements(f.Content)
	if len(findings) <= s.thresholds.ConsoleTrigger {
		return models.Suggestion{}, false
	}

	lines := findingLines(findings)
	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorConsoleCleanup, f.Path),
		Type:  models.RefactorConsoleCleanup,
		Title: "Remove leftover console statements",
		Description: fmt.Sprintf("%s contains %d console statements.",
			f.Path, len(findings)),
		Category:     models.CategoryAntiPattern,
		Severity:     models.SeverityLow,
		Effort:       models.EffortLow,
		Impact:       models.ImpactLow,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Delete debugging output or replace it with the project's logging facility.",
		RefactorSteps: []string{
			"Remove console statements used only for debugging.",
			"Route intentional diagnostics through the logger.",
		},
		AutoFixAvailable:    true,
		RequirementTemplate: requirement.Generate(models.RefactorConsoleCleanup, f.Path, lines),
	}, true
}

func (s *Scanner) typeSafety(f models.FileAnalysis) (models.Suggestion, bool) {
	findings := s.det.AnyTypeUsages(f.Content)
	if len(findings) <= s.thresholds.AnyTrigger {
		return models.Suggestion{}, false
	}

	severity := models.SeverityMedium
	if len(findings) >= s.thresholds.AnyHigh {
		severity = models.SeverityHigh
	}

	lines := findingLines(findings)
	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorImproveTypeSafety, f.Path),
		Type:  models.RefactorImproveTypeSafety,
		Title: "Replace `any` types with precise types",
		Description: fmt.Sprintf("%s uses the `any` type %d times, bypassing the type checker.",
			f.Path, len(findings)),
		Category:     models.CategoryAntiPattern,
		Severity:     severity,
		Effort:       models.EffortMedium,
		Impact:       models.ImpactMedium,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Model the actual data shapes as interfaces and replace each `any` with the precise type.",
		RefactorSteps: []string{
			"Describe the real shape of each `any`-typed value.",
			"Replace annotations and assertions with the precise types.",
			"Use `unknown` plus narrowing for genuinely dynamic data.",
		},
		CleanArchitecturePrinciple: "Explicit contracts",
		RequirementTemplate:        requirement.Generate(models.RefactorImproveTypeSafety, f.Path, lines),
	}, true
}

func findingLines(findings []detector.Finding) []int {
	lines := make([]int, len(findings))
	for i, fd := range findings {
		lines[i] = fd.Line
	}
	return lines
}

// sourceDetector is the default Detector backed by the line-based
// detectors in pkg/detector.
type sourceDetector struct{}

func (sourceDetector) LongFunctions(content string) []detector.Function {
	return detector.LongFunctions(content, detector.DefaultLongFunctionLines)
}

func (sourceDetector) ConsoleStatements(content string) []detector.Finding {
	return detector.ConsoleStatements(content)
}

func (sourceDetector) AnyTypeUsages(content string) []detector.Finding {
	return detector.AnyTypeUsages(content)
}
