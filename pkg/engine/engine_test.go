package engine

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkazm04/refract/pkg/models"
)

// stubScanner returns canned suggestions, an error, or panics.
type stubScanner struct {
	category    models.Category
	suggestions []models.Suggestion
	err         error
	panics      bool
}

func (s stubScanner) Category() models.Category { return s.category }

func (s stubScanner) Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error) {
	if s.panics {
		panic("scanner blew up")
	}
	return s.suggestions, s.err
}

func suggestion(id string, severity models.Severity) models.Suggestion {
	return models.Suggestion{
		ID:       id,
		Category: models.CategoryAntiPattern,
		Severity: severity,
		Effort:   models.EffortMedium,
		Impact:   models.ImpactMedium,
	}
}

func TestAnalyzeReportsScanProgress(t *testing.T) {
	var mu sync.Mutex
	var done []models.Category

	eng := New(
		WithScanners(
			stubScanner{category: models.CategoryAntiPattern},
			stubScanner{category: models.CategoryDuplication, err: errors.New("boom")},
			stubScanner{category: models.CategoryCleanCode, panics: true},
		),
		WithScanProgress(func(c models.Category) {
			mu.Lock()
			done = append(done, c)
			mu.Unlock()
		}),
	)

	_, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, done, 3, "progress fires once per scanner even on failure or panic")
	seen := map[models.Category]bool{}
	for _, c := range done {
		seen[c] = true
	}
	assert.True(t, seen[models.CategoryAntiPattern])
	assert.True(t, seen[models.CategoryDuplication])
	assert.True(t, seen[models.CategoryCleanCode])
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	eng := New()

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err, "an empty corpus is a valid scan, not an error")

	assert.NotNil(t, result.Suggestions)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, 0, result.Summary.TotalIssues)
	assert.Equal(t, 0, result.Metadata.FilesAnalyzed)
	assert.Empty(t, result.Metadata.Failures)
}

func TestAnalyzeEmptySummarySerializesAsObjects(t *testing.T) {
	eng := New()
	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"byCategory":{}`)
	assert.Contains(t, string(raw), `"suggestions":[]`)
}

func TestAnalyzeRanksBySeverity(t *testing.T) {
	eng := New(WithScanners(stubScanner{
		category: models.CategoryAntiPattern,
		suggestions: []models.Suggestion{
			suggestion("low", models.SeverityLow),
			suggestion("critical", models.SeverityCritical),
			suggestion("medium", models.SeverityMedium),
			suggestion("high", models.SeverityHigh),
		},
	}))

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 4)

	order := []string{"critical", "high", "medium", "low"}
	for i, want := range order {
		assert.Equal(t, want, result.Suggestions[i].ID, "position %d", i)
	}
}

func TestAnalyzeScoreTieBreaking(t *testing.T) {
	highEffort := suggestion("high-effort", models.SeverityMedium)
	highEffort.Effort = models.EffortHigh
	lowEffort := suggestion("low-effort", models.SeverityMedium)
	lowEffort.Effort = models.EffortLow

	eng := New(WithScanners(stubScanner{
		category:    models.CategoryAntiPattern,
		suggestions: []models.Suggestion{highEffort, lowEffort},
	}))

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "low-effort", result.Suggestions[0].ID,
		"equal severity should rank cheaper effort first")
}

func TestAnalyzeFiltersBySeverityInclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeverityThreshold = models.SeverityHigh

	eng := New(
		WithConfig(cfg),
		WithScanners(stubScanner{
			category: models.CategoryAntiPattern,
			suggestions: []models.Suggestion{
				suggestion("low", models.SeverityLow),
				suggestion("medium", models.SeverityMedium),
				suggestion("high", models.SeverityHigh),
				suggestion("critical", models.SeverityCritical),
			},
		}),
	)

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 2, "threshold high keeps high and critical")

	for _, s := range result.Suggestions {
		assert.GreaterOrEqual(t, s.Severity.Rank(), models.SeverityHigh.Rank())
	}
}

func TestAnalyzeTruncatesAfterRanking(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSuggestions = 2

	eng := New(
		WithConfig(cfg),
		WithScanners(stubScanner{
			category: models.CategoryAntiPattern,
			suggestions: []models.Suggestion{
				suggestion("low", models.SeverityLow),
				suggestion("critical", models.SeverityCritical),
				suggestion("high", models.SeverityHigh),
			},
		}),
	)

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, "critical", result.Suggestions[0].ID)
	assert.Equal(t, "high", result.Suggestions[1].ID, "the cap must drop the lowest-priority tail")
}

func TestAnalyzeSummaryMatchesFinalList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSuggestions = 2

	eng := New(
		WithConfig(cfg),
		WithScanners(stubScanner{
			category: models.CategoryAntiPattern,
			suggestions: []models.Suggestion{
				suggestion("a", models.SeverityCritical),
				suggestion("b", models.SeverityHigh),
				suggestion("c", models.SeverityLow),
			},
		}),
	)

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalIssues, "summary reflects the truncated list, not candidates")
	assert.Equal(t, 2, result.Summary.TopPriorityCount)

	catTotal := 0
	for _, n := range result.Summary.ByCategory {
		catTotal += n
	}
	sevTotal := 0
	for _, n := range result.Summary.BySeverity {
		sevTotal += n
	}
	assert.Equal(t, result.Summary.TotalIssues, catTotal)
	assert.Equal(t, result.Summary.TotalIssues, sevTotal)
}

func TestAnalyzeIdempotent(t *testing.T) {
	eng := New(WithScanners(
		stubScanner{
			category: models.CategoryAntiPattern,
			suggestions: []models.Suggestion{
				suggestion("a", models.SeverityHigh),
				suggestion("b", models.SeverityMedium),
			},
		},
		stubScanner{
			category:    models.CategoryCleanCode,
			suggestions: []models.Suggestion{suggestion("c", models.SeverityMedium)},
		},
	))

	files := []models.FileAnalysis{models.NewFileAnalysis("a.ts", "x = 1\n")}

	first, err := eng.Analyze(context.Background(), files)
	require.NoError(t, err)
	second, err := eng.Analyze(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, first.Suggestions, second.Suggestions)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestAnalyzeScannerErrorIsolated(t *testing.T) {
	eng := New(WithScanners(
		stubScanner{category: models.CategoryDuplication, err: errors.New("fingerprinting failed")},
		stubScanner{
			category:    models.CategoryAntiPattern,
			suggestions: []models.Suggestion{suggestion("a", models.SeverityHigh)},
		},
	))

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err, "a failing scanner degrades the result, it does not abort the scan")

	require.Len(t, result.Suggestions, 1)
	require.Len(t, result.Metadata.Failures, 1)
	assert.Equal(t, models.CategoryDuplication, result.Metadata.Failures[0].Category)
	assert.Contains(t, result.Metadata.Failures[0].Message, "fingerprinting failed")
}

func TestAnalyzeScannerPanicIsolated(t *testing.T) {
	eng := New(WithScanners(
		stubScanner{category: models.CategoryComplexity, panics: true},
		stubScanner{
			category:    models.CategoryAntiPattern,
			suggestions: []models.Suggestion{suggestion("a", models.SeverityHigh)},
		},
	))

	result, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, result.Suggestions, 1)
	require.Len(t, result.Metadata.Failures, 1)
	assert.Equal(t, models.CategoryComplexity, result.Metadata.Failures[0].Category)
	assert.Contains(t, result.Metadata.Failures[0].Message, "panic")
}

func TestAnalyzeCategoryToggles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableAntiPatternDetection = false
	cfg.EnableDuplicationDetection = false
	cfg.EnableCouplingAnalysis = false
	cfg.EnableComplexityAnalysis = false
	cfg.EnableCleanCodeChecks = false

	eng := New(WithConfig(cfg))

	// Content that would trigger several categories if they ran.
	files := []models.FileAnalysis{models.NewFileAnalysis("a.ts", `console.log(1);
console.log(2);
console.log(3);
console.log(4);
console.log(5);
`)}

	result, err := eng.Analyze(context.Background(), files)
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions, "disabled categories must not run")
	assert.Equal(t, 1, result.Metadata.FilesAnalyzed)
	assert.Equal(t, 5, result.Metadata.TotalLines)
}

func TestAnalyzeMetadata(t *testing.T) {
	eng := New(WithScanners(stubScanner{category: models.CategoryAntiPattern}))

	files := []models.FileAnalysis{
		models.NewFileAnalysis("a.ts", "1\n2\n3\n"),
		models.NewFileAnalysis("b.ts", "1\n2\n"),
	}

	result, err := eng.Analyze(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Metadata.FilesAnalyzed)
	assert.Equal(t, 5, result.Metadata.TotalLines)
	assert.GreaterOrEqual(t, result.Metadata.ScanDurationMS, int64(0))
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{SeverityThreshold: "urgent", MaxSuggestions: -3}
	normalized := cfg.normalize()

	assert.Equal(t, models.SeverityLow, normalized.SeverityThreshold)
	assert.Equal(t, 50, normalized.MaxSuggestions)
}

func TestScore(t *testing.T) {
	critical := models.Suggestion{Severity: models.SeverityCritical, Impact: models.ImpactHigh, Effort: models.EffortLow}
	assert.Equal(t, 42, Score(critical))

	low := models.Suggestion{Severity: models.SeverityLow, Impact: models.ImpactLow, Effort: models.EffortHigh}
	assert.Equal(t, 8, Score(low))

	unknown := models.Suggestion{Severity: models.SeverityMedium}
	assert.Equal(t, 20, Score(unknown), "unknown impact and effort rank as medium and cancel")
}
