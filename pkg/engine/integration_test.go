package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkazm04/refract/pkg/models"
)

// End-to-end runs over real file content with the default scanners.

func TestAnalyzeDetectsConsoleResidue(t *testing.T) {
	content := `function debugEverything() {
  console.log("one");
  console.log("two");
  console.log("three");
  console.log("four");
  console.log("five");
}
`
	files := []models.FileAnalysis{models.NewFileAnalysis("src/debug.ts", content)}

	result, err := New().Analyze(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 1)

	sug := result.Suggestions[0]
	assert.Equal(t, models.RefactorConsoleCleanup, sug.Type)
	assert.Equal(t, models.SeverityLow, sug.Severity)
	assert.True(t, sug.AutoFixAvailable)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, sug.LineNumbers["src/debug.ts"])
	assert.Equal(t, 1, result.Summary.TotalIssues)
	assert.Equal(t, 1, result.Summary.ByCategory[models.CategoryAntiPattern])
}

func TestAnalyzeCrossFileDuplication(t *testing.T) {
	shared := `first = prepare(payload)
second = transform(payload)
third = persist(payload)
fourth = notify(payload)
fifth = cleanup(payload)
sixth = report(payload)
`
	files := []models.FileAnalysis{
		models.NewFileAnalysis("src/a.ts", shared),
		models.NewFileAnalysis("src/b.ts", shared),
	}

	result, err := New().Analyze(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 1)

	sug := result.Suggestions[0]
	assert.Equal(t, models.RefactorExtractSharedUtility, sug.Type)
	assert.Equal(t, []string{"src/a.ts", "src/b.ts"}, sug.Files)
}

func TestAnalyzeByteIdenticalRuns(t *testing.T) {
	content := `function debugEverything() {
  console.log("one");
  console.log("two");
  console.log("three");
  console.log("four");
}
`
	files := []models.FileAnalysis{models.NewFileAnalysis("src/debug.ts", content)}
	eng := New()

	first, err := eng.Analyze(context.Background(), files)
	require.NoError(t, err)
	second, err := eng.Analyze(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, first.Suggestions, second.Suggestions)
	assert.Equal(t, first.Summary, second.Summary)
}
