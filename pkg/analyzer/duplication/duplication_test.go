package duplication

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
)

type fakeDetector struct {
	blocks  []detector.Block
	matches []detector.PairMatch
}

func (f fakeDetector) DuplicateBlocks(string) []detector.Block { return f.blocks }
func (f fakeDetector) CrossFileMatches([]models.FileAnalysis) []detector.PairMatch {
	return f.matches
}

func nBlocks(n int) []detector.Block {
	out := make([]detector.Block, n)
	for i := range out {
		out[i] = detector.Block{Line: (i + 1) * 5}
	}
	return out
}

func TestWithinFileThresholds(t *testing.T) {
	tests := []struct {
		blocks   int
		want     int
		severity models.Severity
	}{
		{3, 0, ""},
		{4, 1, models.SeverityMedium},
		{8, 1, models.SeverityHigh},
	}

	for _, tt := range tests {
		s := New(WithDetector(fakeDetector{blocks: nBlocks(tt.blocks)}))
		suggestions, err := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}})
		require.NoError(t, err)
		require.Len(t, suggestions, tt.want, "%d blocks", tt.blocks)
		if tt.want == 1 {
			assert.Equal(t, models.RefactorExtractDuplicates, suggestions[0].Type)
			assert.Equal(t, tt.severity, suggestions[0].Severity)
			assert.Equal(t, models.EffortMedium, suggestions[0].Effort)
			assert.Equal(t, models.ImpactHigh, suggestions[0].Impact)
		}
	}
}

func TestWithinFileSortsLines(t *testing.T) {
	blocks := []detector.Block{{Line: 40}, {Line: 10}, {Line: 25}, {Line: 5}}
	s := New(WithDetector(fakeDetector{blocks: blocks}))

	suggestions, err := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}})
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, []int{5, 10, 25, 40}, suggestions[0].LineNumbers["a.ts"])
}

func TestCrossFilePairGrouping(t *testing.T) {
	matches := []detector.PairMatch{
		{FileA: "a.ts", FileB: "b.ts", LineA: 10, LineB: 30},
		{FileA: "a.ts", FileB: "b.ts", LineA: 50, LineB: 70},
		{FileA: "a.ts", FileB: "b.ts", LineA: 20, LineB: 40},
	}
	s := New(WithDetector(fakeDetector{matches: matches}))

	suggestions, err := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}, {Path: "b.ts"}})
	require.NoError(t, err)
	require.Len(t, suggestions, 1, "matches for one pair should collapse into one suggestion")

	sug := suggestions[0]
	assert.Equal(t, models.RefactorExtractSharedUtility, sug.Type)
	assert.Equal(t, models.SeverityMedium, sug.Severity, "3 matches stays below the high cutoff")
	assert.Equal(t, []string{"a.ts", "b.ts"}, sug.Files)
	assert.Equal(t, []int{10, 20, 50}, sug.LineNumbers["a.ts"])
	assert.Equal(t, []int{30, 40, 70}, sug.LineNumbers["b.ts"])
}

func TestCrossFileTemplateCoversBothFiles(t *testing.T) {
	matches := []detector.PairMatch{
		{FileA: "src/a.ts", FileB: "lib/b.ts", LineA: 10, LineB: 30},
		{FileA: "src/a.ts", FileB: "lib/b.ts", LineA: 20, LineB: 40},
	}
	s := New(WithDetector(fakeDetector{matches: matches}))

	suggestions, err := s.Scan(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	// Pair keys sort their members, so lib/b.ts leads.
	doc := suggestions[0].RequirementTemplate
	assert.Contains(t, doc, "Files: `b.ts`, `a.ts`", "the remediation document should name both files")
	assert.Contains(t, doc, "Lines (`a.ts`): 10, 20")
	assert.Contains(t, doc, "Lines (`b.ts`): 30, 40")
}

func TestCrossFileSingleMatchIgnored(t *testing.T) {
	matches := []detector.PairMatch{
		{FileA: "a.ts", FileB: "b.ts", LineA: 10, LineB: 30},
	}
	s := New(WithDetector(fakeDetector{matches: matches}))

	suggestions, err := s.Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, suggestions, "one shared block is coincidence, not duplication")
}

func TestCrossFileHighSeverity(t *testing.T) {
	var matches []detector.PairMatch
	for i := 0; i < 5; i++ {
		matches = append(matches, detector.PairMatch{FileA: "a.ts", FileB: "b.ts", LineA: i + 1, LineB: i + 1})
	}
	s := New(WithDetector(fakeDetector{matches: matches}))

	suggestions, err := s.Scan(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, models.SeverityHigh, suggestions[0].Severity)
}

func TestCrossFileIDIndependentOfOrder(t *testing.T) {
	forward := []detector.PairMatch{
		{FileA: "a.ts", FileB: "b.ts", LineA: 1, LineB: 2},
		{FileA: "a.ts", FileB: "b.ts", LineA: 3, LineB: 4},
	}
	reversed := []detector.PairMatch{
		{FileA: "b.ts", FileB: "a.ts", LineA: 2, LineB: 1},
		{FileA: "b.ts", FileB: "a.ts", LineA: 4, LineB: 3},
	}

	fwd, err := New(WithDetector(fakeDetector{matches: forward})).Scan(context.Background(), nil)
	require.NoError(t, err)
	rev, err := New(WithDetector(fakeDetector{matches: reversed})).Scan(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, fwd, 1)
	require.Len(t, rev, 1)
	assert.Equal(t, fwd[0].ID, rev[0].ID, "pair identity must not depend on file order")
}

func TestMultiplePairsSortedByKey(t *testing.T) {
	matches := []detector.PairMatch{
		{FileA: "z.ts", FileB: "y.ts", LineA: 1, LineB: 1},
		{FileA: "z.ts", FileB: "y.ts", LineA: 2, LineB: 2},
		{FileA: "a.ts", FileB: "b.ts", LineA: 1, LineB: 1},
		{FileA: "a.ts", FileB: "b.ts", LineA: 2, LineB: 2},
	}
	s := New(WithDetector(fakeDetector{matches: matches}))

	suggestions, err := s.Scan(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, []string{"a.ts", "b.ts"}, suggestions[0].Files)
	assert.Equal(t, []string{"y.ts", "z.ts"}, suggestions[1].Files)
}
