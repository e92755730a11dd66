package complexity

import (
	"context"
	"testing"

	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
)

type fakeDetector struct {
	conds []detector.Conditional
	funcs []detector.Function
}

func (f fakeDetector) HighConditionals(string) []detector.Conditional { return f.conds }
func (f fakeDetector) ComplexFunctions(string) []detector.Function    { return f.funcs }

func TestConditionalSuggestion(t *testing.T) {
	conds := []detector.Conditional{
		{Line: 12, Operators: 4, High: true},
		{Line: 40, Operators: 3, High: true},
	}
	s := New(WithDetector(fakeDetector{conds: conds}))

	suggestions, err := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}

	sug := suggestions[0]
	if sug.Type != models.RefactorSimplifyConditionals {
		t.Errorf("Type = %s", sug.Type)
	}
	if sug.Severity != models.SeverityHigh {
		t.Errorf("Severity = %s, want high", sug.Severity)
	}
	if sug.Effort != models.EffortMedium || sug.Impact != models.ImpactHigh {
		t.Errorf("effort/impact = %s/%s, want medium/high", sug.Effort, sug.Impact)
	}
	want := []int{12, 40}
	got := sug.LineNumbers["a.ts"]
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("LineNumbers = %v, want %v", got, want)
	}
}

func TestComplexFunctionSuggestion(t *testing.T) {
	funcs := []detector.Function{{Name: "monster", StartLine: 5, Complexity: 17}}
	s := New(WithDetector(fakeDetector{funcs: funcs}))

	suggestions, err := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].Type != models.RefactorReduceComplexity {
		t.Errorf("Type = %s", suggestions[0].Type)
	}
	if suggestions[0].Effort != models.EffortHigh {
		t.Errorf("Effort = %s, want high", suggestions[0].Effort)
	}
}

func TestIndependentSuggestions(t *testing.T) {
	s := New(WithDetector(fakeDetector{
		conds: []detector.Conditional{{Line: 1, High: true}},
		funcs: []detector.Function{{Name: "f", StartLine: 9, Complexity: 20}},
	}))

	suggestions, _ := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}})
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want both conditional and function findings", len(suggestions))
	}
	if suggestions[0].Type == suggestions[1].Type {
		t.Error("the two findings should emit distinct suggestion types")
	}
}

func TestCleanFileNoSuggestions(t *testing.T) {
	s := New(WithDetector(fakeDetector{}))
	suggestions, err := s.Scan(context.Background(), []models.FileAnalysis{{Path: "a.ts"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(suggestions))
	}
}
