package models

import (
	"strings"
	"testing"
)

func TestSuggestionIDDeterminism(t *testing.T) {
	a := SuggestionID(RefactorGodFunction, "src/app.ts")
	b := SuggestionID(RefactorGodFunction, "src/app.ts")
	if a != b {
		t.Errorf("same inputs produced different ids: %q vs %q", a, b)
	}

	if !strings.HasPrefix(a, "god-function-") {
		t.Errorf("id %q should start with the refactor type", a)
	}
}

func TestSuggestionIDDistinct(t *testing.T) {
	byFile := SuggestionID(RefactorGodFunction, "a.ts")
	otherFile := SuggestionID(RefactorGodFunction, "b.ts")
	if byFile == otherFile {
		t.Error("different files should produce different ids")
	}

	otherKind := SuggestionID(RefactorConsoleCleanup, "a.ts")
	if byFile == otherKind {
		t.Error("different refactor types should produce different ids")
	}
}

func TestPairKeyOrderIndependent(t *testing.T) {
	if PairKey("a.ts", "b.ts") != PairKey("b.ts", "a.ts") {
		t.Error("pair key should not depend on argument order")
	}
	if PairKey("a.ts", "b.ts") != "a.ts::b.ts" {
		t.Errorf("PairKey = %q, want a.ts::b.ts", PairKey("a.ts", "b.ts"))
	}
}

func TestSplitPairKey(t *testing.T) {
	a, b := SplitPairKey("lib/x.ts::src/y.ts")
	if a != "lib/x.ts" || b != "src/y.ts" {
		t.Errorf("SplitPairKey = (%q, %q), want (lib/x.ts, src/y.ts)", a, b)
	}

	a, b = SplitPairKey("nokey")
	if a != "nokey" || b != "" {
		t.Errorf("malformed key should return (key, \"\"), got (%q, %q)", a, b)
	}
}
