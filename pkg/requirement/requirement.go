// Package requirement renders remediation documents for downstream coding
// agents. Each refactor type maps to a markdown template through an
// exhaustive switch; unknown types fall back to a generic template rather
// than failing.
package requirement

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xkazm04/refract/pkg/models"
)

// maxListedLines caps how many line numbers a template names before
// eliding the rest.
const maxListedLines = 10

type template struct {
	task         string
	requirements []string
}

// Generate renders the remediation document for one suggestion target.
// The line list is optional; when present, at most the first ten lines are
// named, followed by an ellipsis.
func Generate(kind models.RefactorType, file string, lines []int) string {
	var b strings.Builder
	b.WriteString("## Refactoring Target\n\n")
	fmt.Fprintf(&b, "File: `%s`\n", filepath.Base(file))
	if len(lines) > 0 {
		fmt.Fprintf(&b, "Lines: %s\n", formatLines(lines))
	}
	writeBody(&b, lookup(kind))
	return b.String()
}

// GeneratePair renders the remediation document for a suggestion spanning
// two files, naming each file's flagged lines so the remediation scope
// covers both sides of the duplication.
func GeneratePair(kind models.RefactorType, fileA, fileB string, lines map[string][]int) string {
	var b strings.Builder
	b.WriteString("## Refactoring Target\n\n")
	fmt.Fprintf(&b, "Files: `%s`, `%s`\n", filepath.Base(fileA), filepath.Base(fileB))
	for _, f := range []string{fileA, fileB} {
		if len(lines[f]) > 0 {
			fmt.Fprintf(&b, "Lines (`%s`): %s\n", filepath.Base(f), formatLines(lines[f]))
		}
	}
	writeBody(&b, lookup(kind))
	return b.String()
}

func writeBody(b *strings.Builder, tpl template) {
	b.WriteString("\n## Task\n\n")
	b.WriteString(tpl.task)
	b.WriteString("\n\n## Requirements\n\n")
	for i, req := range tpl.requirements {
		fmt.Fprintf(b, "%d. %s\n", i+1, req)
	}
}

func lookup(kind models.RefactorType) template {
	switch kind {
	case models.RefactorGodFunction:
		return template{
			task: "Break the oversized functions in this file into smaller, single-purpose functions.",
			requirements: []string{
				"Identify the distinct responsibilities inside each flagged function.",
				"Extract each responsibility into a named helper with a focused signature.",
				"Keep the original function as a thin orchestrator that delegates to the helpers.",
				"Preserve the existing behavior; do not change any external contract.",
			},
		}
	case models.RefactorConsoleCleanup:
		return template{
			task: "Remove or replace the console statements left in this file.",
			requirements: []string{
				"Delete debugging console statements that serve no runtime purpose.",
				"Route intentional diagnostics through the project's logging facility instead.",
				"Do not alter any other behavior of the file.",
			},
		}
	case models.RefactorImproveTypeSafety:
		return template{
			task: "Replace the `any` type escapes in this file with precise types.",
			requirements: []string{
				"Introduce interfaces or type aliases describing the actual data shapes.",
				"Replace each `any` annotation and `as any` assertion with the precise type.",
				"Prefer `unknown` plus narrowing where the shape is genuinely dynamic.",
				"The file must compile with no new `any` occurrences.",
			},
		}
	case models.RefactorExtractDuplicates:
		return template{
			task: "Deduplicate the repeated code blocks within this file.",
			requirements: []string{
				"Extract the repeated logic into a single shared function.",
				"Parameterize the differences between the original occurrences.",
				"Replace every duplicate block with a call to the extracted function.",
			},
		}
	case models.RefactorExtractSharedUtility:
		return template{
			task: "Extract the logic duplicated across these files into a shared utility module.",
			requirements: []string{
				"Create a utility module in the location shared code lives in this project.",
				"Move the duplicated logic there, parameterizing per-file differences.",
				"Update every file to import and use the shared utility.",
				"Remove the now-redundant local copies.",
			},
		}
	case models.RefactorReduceCoupling:
		return template{
			task: "Reduce the number of modules this file depends on.",
			requirements: []string{
				"Group related imports behind a facade or barrel where the project uses them.",
				"Invert dependencies on concrete modules by introducing narrow interfaces.",
				"Move logic that belongs with its data out of this file.",
				"The file should depend on meaningfully fewer modules afterwards.",
			},
		}
	case models.RefactorRemoveUnusedImports:
		return template{
			task: "Remove the unused imports from this file.",
			requirements: []string{
				"Delete every import binding that is never referenced.",
				"Keep side-effect imports that are intentionally load-bearing.",
				"Do not alter any other line of the file.",
			},
		}
	case models.RefactorSimplifyConditionals:
		return template{
			task: "Simplify the complex conditional expressions in this file.",
			requirements: []string{
				"Extract compound boolean expressions into named predicate functions or variables.",
				"Use early returns to flatten nested branches where possible.",
				"Each condition should read as a single understandable statement.",
			},
		}
	case models.RefactorReduceComplexity:
		return template{
			task: "Reduce the cyclomatic complexity of the flagged functions.",
			requirements: []string{
				"Split independent branches into separate functions.",
				"Replace branch ladders with lookup tables or polymorphism where natural.",
				"Bring each function under the project's complexity threshold.",
				"Preserve the existing behavior for every input.",
			},
		}
	case models.RefactorExtractConstants:
		return template{
			task: "Replace the magic numbers in this file with named constants.",
			requirements: []string{
				"Introduce a named constant for each flagged literal, stating its meaning.",
				"Group related constants together near the top of the file or in a shared module.",
				"Replace every occurrence of each literal with its constant.",
			},
		}
	case models.RefactorSplitLargeFile:
		return template{
			task: "Split this oversized file into smaller, cohesive modules.",
			requirements: []string{
				"Identify the distinct concerns the file currently mixes.",
				"Move each concern into its own module with a focused public surface.",
				"Re-export from the original path if other modules import from it.",
				"No module should exceed a few hundred lines afterwards.",
			},
		}
	default:
		return template{
			task: "Apply the suggested refactoring to this file.",
			requirements: []string{
				"Follow the suggestion description and suggested fix.",
				"Preserve the existing behavior and external contracts.",
			},
		}
	}
}

func formatLines(lines []int) string {
	shown := lines
	truncated := false
	if len(shown) > maxListedLines {
		shown = shown[:maxListedLines]
		truncated = true
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = fmt.Sprintf("%d", n)
	}
	s := strings.Join(parts, ", ")
	if truncated {
		s += ", ..."
	}
	return s
}
