package detector

import (
	"regexp"
	"strings"
)

var (
	esImportPattern      = regexp.MustCompile(`^\s*import\s+(?:type\s+)?(.+?)\s+from\s+['"][^'"]+['"]`)
	esSideEffectPattern  = regexp.MustCompile(`^\s*import\s+['"][^'"]+['"]`)
	requirePattern       = regexp.MustCompile(`^\s*(?:const|let|var)\s+(.+?)\s*=\s*require\s*\(`)
	goPyImportPattern    = regexp.MustCompile(`^\s*(?:import|from)\s+([\w./"-]+)`)
	importBindingPattern = regexp.MustCompile(`[A-Za-z_$][\w$]*`)
)

// Imports lists the import statements of a file, one entry per statement.
// The Name is the first binding the statement introduces, or the module
// path for side-effect and Go/Python style imports.
func Imports(content string) []Import {
	var imports []Import
	for i, line := range strings.Split(content, "\n") {
		if m := esImportPattern.FindStringSubmatch(line); m != nil {
			imports = append(imports, Import{Name: firstBinding(m[1]), Line: i + 1})
			continue
		}
		if esSideEffectPattern.MatchString(line) {
			imports = append(imports, Import{Name: "", Line: i + 1})
			continue
		}
		if m := requirePattern.FindStringSubmatch(line); m != nil {
			imports = append(imports, Import{Name: firstBinding(m[1]), Line: i + 1})
			continue
		}
		if m := goPyImportPattern.FindStringSubmatch(line); m != nil {
			imports = append(imports, Import{Name: strings.Trim(m[1], `"`), Line: i + 1})
		}
	}
	return imports
}

// UnusedImports returns imported bindings never referenced outside their
// import statement. Removal is a mechanically safe fix.
func UnusedImports(content string) []Import {
	lines := strings.Split(content, "\n")
	var unused []Import

	for i, line := range lines {
		bindings := importBindings(line)
		if len(bindings) == 0 {
			continue
		}
		for _, name := range bindings {
			if !referencedOutside(lines, name, i) {
				unused = append(unused, Import{Name: name, Line: i + 1})
			}
		}
	}
	return unused
}

// importBindings extracts every named binding an ES/require import line
// introduces, including destructured and aliased names.
func importBindings(line string) []string {
	var clause string
	if m := esImportPattern.FindStringSubmatch(line); m != nil {
		clause = m[1]
	} else if m := requirePattern.FindStringSubmatch(line); m != nil {
		clause = m[1]
	} else {
		return nil
	}
	return clauseBindings(clause)
}

// firstBinding returns the first binding an import clause introduces, or
// empty when the clause binds nothing.
func firstBinding(clause string) string {
	names := clauseBindings(clause)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func clauseBindings(clause string) []string {
	// `import A, { B as C } from 'x'` binds A and C; aliases shadow originals.
	clause = strings.ReplaceAll(clause, "* as ", "")
	var names []string
	for _, part := range strings.FieldsFunc(clause, func(r rune) bool {
		return r == ',' || r == '{' || r == '}'
	}) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, " as "); idx >= 0 {
			part = part[idx+4:]
		}
		if m := importBindingPattern.FindString(part); m != "" && m != "type" {
			names = append(names, m)
		}
	}
	return names
}

func referencedOutside(lines []string, name string, importLine int) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	for i, line := range lines {
		if i == importLine {
			continue
		}
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
