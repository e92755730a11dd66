package detector

import (
	"regexp"
	"strings"
)

// DefaultLongFunctionLines is the cutoff above which a function counts as long.
const DefaultLongFunctionLines = 50

// DefaultComplexityCutoff is the cyclomatic estimate above which a function
// counts as overly complex.
const DefaultComplexityCutoff = 10

var functionPatterns = []*regexp.Regexp{
	// function declarations: export default async function name(
	regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*([A-Za-z_$][\w$]*)?\s*\(`),
	// arrow and function expressions bound to a name
	regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?(?:function\b|\([^)]*\)\s*(?::\s*[^=]+)?=>|[A-Za-z_$][\w$]*\s*=>)`),
	// Go functions and methods
	regexp.MustCompile(`^\s*func\s+(?:\([^)]+\)\s+)?([A-Za-z_][\w]*)\s*\(`),
	// Python functions
	regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_][\w]*)\s*\(`),
	// class methods: name(args) {  -- keyword statements are filtered below
	regexp.MustCompile(`^\s*(?:public\s+|private\s+|protected\s+|static\s+|async\s+)*([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*(?::\s*[\w<>,\[\]\s.|]+)?\s*{\s*$`),
}

var statementKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"return": true, "else": true, "do": true, "try": true, "new": true,
}

var branchPattern = regexp.MustCompile(`\b(if|elif|else\s+if|for|while|case|catch|when)\b|&&|\|\||\?\s`)

// Functions extracts function-shaped regions from file content using
// line-oriented heuristics. Bodies are delimited by brace tracking, or by
// indentation for Python-style definitions.
func Functions(content string) []Function {
	lines := strings.Split(content, "\n")
	var funcs []Function

	for i := 0; i < len(lines); i++ {
		name, ok := matchFunctionStart(lines[i])
		if !ok {
			continue
		}

		var end int
		if strings.Contains(lines[i], "def ") && !strings.Contains(lines[i], "{") {
			end = indentBlockEnd(lines, i)
		} else {
			end = braceBlockEnd(lines, i)
		}
		if end <= i {
			continue
		}

		body := strings.Join(lines[i:end+1], "\n")
		funcs = append(funcs, Function{
			Name:       name,
			StartLine:  i + 1,
			EndLine:    end + 1,
			Length:     end - i + 1,
			Complexity: 1 + len(branchPattern.FindAllString(body, -1)),
		})
		i = end
	}

	return funcs
}

// LongFunctions returns the functions longer than minLines.
func LongFunctions(content string, minLines int) []Function {
	if minLines <= 0 {
		minLines = DefaultLongFunctionLines
	}
	var out []Function
	for _, fn := range Functions(content) {
		if fn.Length > minLines {
			out = append(out, fn)
		}
	}
	return out
}

// ComplexFunctions returns the functions whose cyclomatic estimate exceeds
// the cutoff.
func ComplexFunctions(content string, cutoff int) []Function {
	if cutoff <= 0 {
		cutoff = DefaultComplexityCutoff
	}
	var out []Function
	for _, fn := range Functions(content) {
		if fn.Complexity > cutoff {
			out = append(out, fn)
		}
	}
	return out
}

func matchFunctionStart(line string) (string, bool) {
	for _, re := range functionPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if statementKeywords[name] {
			continue
		}
		if name == "" {
			name = "anonymous"
		}
		return name, true
	}
	return "", false
}

// braceBlockEnd finds the line index closing the brace block that opens at
// or after start. Braces inside strings are not tracked; the heuristic is
// intentionally line-oriented.
func braceBlockEnd(lines []string, start int) int {
	depth := 0
	opened := false
	for i := start; i < len(lines); i++ {
		depth += strings.Count(lines[i], "{")
		depth -= strings.Count(lines[i], "}")
		if strings.Contains(lines[i], "{") {
			opened = true
		}
		if opened && depth <= 0 {
			return i
		}
		// Signatures may wrap a few lines before the opening brace; past
		// that, treat an unbraced arrow body as a single-line function.
		if !opened && i > start+3 {
			return start
		}
	}
	if opened {
		return len(lines) - 1
	}
	return start
}

// indentBlockEnd finds the last line of an indentation-delimited block.
func indentBlockEnd(lines []string, start int) int {
	base := indentWidth(lines[start])
	end := start
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if indentWidth(lines[i]) <= base {
			break
		}
		end = i
	}
	return end
}

func indentWidth(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
