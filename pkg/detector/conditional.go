package detector

import (
	"regexp"
	"strings"
)

// DefaultHighConditionalOperators is the boolean-operator count at which a
// condition is flagged high complexity.
const DefaultHighConditionalOperators = 3

var (
	conditionalPattern = regexp.MustCompile(`\b(if|while|elif)\s*\(|\b(if|elif)\s+[^(]`)
	booleanOpPattern   = regexp.MustCompile(`&&|\|\||\band\b|\bor\b`)
)

// Conditionals finds branching statements and counts the boolean operators
// in each condition line. A conditional with DefaultHighConditionalOperators
// or more operators is marked High.
func Conditionals(content string) []Conditional {
	var out []Conditional
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		if !conditionalPattern.MatchString(line) {
			continue
		}
		ops := len(booleanOpPattern.FindAllString(line, -1))
		out = append(out, Conditional{
			Line:      i + 1,
			Operators: ops,
			High:      ops >= DefaultHighConditionalOperators,
		})
	}
	return out
}

// HighConditionals returns only the conditionals flagged high complexity.
func HighConditionals(content string) []Conditional {
	var out []Conditional
	for _, c := range Conditionals(content) {
		if c.High {
			out = append(out, c)
		}
	}
	return out
}
