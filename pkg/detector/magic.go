package detector

import (
	"regexp"
	"strings"

	"github.com/xkazm04/refract/pkg/models"
)

var (
	numberPattern    = regexp.MustCompile(`(?:^|[^\w.])(\d+(?:\.\d+)?)\b`)
	constLinePattern = regexp.MustCompile(`^\s*(?:export\s+)?(?:const|final|static|readonly)\b|^[A-Z0-9_]+\s*=`)
	comparisonHint   = regexp.MustCompile(`[<>]=?|[!=]==?|\bcase\b`)
)

// trivial values carry no meaning worth naming.
var trivialNumbers = map[string]bool{
	"0": true, "1": true, "2": true, "10": true, "100": true, "1000": true,
}

// MagicNumbers finds unnamed numeric literals. Severity reflects how much
// the literal hides: values steering control flow rank high, multi-digit
// or fractional values medium, the rest low.
func MagicNumbers(content string) []MagicNumber {
	var out []MagicNumber
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		if constLinePattern.MatchString(line) {
			continue
		}
		for _, m := range numberPattern.FindAllStringSubmatch(line, -1) {
			value := m[1]
			if trivialNumbers[value] {
				continue
			}
			out = append(out, MagicNumber{
				Line:     i + 1,
				Value:    value,
				Severity: magicSeverity(line, value),
			})
		}
	}
	return out
}

func magicSeverity(line, value string) models.Severity {
	if comparisonHint.MatchString(line) {
		return models.SeverityHigh
	}
	if len(value) >= 3 || strings.Contains(value, ".") {
		return models.SeverityMedium
	}
	return models.SeverityLow
}
