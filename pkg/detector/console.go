package detector

import (
	"regexp"
	"strings"
)

var consolePattern = regexp.MustCompile(`\bconsole\.(log|warn|error|info|debug|trace|table|dir)\s*\(`)

// ConsoleStatements finds console calls left in source. Commented-out
// statements are skipped; stripping live ones is a mechanically safe fix.
func ConsoleStatements(content string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		for range consolePattern.FindAllString(line, -1) {
			findings = append(findings, Finding{Line: i + 1})
		}
	}
	return findings
}
