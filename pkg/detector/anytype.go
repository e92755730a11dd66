package detector

import (
	"regexp"
	"strings"
)

var anyTypePattern = regexp.MustCompile(`:\s*any\b|\bas\s+any\b|<any>|\bany\[\]|Array<any>`)

// AnyTypeUsages finds TypeScript `any` escapes. Each occurrence weakens the
// type system, so every hit on a line is reported separately.
func AnyTypeUsages(content string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		for range anyTypePattern.FindAllString(line, -1) {
			findings = append(findings, Finding{Line: i + 1})
		}
	}
	return findings
}
