package models

import "strings"

// FileAnalysis is a single source file presented to the engine.
// Instances are immutable once constructed; scanners never modify input.
type FileAnalysis struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Lines   int    `json:"lines"`
}

// NewFileAnalysis builds a FileAnalysis from raw content, deriving the line count.
func NewFileAnalysis(path, content string) FileAnalysis {
	return FileAnalysis{
		Path:    path,
		Content: content,
		Lines:   CountLines(content),
	}
}

// CountLines counts logical lines in content. A trailing newline does not
// add an empty line.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// TotalLines sums the line counts of a corpus.
func TotalLines(files []FileAnalysis) int {
	total := 0
	for _, f := range files {
		total += f.Lines
	}
	return total
}
