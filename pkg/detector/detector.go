// Package detector provides the built-in pattern detectors consumed by the
// category scanners. Every detector is a pure function over file content
// returning line-number findings; none of them parse, type-check, or
// execute code. Scanners accept them through narrow interfaces so
// alternative detectors (AST-based, network-backed linters) can be
// substituted without touching scanner logic.
package detector

import "github.com/xkazm04/refract/pkg/models"

// Finding is a single line-level detector hit.
type Finding struct {
	Line int `json:"line"`
}

// Function describes a function-shaped region of a file.
type Function struct {
	Name       string `json:"name"`
	StartLine  int    `json:"startLine"`
	EndLine    int    `json:"endLine"`
	Length     int    `json:"length"`
	Complexity int    `json:"complexity"`
}

// Import describes one imported module or binding.
type Import struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Conditional describes a branching statement and its boolean complexity.
type Conditional struct {
	Line      int  `json:"line"`
	Operators int  `json:"operators"`
	High      bool `json:"high"`
}

// MagicNumber is a numeric literal that should likely be a named constant.
type MagicNumber struct {
	Line     int             `json:"line"`
	Value    string          `json:"value"`
	Severity models.Severity `json:"severity"`
}

// Block is a duplicated code fragment within a single file.
type Block struct {
	Line int    `json:"line"`
	Hash uint64 `json:"hash"`
}

// PairMatch is one shared code fragment between two files.
type PairMatch struct {
	FileA string `json:"fileA"`
	FileB string `json:"fileB"`
	LineA int    `json:"lineA"`
	LineB int    `json:"lineB"`
}
