package detector

import (
	"encoding/binary"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/xkazm04/refract/pkg/models"
)

// BlockLines is the number of normalized source lines per fingerprinted block.
const BlockLines = 3

var punctOnlyPattern = regexp.MustCompile(`^[{}()\[\];,]*$`)

type fingerprint struct {
	hash uint64
	line int
}

// DuplicateBlocks returns the repeated blocks within a single file: every
// occurrence of a fingerprint beyond its first counts as one duplicate.
func DuplicateBlocks(content string) []Block {
	prints := fingerprints(content)
	seen := make(map[uint64]bool, len(prints))
	var blocks []Block
	for _, fp := range prints {
		if seen[fp.hash] {
			blocks = append(blocks, Block{Line: fp.line, Hash: fp.hash})
			continue
		}
		seen[fp.hash] = true
	}
	return blocks
}

// CrossFileMatches returns one match per code block shared by a pair of
// files. All fingerprints stay resident while matching, and every pair of
// files sharing a block produces an entry, so cost grows quadratically
// with corpus size in the worst case. That is the accepted scaling limit
// for this detector; do not stream or sample here.
func CrossFileMatches(files []models.FileAnalysis) []PairMatch {
	type occurrence struct {
		file string
		line int
	}
	byHash := make(map[uint64][]occurrence)
	var hashOrder []uint64
	for _, f := range files {
		fileSeen := make(map[uint64]bool)
		for _, fp := range fingerprints(f.Content) {
			// One occurrence per file per fingerprint keeps pair counts
			// meaning "distinct shared blocks".
			if fileSeen[fp.hash] {
				continue
			}
			fileSeen[fp.hash] = true
			if len(byHash[fp.hash]) == 0 {
				hashOrder = append(hashOrder, fp.hash)
			}
			byHash[fp.hash] = append(byHash[fp.hash], occurrence{file: f.Path, line: fp.line})
		}
	}

	// Walk fingerprints in first-seen order so output is deterministic for
	// identical input.
	index := make(map[string]int, len(files))
	for i, f := range files {
		index[f.Path] = i
	}
	var matches []PairMatch
	for _, h := range hashOrder {
		occs := byHash[h]
		if len(occs) < 2 {
			continue
		}
		for i := 0; i < len(occs); i++ {
			for j := i + 1; j < len(occs); j++ {
				a, b := occs[i], occs[j]
				if index[a.file] > index[b.file] {
					a, b = b, a
				}
				matches = append(matches, PairMatch{
					FileA: a.file,
					FileB: b.file,
					LineA: a.line,
					LineB: b.line,
				})
			}
		}
	}
	return matches
}

// fingerprints hashes consecutive BlockLines-sized chunks of normalized
// content with blake3. Blank lines, comments, and punctuation-only lines
// are dropped before chunking so formatting differences do not defeat
// matching.
func fingerprints(content string) []fingerprint {
	type numbered struct {
		text string
		line int
	}
	var normalized []numbered
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || punctOnlyPattern.MatchString(trimmed) {
			continue
		}
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		normalized = append(normalized, numbered{text: strings.Join(strings.Fields(trimmed), " "), line: i + 1})
	}

	var prints []fingerprint
	for i := 0; i+BlockLines <= len(normalized); i += BlockLines {
		var b strings.Builder
		for j := 0; j < BlockLines; j++ {
			b.WriteString(normalized[i+j].text)
			b.WriteByte('\n')
		}
		sum := blake3.Sum256([]byte(b.String()))
		prints = append(prints, fingerprint{
			hash: binary.LittleEndian.Uint64(sum[:8]),
			line: normalized[i].line,
		})
	}
	return prints
}
