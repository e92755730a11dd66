// Package analyzer defines the contract shared by the category-level
// scanners that feed the suggestion engine.
package analyzer

import (
	"context"

	"github.com/xkazm04/refract/pkg/models"
)

// CategoryScanner inspects a corpus and emits refactor suggestions for one
// category. Implementations must be side-effect free: the suggestion set
// may not depend on file iteration order, and repeated scans of identical
// input must produce identical suggestions.
type CategoryScanner interface {
	// Category identifies the suggestion category this scanner produces.
	Category() models.Category

	// Scan runs every detector for the category across the corpus. The
	// context bounds the scan; implementations should honor cancellation
	// between files.
	Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error)
}
