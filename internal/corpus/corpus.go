// Package corpus loads source files from disk into the in-memory form the
// suggestion engine consumes. Exclusion combines config patterns with any
// .gitignore files found in the enclosing repository.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/xkazm04/refract/pkg/config"
	"github.com/xkazm04/refract/pkg/models"
)

// DefaultMaxFileSize skips files larger than 1 MiB. Minified bundles and
// generated artifacts dominate above that size and drown real signal.
const DefaultMaxFileSize int64 = 1 << 20

// sourceExtensions is the analyzable-extension allowlist. The detectors
// are line-oriented and language-agnostic, so this is a coarse filter
// rather than a language registry.
var sourceExtensions = map[string]bool{
	".go":    true,
	".js":    true,
	".jsx":   true,
	".ts":    true,
	".tsx":   true,
	".mjs":   true,
	".cjs":   true,
	".py":    true,
	".rb":    true,
	".java":  true,
	".kt":    true,
	".cs":    true,
	".php":   true,
	".rs":    true,
	".c":     true,
	".h":     true,
	".cpp":   true,
	".hpp":   true,
	".cc":    true,
	".swift": true,
}

// Loader reads source files under one or more roots.
type Loader struct {
	config      *config.Config
	maxFileSize int64
	progress    func(path string)
}

// LoaderOption is a functional option for configuring Loader.
type LoaderOption func(*Loader)

// WithMaxFileSize overrides the per-file size cap. Zero disables it.
func WithMaxFileSize(n int64) LoaderOption {
	return func(l *Loader) {
		l.maxFileSize = n
	}
}

// WithProgress registers a callback invoked once per loaded file.
func WithProgress(fn func(path string)) LoaderOption {
	return func(l *Loader) {
		l.progress = fn
	}
}

// NewLoader creates a loader. A nil config uses the defaults.
func NewLoader(cfg *config.Config, opts ...LoaderOption) *Loader {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	l := &Loader{config: cfg, maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// findGitRoot walks up from start looking for a .git directory. Returns
// empty string when start is not inside a repository.
func findGitRoot(start string) string {
	dir := start
	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// excludeMatcher combines config exclude patterns with .gitignore files
// from the repository enclosing root. Config patterns are parsed with
// gitignore syntax so one matching semantics covers both sources. Each
// root gets its own matcher so one repository's ignore rules never leak
// into a sibling root.
func (l *Loader) excludeMatcher(root string) gitignore.Matcher {
	var patterns []gitignore.Pattern

	for _, pattern := range l.config.Exclude.Patterns {
		patterns = append(patterns, gitignore.ParsePattern(pattern, nil))
	}

	if l.config.Exclude.Gitignore {
		gitRoot := findGitRoot(root)
		if gitRoot != "" {
			fs := osfs.New(gitRoot)
			if gitPatterns, err := gitignore.ReadPatterns(fs, nil); err == nil {
				patterns = append(patterns, gitPatterns...)
			}
		}
	}

	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

// isExcluded checks a relative path against the root's matcher and the
// config's directory and extension exclusions.
func (l *Loader) isExcluded(matcher gitignore.Matcher, relPath string, isDir bool) bool {
	if !isDir && l.config.ShouldExclude(relPath) {
		return true
	}
	if matcher == nil {
		return false
	}
	parts := strings.Split(relPath, string(filepath.Separator))
	return matcher.Match(parts, isDir)
}

// isSourceFile reports whether the extension is on the allowlist.
func isSourceFile(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// Load reads every analyzable file under each path. Paths may be files or
// directories. File paths in the result are slash-separated and relative
// to the given root where possible, which keeps suggestion IDs stable
// across machines.
func (l *Loader) Load(paths ...string) ([]models.FileAnalysis, error) {
	var files []models.FileAnalysis

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			fa, ok, err := l.loadFile(p, filepath.ToSlash(p))
			if err != nil {
				return nil, err
			}
			if ok {
				files = append(files, fa)
			}
			continue
		}

		dirFiles, err := l.loadDir(p)
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}

	return files, nil
}

func (l *Loader) loadDir(root string) ([]models.FileAnalysis, error) {
	matcher := l.excludeMatcher(root)

	var files []models.FileAnalysis
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if d.IsDir() {
			if path != root && l.isExcluded(matcher, relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if l.isExcluded(matcher, relPath, false) || !isSourceFile(path) {
			return nil
		}

		fa, ok, loadErr := l.loadFile(path, filepath.ToSlash(relPath))
		if loadErr != nil {
			// An unreadable file degrades to a skip; the scan itself
			// still completes.
			return nil
		}
		if ok {
			files = append(files, fa)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// loadFile reads one file. The second return is false when the file is
// skipped for size or is not a source file.
func (l *Loader) loadFile(path, key string) (models.FileAnalysis, bool, error) {
	if !isSourceFile(path) {
		return models.FileAnalysis{}, false, nil
	}

	if l.maxFileSize > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > l.maxFileSize {
			return models.FileAnalysis{}, false, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.FileAnalysis{}, false, fmt.Errorf("read %s: %w", path, err)
	}

	if l.progress != nil {
		l.progress(key)
	}
	return models.NewFileAnalysis(key, string(content)), true, nil
}
