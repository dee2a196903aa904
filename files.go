package px2vw

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks source file discovery statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isMinified checks if a file is a pre-minified stylesheet. Minified
// bundles are build artifacts; converting them bloats diffs for no gain.
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.css")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a discovered file should be excluded.
//
// Two-layer filtering:
//  1. Pattern check (fast): skip *.min.css bundles
//  2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isMinified(path) {
		return true
	}

	// Only apply gitignore to paths within the project; absolute paths
	// (like /tmp/...) should not be affected by the project gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// FindCSSFiles expands glob patterns into the list of stylesheet files to
// convert, deduplicated, with minified and gitignored files filtered out.
func FindCSSFiles(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				files = append(files, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return files, stats, nil
}
