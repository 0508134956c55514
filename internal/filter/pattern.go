package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/temirov/devtul/internal/utils"
)

// matchesPattern evaluates a glob pattern against the full slash-separated
// path. A pattern without a separator also matches on the final segment, so
// "*.go" selects nested files without requiring a "**/" prefix.
func matchesPattern(path string, pattern string) bool {
	normalizedPath := utils.NormalizePath(path)
	if fullPathMatched, matchError := doublestar.Match(pattern, normalizedPath); matchError == nil && fullPathMatched {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	segmentMatched, matchError := doublestar.Match(pattern, utils.LastPathSegment(normalizedPath))
	return matchError == nil && segmentMatched
}

// ApplyPatterns filters paths through include and exclude glob patterns.
// Include patterns are OR-ed: a path survives when it matches at least one.
// Exclude patterns are applied afterwards and win over any include match.
// The result is deduplicated and sorted for deterministic rendering.
func ApplyPatterns(paths []string, includePatterns []string, excludePatterns []string) []string {
	filtered := make([]string, 0, len(paths))

	for _, path := range paths {
		if len(includePatterns) > 0 {
			included := false
			for _, pattern := range includePatterns {
				if matchesPattern(path, pattern) {
					included = true
					break
				}
			}
			if !included {
				continue
			}
		}

		excluded := false
		for _, pattern := range excludePatterns {
			if matchesPattern(path, pattern) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		filtered = append(filtered, path)
	}

	return utils.SortedUnique(filtered)
}
