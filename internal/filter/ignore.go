// Package filter implements the ignore and pattern filtering pipeline applied
// to gathered path lists before rendering, search, or document assembly.
package filter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/temirov/devtul/internal/config"
	"github.com/temirov/devtul/internal/utils"
)

// EmptyFileMode selects how zero-length files are treated during filtering.
type EmptyFileMode int

const (
	// ExcludeEmptyFiles drops zero-length files from the result.
	ExcludeEmptyFiles EmptyFileMode = iota
	// IncludeEmptyFiles keeps zero-length files in the result.
	IncludeEmptyFiles
	// OnlyEmptyFiles inverts the filter and keeps zero-length files only.
	OnlyEmptyFiles
)

// IgnoreRuleSet is the static deny-list applied to every gathered path.
// Parts are matched as substrings anywhere in the path; Patterns are glob
// patterns matched against the full path and against its final segment.
type IgnoreRuleSet struct {
	Parts    []string
	Patterns []string
}

// NewIgnoreRuleSet builds the rule set from the built-in defaults and the
// user's configuration extras. ReplaceDefaults discards the built-ins.
func NewIgnoreRuleSet(configuration config.IgnoreConfiguration) IgnoreRuleSet {
	var ruleSet IgnoreRuleSet
	if !configuration.ReplaceDefaults {
		ruleSet.Parts = append(ruleSet.Parts, config.DefaultIgnoreParts...)
		ruleSet.Patterns = append(ruleSet.Patterns, config.DefaultIgnorePatterns...)
	}
	ruleSet.Parts = utils.DeduplicateStrings(append(ruleSet.Parts, configuration.ExtraParts...))
	ruleSet.Patterns = utils.DeduplicateStrings(append(ruleSet.Patterns, configuration.ExtraPatterns...))
	return ruleSet
}

// ShouldIgnorePath reports whether the path matches any configured rule.
func (ruleSet IgnoreRuleSet) ShouldIgnorePath(path string) bool {
	normalizedPath := utils.NormalizePath(path)

	for _, part := range ruleSet.Parts {
		if strings.Contains(normalizedPath, part) {
			return true
		}
	}

	lastSegment := utils.LastPathSegment(normalizedPath)
	for _, pattern := range ruleSet.Patterns {
		if fullPathMatched, matchError := doublestar.Match(pattern, normalizedPath); matchError == nil && fullPathMatched {
			return true
		}
		if segmentMatched, matchError := doublestar.Match(pattern, lastSegment); matchError == nil && segmentMatched {
			return true
		}
	}

	return false
}

// FilterIgnored returns the paths that match none of the rules. The input
// slice is never mutated; the result is always a fresh slice.
func (ruleSet IgnoreRuleSet) FilterIgnored(paths []string) []string {
	surviving := make([]string, 0, len(paths))
	for _, path := range paths {
		if ruleSet.ShouldIgnorePath(path) {
			continue
		}
		surviving = append(surviving, path)
	}
	return surviving
}

// FilterByEmptiness applies the empty-file mode to root-relative paths.
// Paths whose size cannot be determined are kept in the default and include
// modes and dropped in only-empty mode.
func FilterByEmptiness(rootDirectory string, paths []string, mode EmptyFileMode) []string {
	if mode == IncludeEmptyFiles {
		return append([]string(nil), paths...)
	}
	surviving := make([]string, 0, len(paths))
	for _, path := range paths {
		fullPath := filepath.Join(rootDirectory, filepath.FromSlash(path))
		info, statError := os.Stat(fullPath)
		if statError != nil || !info.Mode().IsRegular() {
			if mode == ExcludeEmptyFiles {
				surviving = append(surviving, path)
			}
			continue
		}
		isEmpty := info.Size() == 0
		if mode == OnlyEmptyFiles && isEmpty {
			surviving = append(surviving, path)
		}
		if mode == ExcludeEmptyFiles && !isEmpty {
			surviving = append(surviving, path)
		}
	}
	return surviving
}
