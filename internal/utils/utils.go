// Package utils contains general helper functions shared across the devtul commands.
package utils

import (
	"sort"
	"strings"
)

const pathSegmentSeparator = "/"

// DeduplicateStrings removes duplicate values from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicateStrings(values []string) []string {
	encounteredValues := make(map[string]struct{})
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := encounteredValues[value]; !exists {
			encounteredValues[value] = struct{}{}
			result = append(result, value)
		}
	}
	return result
}

// SortedUnique returns a sorted copy of the slice with duplicates removed.
func SortedUnique(values []string) []string {
	deduplicated := DeduplicateStrings(values)
	sort.Strings(deduplicated)
	return deduplicated
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// NormalizePath converts a path to forward-slash form with no leading "./".
func NormalizePath(path string) string {
	normalized := strings.ReplaceAll(path, "\\", pathSegmentSeparator)
	normalized = strings.TrimPrefix(normalized, "./")
	return normalized
}

// LastPathSegment returns the final slash-separated segment of a path.
func LastPathSegment(path string) string {
	normalized := NormalizePath(path)
	segments := strings.Split(normalized, pathSegmentSeparator)
	return segments[len(segments)-1]
}
