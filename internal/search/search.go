// Package search scans file content for case-insensitive substring matches.
package search

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/devtul/internal/types"
)

const (
	replacementCharacter   = "�"
	maximumLineLengthBytes = 1024 * 1024
	initialLineBufferBytes = 64 * 1024
	readErrorMessagePrefix = "Error reading file: "
	errorEntryLineNumber   = 0
	firstContentLineNumber = 1
)

// SearchFile returns every line of the file whose lowercased content contains
// the lowercased term, with 1-based line numbers. Undecodable bytes never fail
// the scan; they are substituted with the replacement character. Any I/O
// failure yields a single synthetic match with line number zero so that batch
// callers can keep processing the remaining files.
func SearchFile(rootDirectory string, relativePath string, searchTerm string) []types.SearchMatch {
	fullPath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))

	fileHandle, openError := os.Open(fullPath)
	if openError != nil {
		return []types.SearchMatch{newErrorMatch(relativePath, openError)}
	}
	defer fileHandle.Close()

	loweredTerm := strings.ToLower(searchTerm)
	lineScanner := bufio.NewScanner(fileHandle)
	lineScanner.Buffer(make([]byte, initialLineBufferBytes), maximumLineLengthBytes)

	matches := make([]types.SearchMatch, 0)
	lineNumber := firstContentLineNumber
	for lineScanner.Scan() {
		lineContent := strings.ToValidUTF8(lineScanner.Text(), replacementCharacter)
		if strings.Contains(strings.ToLower(lineContent), loweredTerm) {
			matches = append(matches, types.SearchMatch{
				RelativePath: relativePath,
				LineNumber:   lineNumber,
				Content:      strings.TrimSpace(lineContent),
			})
		}
		lineNumber++
	}
	if scanError := lineScanner.Err(); scanError != nil {
		matches = append(matches, newErrorMatch(relativePath, scanError))
	}

	return matches
}

// SearchFiles scans every path in order and aggregates the matches. Per-file
// errors become inline error entries; the batch itself never fails.
func SearchFiles(rootDirectory string, relativePaths []string, searchTerm string) types.SearchResults {
	results := types.SearchResults{SearchTerm: searchTerm, Matches: make([]types.SearchMatch, 0)}
	for _, relativePath := range relativePaths {
		fileMatches := SearchFile(rootDirectory, relativePath, searchTerm)
		for _, fileMatch := range fileMatches {
			if !fileMatch.IsError() {
				results.TotalMatches++
			}
		}
		results.Matches = append(results.Matches, fileMatches...)
	}
	return results
}

func newErrorMatch(relativePath string, readError error) types.SearchMatch {
	return types.SearchMatch{
		RelativePath: relativePath,
		LineNumber:   errorEntryLineNumber,
		Content:      readErrorMessagePrefix + readError.Error(),
		Error:        readError.Error(),
	}
}
