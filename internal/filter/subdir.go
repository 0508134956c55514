package filter

import (
	"strings"

	"github.com/temirov/devtul/internal/types"
)

// SplitForSubdirectory narrows a path list to the entries under subDirectory
// and produces a virtual view with the prefix stripped. The original paths are
// retained index-aligned with the adjusted ones so callers can still read file
// content through the repository root.
func SplitForSubdirectory(paths []string, subDirectory string) types.PathSet {
	normalizedDirectory := strings.Trim(strings.ReplaceAll(subDirectory, "\\", "/"), "/")
	if normalizedDirectory == "" {
		return types.PathSet{Original: paths, Adjusted: paths}
	}

	prefix := normalizedDirectory + "/"
	var pathSet types.PathSet
	for _, path := range paths {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		pathSet.Original = append(pathSet.Original, path)
		pathSet.Adjusted = append(pathSet.Adjusted, strings.TrimPrefix(path, prefix))
	}
	return pathSet
}

// PathLookup maps adjusted display paths back to their original paths.
type PathLookup map[string]string

// NewPathLookup builds an adjusted-to-original lookup from a path set.
func NewPathLookup(pathSet types.PathSet) PathLookup {
	lookupTable := make(PathLookup, len(pathSet.Adjusted))
	for index, adjustedPath := range pathSet.Adjusted {
		lookupTable[adjustedPath] = pathSet.Original[index]
	}
	return lookupTable
}

// OriginalFor returns the original path backing an adjusted path. Falls back
// to the adjusted path itself when no sub-directory view is active.
func (lookupTable PathLookup) OriginalFor(adjustedPath string) string {
	if originalPath, exists := lookupTable[adjustedPath]; exists {
		return originalPath
	}
	return adjustedPath
}
