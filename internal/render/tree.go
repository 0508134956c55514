// Package render converts flat relative path lists into nested ASCII trees.
package render

import (
	"sort"
	"strings"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	treeRootLabel            = "."
	directorySuffix          = "/"
	treeLineSeparator        = "\n"
	relativePathSeparator    = "/"
	syntheticRootChildIndent = treeLastPadding
)

// treeNode is a nested directory mapping with a files bucket per level.
type treeNode struct {
	directories map[string]*treeNode
	files       []string
}

func newTreeNode() *treeNode {
	return &treeNode{directories: make(map[string]*treeNode)}
}

func (node *treeNode) insert(segments []string) {
	current := node
	for segmentIndex, segment := range segments {
		if segmentIndex == len(segments)-1 {
			current.files = append(current.files, segment)
			return
		}
		child, exists := current.directories[segment]
		if !exists {
			child = newTreeNode()
			current.directories[segment] = child
		}
		current = child
	}
}

func (node *treeNode) sortedDirectoryNames() []string {
	names := make([]string, 0, len(node.directories))
	for name := range node.directories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildTree renders a flat list of slash-separated relative paths as a nested
// ASCII tree. Subdirectories precede files at every level and each group is
// sorted alphabetically, so the output is independent of the input order.
// An empty path list yields an empty string.
func BuildTree(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	root := newTreeNode()
	sortedPaths := append([]string(nil), paths...)
	sort.Strings(sortedPaths)
	for _, path := range sortedPaths {
		segments := strings.Split(path, relativePathSeparator)
		if len(segments) == 0 {
			continue
		}
		root.insert(segments)
	}

	lines := []string{treeRootLabel + directorySuffix}
	if len(root.directories) == 1 && len(root.files) == 0 {
		// Everything lives under one folder: surface it as a synthetic
		// root line instead of a redundant single-branch wrapper.
		soleDirectoryName := root.sortedDirectoryNames()[0]
		lines = append(lines, soleDirectoryName+directorySuffix)
		lines = append(lines, renderNode(root.directories[soleDirectoryName], syntheticRootChildIndent)...)
	} else {
		lines = append(lines, renderNode(root, "")...)
	}

	return strings.Join(lines, treeLineSeparator)
}

func renderNode(node *treeNode, prefix string) []string {
	directoryNames := node.sortedDirectoryNames()
	fileNames := append([]string(nil), node.files...)
	sort.Strings(fileNames)

	totalEntries := len(directoryNames) + len(fileNames)
	lines := make([]string, 0, totalEntries)

	entryIndex := 0
	for _, directoryName := range directoryNames {
		connector, childPrefix := treeEntryPrefixes(prefix, entryIndex == totalEntries-1)
		lines = append(lines, connector+directoryName+directorySuffix)
		lines = append(lines, renderNode(node.directories[directoryName], childPrefix)...)
		entryIndex++
	}
	for _, fileName := range fileNames {
		connector, _ := treeEntryPrefixes(prefix, entryIndex == totalEntries-1)
		lines = append(lines, connector+fileName)
		entryIndex++
	}

	return lines
}

func treeEntryPrefixes(prefix string, isLast bool) (string, string) {
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}
