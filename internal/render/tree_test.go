package render

import (
	"strings"
	"testing"
)

// TestBuildTreeNestedAndFlatEntries verifies connector placement with a mix of
// nested and top-level files.
func TestBuildTreeNestedAndFlatEntries(testingHandle *testing.T) {
	inputPaths := []string{"a/b.txt", "a/c.txt", "d.txt"}

	expectedTree := strings.Join([]string{
		"./",
		"├── a/",
		"│   ├── b.txt",
		"│   └── c.txt",
		"└── d.txt",
	}, "\n")

	renderedTree := BuildTree(inputPaths)
	if renderedTree != expectedTree {
		testingHandle.Fatalf("unexpected tree:\ngot:\n%s\nwant:\n%s", renderedTree, expectedTree)
	}
}

// TestBuildTreeInputOrderIndependence verifies that unsorted input renders the
// same tree as sorted input.
func TestBuildTreeInputOrderIndependence(testingHandle *testing.T) {
	sortedPaths := []string{"a/b.txt", "a/c.txt", "d.txt"}
	shuffledPaths := []string{"d.txt", "a/c.txt", "a/b.txt"}

	if BuildTree(sortedPaths) != BuildTree(shuffledPaths) {
		testingHandle.Fatalf("tree rendering depends on input order")
	}
}

// TestBuildTreeSyntheticRoot verifies that a single top-level directory with
// no top-level files becomes the synthetic root line.
func TestBuildTreeSyntheticRoot(testingHandle *testing.T) {
	inputPaths := []string{"src/a.go", "src/b/c.go"}

	expectedTree := strings.Join([]string{
		"./",
		"src/",
		"    ├── b/",
		"    │   └── c.go",
		"    └── a.go",
	}, "\n")

	renderedTree := BuildTree(inputPaths)
	if renderedTree != expectedTree {
		testingHandle.Fatalf("unexpected synthetic root tree:\ngot:\n%s\nwant:\n%s", renderedTree, expectedTree)
	}
}

// TestBuildTreeEmptyInput verifies that an empty path list yields an empty string.
func TestBuildTreeEmptyInput(testingHandle *testing.T) {
	if renderedTree := BuildTree(nil); renderedTree != "" {
		testingHandle.Fatalf("expected empty string for empty input, got %q", renderedTree)
	}
}

// TestBuildTreeFlatFileSet verifies that files without subdirectories render
// as a single level under the root.
func TestBuildTreeFlatFileSet(testingHandle *testing.T) {
	inputPaths := []string{"beta.txt", "alpha.txt"}

	expectedTree := strings.Join([]string{
		"./",
		"├── alpha.txt",
		"└── beta.txt",
	}, "\n")

	renderedTree := BuildTree(inputPaths)
	if renderedTree != expectedTree {
		testingHandle.Fatalf("unexpected flat tree:\ngot:\n%s\nwant:\n%s", renderedTree, expectedTree)
	}
}

// TestBuildTreeLeafRoundTrip verifies that every input path's final segment
// appears exactly once as a leaf in the rendering.
func TestBuildTreeLeafRoundTrip(testingHandle *testing.T) {
	inputPaths := []string{"pkg/util/strings.go", "pkg/util/ints.go", "cmd/main.go", "README.md"}

	renderedTree := BuildTree(inputPaths)
	for _, inputPath := range inputPaths {
		segments := strings.Split(inputPath, "/")
		leafName := segments[len(segments)-1]
		if !strings.Contains(renderedTree, leafName) {
			testingHandle.Fatalf("leaf %s missing from rendering:\n%s", leafName, renderedTree)
		}
	}
	if strings.Count(renderedTree, "main.go") != 1 {
		testingHandle.Fatalf("expected exactly one main.go leaf:\n%s", renderedTree)
	}
}
