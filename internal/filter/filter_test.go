package filter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/devtul/internal/config"
)

func defaultRuleSet() IgnoreRuleSet {
	return NewIgnoreRuleSet(config.IgnoreConfiguration{})
}

// TestShouldIgnorePathSubstringParts verifies that a configured substring part
// drops any path containing it.
func TestShouldIgnorePathSubstringParts(testingHandle *testing.T) {
	ruleSet := defaultRuleSet()

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "node_modules anywhere", path: "pkg/node_modules/x.js", expected: true},
		{name: "git metadata", path: ".git/config", expected: true},
		{name: "pycache", path: "src/__pycache__/mod.pyc", expected: true},
		{name: "ordinary source file", path: "pkg/server/http.go", expected: false},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if actual := ruleSet.ShouldIgnorePath(testCase.path); actual != testCase.expected {
				subTest.Fatalf("ShouldIgnorePath(%q) = %v, want %v", testCase.path, actual, testCase.expected)
			}
		})
	}
}

// TestShouldIgnorePathGlobPatterns verifies that glob rules match against the
// full path and the final segment.
func TestShouldIgnorePathGlobPatterns(testingHandle *testing.T) {
	ruleSet := defaultRuleSet()

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "compiled python", path: "lib/mod.pyc", expected: true},
		{name: "shared object", path: "out/libfoo.so", expected: true},
		{name: "swap file", path: "docs/.notes.md.swp", expected: true},
		{name: "plain markdown", path: "docs/notes.md", expected: false},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if actual := ruleSet.ShouldIgnorePath(testCase.path); actual != testCase.expected {
				subTest.Fatalf("ShouldIgnorePath(%q) = %v, want %v", testCase.path, actual, testCase.expected)
			}
		})
	}
}

// TestFilterIgnoredReturnsFreshSlice verifies the input slice is not mutated.
func TestFilterIgnoredReturnsFreshSlice(testingHandle *testing.T) {
	ruleSet := defaultRuleSet()
	inputPaths := []string{"keep.go", "pkg/node_modules/x.js", "also/keep.go"}
	inputCopy := append([]string(nil), inputPaths...)

	surviving := ruleSet.FilterIgnored(inputPaths)

	if !reflect.DeepEqual(inputPaths, inputCopy) {
		testingHandle.Fatalf("input slice was mutated: %v", inputPaths)
	}
	expected := []string{"keep.go", "also/keep.go"}
	if !reflect.DeepEqual(surviving, expected) {
		testingHandle.Fatalf("FilterIgnored = %v, want %v", surviving, expected)
	}
}

// TestApplyPatternsIdentityWithoutPatterns verifies that empty pattern lists
// act as the identity modulo sort and dedup.
func TestApplyPatternsIdentityWithoutPatterns(testingHandle *testing.T) {
	inputPaths := []string{"b.go", "a.go", "b.go"}

	filtered := ApplyPatterns(inputPaths, nil, nil)

	expected := []string{"a.go", "b.go"}
	if !reflect.DeepEqual(filtered, expected) {
		testingHandle.Fatalf("ApplyPatterns identity = %v, want %v", filtered, expected)
	}
}

// TestApplyPatternsIncludeAndExclude verifies include OR semantics and that
// exclude patterns win over include matches.
func TestApplyPatternsIncludeAndExclude(testingHandle *testing.T) {
	inputPaths := []string{"cmd/main.go", "docs/readme.md", "pkg/util.go", "pkg/util_test.go"}

	filtered := ApplyPatterns(inputPaths, []string{"*.go"}, []string{"*_test.go"})

	expected := []string{"cmd/main.go", "pkg/util.go"}
	if !reflect.DeepEqual(filtered, expected) {
		testingHandle.Fatalf("ApplyPatterns = %v, want %v", filtered, expected)
	}
}

// TestApplyPatternsBasenameFallback verifies that a separator-free pattern
// matches nested files by final segment.
func TestApplyPatternsBasenameFallback(testingHandle *testing.T) {
	inputPaths := []string{"deep/nested/file.py", "top.py", "other.txt"}

	filtered := ApplyPatterns(inputPaths, []string{"*.py"}, nil)

	expected := []string{"deep/nested/file.py", "top.py"}
	if !reflect.DeepEqual(filtered, expected) {
		testingHandle.Fatalf("ApplyPatterns basename fallback = %v, want %v", filtered, expected)
	}
}

// TestFilterByEmptinessModes verifies the exclude, include, and only-empty modes.
func TestFilterByEmptinessModes(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	if writeError := os.WriteFile(filepath.Join(rootDirectory, "full.txt"), []byte("content"), 0o644); writeError != nil {
		testingHandle.Fatalf("write full.txt: %v", writeError)
	}
	if writeError := os.WriteFile(filepath.Join(rootDirectory, "empty.txt"), nil, 0o644); writeError != nil {
		testingHandle.Fatalf("write empty.txt: %v", writeError)
	}
	inputPaths := []string{"full.txt", "empty.txt"}

	excludeResult := FilterByEmptiness(rootDirectory, inputPaths, ExcludeEmptyFiles)
	if !reflect.DeepEqual(excludeResult, []string{"full.txt"}) {
		testingHandle.Fatalf("ExcludeEmptyFiles = %v", excludeResult)
	}

	includeResult := FilterByEmptiness(rootDirectory, inputPaths, IncludeEmptyFiles)
	if !reflect.DeepEqual(includeResult, inputPaths) {
		testingHandle.Fatalf("IncludeEmptyFiles = %v", includeResult)
	}

	onlyResult := FilterByEmptiness(rootDirectory, inputPaths, OnlyEmptyFiles)
	if !reflect.DeepEqual(onlyResult, []string{"empty.txt"}) {
		testingHandle.Fatalf("OnlyEmptyFiles = %v", onlyResult)
	}
}

// TestSplitForSubdirectory verifies prefix stripping and index alignment.
func TestSplitForSubdirectory(testingHandle *testing.T) {
	inputPaths := []string{"src/a.go", "src/sub/b.go", "docs/readme.md"}

	pathSet := SplitForSubdirectory(inputPaths, "src")

	if !reflect.DeepEqual(pathSet.Adjusted, []string{"a.go", "sub/b.go"}) {
		testingHandle.Fatalf("adjusted = %v", pathSet.Adjusted)
	}
	if !reflect.DeepEqual(pathSet.Original, []string{"src/a.go", "src/sub/b.go"}) {
		testingHandle.Fatalf("original = %v", pathSet.Original)
	}

	lookupTable := NewPathLookup(pathSet)
	if originalPath := lookupTable.OriginalFor("sub/b.go"); originalPath != "src/sub/b.go" {
		testingHandle.Fatalf("OriginalFor(sub/b.go) = %q", originalPath)
	}
	if originalPath := lookupTable.OriginalFor("unmapped.go"); originalPath != "unmapped.go" {
		testingHandle.Fatalf("OriginalFor fallback = %q", originalPath)
	}
}

// TestSplitForSubdirectoryEmptyDirectory verifies the pass-through when no
// sub-directory view is requested.
func TestSplitForSubdirectoryEmptyDirectory(testingHandle *testing.T) {
	inputPaths := []string{"a.go", "b.go"}
	pathSet := SplitForSubdirectory(inputPaths, "")
	if !reflect.DeepEqual(pathSet.Adjusted, inputPaths) || !reflect.DeepEqual(pathSet.Original, inputPaths) {
		testingHandle.Fatalf("pass-through failed: %+v", pathSet)
	}
}

// TestNewIgnoreRuleSetReplaceDefaults verifies that replace_defaults discards
// the built-in rules.
func TestNewIgnoreRuleSetReplaceDefaults(testingHandle *testing.T) {
	ruleSet := NewIgnoreRuleSet(config.IgnoreConfiguration{
		ExtraParts:      []string{"secrets"},
		ReplaceDefaults: true,
	})

	if ruleSet.ShouldIgnorePath("pkg/node_modules/x.js") {
		testingHandle.Fatalf("default parts should be discarded with replace_defaults")
	}
	if !ruleSet.ShouldIgnorePath("config/secrets/api.txt") {
		testingHandle.Fatalf("extra part should still apply")
	}
}
