package utils

import (
	"reflect"
	"testing"
)

// TestDeduplicateStrings verifies order-preserving duplicate removal.
func TestDeduplicateStrings(testingHandle *testing.T) {
	deduplicated := DeduplicateStrings([]string{"b", "a", "b", "c", "a"})
	if !reflect.DeepEqual(deduplicated, []string{"b", "a", "c"}) {
		testingHandle.Fatalf("DeduplicateStrings = %v", deduplicated)
	}
}

// TestSortedUnique verifies sorting plus deduplication.
func TestSortedUnique(testingHandle *testing.T) {
	sortedValues := SortedUnique([]string{"c", "a", "c", "b"})
	if !reflect.DeepEqual(sortedValues, []string{"a", "b", "c"}) {
		testingHandle.Fatalf("SortedUnique = %v", sortedValues)
	}
}

// TestContainsString verifies membership checks.
func TestContainsString(testingHandle *testing.T) {
	values := []string{"alpha", "beta"}
	if !ContainsString(values, "alpha") {
		testingHandle.Fatalf("expected alpha to be found")
	}
	if ContainsString(values, "gamma") {
		testingHandle.Fatalf("gamma should not be found")
	}
}

// TestNormalizePath verifies slash normalization and prefix trimming.
func TestNormalizePath(testingHandle *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: `dir\sub\file.txt`, expected: "dir/sub/file.txt"},
		{input: "./relative/file.txt", expected: "relative/file.txt"},
		{input: "plain.txt", expected: "plain.txt"},
	}
	for _, testCase := range testCases {
		if actual := NormalizePath(testCase.input); actual != testCase.expected {
			testingHandle.Fatalf("NormalizePath(%q) = %q, want %q", testCase.input, actual, testCase.expected)
		}
	}
}

// TestLastPathSegment verifies final segment extraction.
func TestLastPathSegment(testingHandle *testing.T) {
	if segment := LastPathSegment("a/b/c.txt"); segment != "c.txt" {
		testingHandle.Fatalf("LastPathSegment = %q", segment)
	}
	if segment := LastPathSegment("solo.txt"); segment != "solo.txt" {
		testingHandle.Fatalf("LastPathSegment single = %q", segment)
	}
}

// TestIsBinary verifies the null-byte and invalid-UTF-8 heuristics.
func TestIsBinary(testingHandle *testing.T) {
	if IsBinary([]byte("plain text")) {
		testingHandle.Fatalf("plain text flagged as binary")
	}
	if !IsBinary([]byte{0x00, 0x01, 0x02}) {
		testingHandle.Fatalf("null bytes should flag binary")
	}
	if !IsBinary([]byte{0xFF, 0xFE, 0x00}) {
		testingHandle.Fatalf("invalid UTF-8 should flag binary")
	}
	if IsBinary(nil) {
		testingHandle.Fatalf("empty content is not binary")
	}
}

// TestFormatFileSize verifies the human-readable size renderings.
func TestFormatFileSize(testingHandle *testing.T) {
	testCases := []struct {
		bytes    int64
		expected string
	}{
		{bytes: 0, expected: "0b"},
		{bytes: 512, expected: "512b"},
		{bytes: 2048, expected: "2kb"},
		{bytes: 1536, expected: "1.5kb"},
		{bytes: 10 * 1024 * 1024, expected: "10mb"},
	}
	for _, testCase := range testCases {
		if actual := FormatFileSize(testCase.bytes); actual != testCase.expected {
			testingHandle.Fatalf("FormatFileSize(%d) = %q, want %q", testCase.bytes, actual, testCase.expected)
		}
	}
}
