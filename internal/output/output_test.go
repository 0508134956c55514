package output

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/temirov/devtul/internal/types"
)

// TestValidateEncoding verifies the accepted encoding names and the rejection
// of unknown ones.
func TestValidateEncoding(testingHandle *testing.T) {
	for _, encodingName := range SupportedEncodings {
		if validationError := ValidateEncoding(encodingName); validationError != nil {
			testingHandle.Fatalf("ValidateEncoding(%q) = %v", encodingName, validationError)
		}
	}
	if validationError := ValidateEncoding("koi8-r"); validationError == nil {
		testingHandle.Fatalf("expected error for unsupported encoding")
	}
}

// TestEncodeContentASCII verifies that non-ASCII characters are dropped.
func TestEncodeContentASCII(testingHandle *testing.T) {
	encoded, encodeError := EncodeContent("héllo", EncodingASCII)
	if encodeError != nil {
		testingHandle.Fatalf("EncodeContent ascii failed: %v", encodeError)
	}
	if string(encoded) != "hllo" {
		testingHandle.Fatalf("ascii encoding = %q, want %q", encoded, "hllo")
	}
}

// TestEncodeContentUTF16ByteOrderMark verifies the little-endian BOM prefix.
func TestEncodeContentUTF16ByteOrderMark(testingHandle *testing.T) {
	encoded, encodeError := EncodeContent("ab", EncodingUTF16)
	if encodeError != nil {
		testingHandle.Fatalf("EncodeContent utf16 failed: %v", encodeError)
	}
	if !bytes.HasPrefix(encoded, []byte{0xFF, 0xFE}) {
		testingHandle.Fatalf("utf16 output missing little-endian BOM: % x", encoded[:2])
	}
}

// TestEncodeContentLatin1 verifies single-byte Latin-1 mapping.
func TestEncodeContentLatin1(testingHandle *testing.T) {
	encoded, encodeError := EncodeContent("é", EncodingLatin1)
	if encodeError != nil {
		testingHandle.Fatalf("EncodeContent latin1 failed: %v", encodeError)
	}
	if len(encoded) != 1 || encoded[0] != 0xE9 {
		testingHandle.Fatalf("latin1 encoding = % x, want e9", encoded)
	}
}

// TestFormatMatchTableEscapingAndTruncation verifies pipe escaping and the
// 100-character content limit.
func TestFormatMatchTableEscapingAndTruncation(testingHandle *testing.T) {
	longContent := strings.Repeat("x", 150)
	results := types.SearchResults{
		SearchTerm:   "x",
		TotalMatches: 2,
		Matches: []types.SearchMatch{
			{RelativePath: "a.txt", LineNumber: 1, Content: "left | right"},
			{RelativePath: "b.txt", LineNumber: 2, Content: longContent},
		},
	}

	table := FormatMatchTable(results)

	if !strings.Contains(table, `left \| right`) {
		testingHandle.Fatalf("pipe characters not escaped:\n%s", table)
	}
	if !strings.Contains(table, strings.Repeat("x", 100)+"...") {
		testingHandle.Fatalf("long content not truncated:\n%s", table)
	}
	if strings.Contains(table, strings.Repeat("x", 101)) {
		testingHandle.Fatalf("content exceeds truncation limit:\n%s", table)
	}
}

// TestFormatMatchTableTruncatesOnRuneBoundary verifies that truncation never
// splits a multi-byte rune straddling the content limit.
func TestFormatMatchTableTruncatesOnRuneBoundary(testingHandle *testing.T) {
	straddlingContent := strings.Repeat("x", 99) + "é" + strings.Repeat("y", 20)
	results := types.SearchResults{
		SearchTerm:   "x",
		TotalMatches: 1,
		Matches: []types.SearchMatch{
			{RelativePath: "a.txt", LineNumber: 1, Content: straddlingContent},
		},
	}

	table := FormatMatchTable(results)

	if !utf8.ValidString(table) {
		testingHandle.Fatalf("truncated table is not valid UTF-8:\n%s", table)
	}
	if !strings.Contains(table, strings.Repeat("x", 99)+"...") {
		testingHandle.Fatalf("expected truncation before the straddling rune:\n%s", table)
	}
	if strings.Contains(table, "é") {
		testingHandle.Fatalf("straddling rune should be dropped entirely:\n%s", table)
	}
}

// TestFormatMatchTableNoMatches verifies the no-results message.
func TestFormatMatchTableNoMatches(testingHandle *testing.T) {
	results := types.SearchResults{SearchTerm: "ghost"}
	table := FormatMatchTable(results)
	if table != "No matches found for term: ghost" {
		testingHandle.Fatalf("unexpected message %q", table)
	}
}

// TestMatchesToCSV verifies the header row and record layout.
func TestMatchesToCSV(testingHandle *testing.T) {
	results := types.SearchResults{
		SearchTerm: "t",
		Matches: []types.SearchMatch{
			{RelativePath: "a.txt", LineNumber: 3, Content: "hit, with comma"},
		},
	}

	csvContent, csvError := MatchesToCSV(results)
	if csvError != nil {
		testingHandle.Fatalf("MatchesToCSV failed: %v", csvError)
	}
	csvLines := strings.Split(csvContent, "\n")
	if csvLines[0] != "file,line,content" {
		testingHandle.Fatalf("unexpected header %q", csvLines[0])
	}
	if csvLines[1] != `a.txt,3,"hit, with comma"` {
		testingHandle.Fatalf("unexpected record %q", csvLines[1])
	}
}

// TestToJSONAndToYAML verifies round-trip-free serialization of search results.
func TestToJSONAndToYAML(testingHandle *testing.T) {
	results := types.SearchResults{SearchTerm: "abc", TotalMatches: 0, Matches: []types.SearchMatch{}}

	jsonContent, jsonError := ToJSON(results)
	if jsonError != nil {
		testingHandle.Fatalf("ToJSON failed: %v", jsonError)
	}
	if !strings.Contains(jsonContent, `"search_term": "abc"`) {
		testingHandle.Fatalf("JSON missing search term:\n%s", jsonContent)
	}

	yamlContent, yamlError := ToYAML(results)
	if yamlError != nil {
		testingHandle.Fatalf("ToYAML failed: %v", yamlError)
	}
	if !strings.Contains(yamlContent, "search_term: abc") {
		testingHandle.Fatalf("YAML missing search term:\n%s", yamlContent)
	}
}
