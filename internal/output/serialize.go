package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/temirov/devtul/internal/types"
)

const (
	jsonIndentation        = "  "
	matchTableContentLimit = 100
	matchTableEllipsis     = "..."
	noMatchesFoundFormat   = "No matches found for term: %s"
)

// ToJSON serializes a value as indented JSON.
func ToJSON(value any) (string, error) {
	encoded, marshalError := json.MarshalIndent(value, "", jsonIndentation)
	if marshalError != nil {
		return "", fmt.Errorf("serialize to JSON: %w", marshalError)
	}
	return string(encoded), nil
}

// ToYAML serializes a value as YAML.
func ToYAML(value any) (string, error) {
	encoded, marshalError := yaml.Marshal(value)
	if marshalError != nil {
		return "", fmt.Errorf("serialize to YAML: %w", marshalError)
	}
	return strings.TrimRight(string(encoded), "\n"), nil
}

// MatchesToCSV serializes search matches as CSV with a header row.
func MatchesToCSV(results types.SearchResults) (string, error) {
	var buffer bytes.Buffer
	csvWriter := csv.NewWriter(&buffer)

	records := [][]string{{"file", "line", "content"}}
	for _, match := range results.Matches {
		records = append(records, []string{match.RelativePath, strconv.Itoa(match.LineNumber), match.Content})
	}
	if writeError := csvWriter.WriteAll(records); writeError != nil {
		return "", fmt.Errorf("serialize to CSV: %w", writeError)
	}
	csvWriter.Flush()
	return strings.TrimRight(buffer.String(), "\n"), nil
}

// FormatMatchTable renders search results as a markdown table. Pipe characters
// inside content are escaped and long lines are truncated for readability.
func FormatMatchTable(results types.SearchResults) string {
	if len(results.Matches) == 0 {
		return fmt.Sprintf(noMatchesFoundFormat, results.SearchTerm)
	}

	tableLines := []string{"| File | Line | Content |", "|------|------|---------|"}
	for _, match := range results.Matches {
		content := match.Content
		if len(content) > matchTableContentLimit {
			// Back up to a rune boundary so a multi-byte rune is never split.
			truncationIndex := matchTableContentLimit
			for truncationIndex > 0 && !utf8.RuneStart(content[truncationIndex]) {
				truncationIndex--
			}
			content = content[:truncationIndex] + matchTableEllipsis
		}
		content = strings.ReplaceAll(content, "|", "\\|")
		tableLines = append(tableLines, fmt.Sprintf("| %s | %d | %s |", match.RelativePath, match.LineNumber, content))
	}
	return strings.Join(tableLines, "\n")
}
