// Package document assembles repository metadata, tree renderings, and file
// content into a single flattened markdown document.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/temirov/devtul/internal/gitmeta"
	"github.com/temirov/devtul/internal/render"
	"github.com/temirov/devtul/internal/tokenizer"
	"github.com/temirov/devtul/internal/types"
	"github.com/temirov/devtul/internal/utils"
)

const (
	frontmatterDelimiter   = "---"
	sectionDivider         = "---"
	gitMetadataHeading     = "## Git Metadata"
	structureHeading       = "## Structure"
	filesHeading           = "## Files"
	fileHeadingPrefix      = "### "
	contentLabel           = "**Content**:"
	pathLabelFormat        = "**Path:** `%s`"
	codeFenceMarker        = "```"
	defaultLanguageHint    = "plaintext"
	binaryContentNoticeFormat = "[binary content omitted, %s]"
	fileReadErrorFormat    = "Error reading file: %v"
	unknownMetadataValue   = "Unknown"
	fileSizeSuffix         = " bytes"
	metadataPropertyColumn = "Property"
	metadataValueColumn    = "Value"
	relativePathRowLabel   = "Relative Path"
	lastModifiedRowLabel   = "Last Modified"
	fileSizeRowLabel       = "Size"
)

var extensionLanguageHints = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".jsx":   "jsx",
	".tsx":   "tsx",
	".rb":    "ruby",
	".rs":    "rust",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".sh":    "bash",
	".bash":  "bash",
	".zsh":   "bash",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".xml":   "xml",
	".md":    "markdown",
	".txt":   "plaintext",
	".proto": "protobuf",
	".swift": "swift",
	".kt":    "kotlin",
	".lua":   "lua",
	".pl":    "perl",
	".r":     "r",
	".ex":    "elixir",
	".exs":   "elixir",
	".dart":  "dart",
	".tf":    "hcl",
	".ini":   "ini",
	".mod":   "go-module",
}

// LanguageHint maps a file path to the fenced-code language tag used when
// embedding its content. Unknown extensions fall back to plaintext.
func LanguageHint(path string) string {
	extension := strings.ToLower(filepath.Ext(path))
	if languageHint, known := extensionLanguageHints[extension]; known {
		return languageHint
	}
	return defaultLanguageHint
}

// AssembleOptions carries everything the assembler needs for one document.
type AssembleOptions struct {
	Root                types.ValidatedRoot
	PathSet             types.PathSet
	TotalFileCount      int
	GitMetadata         *types.GitMetadata
	IncludeFileMetadata bool
	TokenModel          string
	GeneratedAt         time.Time
}

// Assemble produces the complete markdown document: YAML frontmatter, title,
// optional git metadata table, the fenced tree rendering, and one section per
// file holding its metadata table and fenced content. Per-file read failures
// become inline error notes; the assembly itself only fails when the
// frontmatter cannot be serialized.
func Assemble(options AssembleOptions) (string, error) {
	var tokenCounter tokenizer.Counter
	resolvedTokenModel := ""
	if options.TokenModel != "" {
		counter, counterName, counterError := tokenizer.NewCounter(options.TokenModel)
		if counterError != nil {
			return "", counterError
		}
		tokenCounter = counter
		resolvedTokenModel = counterName
	}

	fileSections, totalTokens := buildFileSections(options, tokenCounter)

	header := types.DocumentHeader{
		GeneratedAt:   options.GeneratedAt.Format(time.RFC3339),
		RepoPath:      options.Root.AbsolutePath,
		FileCount:     options.TotalFileCount,
		FilesIncluded: len(options.PathSet.Adjusted),
		TotalTokens:   totalTokens,
		TokenModel:    resolvedTokenModel,
	}
	frontmatter, frontmatterError := renderFrontmatter(header)
	if frontmatterError != nil {
		return "", frontmatterError
	}

	documentLines := []string{frontmatter}

	if options.GitMetadata != nil {
		repositoryTitle := strings.ToUpper(filepath.Base(options.Root.AbsolutePath))
		documentLines = append(documentLines,
			"# "+repositoryTitle,
			"",
			sectionDivider,
			"",
			gitMetadataHeading,
			"",
			gitmeta.FormatMetadataTable(*options.GitMetadata),
			"",
			sectionDivider,
			"",
		)
	}

	documentLines = append(documentLines,
		structureHeading,
		"",
		codeFenceMarker,
		render.BuildTree(options.PathSet.Adjusted),
		codeFenceMarker,
		"",
		sectionDivider,
		"",
		filesHeading,
		"",
	)
	documentLines = append(documentLines, fileSections...)

	return strings.Join(documentLines, "\n"), nil
}

func buildFileSections(options AssembleOptions, tokenCounter tokenizer.Counter) ([]string, int) {
	sectionLines := make([]string, 0, len(options.PathSet.Adjusted)*12)
	totalTokens := 0

	for pathIndex, displayPath := range options.PathSet.Adjusted {
		originalPath := options.PathSet.Original[pathIndex]
		fullPath := filepath.Join(options.Root.AbsolutePath, filepath.FromSlash(originalPath))

		sectionLines = append(sectionLines, fileHeadingPrefix+utils.LastPathSegment(displayPath), "")

		if options.IncludeFileMetadata {
			sectionLines = append(sectionLines, renderFileMetadataTable(fullPath, displayPath)...)
		} else {
			sectionLines = append(sectionLines, fmt.Sprintf(pathLabelFormat, displayPath), "")
		}

		sectionLines = append(sectionLines, contentLabel, "")

		fileContent, readError := os.ReadFile(fullPath)
		switch {
		case readError != nil:
			sectionLines = append(sectionLines, codeFenceMarker+defaultLanguageHint, fmt.Sprintf(fileReadErrorFormat, readError), codeFenceMarker)
		case utils.IsBinary(fileContent):
			binaryNotice := fmt.Sprintf(binaryContentNoticeFormat, utils.FormatFileSize(int64(len(fileContent))))
			sectionLines = append(sectionLines, codeFenceMarker+defaultLanguageHint, binaryNotice, codeFenceMarker)
		default:
			contentText := strings.ToValidUTF8(string(fileContent), "�")
			if tokenCounter != nil {
				if countResult, countError := tokenizer.CountBytes(tokenCounter, fileContent); countError == nil && countResult.Counted {
					totalTokens += countResult.Tokens
				}
			}
			sectionLines = append(sectionLines, codeFenceMarker+LanguageHint(fullPath), strings.TrimRight(contentText, "\n"), codeFenceMarker)
		}

		sectionLines = append(sectionLines, "", sectionDivider, "")
	}

	return sectionLines, totalTokens
}

func renderFileMetadataTable(fullPath string, displayPath string) []string {
	sizeValue := unknownMetadataValue
	modifiedValue := unknownMetadataValue
	if fileInfo, statError := os.Stat(fullPath); statError == nil {
		sizeValue = fmt.Sprintf("%d%s", fileInfo.Size(), fileSizeSuffix)
		modifiedValue = fileInfo.ModTime().Format(time.RFC3339)
	}

	propertyWidth := len(relativePathRowLabel)
	valueWidth := maximumLength(displayPath, modifiedValue, sizeValue, metadataValueColumn)

	tableRow := func(property string, value string) string {
		return fmt.Sprintf("| %-*s | %-*s |", propertyWidth, property, valueWidth, value)
	}

	return []string{
		tableRow(metadataPropertyColumn, metadataValueColumn),
		"|" + strings.Repeat("-", propertyWidth+2) + "|" + strings.Repeat("-", valueWidth+2) + "|",
		tableRow(relativePathRowLabel, displayPath),
		tableRow(lastModifiedRowLabel, modifiedValue),
		tableRow(fileSizeRowLabel, sizeValue),
		"",
	}
}

func maximumLength(values ...string) int {
	longest := 0
	for _, value := range values {
		if len(value) > longest {
			longest = len(value)
		}
	}
	return longest
}

func renderFrontmatter(header types.DocumentHeader) (string, error) {
	encodedHeader, marshalError := yaml.Marshal(header)
	if marshalError != nil {
		return "", fmt.Errorf("serialize document frontmatter: %w", marshalError)
	}
	return frontmatterDelimiter + "\n" + string(encodedHeader) + frontmatterDelimiter + "\n", nil
}
