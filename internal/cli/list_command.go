package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/output"
)

const (
	listUse              = "ls [path]"
	listShortDescription = "list the files that survive filtering"
	listLongDescription  = `List the files of a repository after ignore and pattern filtering.

The listing uses git tracked files by default and falls back to a full scan
outside a repository or with --no-git.`
	listUsageExample = `  # List tracked files
  devtul ls ./my-repo

  # Markdown files as JSON
  devtul ls ./my-repo --match "*.md" --json`

	csvFileColumnHeader = "file"
)

func createListCommand() *cobra.Command {
	var filterConfiguration filterOptions
	var outputConfiguration outputOptions
	var jsonFormat bool
	var yamlFormat bool
	var csvFormat bool

	listCommand := &cobra.Command{
		Use:     listUse,
		Short:   listShortDescription,
		Long:    listLongDescription,
		Example: listUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootArgument := defaultPath
			if len(arguments) > 0 {
				rootArgument = arguments[0]
			}
			result, pipelineError := runFilePipeline(rootArgument, filterConfiguration)
			if pipelineError != nil {
				return pipelineError
			}

			content, formatError := formatPathListing(result.pathSet.Adjusted, jsonFormat, yamlFormat, csvFormat)
			if formatError != nil {
				return formatError
			}
			return deliver(content, outputConfiguration)
		},
	}

	addFilterFlags(listCommand, &filterConfiguration)
	addOutputFlags(listCommand, &outputConfiguration)
	listCommand.Flags().BoolVar(&jsonFormat, jsonFlagName, false, jsonFlagDescription)
	listCommand.Flags().BoolVar(&yamlFormat, yamlFlagName, false, yamlFlagDescription)
	listCommand.Flags().BoolVar(&csvFormat, csvFlagName, false, csvFlagDescription)
	return listCommand
}

func formatPathListing(paths []string, jsonFormat bool, yamlFormat bool, csvFormat bool) (string, error) {
	switch {
	case jsonFormat:
		return output.ToJSON(paths)
	case yamlFormat:
		return output.ToYAML(paths)
	case csvFormat:
		return pathsToCSV(paths)
	default:
		return strings.Join(paths, "\n"), nil
	}
}

func pathsToCSV(paths []string) (string, error) {
	var buffer bytes.Buffer
	csvWriter := csv.NewWriter(&buffer)
	records := [][]string{{csvFileColumnHeader}}
	for _, path := range paths {
		records = append(records, []string{path})
	}
	if writeError := csvWriter.WriteAll(records); writeError != nil {
		return "", fmt.Errorf("serialize file listing to CSV: %w", writeError)
	}
	return strings.TrimRight(buffer.String(), "\n"), nil
}
