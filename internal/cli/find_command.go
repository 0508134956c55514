package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/output"
	"github.com/temirov/devtul/internal/search"
	"github.com/temirov/devtul/internal/types"
)

const (
	findUse              = "find <path> <term>"
	findShortDescription = "search for a term within tracked files"
	findLongDescription  = `Search for a term in the files of a repository.

Matching is case-insensitive and returns each hit with its file name and
1-based line number, rendered as a markdown table or as JSON, YAML, or CSV.`
	findUsageExample = `  # Search every tracked file
  devtul find ./my-repo "function"

  # Python TODOs, printed while writing a file
  devtul find ./my-repo "TODO" --match "*.py" -f todos.md --print

  # Machine-readable results
  devtul find ./my-repo "import" --sub-dir src --json`
)

func createFindCommand() *cobra.Command {
	var filterConfiguration filterOptions
	var outputConfiguration outputOptions
	var jsonFormat bool
	var yamlFormat bool
	var csvFormat bool

	findCommand := &cobra.Command{
		Use:     findUse,
		Short:   findShortDescription,
		Long:    findLongDescription,
		Example: findUsageExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootArgument := arguments[0]
			searchTerm := arguments[1]

			// Empty files cannot contain the term; skip them outright.
			filterConfiguration.noEmpty = true
			result, pipelineError := runFilePipeline(rootArgument, filterConfiguration)
			if pipelineError != nil {
				return pipelineError
			}

			results := searchPathSet(result.root.AbsolutePath, result.pathSet, searchTerm)

			content, formatError := formatSearchResults(results, jsonFormat, yamlFormat, csvFormat)
			if formatError != nil {
				return formatError
			}
			return deliver(content, outputConfiguration)
		},
	}

	addFilterFlags(findCommand, &filterConfiguration)
	addOutputFlags(findCommand, &outputConfiguration)
	findCommand.Flags().BoolVar(&jsonFormat, jsonFlagName, false, jsonFlagDescription)
	findCommand.Flags().BoolVar(&yamlFormat, yamlFlagName, false, yamlFlagDescription)
	findCommand.Flags().BoolVar(&csvFormat, csvFlagName, false, csvFlagDescription)
	return findCommand
}

// searchPathSet reads through the original paths while reporting matches under
// the adjusted display paths.
func searchPathSet(rootDirectory string, pathSet types.PathSet, searchTerm string) types.SearchResults {
	results := types.SearchResults{SearchTerm: searchTerm, Matches: make([]types.SearchMatch, 0)}
	for pathIndex, originalPath := range pathSet.Original {
		displayPath := pathSet.Adjusted[pathIndex]
		for _, fileMatch := range search.SearchFile(rootDirectory, originalPath, searchTerm) {
			fileMatch.RelativePath = displayPath
			if !fileMatch.IsError() {
				results.TotalMatches++
			}
			results.Matches = append(results.Matches, fileMatch)
		}
	}
	return results
}

func formatSearchResults(results types.SearchResults, jsonFormat bool, yamlFormat bool, csvFormat bool) (string, error) {
	switch {
	case jsonFormat:
		return output.ToJSON(results)
	case yamlFormat:
		return output.ToYAML(results)
	case csvFormat:
		return output.MatchesToCSV(results)
	default:
		return output.FormatMatchTable(results), nil
	}
}
