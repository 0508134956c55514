package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/document"
	"github.com/temirov/devtul/internal/gitmeta"
	"github.com/temirov/devtul/internal/types"
)

const (
	docUse              = "md [path]"
	docShortDescription = "flatten a repository into one markdown document"
	docLongDescription  = `Generate comprehensive markdown documentation from a repository.

Creates a single markdown document containing repository metadata, the file
structure, and the content of every surviving file, with YAML frontmatter
describing the generation run.`
	docUsageExample = `  # Flatten a repository to stdout
  devtul md ./my-repo

  # Python files only, written to a file
  devtul md ./my-repo --match "*.py" -f repo_docs.md

  # Count tokens for a specific model
  devtul md ./my-repo --tokens --model gpt-4o`
)

func createDocCommand() *cobra.Command {
	var filterConfiguration filterOptions
	var outputConfiguration outputOptions
	var includeFileMetadata bool
	var countTokens bool
	var tokenizerModel string

	docCommand := &cobra.Command{
		Use:     docUse,
		Short:   docShortDescription,
		Long:    docLongDescription,
		Example: docUsageExample,
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

			var repositoryMetadata *types.GitMetadata
			if filterConfiguration.gitEnabled() && result.root.IsGitRepo {
				if collected, metadataError := gitmeta.CollectMetadata(result.root); metadataError == nil {
					repositoryMetadata = &collected
				}
			}

			tokenModel := ""
			if countTokens {
				tokenModel = tokenizerModel
			}

			assembled, assembleError := document.Assemble(document.AssembleOptions{
				Root:                result.root,
				PathSet:             result.pathSet,
				TotalFileCount:      result.totalFileCount,
				GitMetadata:         repositoryMetadata,
				IncludeFileMetadata: includeFileMetadata,
				TokenModel:          tokenModel,
				GeneratedAt:         time.Now(),
			})
			if assembleError != nil {
				return assembleError
			}
			return deliver(assembled, outputConfiguration)
		},
	}

	addFilterFlags(docCommand, &filterConfiguration)
	addOutputFlags(docCommand, &outputConfiguration)
	docCommand.Flags().BoolVar(&includeFileMetadata, filemetaFlagName, true, filemetaFlagDescription)
	docCommand.Flags().BoolVar(&countTokens, tokensFlagName, false, tokensFlagDescription)
	docCommand.Flags().StringVar(&tokenizerModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	return docCommand
}
