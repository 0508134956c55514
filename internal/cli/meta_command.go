package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/gather"
	"github.com/temirov/devtul/internal/gitmeta"
	"github.com/temirov/devtul/internal/output"
)

const (
	metaUse              = "meta [path]"
	metaShortDescription = "display git repository metadata"
	metaLongDescription  = `Show git repository information including branches, commits, remotes,
and working-tree status, as a markdown table or in a machine-readable format.`
	metaUsageExample = `  # Human-readable metadata table
  devtul meta ./my-repo

  # Metadata as JSON written to a file
  devtul meta ./my-repo -f metadata.json --json`

	notGitRepositoryMessage = "Not a git repository"
)

func createMetaCommand() *cobra.Command {
	var outputConfiguration outputOptions
	var jsonFormat bool
	var yamlFormat bool

	metaCommand := &cobra.Command{
		Use:     metaUse,
		Short:   metaShortDescription,
		Long:    metaLongDescription,
		Example: metaUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootArgument := defaultPath
			if len(arguments) > 0 {
				rootArgument = arguments[0]
			}
			validatedRoot, rootError := gather.ValidateRoot(rootArgument)
			if rootError != nil {
				return rootError
			}
			if !validatedRoot.IsGitRepo {
				return deliver(notGitRepositoryMessage, outputConfiguration)
			}

			repositoryMetadata, metadataError := gitmeta.CollectMetadata(validatedRoot)
			if metadataError != nil {
				return metadataError
			}

			var content string
			var formatError error
			switch {
			case jsonFormat:
				content, formatError = output.ToJSON(repositoryMetadata)
			case yamlFormat:
				content, formatError = output.ToYAML(repositoryMetadata)
			default:
				content = gitmeta.FormatMetadataTable(repositoryMetadata)
			}
			if formatError != nil {
				return formatError
			}
			return deliver(content, outputConfiguration)
		},
	}

	addOutputFlags(metaCommand, &outputConfiguration)
	metaCommand.Flags().BoolVar(&jsonFormat, jsonFlagName, false, jsonFlagDescription)
	metaCommand.Flags().BoolVar(&yamlFormat, yamlFlagName, false, yamlFlagDescription)
	return metaCommand
}
