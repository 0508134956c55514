package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/config"
	"github.com/temirov/devtul/internal/filter"
	"github.com/temirov/devtul/internal/gather"
)

const (
	emptyUse              = "empty"
	emptyShortDescription = "locate empty files and folders"

	emptyFilesUse              = "files [path]"
	emptyFilesShortDescription = "locate empty files in the specified path"
	emptyFilesUsageExample     = `  # Zero-length files across a repository
  devtul empty files ./my-repo

  # As JSON for scripting
  devtul empty files ./my-repo --json`

	emptyDirsUse              = "dirs [path]"
	emptyDirsShortDescription = "locate empty folders in the specified path"

	noEmptyItemsMessage   = "No empty items found."
	noEmptyFoldersMessage = "No empty folders found."
)

func createEmptyCommand() *cobra.Command {
	emptyCommand := &cobra.Command{
		Use:   emptyUse,
		Short: emptyShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	emptyCommand.AddCommand(createEmptyFilesCommand(), createEmptyDirsCommand())
	return emptyCommand
}

func createEmptyFilesCommand() *cobra.Command {
	var useGit bool
	var noGit bool
	var jsonFormat bool
	var yamlFormat bool
	var csvFormat bool

	emptyFilesCommand := &cobra.Command{
		Use:     emptyFilesUse,
		Short:   emptyFilesShortDescription,
		Example: emptyFilesUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootArgument := defaultPath
			if len(arguments) > 0 {
				rootArgument = arguments[0]
			}
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if configurationError != nil {
				return configurationError
			}
			validatedRoot, rootError := gather.ValidateRoot(rootArgument)
			if rootError != nil {
				return rootError
			}

			ruleSet := filter.NewIgnoreRuleSet(configuration.Ignore)
			candidatePaths, gatherError := gather.GatherFiles(validatedRoot, useGit && !noGit, ruleSet)
			if gatherError != nil {
				return gatherError
			}
			emptyPaths := filter.FilterByEmptiness(validatedRoot.AbsolutePath, candidatePaths, filter.OnlyEmptyFiles)
			if len(emptyPaths) == 0 {
				fmt.Println(noEmptyItemsMessage)
				return nil
			}
			sort.Strings(emptyPaths)

			content, formatError := formatPathListing(emptyPaths, jsonFormat, yamlFormat, csvFormat)
			if formatError != nil {
				return formatError
			}
			fmt.Println(content)
			return nil
		},
	}

	emptyFilesCommand.Flags().BoolVar(&useGit, gitFlagName, true, gitFlagDescription)
	emptyFilesCommand.Flags().BoolVar(&noGit, noGitFlagName, false, noGitFlagDescription)
	emptyFilesCommand.Flags().BoolVar(&jsonFormat, jsonFlagName, false, jsonFlagDescription)
	emptyFilesCommand.Flags().BoolVar(&yamlFormat, yamlFlagName, false, yamlFlagDescription)
	emptyFilesCommand.Flags().BoolVar(&csvFormat, csvFlagName, false, csvFlagDescription)
	return emptyFilesCommand
}

func createEmptyDirsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   emptyDirsUse,
		Short: emptyDirsShortDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootArgument := defaultPath
			if len(arguments) > 0 {
				rootArgument = arguments[0]
			}
			validatedRoot, rootError := gather.ValidateRoot(rootArgument)
			if rootError != nil {
				return rootError
			}
			emptyDirectories, walkError := gather.EmptyDirectories(validatedRoot)
			if walkError != nil {
				return walkError
			}
			if len(emptyDirectories) == 0 {
				fmt.Println(noEmptyFoldersMessage)
				return nil
			}
			sort.Strings(emptyDirectories)
			fmt.Println(strings.Join(emptyDirectories, "\n"))
			return nil
		},
	}
}
