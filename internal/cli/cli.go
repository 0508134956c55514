// Package cli provides the command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/utils"
)

const (
	rootUse              = "devtul"
	rootShortDescription = "devtul command line interface"
	rootLongDescription  = `devtul inventories the files of a repository or plain directory.
It renders directory trees, flattens repositories into markdown documents,
searches file content, and stores database connection profiles.`

	versionUse              = "version"
	versionShortDescription = "print the application version"
	versionTemplate         = "devtul version: %s\n"

	matchFlagName    = "match"
	matchFlagShort   = "m"
	excludeFlagName  = "exclude"
	excludeFlagShort = "e"
	subDirFlagName   = "sub-dir"
	gitFlagName      = "git"
	noGitFlagName    = "no-git"
	emptyFlagName    = "empty"
	noEmptyFlagName  = "no-empty"
	fileFlagName     = "file"
	fileFlagShort    = "f"
	printFlagName    = "print"
	printFlagShort   = "p"
	encodingFlagName = "encoding"
	copyFlagName     = "copy"
	jsonFlagName     = "json"
	yamlFlagName     = "yaml"
	csvFlagName      = "csv"
	treeFlagName     = "tree"
	tokensFlagName   = "tokens"
	modelFlagName    = "model"
	filemetaFlagName = "filemeta"
	configFlagName   = "config"

	matchFlagDescription    = "pattern to match files (repeatable)"
	excludeFlagDescription  = "pattern to exclude files (overrides match patterns)"
	subDirFlagDescription   = "treat a sub-directory as the root"
	gitFlagDescription      = "restrict to git tracked files"
	noGitFlagDescription    = "scan all files instead of git tracked files"
	emptyFlagDescription    = "include empty files"
	noEmptyFlagDescription  = "exclude empty files"
	fileFlagDescription     = "output file path"
	printFlagDescription    = "print output to STDOUT even when writing a file"
	encodingFlagDescription = "character encoding to use (utf8, ascii, utf16, latin1)"
	copyFlagDescription     = "copy output to the system clipboard"
	jsonFlagDescription     = "output as JSON"
	yamlFlagDescription     = "output as YAML"
	csvFlagDescription      = "output as CSV"
	treeFlagDescription     = "output as tree structure instead of a list"
	tokensFlagDescription   = "include token counts in the document header"
	modelFlagDescription    = "tokenizer model used for token counting"
	filemetaFlagDescription = "include per-file metadata tables"
	configFlagDescription   = "path to a configuration file"

	defaultPath               = "."
	defaultTokenizerModelName = "gpt-4o"
	noFilesMatchMessage       = "No files match the specified criteria"
)

// Execute runs the devtul application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

func createRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	rootCommand.AddCommand(
		createTreeCommand(),
		createScanCommand(),
		createListCommand(),
		createDocCommand(),
		createFindCommand(),
		createMetaCommand(),
		createEmptyCommand(),
		createDatabaseCommand(),
		createScriptsCommand(),
		createVersionCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   versionUse,
		Short: versionShortDescription,
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, arguments []string) {
			fmt.Printf(versionTemplate, utils.GetApplicationVersion())
		},
	}
}
