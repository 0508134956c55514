package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/render"
)

const (
	treeUse              = "tree [path]"
	treeShortDescription = "render tracked files as a directory tree"
	treeLongDescription  = `Generate a tree structure from the files of a repository.

Creates a visual tree representation of all files tracked by git in the
specified repository, falling back to a full directory scan outside git.`
	treeUsageExample = `  # Render the repository tree
  devtul tree ./my-repo

  # Only Go and markdown files, printed to stdout
  devtul tree ./my-repo --match "*.go" --match "*.md" --print

  # Narrow the view to one sub-directory and write a file
  devtul tree ./my-repo --sub-dir src -f tree_output.txt`

	scanUse              = "scan [path]"
	scanShortDescription = "scan and list all files in a directory"
	scanLongDescription  = `Recursively scan a directory and list every file, git tracked or not.

Ignore rules skip common build artifacts, caches, and other files that are
typically not interesting for documentation or analysis.`
	scanUsageExample = `  # List everything under a project
  devtul scan ./my-project

  # Python sources only, rendered as a tree
  devtul scan ./my-project --match "*.py" --tree`
)

func createTreeCommand() *cobra.Command {
	var filterConfiguration filterOptions
	var outputConfiguration outputOptions

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
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
			return deliver(render.BuildTree(result.pathSet.Adjusted), outputConfiguration)
		},
	}

	addFilterFlags(treeCommand, &filterConfiguration)
	addOutputFlags(treeCommand, &outputConfiguration)
	return treeCommand
}

func createScanCommand() *cobra.Command {
	var filterConfiguration filterOptions
	var outputConfiguration outputOptions
	var treeFormat bool

	scanCommand := &cobra.Command{
		Use:     scanUse,
		Short:   scanShortDescription,
		Long:    scanLongDescription,
		Example: scanUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootArgument := defaultPath
			if len(arguments) > 0 {
				rootArgument = arguments[0]
			}
			// Scan deliberately ignores the git index.
			filterConfiguration.noGit = true
			result, pipelineError := runFilePipeline(rootArgument, filterConfiguration)
			if pipelineError != nil {
				return pipelineError
			}

			var content string
			if treeFormat {
				content = render.BuildTree(result.pathSet.Adjusted)
			} else {
				content = strings.Join(result.pathSet.Adjusted, "\n")
			}
			return deliver(content, outputConfiguration)
		},
	}

	addWalkFilterFlags(scanCommand, &filterConfiguration)
	addOutputFlags(scanCommand, &outputConfiguration)
	scanCommand.Flags().BoolVar(&treeFormat, treeFlagName, false, treeFlagDescription)
	return scanCommand
}
