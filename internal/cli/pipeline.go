package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/config"
	"github.com/temirov/devtul/internal/filter"
	"github.com/temirov/devtul/internal/gather"
	"github.com/temirov/devtul/internal/output"
	"github.com/temirov/devtul/internal/types"
)

// errNoFilesMatch terminates a command when the filter pipeline drains the
// candidate list; the CLI reports it on stderr with a non-zero exit.
var errNoFilesMatch = errors.New(noFilesMatchMessage)

// filterOptions carries the flags shared by every file-pipeline command.
type filterOptions struct {
	matchPatterns   []string
	excludePatterns []string
	subDirectory    string
	useGit          bool
	noGit           bool
	includeEmpty    bool
	noEmpty         bool
	configFilePath  string
}

func (options filterOptions) gitEnabled() bool {
	return options.useGit && !options.noGit
}

func (options filterOptions) emptyFileMode() filter.EmptyFileMode {
	if options.includeEmpty && !options.noEmpty {
		return filter.IncludeEmptyFiles
	}
	return filter.ExcludeEmptyFiles
}

// outputOptions carries the flags controlling where rendered content goes.
type outputOptions struct {
	filePath        string
	printToStdout   bool
	encodingName    string
	copyToClipboard bool
}

func addFilterFlags(command *cobra.Command, options *filterOptions) {
	addWalkFilterFlags(command, options)
	command.Flags().BoolVar(&options.useGit, gitFlagName, true, gitFlagDescription)
	command.Flags().BoolVar(&options.noGit, noGitFlagName, false, noGitFlagDescription)
}

// addWalkFilterFlags registers the filter flags shared by every file-pipeline
// command. Commands that never consult the git index use this set directly so
// that --git/--no-git are not accepted and silently ignored.
func addWalkFilterFlags(command *cobra.Command, options *filterOptions) {
	command.Flags().StringArrayVarP(&options.matchPatterns, matchFlagName, matchFlagShort, nil, matchFlagDescription)
	command.Flags().StringArrayVarP(&options.excludePatterns, excludeFlagName, excludeFlagShort, nil, excludeFlagDescription)
	command.Flags().StringVar(&options.subDirectory, subDirFlagName, "", subDirFlagDescription)
	command.Flags().BoolVar(&options.includeEmpty, emptyFlagName, false, emptyFlagDescription)
	command.Flags().BoolVar(&options.noEmpty, noEmptyFlagName, false, noEmptyFlagDescription)
	command.Flags().StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
}

func addOutputFlags(command *cobra.Command, options *outputOptions) {
	command.Flags().StringVarP(&options.filePath, fileFlagName, fileFlagShort, "", fileFlagDescription)
	command.Flags().BoolVarP(&options.printToStdout, printFlagName, printFlagShort, false, printFlagDescription)
	command.Flags().StringVar(&options.encodingName, encodingFlagName, output.EncodingUTF8, encodingFlagDescription)
	command.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
}

// pipelineResult is the outcome of the shared gather-and-filter pipeline.
type pipelineResult struct {
	root           types.ValidatedRoot
	pathSet        types.PathSet
	totalFileCount int
	configuration  config.ApplicationConfiguration
}

// runFilePipeline validates the root, gathers candidate paths, and applies
// the ignore, emptiness, sub-directory, and pattern filters in order. The
// resulting path set keeps display paths aligned with the original paths
// used for reading content.
func runFilePipeline(rootArgument string, options filterOptions) (pipelineResult, error) {
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configFilePath})
	if configurationError != nil {
		return pipelineResult{}, configurationError
	}

	validatedRoot, rootError := gather.ValidateRoot(rootArgument)
	if rootError != nil {
		return pipelineResult{}, rootError
	}

	ruleSet := filter.NewIgnoreRuleSet(configuration.Ignore)
	candidatePaths, gatherError := gather.GatherFiles(validatedRoot, options.gitEnabled(), ruleSet)
	if gatherError != nil {
		return pipelineResult{}, gatherError
	}

	candidatePaths = filter.FilterByEmptiness(validatedRoot.AbsolutePath, candidatePaths, options.emptyFileMode())
	totalFileCount := len(candidatePaths)

	pathSet := filter.SplitForSubdirectory(candidatePaths, options.subDirectory)
	pathLookup := filter.NewPathLookup(pathSet)

	filteredAdjusted := filter.ApplyPatterns(pathSet.Adjusted, options.matchPatterns, options.excludePatterns)
	if len(filteredAdjusted) == 0 {
		return pipelineResult{}, errNoFilesMatch
	}
	sort.Strings(filteredAdjusted)

	filteredSet := types.PathSet{Adjusted: filteredAdjusted}
	for _, adjustedPath := range filteredAdjusted {
		filteredSet.Original = append(filteredSet.Original, pathLookup.OriginalFor(adjustedPath))
	}

	return pipelineResult{
		root:           validatedRoot,
		pathSet:        filteredSet,
		totalFileCount: totalFileCount,
		configuration:  configuration,
	}, nil
}

// deliver routes finished content through the encoding, clipboard, and
// file/stdout writers.
func deliver(content string, options outputOptions) error {
	if validationError := output.ValidateEncoding(options.encodingName); validationError != nil {
		return validationError
	}
	if options.copyToClipboard {
		if copyError := output.NewClipboardService().Copy(content); copyError != nil {
			return copyError
		}
	}
	return output.WriteOutput(content, options.filePath, options.encodingName, options.printToStdout)
}
