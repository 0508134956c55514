// Package gather enumerates candidate file paths from a scan root, either by
// walking the directory tree or by asking the git client for tracked files.
package gather

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/temirov/devtul/internal/filter"
	"github.com/temirov/devtul/internal/types"
	"github.com/temirov/devtul/internal/utils"
)

const (
	gitExecutableName         = "git"
	gitDirectoryName          = ".git"
	gitRepositoryFlag         = "-C"
	gitListFilesSubcommand    = "ls-files"
	gitConfigSubcommand       = "config"
	gitConfigGlobalFlag       = "--global"
	gitConfigAddFlag          = "--add"
	gitSafeDirectoryKey       = "safe.directory"
	gitDubiousOwnershipMarker = "detected dubious ownership"

	pathNotFoundErrorFormat     = "path %s does not exist"
	pathNotDirectoryErrorFormat = "path %s is not a directory"
	gitListingFailedErrorFormat = "unable to list git files from %s: %s"
	gitTrustFailedErrorFormat   = "unable to mark %s as a safe git directory: %w"
	directoryWalkFailedFormat   = "walk directory %s: %w"
	absolutePathFailedFormat    = "resolve absolute path for %s: %w"
)

// ValidateRoot resolves the scan root to an absolute path and reports whether
// it hosts a git repository. A missing or non-directory root is a user error.
func ValidateRoot(rootPath string) (types.ValidatedRoot, error) {
	absolutePath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return types.ValidatedRoot{}, fmt.Errorf(absolutePathFailedFormat, rootPath, absolutePathError)
	}

	rootInfo, statError := os.Stat(absolutePath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return types.ValidatedRoot{}, fmt.Errorf(pathNotFoundErrorFormat, rootPath)
		}
		return types.ValidatedRoot{}, statError
	}
	if !rootInfo.IsDir() {
		return types.ValidatedRoot{}, fmt.Errorf(pathNotDirectoryErrorFormat, rootPath)
	}

	gitInfo, gitStatError := os.Stat(filepath.Join(absolutePath, gitDirectoryName))
	isGitRepository := gitStatError == nil && gitInfo.IsDir()

	return types.ValidatedRoot{AbsolutePath: absolutePath, IsGitRepo: isGitRepository}, nil
}

// WalkFiles recursively collects every regular file under the root as a
// slash-separated root-relative path. Directories matching the ignore rules
// are pruned without descending into them.
func WalkFiles(validatedRoot types.ValidatedRoot, ruleSet filter.IgnoreRuleSet) ([]string, error) {
	collectedPaths := make([]string, 0)

	walkError := filepath.WalkDir(validatedRoot.AbsolutePath, func(currentPath string, entry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return entryError
		}
		if currentPath == validatedRoot.AbsolutePath {
			return nil
		}

		relativePath, relativeError := filepath.Rel(validatedRoot.AbsolutePath, currentPath)
		if relativeError != nil {
			return relativeError
		}
		normalizedPath := utils.NormalizePath(relativePath)

		if entry.IsDir() {
			if ruleSet.ShouldIgnorePath(normalizedPath) {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if ruleSet.ShouldIgnorePath(normalizedPath) {
			return nil
		}

		collectedPaths = append(collectedPaths, normalizedPath)
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(directoryWalkFailedFormat, validatedRoot.AbsolutePath, walkError)
	}

	return collectedPaths, nil
}

// GitTrackedFiles lists the files tracked by git under the root. When git
// refuses the repository with a dubious-ownership error the directory is
// trusted globally and the listing is retried once.
func GitTrackedFiles(validatedRoot types.ValidatedRoot) ([]string, error) {
	trackedPaths, listingError := runGitListFiles(validatedRoot.AbsolutePath)
	if listingError == nil {
		return trackedPaths, nil
	}
	if !strings.Contains(listingError.Error(), gitDubiousOwnershipMarker) {
		return nil, listingError
	}

	if trustError := trustGitDirectory(validatedRoot.AbsolutePath); trustError != nil {
		return nil, trustError
	}
	return runGitListFiles(validatedRoot.AbsolutePath)
}

func runGitListFiles(repositoryPath string) ([]string, error) {
	listCommand := exec.Command(gitExecutableName, gitRepositoryFlag, repositoryPath, gitListFilesSubcommand)
	var standardError strings.Builder
	listCommand.Stderr = &standardError

	standardOutput, runError := listCommand.Output()
	if runError != nil {
		return nil, fmt.Errorf(gitListingFailedErrorFormat, repositoryPath, strings.TrimSpace(standardError.String()))
	}

	trackedPaths := make([]string, 0)
	for _, outputLine := range strings.Split(string(standardOutput), "\n") {
		trimmedLine := strings.TrimSpace(outputLine)
		if trimmedLine == "" {
			continue
		}
		trackedPaths = append(trackedPaths, utils.NormalizePath(trimmedLine))
	}
	return trackedPaths, nil
}

func trustGitDirectory(repositoryPath string) error {
	trustCommand := exec.Command(gitExecutableName, gitConfigSubcommand, gitConfigGlobalFlag, gitConfigAddFlag, gitSafeDirectoryKey, repositoryPath)
	if runError := trustCommand.Run(); runError != nil {
		return fmt.Errorf(gitTrustFailedErrorFormat, repositoryPath, runError)
	}
	return nil
}

// EmptyDirectories walks the root and returns every directory containing no
// entries at all, as slash-separated root-relative paths.
func EmptyDirectories(validatedRoot types.ValidatedRoot) ([]string, error) {
	emptyDirectories := make([]string, 0)

	walkError := filepath.WalkDir(validatedRoot.AbsolutePath, func(currentPath string, entry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return entryError
		}
		if !entry.IsDir() || currentPath == validatedRoot.AbsolutePath {
			return nil
		}
		directoryEntries, readError := os.ReadDir(currentPath)
		if readError != nil {
			return readError
		}
		if len(directoryEntries) > 0 {
			return nil
		}
		relativePath, relativeError := filepath.Rel(validatedRoot.AbsolutePath, currentPath)
		if relativeError != nil {
			return relativeError
		}
		emptyDirectories = append(emptyDirectories, utils.NormalizePath(relativePath))
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(directoryWalkFailedFormat, validatedRoot.AbsolutePath, walkError)
	}

	return emptyDirectories, nil
}

// GatherFiles produces the ignore-filtered candidate list for the root. When
// useGit is set and the root is a repository the git index supplies the list;
// otherwise a full walk does.
func GatherFiles(validatedRoot types.ValidatedRoot, useGit bool, ruleSet filter.IgnoreRuleSet) ([]string, error) {
	if useGit && validatedRoot.IsGitRepo {
		trackedPaths, listingError := GitTrackedFiles(validatedRoot)
		if listingError != nil {
			return nil, listingError
		}
		return ruleSet.FilterIgnored(trackedPaths), nil
	}
	return WalkFiles(validatedRoot, ruleSet)
}
