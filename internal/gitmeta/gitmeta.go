// Package gitmeta extracts repository metadata through the git client and
// renders it as a markdown table.
package gitmeta

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/temirov/devtul/internal/types"
)

const (
	gitExecutableName = "git"
	gitRepositoryFlag = "-C"

	commitHashLength     = 8
	commitFieldSeparator = "\x1f"
	detachedHeadLabel    = "HEAD (detached)"
	detachedHeadMarker   = "HEAD"
	untrackedStatusCode  = "??"

	metadataErrorFormat = "unable to get git metadata: %s"
)

// CollectMetadata gathers remotes, branches, head commit, and working-tree
// state for the repository at the root.
func CollectMetadata(validatedRoot types.ValidatedRoot) (types.GitMetadata, error) {
	metadata := types.GitMetadata{Remotes: make(map[string]string)}

	remotesOutput, remotesError := runGit(validatedRoot.AbsolutePath, "remote", "-v")
	if remotesError != nil {
		return types.GitMetadata{}, remotesError
	}
	for _, remoteLine := range strings.Split(remotesOutput, "\n") {
		fields := strings.Fields(remoteLine)
		if len(fields) < 2 {
			continue
		}
		metadata.Remotes[fields[0]] = fields[1]
	}

	branchOutput, branchError := runGit(validatedRoot.AbsolutePath, "rev-parse", "--abbrev-ref", "HEAD")
	if branchError != nil {
		return types.GitMetadata{}, branchError
	}
	metadata.CurrentBranch = strings.TrimSpace(branchOutput)
	if metadata.CurrentBranch == detachedHeadMarker {
		metadata.CurrentBranch = detachedHeadLabel
	}

	branchesOutput, branchesError := runGit(validatedRoot.AbsolutePath, "branch", "--format=%(refname:short)")
	if branchesError != nil {
		return types.GitMetadata{}, branchesError
	}
	for _, branchLine := range strings.Split(branchesOutput, "\n") {
		branchName := strings.TrimSpace(branchLine)
		if branchName != "" {
			metadata.Branches = append(metadata.Branches, branchName)
		}
	}
	sort.Strings(metadata.Branches)

	// A repository without commits has no head to describe; the commit
	// section is simply omitted in that case.
	commitOutput, commitError := runGit(validatedRoot.AbsolutePath, "log", "-1", "--pretty=format:%H"+commitFieldSeparator+"%s"+commitFieldSeparator+"%an <%ae>"+commitFieldSeparator+"%cI")
	if commitError == nil {
		commitFields := strings.Split(strings.TrimSpace(commitOutput), commitFieldSeparator)
		if len(commitFields) == 4 {
			commitHash := commitFields[0]
			if len(commitHash) > commitHashLength {
				commitHash = commitHash[:commitHashLength]
			}
			metadata.LatestCommit = &types.GitCommit{
				Hash:    commitHash,
				Message: commitFields[1],
				Author:  commitFields[2],
				Date:    commitFields[3],
			}
		}
	}

	statusOutput, statusError := runGit(validatedRoot.AbsolutePath, "status", "--porcelain")
	if statusError != nil {
		return types.GitMetadata{}, statusError
	}
	for _, statusLine := range strings.Split(statusOutput, "\n") {
		if statusLine == "" {
			continue
		}
		if strings.HasPrefix(statusLine, untrackedStatusCode) {
			metadata.UntrackedFiles++
			continue
		}
		metadata.UncommittedChanges = true
	}

	return metadata, nil
}

func runGit(repositoryPath string, gitArguments ...string) (string, error) {
	commandArguments := append([]string{gitRepositoryFlag, repositoryPath}, gitArguments...)
	gitCommand := exec.Command(gitExecutableName, commandArguments...)
	var standardError strings.Builder
	gitCommand.Stderr = &standardError

	standardOutput, runError := gitCommand.Output()
	if runError != nil {
		return "", fmt.Errorf(metadataErrorFormat, strings.TrimSpace(standardError.String()))
	}
	return string(standardOutput), nil
}

// FormatMetadataTable renders the metadata as a two-column markdown table in
// a fixed property order.
func FormatMetadataTable(metadata types.GitMetadata) string {
	tableLines := []string{"| Property | Value |", "|----------|-------|"}

	tableLines = append(tableLines, fmt.Sprintf("| Current Branch | %s |", metadata.CurrentBranch))
	tableLines = append(tableLines, fmt.Sprintf("| Branches | %s |", strings.Join(metadata.Branches, ", ")))

	if metadata.LatestCommit != nil {
		tableLines = append(tableLines, fmt.Sprintf("| Latest Commit | %s |", metadata.LatestCommit.Hash))
		tableLines = append(tableLines, fmt.Sprintf("| Commit Message | %s |", metadata.LatestCommit.Message))
		tableLines = append(tableLines, fmt.Sprintf("| Author | %s |", metadata.LatestCommit.Author))
		tableLines = append(tableLines, fmt.Sprintf("| Commit Date | %s |", metadata.LatestCommit.Date))
	}

	tableLines = append(tableLines, fmt.Sprintf("| Uncommitted Changes | %s |", yesNo(metadata.UncommittedChanges)))
	tableLines = append(tableLines, fmt.Sprintf("| Untracked Files | %d |", metadata.UntrackedFiles))

	if len(metadata.Remotes) > 0 {
		remoteNames := make([]string, 0, len(metadata.Remotes))
		for remoteName := range metadata.Remotes {
			remoteNames = append(remoteNames, remoteName)
		}
		sort.Strings(remoteNames)
		remoteEntries := make([]string, 0, len(remoteNames))
		for _, remoteName := range remoteNames {
			remoteEntries = append(remoteEntries, fmt.Sprintf("%s: %s", remoteName, metadata.Remotes[remoteName]))
		}
		tableLines = append(tableLines, fmt.Sprintf("| Remotes | %s |", strings.Join(remoteEntries, ", ")))
	}

	return strings.Join(tableLines, "\n")
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
