// Package scripts manages user script templates kept in the application data
// directory and opens them in the configured editor.
package scripts

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/devtul/internal/config"
)

const (
	scriptListEntryFormat   = " - %s"
	editorLaunchErrorFormat = "launch editor %s for %s: %w"
	scriptsDirErrorFormat   = "create scripts directory %s: %w"
)

// Directory resolves (creating if needed) the scripts directory inside the
// application data directory.
func Directory() (string, error) {
	dataDirectory, directoryError := config.ApplicationDataDirectory()
	if directoryError != nil {
		return "", directoryError
	}
	scriptsDirectory := filepath.Join(dataDirectory, config.ScriptsDirectoryName)
	if makeDirectoryError := os.MkdirAll(scriptsDirectory, 0o755); makeDirectoryError != nil {
		return "", fmt.Errorf(scriptsDirErrorFormat, scriptsDirectory, makeDirectoryError)
	}
	return scriptsDirectory, nil
}

// List returns the names of all scripts in the scripts directory, sorted.
func List() ([]string, error) {
	scriptsDirectory, directoryError := Directory()
	if directoryError != nil {
		return nil, directoryError
	}

	directoryEntries, readError := os.ReadDir(scriptsDirectory)
	if readError != nil {
		return nil, fmt.Errorf("read scripts directory %s: %w", scriptsDirectory, readError)
	}

	scriptNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			continue
		}
		scriptNames = append(scriptNames, directoryEntry.Name())
	}
	sort.Strings(scriptNames)
	return scriptNames, nil
}

// FormatListing renders script names as an indented bullet listing.
func FormatListing(scriptNames []string) string {
	listingLines := make([]string, 0, len(scriptNames))
	for _, scriptName := range scriptNames {
		listingLines = append(listingLines, fmt.Sprintf(scriptListEntryFormat, scriptName))
	}
	return strings.Join(listingLines, "\n")
}

// Edit opens the named script in the editor, attaching the terminal so that
// interactive editors work. A missing script is created on save by the editor.
func Edit(editorCommand string, scriptName string) error {
	scriptsDirectory, directoryError := Directory()
	if directoryError != nil {
		return directoryError
	}
	scriptPath := filepath.Join(scriptsDirectory, scriptName)

	editorProcess := exec.Command(editorCommand, scriptPath)
	editorProcess.Stdin = os.Stdin
	editorProcess.Stdout = os.Stdout
	editorProcess.Stderr = os.Stderr
	if runError := editorProcess.Run(); runError != nil {
		return fmt.Errorf(editorLaunchErrorFormat, editorCommand, scriptPath, runError)
	}
	return nil
}
