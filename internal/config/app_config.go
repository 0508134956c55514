package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/devtul/internal/utils"
)

const (
	// ConfigFileName is the name of the optional per-directory configuration file.
	ConfigFileName = ".devtul.yaml"
	// ApplicationDirectoryName is the per-user application data directory.
	ApplicationDirectoryName = ".devtul"
	// ProfileDatabaseFileName is the SQLite file holding connection profiles.
	ProfileDatabaseFileName = "devtul_interface.db"
	// ScriptsDirectoryName holds user script templates inside the application directory.
	ScriptsDirectoryName = "scripts"
	// EditorEnvironmentVariable names the environment variable selecting the editor command.
	EditorEnvironmentVariable = "EDITOR"
	// DefaultEditorCommand is used when no editor is configured.
	DefaultEditorCommand = "vi"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds user-tunable defaults merged from the global
// and local configuration files.
type ApplicationConfiguration struct {
	Ignore   IgnoreConfiguration  `mapstructure:"ignore"`
	Database ProfileConfiguration `mapstructure:"database"`
	Editor   string               `mapstructure:"editor"`
}

// IgnoreConfiguration extends or replaces the built-in ignore rule set.
type IgnoreConfiguration struct {
	ExtraParts      []string `mapstructure:"extra_parts"`
	ExtraPatterns   []string `mapstructure:"extra_patterns"`
	ReplaceDefaults bool     `mapstructure:"replace_defaults"`
}

// ProfileConfiguration selects where the connection profile store lives.
type ProfileConfiguration struct {
	Path string `mapstructure:"path"`
}

// LoadApplicationConfiguration loads configuration from the global application
// directory and the working directory, local values overriding global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, ApplicationDirectoryName, ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath := options.ExplicitFilePath
	if localPath == "" {
		localPath = filepath.Join(workingDirectory, ConfigFileName)
	} else if !filepath.IsAbs(localPath) {
		localPath = filepath.Join(workingDirectory, localPath)
	}
	localConfiguration, loadError := loadConfigurationFromPath(localPath)
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfiguration)

	merged.Ignore.ExtraParts = utils.DeduplicateStrings(merged.Ignore.ExtraParts)
	merged.Ignore.ExtraPatterns = utils.DeduplicateStrings(merged.Ignore.ExtraPatterns)

	return merged, nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if len(override.Ignore.ExtraParts) > 0 {
		result.Ignore.ExtraParts = append(result.Ignore.ExtraParts, override.Ignore.ExtraParts...)
	}
	if len(override.Ignore.ExtraPatterns) > 0 {
		result.Ignore.ExtraPatterns = append(result.Ignore.ExtraPatterns, override.Ignore.ExtraPatterns...)
	}
	if override.Ignore.ReplaceDefaults {
		result.Ignore.ReplaceDefaults = true
	}
	if override.Database.Path != "" {
		result.Database.Path = override.Database.Path
	}
	if override.Editor != "" {
		result.Editor = override.Editor
	}
	return result
}

// ApplicationDataDirectory resolves (and creates if needed) the per-user data directory.
func ApplicationDataDirectory() (string, error) {
	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil {
		return "", fmt.Errorf("determine home directory: %w", homeError)
	}
	dataDirectory := filepath.Join(homeDirectory, ApplicationDirectoryName)
	if makeDirectoryError := os.MkdirAll(dataDirectory, 0o755); makeDirectoryError != nil {
		return "", fmt.Errorf("create application directory %s: %w", dataDirectory, makeDirectoryError)
	}
	return dataDirectory, nil
}

// ProfileDatabasePath resolves the SQLite path for the connection profile store.
// An explicit configuration value wins over the application directory default.
func ProfileDatabasePath(configuration ApplicationConfiguration) (string, error) {
	if configuration.Database.Path != "" {
		return configuration.Database.Path, nil
	}
	dataDirectory, directoryError := ApplicationDataDirectory()
	if directoryError != nil {
		return "", directoryError
	}
	return filepath.Join(dataDirectory, ProfileDatabaseFileName), nil
}

// EditorCommand resolves the editor used for script editing: configuration
// first, then the environment, then the built-in default.
func EditorCommand(configuration ApplicationConfiguration) string {
	if configuration.Editor != "" {
		return configuration.Editor
	}
	if environmentEditor := os.Getenv(EditorEnvironmentVariable); environmentEditor != "" {
		return environmentEditor
	}
	return DefaultEditorCommand
}
