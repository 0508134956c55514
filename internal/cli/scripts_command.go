package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/config"
	"github.com/temirov/devtul/internal/scripts"
)

const (
	scriptsUse              = "scripts"
	scriptsShortDescription = "manage devtul scripts"

	scriptsListUse              = "ls"
	scriptsListShortDescription = "list all available scripts"
	scriptsEditUse              = "edit <name>"
	scriptsEditShortDescription = "open a script in the configured editor"

	noScriptsMessage = "No scripts found."
)

func createScriptsCommand() *cobra.Command {
	scriptsCommand := &cobra.Command{
		Use:   scriptsUse,
		Short: scriptsShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	scriptsCommand.AddCommand(createScriptsListCommand(), createScriptsEditCommand())
	return scriptsCommand
}

func createScriptsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   scriptsListUse,
		Short: scriptsListShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			scriptNames, listError := scripts.List()
			if listError != nil {
				return listError
			}
			if len(scriptNames) == 0 {
				fmt.Println(noScriptsMessage)
				return nil
			}
			fmt.Println(scripts.FormatListing(scriptNames))
			return nil
		},
	}
}

func createScriptsEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   scriptsEditUse,
		Short: scriptsEditShortDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if configurationError != nil {
				return configurationError
			}
			return scripts.Edit(config.EditorCommand(configuration), arguments[0])
		},
	}
}
