package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/temirov/devtul/internal/config"
	"github.com/temirov/devtul/internal/output"
	"github.com/temirov/devtul/internal/profile"
)

const (
	databaseUse              = "db"
	databaseShortDescription = "manage database connection profiles"

	databaseCreateUse              = "create"
	databaseCreateShortDescription = "interactively create a connection profile"
	databaseListUse                = "ls"
	databaseListShortDescription   = "list stored connection profiles"
	databaseUpdateUse              = "update <id>"
	databaseUpdateShortDescription = "update a stored connection profile"
	databaseRemoveUse              = "rm <id>"
	databaseRemoveShortDescription = "delete a stored connection profile"

	typeFlagName        = "type"
	typeFlagDescription = "filter profiles by connection type"
	hostFlagName        = "host"
	portFlagName        = "port"
	dbnameFlagName      = "dbname"
	userFlagName        = "user"
	passwordFlagName    = "password"

	profileCreatedFormat  = "Database connection for %s added successfully.\n"
	profileUpdatedMessage = "Connection profile updated."
	profileDeletedMessage = "Connection profile deleted."
	profileListLineFormat = "%d\t%s\t%s:%d\t%s\t%s\n"
	noProfilesMessage     = "No connection profiles stored."
	profileIDErrorFormat  = "invalid profile id %q"
	profileGoneFormat     = "no profile with id %d"
)

func createDatabaseCommand() *cobra.Command {
	databaseCommand := &cobra.Command{
		Use:   databaseUse,
		Short: databaseShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	databaseCommand.AddCommand(
		createDatabaseCreateCommand(),
		createDatabaseListCommand(),
		createDatabaseUpdateCommand(),
		createDatabaseRemoveCommand(),
	)
	return databaseCommand
}

func openProfileStore() (*profile.Store, error) {
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return nil, configurationError
	}
	databasePath, pathError := config.ProfileDatabasePath(configuration)
	if pathError != nil {
		return nil, pathError
	}
	return profile.NewStore(databasePath)
}

func createDatabaseCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   databaseCreateUse,
		Short: databaseCreateShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			wizard := profile.NewWizard(os.Stdin, os.Stdout)
			collectedProfile, collectError := wizard.CollectProfile()
			if collectError != nil {
				return collectError
			}

			profileStore, storeError := openProfileStore()
			if storeError != nil {
				return storeError
			}
			defer profileStore.Close()

			if _, addError := profileStore.AddProfile(command.Context(), collectedProfile); addError != nil {
				return addError
			}
			color.Green(profileCreatedFormat, collectedProfile.Kind)
			return nil
		},
	}
}

func createDatabaseListCommand() *cobra.Command {
	var kindFilterValue string
	var jsonFormat bool
	var yamlFormat bool

	databaseListCommand := &cobra.Command{
		Use:   databaseListUse,
		Short: databaseListShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			kindFilter := profile.ConnectionKind("")
			if kindFilterValue != "" {
				parsedKind, parseError := profile.ParseConnectionKind(kindFilterValue)
				if parseError != nil {
					return parseError
				}
				kindFilter = parsedKind
			}

			profileStore, storeError := openProfileStore()
			if storeError != nil {
				return storeError
			}
			defer profileStore.Close()

			storedProfiles, listError := profileStore.ListProfiles(command.Context(), kindFilter)
			if listError != nil {
				return listError
			}
			if len(storedProfiles) == 0 {
				fmt.Println(noProfilesMessage)
				return nil
			}

			switch {
			case jsonFormat:
				content, formatError := output.ToJSON(storedProfiles)
				if formatError != nil {
					return formatError
				}
				fmt.Println(content)
			case yamlFormat:
				content, formatError := output.ToYAML(storedProfiles)
				if formatError != nil {
					return formatError
				}
				fmt.Println(content)
			default:
				for _, storedProfile := range storedProfiles {
					fmt.Printf(profileListLineFormat, storedProfile.ID, storedProfile.Kind,
						storedProfile.Host, storedProfile.Port, storedProfile.DatabaseName, storedProfile.User)
				}
			}
			return nil
		},
	}

	databaseListCommand.Flags().StringVar(&kindFilterValue, typeFlagName, "", typeFlagDescription)
	databaseListCommand.Flags().BoolVar(&jsonFormat, jsonFlagName, false, jsonFlagDescription)
	databaseListCommand.Flags().BoolVar(&yamlFormat, yamlFlagName, false, yamlFlagDescription)
	return databaseListCommand
}

// findProfileByID resolves a stored profile from its listing identifier.
func findProfileByID(command *cobra.Command, profileStore *profile.Store, identifierArgument string) (profile.ConnectionProfile, error) {
	profileID, parseError := strconv.ParseInt(identifierArgument, 10, 64)
	if parseError != nil {
		return profile.ConnectionProfile{}, fmt.Errorf(profileIDErrorFormat, identifierArgument)
	}
	storedProfiles, listError := profileStore.ListProfiles(command.Context(), "")
	if listError != nil {
		return profile.ConnectionProfile{}, listError
	}
	for _, storedProfile := range storedProfiles {
		if storedProfile.ID == profileID {
			return storedProfile, nil
		}
	}
	return profile.ConnectionProfile{}, fmt.Errorf(profileGoneFormat, profileID)
}

func createDatabaseUpdateCommand() *cobra.Command {
	var hostValue string
	var portValue int
	var databaseNameValue string
	var userValue string
	var passwordValue string

	databaseUpdateCommand := &cobra.Command{
		Use:   databaseUpdateUse,
		Short: databaseUpdateShortDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			profileStore, storeError := openProfileStore()
			if storeError != nil {
				return storeError
			}
			defer profileStore.Close()

			originalProfile, lookupError := findProfileByID(command, profileStore, arguments[0])
			if lookupError != nil {
				return lookupError
			}

			updatedProfile := originalProfile
			if hostValue != "" {
				updatedProfile.Host = hostValue
			}
			if portValue != 0 {
				updatedProfile.Port = portValue
			}
			if databaseNameValue != "" {
				updatedProfile.DatabaseName = databaseNameValue
			}
			if userValue != "" {
				updatedProfile.User = userValue
			}
			if passwordValue != "" {
				updatedProfile.Password = passwordValue
			}

			if updateError := profileStore.UpdateProfile(command.Context(), originalProfile, updatedProfile); updateError != nil {
				return updateError
			}
			fmt.Println(profileUpdatedMessage)
			return nil
		},
	}

	databaseUpdateCommand.Flags().StringVar(&hostValue, hostFlagName, "", "connection host")
	databaseUpdateCommand.Flags().IntVar(&portValue, portFlagName, 0, "connection port")
	databaseUpdateCommand.Flags().StringVar(&databaseNameValue, dbnameFlagName, "", "database name")
	databaseUpdateCommand.Flags().StringVar(&userValue, userFlagName, "", "database user")
	databaseUpdateCommand.Flags().StringVar(&passwordValue, passwordFlagName, "", "database password")
	return databaseUpdateCommand
}

func createDatabaseRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   databaseRemoveUse,
		Short: databaseRemoveShortDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			profileStore, storeError := openProfileStore()
			if storeError != nil {
				return storeError
			}
			defer profileStore.Close()

			storedProfile, lookupError := findProfileByID(command, profileStore, arguments[0])
			if lookupError != nil {
				return lookupError
			}
			if deleteError := profileStore.DeleteProfile(command.Context(), storedProfile); deleteError != nil {
				return deleteError
			}
			fmt.Println(profileDeletedMessage)
			return nil
		},
	}
}
