package repo

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	groupUseConstant      = "repo"
	groupShortDescription = "Manage hub repositories"
	groupLongDescription  = "repo groups subcommands that create, delete, duplicate, move, and configure hub repositories."
)

// CommandGroupBuilder assembles the repo command group.
type CommandGroupBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
	PrompterFactory       shared.PrompterFactory
}

// Build constructs the repo command hierarchy.
func (builder *CommandGroupBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescription,
		Long:  groupLongDescription,
	}

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagutils.DefaultExecutionFlagDefinitions())

	createBuilder := CreateCommandBuilder{
		LoggerProvider:        builder.LoggerProvider,
		ConfigurationProvider: builder.ConfigurationProvider,
		ClientFactory:         builder.ClientFactory,
	}
	createCommand, createError := createBuilder.Build()
	if createError == nil {
		command.AddCommand(createCommand)
	}

	deleteBuilder := DeleteCommandBuilder{
		LoggerProvider:        builder.LoggerProvider,
		ConfigurationProvider: builder.ConfigurationProvider,
		ClientFactory:         builder.ClientFactory,
		PrompterFactory:       builder.PrompterFactory,
	}
	deleteCommand, deleteError := deleteBuilder.Build()
	if deleteError == nil {
		command.AddCommand(deleteCommand)
	}

	duplicateBuilder := DuplicateCommandBuilder{
		LoggerProvider:        builder.LoggerProvider,
		ConfigurationProvider: builder.ConfigurationProvider,
		ClientFactory:         builder.ClientFactory,
	}
	duplicateCommand, duplicateError := duplicateBuilder.Build()
	if duplicateError == nil {
		command.AddCommand(duplicateCommand)
	}

	moveBuilder := MoveCommandBuilder{
		LoggerProvider:        builder.LoggerProvider,
		ConfigurationProvider: builder.ConfigurationProvider,
		ClientFactory:         builder.ClientFactory,
		PrompterFactory:       builder.PrompterFactory,
	}
	moveCommand, moveError := moveBuilder.Build()
	if moveError == nil {
		command.AddCommand(moveCommand)
	}

	settingsBuilder := SettingsCommandBuilder{
		LoggerProvider:        builder.LoggerProvider,
		ConfigurationProvider: builder.ConfigurationProvider,
		ClientFactory:         builder.ClientFactory,
	}
	settingsCommand, settingsError := settingsBuilder.Build()
	if settingsError == nil {
		command.AddCommand(settingsCommand)
	}

	return command, nil
}
