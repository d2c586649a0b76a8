package repo

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/repositories"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	moveUseConstant           = "move <from-namespace/name> <to-namespace/name>"
	moveShortDescription      = "Move or rename a repository"
	moveLongDescription       = "move transfers a repository identifier, renaming it or handing it to another namespace."
	moveArgumentCountConstant = 2
)

// MoveCommandBuilder assembles the repo move command.
type MoveCommandBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
	PrompterFactory       shared.PrompterFactory
}

// Build constructs the repo move command.
func (builder *MoveCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   moveUseConstant,
		Short: moveShortDescription,
		Long:  moveLongDescription,
		Args:  cobra.ExactArgs(moveArgumentCountConstant),
		RunE:  builder.run,
	}

	command.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())

	return command, nil
}

func (builder *MoveCommandBuilder) run(command *cobra.Command, arguments []string) error {
	fromReference, fromError := shared.ParseReferenceArgument(arguments[0])
	if fromError != nil {
		return fromError
	}

	toReference, toError := shared.ParseReferenceArgument(arguments[1])
	if toError != nil {
		return toError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	configuration := resolveConfiguration(builder.ConfigurationProvider)
	dryRunValue, _ := command.Flags().GetBool(flagutils.DryRunFlagName)
	dryRun := shared.SelectBool(command, flagutils.DryRunFlagName, dryRunValue, configuration.DryRun)
	assumeYesValue, _ := command.Flags().GetBool(flagutils.AssumeYesFlagName)
	assumeYes := shared.SelectBool(command, flagutils.AssumeYesFlagName, assumeYesValue, configuration.AssumeYes)

	logger := shared.ResolveLogger(builder.LoggerProvider)
	client, clientError := resolveClient(builder.ClientFactory, connectionSettings(configuration), logger)
	if clientError != nil {
		return clientError
	}

	service, serviceError := newRepositoryService(command, logger, client, builder.PrompterFactory)
	if serviceError != nil {
		return serviceError
	}

	return service.Move(command.Context(), repositories.MoveOptions{
		From:      fromReference,
		To:        toReference,
		Type:      repositoryType,
		DryRun:    dryRun,
		AssumeYes: assumeYes,
	})
}
