package repo

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/repositories"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	deleteUseConstant              = "delete <namespace/name>"
	deleteShortDescription         = "Delete a repository from the hub"
	deleteLongDescription          = "delete removes a repository and its history. The operation cannot be undone."
	deleteMissingOKFlagName        = "missing-ok"
	deleteMissingOKFlagDescription = "Succeed when the repository does not exist"
)

// DeleteCommandBuilder assembles the repo delete command.
type DeleteCommandBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
	PrompterFactory       shared.PrompterFactory
}

// Build constructs the repo delete command.
func (builder *DeleteCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   deleteUseConstant,
		Short: deleteShortDescription,
		Long:  deleteLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	command.Flags().Bool(deleteMissingOKFlagName, false, deleteMissingOKFlagDescription)

	return command, nil
}

func (builder *DeleteCommandBuilder) run(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	missingOK, _ := command.Flags().GetBool(deleteMissingOKFlagName)

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

	return service.Delete(command.Context(), repositories.DeleteOptions{
		Reference: reference,
		Type:      repositoryType,
		MissingOK: missingOK,
		DryRun:    dryRun,
		AssumeYes: assumeYes,
	})
}
