package repo

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/repositories"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	duplicateUseConstant            = "duplicate <namespace/name> [namespace/name]"
	duplicateShortDescription       = "Duplicate a space repository"
	duplicateLongDescription        = "duplicate copies a space into a new repository. Omitting the destination targets the authenticated account."
	duplicatePrivateFlagName        = "private"
	duplicatePrivateFlagDescription = "Visibility of the duplicated space"
)

// DuplicateCommandBuilder assembles the repo duplicate command.
type DuplicateCommandBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
}

// Build constructs the repo duplicate command.
func (builder *DuplicateCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   duplicateUseConstant,
		Short: duplicateShortDescription,
		Long:  duplicateLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  builder.run,
	}

	command.Flags().Bool(duplicatePrivateFlagName, false, duplicatePrivateFlagDescription)

	return command, nil
}

func (builder *DuplicateCommandBuilder) run(command *cobra.Command, arguments []string) error {
	source, sourceError := shared.ParseReferenceArgument(arguments[0])
	if sourceError != nil {
		return sourceError
	}

	var destination hubapi.RepositoryReference
	if len(arguments) > 1 {
		parsedDestination, destinationError := shared.ParseReferenceArgument(arguments[1])
		if destinationError != nil {
			return destinationError
		}
		destination = parsedDestination
	}

	var privateRequested *bool
	if command.Flags().Changed(duplicatePrivateFlagName) {
		privateValue, _ := command.Flags().GetBool(duplicatePrivateFlagName)
		privateRequested = &privateValue
	}

	configuration := resolveConfiguration(builder.ConfigurationProvider)
	dryRunValue, _ := command.Flags().GetBool(flagutils.DryRunFlagName)
	dryRun := shared.SelectBool(command, flagutils.DryRunFlagName, dryRunValue, configuration.DryRun)

	logger := shared.ResolveLogger(builder.LoggerProvider)
	client, clientError := resolveClient(builder.ClientFactory, connectionSettings(configuration), logger)
	if clientError != nil {
		return clientError
	}

	service, serviceError := newRepositoryService(command, logger, client, nil)
	if serviceError != nil {
		return serviceError
	}

	return service.Duplicate(command.Context(), repositories.DuplicateOptions{
		Source:      source,
		Destination: destination,
		Private:     privateRequested,
		DryRun:      dryRun,
	})
}
