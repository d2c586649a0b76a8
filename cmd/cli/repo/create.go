package repo

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/repositories"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	createUseConstant              = "create <namespace/name>"
	createShortDescription         = "Create a repository on the hub"
	createLongDescription          = "create provisions a model, dataset, or space repository under the given namespace."
	createPrivateFlagName          = "private"
	createPrivateFlagDescription   = "Create the repository with private visibility"
	createSDKFlagName              = "sdk"
	createSDKFlagDescription       = "Space SDK (gradio, streamlit, docker, or static); required for spaces"
	createResourceGroupFlagName    = "resource-group"
	createResourceGroupDescription = "Resource group identifier the repository joins"
	createExistOKFlagName          = "exist-ok"
	createExistOKFlagDescription   = "Succeed when the repository already exists"
)

// CreateCommandBuilder assembles the repo create command.
type CreateCommandBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
}

// Build constructs the repo create command.
func (builder *CreateCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   createUseConstant,
		Short: createShortDescription,
		Long:  createLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	command.Flags().Bool(createPrivateFlagName, false, createPrivateFlagDescription)
	command.Flags().String(createSDKFlagName, "", createSDKFlagDescription)
	command.Flags().String(createResourceGroupFlagName, "", createResourceGroupDescription)
	command.Flags().Bool(createExistOKFlagName, false, createExistOKFlagDescription)

	return command, nil
}

func (builder *CreateCommandBuilder) run(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	privateRequested, _ := command.Flags().GetBool(createPrivateFlagName)
	spaceSDK, _ := command.Flags().GetString(createSDKFlagName)
	resourceGroupID, _ := command.Flags().GetString(createResourceGroupFlagName)
	existOK, _ := command.Flags().GetBool(createExistOKFlagName)

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

	return service.Create(command.Context(), repositories.CreateOptions{
		Reference:       reference,
		Type:            repositoryType,
		Private:         privateRequested,
		SDK:             spaceSDK,
		ResourceGroupID: resourceGroupID,
		ExistOK:         existOK,
		DryRun:          dryRun,
	})
}

func connectionSettings(configuration Configuration) shared.ConnectionSettings {
	return shared.ConnectionSettings{
		BaseURL:     configuration.BaseURL,
		TokenSource: configuration.TokenSource,
	}
}

func repositoryTypeFlagUsage() string {
	choices := []string{
		string(hubapi.ModelRepositoryType),
		string(hubapi.DatasetRepositoryType),
		string(hubapi.SpaceRepositoryType),
	}
	return flagutils.FormatChoiceUsage(string(hubapi.ModelRepositoryType), choices, flagutils.RepositoryTypeFlagUsage)
}
