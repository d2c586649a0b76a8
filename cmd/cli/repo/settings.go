package repo

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/repositories"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	settingsUseConstant          = "settings <namespace/name>"
	settingsShortDescription     = "Update repository visibility and gating"
	settingsLongDescription      = "settings updates the visibility or the gated access mode of a repository."
	settingsVisibilityFlagName   = "visibility"
	settingsVisibilityFlagLabel  = "Repository visibility"
	settingsGatedFlagName        = "gated"
	settingsGatedFlagLabel       = "Gated access mode"
	settingsNoFieldsErrorMessage = "specify --visibility or --gated"
)

// SettingsCommandBuilder assembles the repo settings command.
type SettingsCommandBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
}

// Build constructs the repo settings command.
func (builder *SettingsCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   settingsUseConstant,
		Short: settingsShortDescription,
		Long:  settingsLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	command.Flags().String(settingsVisibilityFlagName, "", visibilityFlagUsage())
	command.Flags().String(settingsGatedFlagName, "", gatedFlagUsage())

	return command, nil
}

func (builder *SettingsCommandBuilder) run(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	var visibility *hubapi.Visibility
	if command.Flags().Changed(settingsVisibilityFlagName) {
		visibilityValue, _ := command.Flags().GetString(settingsVisibilityFlagName)
		parsedVisibility, visibilityError := hubapi.ParseVisibility(visibilityValue)
		if visibilityError != nil {
			return visibilityError
		}
		visibility = &parsedVisibility
	}

	var gated *hubapi.GatedMode
	if command.Flags().Changed(settingsGatedFlagName) {
		gatedValue, _ := command.Flags().GetString(settingsGatedFlagName)
		parsedGated, gatedError := hubapi.ParseGatedMode(gatedValue)
		if gatedError != nil {
			return gatedError
		}
		gated = &parsedGated
	}

	if visibility == nil && gated == nil {
		_ = command.Help()
		return errors.New(settingsNoFieldsErrorMessage)
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

	return service.UpdateSettings(command.Context(), repositories.SettingsOptions{
		Reference:  reference,
		Type:       repositoryType,
		Visibility: visibility,
		Gated:      gated,
		DryRun:     dryRun,
	})
}

func visibilityFlagUsage() string {
	choices := []string{string(hubapi.PublicVisibility), string(hubapi.PrivateVisibility)}
	return flagutils.FormatChoiceUsage(string(hubapi.PublicVisibility), choices, settingsVisibilityFlagLabel)
}

func gatedFlagUsage() string {
	choices := []string{
		string(hubapi.DisabledGatedMode),
		string(hubapi.ManualGatedMode),
		string(hubapi.AutoGatedMode),
	}
	return flagutils.FormatChoiceUsage(string(hubapi.DisabledGatedMode), choices, settingsGatedFlagLabel)
}
