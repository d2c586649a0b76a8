package refs

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/references"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

type reporterFunc func(format string, args ...any)

// Printf forwards to the wrapped function.
func (reporter reporterFunc) Printf(format string, args ...any) {
	reporter(format, args...)
}

// ConfigurationProvider yields the reference command configuration.
type ConfigurationProvider func() Configuration

// ClientFactory creates reference clients from connection settings.
type ClientFactory func(settings shared.ConnectionSettings, logger *zap.Logger) (references.Client, error)

func resolveConfiguration(provider ConfigurationProvider) Configuration {
	if provider == nil {
		return DefaultConfiguration()
	}
	return provider()
}

func resolveClient(factory ClientFactory, settings shared.ConnectionSettings, logger *zap.Logger) (references.Client, error) {
	if factory != nil {
		return factory(settings, logger)
	}
	return shared.ResolveClient(settings, logger)
}

func connectionSettings(configuration Configuration) shared.ConnectionSettings {
	return shared.ConnectionSettings{
		BaseURL:     configuration.BaseURL,
		TokenSource: configuration.TokenSource,
	}
}

func newReferencesService(command *cobra.Command, logger *zap.Logger, client references.Client, prompterFactory shared.PrompterFactory) (*references.Service, error) {
	outputWriter := command.OutOrStdout()
	reporter := reporterFunc(func(format string, args ...any) {
		fmt.Fprintf(outputWriter, format, args...)
	})
	prompter := shared.ResolvePrompter(prompterFactory, command)
	return references.NewService(logger, client, reporter, prompter, command.OutOrStdout())
}

func repositoryTypeFromFlags(command *cobra.Command) (hubapi.RepositoryType, error) {
	repositoryTypeValue, _ := command.Flags().GetString(flagutils.RepositoryTypeFlagName)
	return shared.ParseRepositoryTypeFlag(repositoryTypeValue)
}

func repositoryTypeFlagUsage() string {
	choices := []string{
		string(hubapi.ModelRepositoryType),
		string(hubapi.DatasetRepositoryType),
		string(hubapi.SpaceRepositoryType),
	}
	return flagutils.FormatChoiceUsage(string(hubapi.ModelRepositoryType), choices, flagutils.RepositoryTypeFlagUsage)
}

func resolveDryRun(command *cobra.Command, configuration Configuration) bool {
	dryRunValue, _ := command.Flags().GetBool(flagutils.DryRunFlagName)
	return shared.SelectBool(command, flagutils.DryRunFlagName, dryRunValue, configuration.DryRun)
}

func resolveAssumeYes(command *cobra.Command, configuration Configuration) bool {
	assumeYesValue, _ := command.Flags().GetBool(flagutils.AssumeYesFlagName)
	return shared.SelectBool(command, flagutils.AssumeYesFlagName, assumeYesValue, configuration.AssumeYes)
}
