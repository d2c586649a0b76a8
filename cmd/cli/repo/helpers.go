package repo

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/repositories"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

// ConfigurationProvider yields the repository command configuration.
type ConfigurationProvider func() Configuration

// ClientFactory creates repository clients from connection settings.
type ClientFactory func(settings shared.ConnectionSettings, logger *zap.Logger) (repositories.Client, error)

func resolveConfiguration(provider ConfigurationProvider) Configuration {
	if provider == nil {
		return DefaultConfiguration()
	}
	return provider()
}

func resolveClient(factory ClientFactory, settings shared.ConnectionSettings, logger *zap.Logger) (repositories.Client, error) {
	if factory != nil {
		return factory(settings, logger)
	}
	return shared.ResolveClient(settings, logger)
}

func newRepositoryService(command *cobra.Command, logger *zap.Logger, client repositories.Client, prompterFactory shared.PrompterFactory) (*repositories.Service, error) {
	prompter := shared.ResolvePrompter(prompterFactory, command)
	reporter := repositories.NewWriterReporter(command.OutOrStdout())
	return repositories.NewService(logger, client, prompter, reporter)
}

func repositoryTypeFromFlags(command *cobra.Command) (hubapi.RepositoryType, error) {
	repositoryTypeValue, _ := command.Flags().GetString(flagutils.RepositoryTypeFlagName)
	return shared.ParseRepositoryTypeFlag(repositoryTypeValue)
}
