package shared

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/hubauth"
	"github.com/temirov/hubx/internal/repositories"
)

const (
	defaultRequestTimeout           = 30 * time.Second
	tokenSourceParseErrorTemplate   = "unable to parse token source: %w"
	tokenResolutionErrorTemplate    = "unable to resolve access token: %w"
	clientConstructionErrorTemplate = "unable to construct hub client: %w"
	referenceArgumentErrorTemplate  = "invalid repository reference %q: %w"
	repositoryTypeFlagErrorTemplate = "invalid repository type: %w"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// PrompterFactory creates confirmation prompters scoped to a Cobra command.
type PrompterFactory func(*cobra.Command) repositories.ConfirmationPrompter

// ConnectionSettings captures the values needed to reach a hub endpoint.
type ConnectionSettings struct {
	BaseURL     string
	TokenSource string
}

// ResolveLogger returns the provided logger or a no-op fallback.
func ResolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// ResolvePrompter returns a prompter from the factory or one bound to the
// command's input and output streams.
func ResolvePrompter(factory PrompterFactory, command *cobra.Command) repositories.ConfirmationPrompter {
	if factory != nil {
		prompter := factory(command)
		if prompter != nil {
			return prompter
		}
	}
	return repositories.NewIOConfirmationPrompter(command.InOrStdin(), command.OutOrStdout())
}

// ResolveClient constructs a hub API client from connection settings. The
// access token is resolved from the configured token source, falling back to
// the well-known token environment variables. Without a configured source and
// with no fallback token set, the client operates anonymously.
func ResolveClient(settings ConnectionSettings, logger *zap.Logger) (*hubapi.Client, error) {
	tokenSource, parseError := hubauth.ParseTokenSource(settings.TokenSource)
	if parseError != nil {
		return nil, fmt.Errorf(tokenSourceParseErrorTemplate, parseError)
	}

	accessToken, tokenError := hubauth.NewResolver(nil, nil).ResolveToken(tokenSource)
	if tokenError != nil && !errors.Is(tokenError, hubauth.ErrNoTokenAvailable) {
		return nil, fmt.Errorf(tokenResolutionErrorTemplate, tokenError)
	}

	client, clientError := hubapi.NewClient(logger, &http.Client{Timeout: defaultRequestTimeout}, hubapi.Configuration{
		BaseURL:     settings.BaseURL,
		AccessToken: accessToken,
	})
	if clientError != nil {
		return nil, fmt.Errorf(clientConstructionErrorTemplate, clientError)
	}

	return client, nil
}

// ParseReferenceArgument parses a namespace/name argument into a qualified
// repository reference.
func ParseReferenceArgument(argument string) (hubapi.RepositoryReference, error) {
	reference, parseError := hubapi.ParseRepositoryReference(argument)
	if parseError != nil {
		return hubapi.RepositoryReference{}, fmt.Errorf(referenceArgumentErrorTemplate, argument, parseError)
	}
	return reference, nil
}

// ParseRepositoryTypeFlag normalizes the --type flag value.
func ParseRepositoryTypeFlag(flagValue string) (hubapi.RepositoryType, error) {
	repositoryType, parseError := hubapi.ParseRepositoryType(flagValue)
	if parseError != nil {
		return "", fmt.Errorf(repositoryTypeFlagErrorTemplate, parseError)
	}
	return repositoryType, nil
}

// SelectString returns the flag value when the flag changed and the configured
// value otherwise.
func SelectString(command *cobra.Command, flagName string, flagValue string, configuredValue string) string {
	if command != nil && command.Flags().Changed(flagName) {
		return flagValue
	}
	if len(flagValue) > 0 && len(configuredValue) == 0 {
		return flagValue
	}
	return configuredValue
}

// SelectBool returns the flag value when the flag changed and the configured
// value otherwise.
func SelectBool(command *cobra.Command, flagName string, flagValue bool, configuredValue bool) bool {
	if command != nil && command.Flags().Changed(flagName) {
		return flagValue
	}
	return configuredValue
}
