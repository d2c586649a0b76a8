package hubauth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenSourceSeparatorConstant               = ":"
	environmentTokenSourceTypeValueConstant    = "env"
	fileTokenSourceTypeValueConstant           = "file"
	environmentNameMissingErrorMessageConstant = "environment variable name must be provided"
	filePathMissingErrorMessageConstant        = "token file path must be provided"
	environmentTokenMissingTemplateConstant    = "environment variable %s is not set"
	fileReadErrorTemplateConstant              = "unable to read token file %s: %w"
	fileTokenEmptyErrorTemplateConstant        = "token file %s is empty"
	unsupportedTokenSourceTemplateConstant     = "unsupported token source type %q"
	noTokenAvailableMessageConstant            = "no hub token available"
	homeShortcutConstant                       = "~"
	homeShortcutPrefixConstant                 = "~/"
)

// Environment variable names inspected when no explicit token source is
// configured, in preference order.
const (
	EnvHubxToken = "HUBX_TOKEN"
	EnvHubToken  = "HUB_TOKEN"
	EnvHFToken   = "HF_TOKEN"
)

var tokenPreference = []string{
	EnvHubxToken,
	EnvHubToken,
	EnvHFToken,
}

// ErrNoTokenAvailable indicates neither an explicit source nor any fallback
// environment variable yielded a token.
var ErrNoTokenAvailable = errors.New(noTokenAvailableMessageConstant)

// TokenSourceType enumerates the supported token retrieval mechanisms.
type TokenSourceType string

// Token source type enumerations.
const (
	TokenSourceTypeEnvironment TokenSourceType = TokenSourceType(environmentTokenSourceTypeValueConstant)
	TokenSourceTypeFile        TokenSourceType = TokenSourceType(fileTokenSourceTypeValueConstant)
)

// TokenSource specifies how to locate a credentials token.
type TokenSource struct {
	Type      TokenSourceType
	Reference string
}

// EnvironmentLookup obtains an environment variable value.
type EnvironmentLookup func(key string) (string, bool)

// FileReader reads the contents of a file path.
type FileReader func(path string) ([]byte, error)

// Resolver retrieves hub tokens from configured sources with environment
// fallbacks.
type Resolver struct {
	environmentLookup EnvironmentLookup
	fileReader        FileReader
}

// NewResolver creates a token resolver with optional dependency overrides.
func NewResolver(environmentLookup EnvironmentLookup, fileReader FileReader) *Resolver {
	resolvedEnvironmentLookup := environmentLookup
	if resolvedEnvironmentLookup == nil {
		resolvedEnvironmentLookup = os.LookupEnv
	}

	resolvedFileReader := fileReader
	if resolvedFileReader == nil {
		resolvedFileReader = os.ReadFile
	}

	return &Resolver{environmentLookup: resolvedEnvironmentLookup, fileReader: resolvedFileReader}
}

// ParseTokenSource interprets textual token source declarations. Bare values
// without a type prefix are treated as environment variable names.
func ParseTokenSource(sourceValue string) (TokenSource, error) {
	trimmedValue := strings.TrimSpace(sourceValue)
	if len(trimmedValue) == 0 {
		return TokenSource{}, nil
	}

	components := strings.SplitN(trimmedValue, tokenSourceSeparatorConstant, 2)
	if len(components) == 1 {
		return TokenSource{Type: TokenSourceTypeEnvironment, Reference: trimmedValue}, nil
	}

	sourceType := strings.ToLower(strings.TrimSpace(components[0]))
	reference := strings.TrimSpace(components[1])

	switch sourceType {
	case environmentTokenSourceTypeValueConstant:
		if len(reference) == 0 {
			return TokenSource{}, errors.New(environmentNameMissingErrorMessageConstant)
		}
		return TokenSource{Type: TokenSourceTypeEnvironment, Reference: reference}, nil
	case fileTokenSourceTypeValueConstant:
		if len(reference) == 0 {
			return TokenSource{}, errors.New(filePathMissingErrorMessageConstant)
		}
		return TokenSource{Type: TokenSourceTypeFile, Reference: reference}, nil
	default:
		return TokenSource{}, fmt.Errorf(unsupportedTokenSourceTemplateConstant, sourceType)
	}
}

// IsZero reports whether the source carries no declaration.
func (source TokenSource) IsZero() bool {
	return len(source.Type) == 0 && len(source.Reference) == 0
}

// ResolveToken returns the token from the declared source, or walks the
// fallback environment chain when the source is empty.
func (resolver *Resolver) ResolveToken(source TokenSource) (string, error) {
	if source.IsZero() {
		return resolver.resolveFallbackToken()
	}

	switch source.Type {
	case TokenSourceTypeEnvironment:
		value, found := resolver.environmentLookup(source.Reference)
		trimmedValue := strings.TrimSpace(value)
		if !found || len(trimmedValue) == 0 {
			return "", fmt.Errorf(environmentTokenMissingTemplateConstant, source.Reference)
		}
		return trimmedValue, nil
	case TokenSourceTypeFile:
		tokenFilePath := expandHomePath(source.Reference)
		contents, readError := resolver.fileReader(tokenFilePath)
		if readError != nil {
			return "", fmt.Errorf(fileReadErrorTemplateConstant, tokenFilePath, readError)
		}
		trimmedValue := strings.TrimSpace(string(contents))
		if len(trimmedValue) == 0 {
			return "", fmt.Errorf(fileTokenEmptyErrorTemplateConstant, source.Reference)
		}
		return trimmedValue, nil
	default:
		return "", fmt.Errorf(unsupportedTokenSourceTemplateConstant, source.Type)
	}
}

// expandHomePath resolves a leading tilde to the user's home directory.
func expandHomePath(candidatePath string) string {
	if candidatePath != homeShortcutConstant && !strings.HasPrefix(candidatePath, homeShortcutPrefixConstant) {
		return candidatePath
	}

	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == homeShortcutConstant {
		return homeDirectory
	}

	return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, homeShortcutPrefixConstant))
}

func (resolver *Resolver) resolveFallbackToken() (string, error) {
	for _, environmentName := range tokenPreference {
		value, found := resolver.environmentLookup(environmentName)
		if !found {
			continue
		}
		trimmedValue := strings.TrimSpace(value)
		if len(trimmedValue) > 0 {
			return trimmedValue, nil
		}
	}
	return "", ErrNoTokenAvailable
}
