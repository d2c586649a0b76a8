package docs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/hubx/cmd/cli"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	configurationTypeConstant        = "yaml"
)

type readmeCommonConfiguration struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type readmeToolConfiguration struct {
	BaseURL     string `yaml:"base_url"`
	TokenSource string `yaml:"token_source"`
}

type readmeToolsConfiguration struct {
	Repo readmeToolConfiguration `yaml:"repo"`
	Refs readmeToolConfiguration `yaml:"refs"`
}

type readmeApplicationConfiguration struct {
	Common readmeCommonConfiguration `yaml:"common"`
	Tools  readmeToolsConfiguration  `yaml:"tools"`
}

func extractConfigurationSnippet(testInstance *testing.T) string {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])
}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	snippetContent := extractConfigurationSnippet(testInstance)

	var readmeConfiguration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippetContent), &readmeConfiguration))

	require.Equal(testInstance, "info", readmeConfiguration.Common.LogLevel)
	require.Equal(testInstance, "structured", readmeConfiguration.Common.LogFormat)
	require.NotEmpty(testInstance, readmeConfiguration.Tools.Repo.BaseURL)
	require.NotEmpty(testInstance, readmeConfiguration.Tools.Refs.BaseURL)
	require.True(testInstance, strings.HasPrefix(readmeConfiguration.Tools.Repo.TokenSource, "env:"))
}

func TestReadmeConfigurationDecodesIntoApplicationConfiguration(testInstance *testing.T) {
	snippetContent := extractConfigurationSnippet(testInstance)

	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationTypeConstant)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader([]byte(snippetContent))))

	var applicationConfiguration cli.ApplicationConfiguration
	require.NoError(testInstance, viperInstance.Unmarshal(&applicationConfiguration))

	require.Equal(testInstance, "info", applicationConfiguration.Common.LogLevel)
	require.Equal(testInstance, applicationConfiguration.Tools.Repo.BaseURL, applicationConfiguration.Tools.Refs.BaseURL)
	require.False(testInstance, applicationConfiguration.Tools.Repo.DryRun)
}
