package repo_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/hubx/cmd/cli/repo"
	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/repositories"
)

type fakeClient struct {
	createCalls    []hubapi.CreateRepositoryOptions
	deleteCalls    []hubapi.DeleteRepositoryOptions
	duplicateCalls []hubapi.DuplicateSpaceOptions
	moveCalls      []hubapi.MoveRepositoryOptions
	settingsCalls  []hubapi.UpdateSettingsOptions
	repositoryURL  hubapi.RepositoryURL
}

func (client *fakeClient) CreateRepository(_ context.Context, options hubapi.CreateRepositoryOptions) (hubapi.RepositoryURL, error) {
	client.createCalls = append(client.createCalls, options)
	return client.repositoryURL, nil
}

func (client *fakeClient) DeleteRepository(_ context.Context, options hubapi.DeleteRepositoryOptions) error {
	client.deleteCalls = append(client.deleteCalls, options)
	return nil
}

func (client *fakeClient) DuplicateSpace(_ context.Context, options hubapi.DuplicateSpaceOptions) (hubapi.RepositoryURL, error) {
	client.duplicateCalls = append(client.duplicateCalls, options)
	return client.repositoryURL, nil
}

func (client *fakeClient) MoveRepository(_ context.Context, options hubapi.MoveRepositoryOptions) error {
	client.moveCalls = append(client.moveCalls, options)
	return nil
}

func (client *fakeClient) UpdateRepositorySettings(_ context.Context, options hubapi.UpdateSettingsOptions) error {
	client.settingsCalls = append(client.settingsCalls, options)
	return nil
}

type staticPrompter struct {
	response bool
	prompts  int
}

func (prompter *staticPrompter) Confirm(string) (bool, error) {
	prompter.prompts++
	return prompter.response, nil
}

func buildGroup(t *testing.T, client *fakeClient, prompter repositories.ConfirmationPrompter) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	builder := repo.CommandGroupBuilder{
		LoggerProvider: func() *zap.Logger {
			return zap.NewNop()
		},
		ConfigurationProvider: func() repo.Configuration {
			configuration := repo.DefaultConfiguration()
			configuration.BaseURL = "https://hub.example.com"
			return configuration
		},
		ClientFactory: func(shared.ConnectionSettings, *zap.Logger) (repositories.Client, error) {
			return client, nil
		},
		PrompterFactory: func(*cobra.Command) repositories.ConfirmationPrompter {
			return prompter
		},
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output := &bytes.Buffer{}
	command.SetOut(output)
	command.SetErr(output)
	command.SetContext(context.Background())

	return command, output
}

func TestCreateCommandForwardsFlags(t *testing.T) {
	client := &fakeClient{repositoryURL: "https://hub.example.com/acme/scores"}
	command, output := buildGroup(t, client, nil)

	command.SetArgs([]string{"create", "acme/scores", "--type", "dataset", "--private", "--exist-ok"})
	require.NoError(t, command.Execute())

	require.Len(t, client.createCalls, 1)
	require.Equal(t, hubapi.DatasetRepositoryType, client.createCalls[0].Type)
	require.True(t, client.createCalls[0].Private)
	require.True(t, client.createCalls[0].ExistOK)
	require.Contains(t, output.String(), "https://hub.example.com/acme/scores")
}

func TestCreateCommandRejectsUnknownType(t *testing.T) {
	client := &fakeClient{}
	command, _ := buildGroup(t, client, nil)

	command.SetArgs([]string{"create", "acme/scores", "--type", "notebook"})
	require.Error(t, command.Execute())
	require.Empty(t, client.createCalls)
}

func TestCreateCommandDryRunSkipsClient(t *testing.T) {
	client := &fakeClient{}
	command, output := buildGroup(t, client, nil)

	command.SetArgs([]string{"create", "acme/scores", "--dry-run"})
	require.NoError(t, command.Execute())

	require.Empty(t, client.createCalls)
	require.Contains(t, output.String(), "PLAN-CREATE:")
}

func TestDeleteCommandPromptsBeforeDeletion(t *testing.T) {
	testCases := []struct {
		name           string
		extraArguments []string
		promptResponse bool
		expectDeleted  bool
	}{
		{
			name:           "DeclinedPromptSkipsDeletion",
			promptResponse: false,
			expectDeleted:  false,
		},
		{
			name:           "ConfirmedPromptDeletes",
			promptResponse: true,
			expectDeleted:  true,
		},
		{
			name:           "AssumeYesFlagBypassesPrompt",
			extraArguments: []string{"--yes"},
			expectDeleted:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client := &fakeClient{}
			prompter := &staticPrompter{response: testCase.promptResponse}
			command, _ := buildGroup(t, client, prompter)

			commandArguments := append([]string{"delete", "acme/scores", "--type", "model"}, testCase.extraArguments...)
			command.SetArgs(commandArguments)
			require.NoError(t, command.Execute())

			if testCase.expectDeleted {
				require.Len(t, client.deleteCalls, 1)
			} else {
				require.Empty(t, client.deleteCalls)
			}
		})
	}
}

func TestDuplicateCommandAllowsOmittedDestination(t *testing.T) {
	client := &fakeClient{repositoryURL: "https://hub.example.com/me/demo"}
	command, _ := buildGroup(t, client, nil)

	command.SetArgs([]string{"duplicate", "upstream/demo"})
	require.NoError(t, command.Execute())

	require.Len(t, client.duplicateCalls, 1)
	require.Equal(t, "upstream", client.duplicateCalls[0].Source.Namespace)
	require.False(t, client.duplicateCalls[0].Destination.IsQualified())
	require.Nil(t, client.duplicateCalls[0].Private)
}

func TestMoveCommandForwardsReferences(t *testing.T) {
	client := &fakeClient{}
	command, _ := buildGroup(t, client, nil)

	command.SetArgs([]string{"move", "acme/scores", "acme-labs/scores", "--yes"})
	require.NoError(t, command.Execute())

	require.Len(t, client.moveCalls, 1)
	require.Equal(t, "acme/scores", client.moveCalls[0].From.String())
	require.Equal(t, "acme-labs/scores", client.moveCalls[0].To.String())
}

func TestSettingsCommandRequiresAtLeastOneField(t *testing.T) {
	client := &fakeClient{}
	command, _ := buildGroup(t, client, nil)

	command.SetArgs([]string{"settings", "acme/scores"})
	require.Error(t, command.Execute())
	require.Empty(t, client.settingsCalls)
}

func TestSettingsCommandForwardsVisibilityAndGating(t *testing.T) {
	client := &fakeClient{}
	command, _ := buildGroup(t, client, nil)

	command.SetArgs([]string{"settings", "acme/scores", "--visibility", "private", "--gated", "manual"})
	require.NoError(t, command.Execute())

	require.Len(t, client.settingsCalls, 1)
	require.NotNil(t, client.settingsCalls[0].Visibility)
	require.Equal(t, hubapi.PrivateVisibility, *client.settingsCalls[0].Visibility)
	require.NotNil(t, client.settingsCalls[0].Gated)
	require.Equal(t, hubapi.ManualGatedMode, *client.settingsCalls[0].Gated)
}
