package references_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/hubx/internal/hubapi"
	"github.com/temirov/hubx/internal/references"
)

type recordingClient struct {
	branchCreateCalls []hubapi.BranchOptions
	branchDeleteCalls []hubapi.BranchOptions
	tagCreateCalls    []hubapi.TagOptions
	tagDeleteCalls    []hubapi.TagOptions
	listCalls         []hubapi.ListReferencesOptions
	listedReferences  hubapi.RepositoryReferences
	returnedError     error
}

func (client *recordingClient) CreateBranch(_ context.Context, options hubapi.BranchOptions) error {
	client.branchCreateCalls = append(client.branchCreateCalls, options)
	return client.returnedError
}

func (client *recordingClient) DeleteBranch(_ context.Context, options hubapi.BranchOptions) error {
	client.branchDeleteCalls = append(client.branchDeleteCalls, options)
	return client.returnedError
}

func (client *recordingClient) CreateTag(_ context.Context, options hubapi.TagOptions) error {
	client.tagCreateCalls = append(client.tagCreateCalls, options)
	return client.returnedError
}

func (client *recordingClient) DeleteTag(_ context.Context, options hubapi.TagOptions) error {
	client.tagDeleteCalls = append(client.tagDeleteCalls, options)
	return client.returnedError
}

func (client *recordingClient) ListRepositoryReferences(_ context.Context, options hubapi.ListReferencesOptions) (hubapi.RepositoryReferences, error) {
	client.listCalls = append(client.listCalls, options)
	return client.listedReferences, client.returnedError
}

type bufferReporter struct {
	buffer bytes.Buffer
}

func (reporter *bufferReporter) Printf(format string, args ...any) {
	fmt.Fprintf(&reporter.buffer, format, args...)
}

type scriptedPrompter struct {
	response bool
	prompts  []string
}

func (prompter *scriptedPrompter) Confirm(prompt string) (bool, error) {
	prompter.prompts = append(prompter.prompts, prompt)
	return prompter.response, nil
}

func testReference() hubapi.RepositoryReference {
	return hubapi.RepositoryReference{Namespace: "acme", Name: "bert-base"}
}

func TestServiceConstructionRequiresClient(t *testing.T) {
	_, constructionError := references.NewService(nil, nil, nil, nil, nil)
	require.ErrorIs(t, constructionError, references.ErrClientNotConfigured)
}

func TestCreateBranchForwardsRevision(t *testing.T) {
	client := &recordingClient{}
	reporter := &bufferReporter{}

	service, serviceError := references.NewService(nil, client, reporter, nil, &bytes.Buffer{})
	require.NoError(t, serviceError)

	creationError := service.CreateBranch(context.Background(), references.BranchOptions{
		Reference: testReference(),
		Branch:    "experiment",
		Revision:  "abc1234",
		ExistOK:   true,
	})
	require.NoError(t, creationError)

	require.Len(t, client.branchCreateCalls, 1)
	require.Equal(t, "experiment", client.branchCreateCalls[0].Branch)
	require.Equal(t, "abc1234", client.branchCreateCalls[0].Revision)
	require.True(t, client.branchCreateCalls[0].ExistOK)
	require.Contains(t, reporter.buffer.String(), "Created branch experiment in acme/bert-base")
}

func TestBranchDryRunSkipsClient(t *testing.T) {
	client := &recordingClient{}
	reporter := &bufferReporter{}

	service, serviceError := references.NewService(nil, client, reporter, nil, &bytes.Buffer{})
	require.NoError(t, serviceError)

	creationError := service.CreateBranch(context.Background(), references.BranchOptions{
		Reference: testReference(),
		Branch:    "experiment",
		DryRun:    true,
	})
	require.NoError(t, creationError)

	require.Empty(t, client.branchCreateCalls)
	require.Contains(t, reporter.buffer.String(), "PLAN-BRANCH-CREATE:")
}

func TestDeleteBranchForwardsMissingOK(t *testing.T) {
	client := &recordingClient{}
	reporter := &bufferReporter{}

	service, serviceError := references.NewService(nil, client, reporter, nil, &bytes.Buffer{})
	require.NoError(t, serviceError)

	deletionError := service.DeleteBranch(context.Background(), references.BranchOptions{
		Reference: testReference(),
		Branch:    "experiment",
		MissingOK: true,
	})
	require.NoError(t, deletionError)

	require.Len(t, client.branchDeleteCalls, 1)
	require.True(t, client.branchDeleteCalls[0].MissingOK)
	require.Contains(t, reporter.buffer.String(), "Deleted branch experiment in acme/bert-base")
}

func TestDeleteBranchConfirmation(t *testing.T) {
	testCases := []struct {
		name            string
		promptResponse  bool
		assumeYes       bool
		expectDeleted   bool
		expectPrompting bool
	}{
		{
			name:            "ConfirmedDeletionProceeds",
			promptResponse:  true,
			expectDeleted:   true,
			expectPrompting: true,
		},
		{
			name:            "DeclinedDeletionSkips",
			promptResponse:  false,
			expectDeleted:   false,
			expectPrompting: true,
		},
		{
			name:          "AssumeYesSkipsPrompt",
			assumeYes:     true,
			expectDeleted: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client := &recordingClient{}
			reporter := &bufferReporter{}
			prompter := &scriptedPrompter{response: testCase.promptResponse}

			service, serviceError := references.NewService(nil, client, reporter, prompter, &bytes.Buffer{})
			require.NoError(t, serviceError)

			deletionError := service.DeleteBranch(context.Background(), references.BranchOptions{
				Reference: testReference(),
				Branch:    "experiment",
				AssumeYes: testCase.assumeYes,
			})
			require.NoError(t, deletionError)

			if testCase.expectPrompting {
				require.Len(t, prompter.prompts, 1)
				require.Contains(t, prompter.prompts[0], "experiment")
			} else {
				require.Empty(t, prompter.prompts)
			}

			if testCase.expectDeleted {
				require.Len(t, client.branchDeleteCalls, 1)
			} else {
				require.Empty(t, client.branchDeleteCalls)
				require.Contains(t, reporter.buffer.String(), "SKIP: experiment")
			}
		})
	}
}

func TestDeleteTagDeclinedPromptSkipsClient(t *testing.T) {
	client := &recordingClient{}
	reporter := &bufferReporter{}
	prompter := &scriptedPrompter{response: false}

	service, serviceError := references.NewService(nil, client, reporter, prompter, &bytes.Buffer{})
	require.NoError(t, serviceError)

	deletionError := service.DeleteTag(context.Background(), references.TagOptions{
		Reference: testReference(),
		Tag:       "v1.0",
	})
	require.NoError(t, deletionError)

	require.Len(t, prompter.prompts, 1)
	require.Contains(t, prompter.prompts[0], "v1.0")
	require.Empty(t, client.tagDeleteCalls)
	require.Contains(t, reporter.buffer.String(), "SKIP: v1.0")
}

func TestCreateTagForwardsMessage(t *testing.T) {
	client := &recordingClient{}
	reporter := &bufferReporter{}

	service, serviceError := references.NewService(nil, client, reporter, nil, &bytes.Buffer{})
	require.NoError(t, serviceError)

	creationError := service.CreateTag(context.Background(), references.TagOptions{
		Reference: testReference(),
		Tag:       "v1.0",
		Revision:  "abc1234",
		Message:   "first release",
	})
	require.NoError(t, creationError)

	require.Len(t, client.tagCreateCalls, 1)
	require.Equal(t, "v1.0", client.tagCreateCalls[0].Tag)
	require.Equal(t, "first release", client.tagCreateCalls[0].Message)
	require.Contains(t, reporter.buffer.String(), "Created tag v1.0 in acme/bert-base")
}

func TestDeleteTagDryRunSkipsClient(t *testing.T) {
	client := &recordingClient{}
	reporter := &bufferReporter{}

	service, serviceError := references.NewService(nil, client, reporter, nil, &bytes.Buffer{})
	require.NoError(t, serviceError)

	deletionError := service.DeleteTag(context.Background(), references.TagOptions{
		Reference: testReference(),
		Tag:       "v1.0",
		DryRun:    true,
	})
	require.NoError(t, deletionError)

	require.Empty(t, client.tagDeleteCalls)
	require.Contains(t, reporter.buffer.String(), "PLAN-TAG-DELETE:")
}

func TestListRendersCSVRows(t *testing.T) {
	client := &recordingClient{
		listedReferences: hubapi.RepositoryReferences{
			Branches: []hubapi.GitReference{
				{Name: "main", Ref: "refs/heads/main", TargetCommit: "aaa111"},
				{Name: "experiment", Ref: "refs/heads/experiment", TargetCommit: "bbb222"},
			},
			Tags: []hubapi.GitReference{
				{Name: "v1.0", Ref: "refs/tags/v1.0", TargetCommit: "ccc333"},
			},
		},
	}
	output := &bytes.Buffer{}

	service, serviceError := references.NewService(nil, client, nil, nil, output)
	require.NoError(t, serviceError)

	listError := service.List(context.Background(), references.ListOptions{Reference: testReference()})
	require.NoError(t, listError)

	expectedOutput := "KIND,NAME,TARGET_COMMIT\n" +
		"branch,main,aaa111\n" +
		"branch,experiment,bbb222\n" +
		"tag,v1.0,ccc333\n"
	require.Equal(t, expectedOutput, output.String())
	require.Len(t, client.listCalls, 1)
}
