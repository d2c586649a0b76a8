package hubapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/hubx/internal/hubapi"
)

func TestParseRepositoryReference(t *testing.T) {
	testCases := []struct {
		name              string
		input             string
		expectedNamespace string
		expectedName      string
		expectError       bool
	}{
		{
			name:         "NameOnly",
			input:        "bert-base",
			expectedName: "bert-base",
		},
		{
			name:              "QualifiedReference",
			input:             "acme/bert-base",
			expectedNamespace: "acme",
			expectedName:      "bert-base",
		},
		{
			name:              "SurroundingWhitespace",
			input:             "  acme/bert-base  ",
			expectedNamespace: "acme",
			expectedName:      "bert-base",
		},
		{
			name:        "EmptyInput",
			input:       "   ",
			expectError: true,
		},
		{
			name:        "TooManySegments",
			input:       "acme/models/bert",
			expectError: true,
		},
		{
			name:        "EmptyNamespaceSegment",
			input:       "/bert-base",
			expectError: true,
		},
		{
			name:        "EmptyNameSegment",
			input:       "acme/",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			reference, parseError := hubapi.ParseRepositoryReference(testCase.input)
			if testCase.expectError {
				require.Error(t, parseError)
				return
			}

			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedNamespace, reference.Namespace)
			require.Equal(t, testCase.expectedName, reference.Name)
		})
	}
}

func TestRepositoryReferenceString(t *testing.T) {
	testCases := []struct {
		name           string
		reference      hubapi.RepositoryReference
		expectedOutput string
	}{
		{
			name:           "QualifiedReference",
			reference:      hubapi.RepositoryReference{Namespace: "acme", Name: "bert-base"},
			expectedOutput: "acme/bert-base",
		},
		{
			name:           "UnqualifiedReference",
			reference:      hubapi.RepositoryReference{Name: "bert-base"},
			expectedOutput: "bert-base",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedOutput, testCase.reference.String())
		})
	}
}

func TestRepositoryReferenceRequireQualified(t *testing.T) {
	qualifiedReference := hubapi.RepositoryReference{Namespace: "acme", Name: "bert-base"}
	require.NoError(t, qualifiedReference.RequireQualified())

	unqualifiedReference := hubapi.RepositoryReference{Name: "bert-base"}
	require.Error(t, unqualifiedReference.RequireQualified())
}
