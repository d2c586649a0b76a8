package hubapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/hubx/internal/hubapi"
)

func TestParseRepositoryType(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedType hubapi.RepositoryType
		expectError  bool
	}{
		{
			name:         "EmptyDefaultsToModel",
			input:        "",
			expectedType: hubapi.ModelRepositoryType,
		},
		{
			name:         "ModelValue",
			input:        "model",
			expectedType: hubapi.ModelRepositoryType,
		},
		{
			name:         "DatasetValue",
			input:        "dataset",
			expectedType: hubapi.DatasetRepositoryType,
		},
		{
			name:         "SpaceValueUpperCased",
			input:        "SPACE",
			expectedType: hubapi.SpaceRepositoryType,
		},
		{
			name:        "UnsupportedValue",
			input:       "notebook",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			parsedType, parseError := hubapi.ParseRepositoryType(testCase.input)
			if testCase.expectError {
				require.Error(t, parseError)
				return
			}

			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedType, parsedType)
		})
	}
}

func TestRepositoryTypePathSegment(t *testing.T) {
	testCases := []struct {
		name            string
		repositoryType  hubapi.RepositoryType
		expectedSegment string
	}{
		{
			name:            "Model",
			repositoryType:  hubapi.ModelRepositoryType,
			expectedSegment: "models",
		},
		{
			name:            "Dataset",
			repositoryType:  hubapi.DatasetRepositoryType,
			expectedSegment: "datasets",
		},
		{
			name:            "Space",
			repositoryType:  hubapi.SpaceRepositoryType,
			expectedSegment: "spaces",
		},
		{
			name:            "ZeroValueFallsBackToModels",
			repositoryType:  hubapi.RepositoryType(""),
			expectedSegment: "models",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedSegment, testCase.repositoryType.PathSegment())
		})
	}
}
