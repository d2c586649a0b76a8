package repositories_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/hubx/internal/repositories"
)

func TestIOConfirmationPrompter(t *testing.T) {
	testCases := []struct {
		name             string
		input            string
		expectedDecision bool
	}{
		{
			name:             "LowercaseYesConfirms",
			input:            "yes\n",
			expectedDecision: true,
		},
		{
			name:             "ShortAffirmativeConfirms",
			input:            "y\n",
			expectedDecision: true,
		},
		{
			name:             "UppercaseAffirmativeConfirms",
			input:            "Y\n",
			expectedDecision: true,
		},
		{
			name:             "NegativeResponseDeclines",
			input:            "n\n",
			expectedDecision: false,
		},
		{
			name:             "EmptyResponseDeclines",
			input:            "\n",
			expectedDecision: false,
		},
		{
			name:             "EndOfInputDeclines",
			input:            "",
			expectedDecision: false,
		},
	}

	for testCaseIndex, testCase := range testCases {
		t.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			prompter := repositories.NewIOConfirmationPrompter(strings.NewReader(testCase.input), outputBuffer)

			decision, promptError := prompter.Confirm("Proceed? [y/N] ")

			require.NoError(testInstance, promptError)
			require.Equal(testInstance, testCase.expectedDecision, decision)
			require.Equal(testInstance, "Proceed? [y/N] ", outputBuffer.String())
		})
	}
}
