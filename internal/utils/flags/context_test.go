package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestBindExecutionFlagsRegistersDryRunAndAssumeYes(t *testing.T) {
	command := &cobra.Command{}

	BindExecutionFlags(command, ExecutionDefaults{}, DefaultExecutionFlagDefinitions())

	dryRunFlag := command.PersistentFlags().Lookup(DryRunFlagName)
	require.NotNil(t, dryRunFlag)

	assumeYesFlag := command.PersistentFlags().Lookup(AssumeYesFlagName)
	require.NotNil(t, assumeYesFlag)
	require.Equal(t, AssumeYesFlagShorthand, assumeYesFlag.Shorthand)
}

func TestBindExecutionFlagsSkipsExistingFlags(t *testing.T) {
	command := &cobra.Command{}
	command.PersistentFlags().Bool(DryRunFlagName, true, "pre-existing")

	BindExecutionFlags(command, ExecutionDefaults{}, DefaultExecutionFlagDefinitions())

	dryRunFlag := command.PersistentFlags().Lookup(DryRunFlagName)
	require.NotNil(t, dryRunFlag)
	require.Equal(t, "pre-existing", dryRunFlag.Usage)
}

func TestBindExecutionFlagsParsesToggleValues(t *testing.T) {
	command := &cobra.Command{}

	BindExecutionFlags(command, ExecutionDefaults{}, DefaultExecutionFlagDefinitions())

	parseError := command.ParseFlags([]string{"--" + DryRunFlagName, "--" + AssumeYesFlagName + "=no"})
	require.NoError(t, parseError)

	dryRunValue, dryRunError := command.PersistentFlags().GetBool(DryRunFlagName)
	require.NoError(t, dryRunError)
	require.True(t, dryRunValue)
}
