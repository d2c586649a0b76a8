// Package flags provides helpers for binding standardized execution flags to Cobra commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExecutionDefaults describes default flag values shared across commands.
type ExecutionDefaults struct {
	DryRun    bool
	AssumeYes bool
}

// ExecutionFlagDefinition captures a single flag's configuration.
type ExecutionFlagDefinition struct {
	Name      string
	Usage     string
	Shorthand string
	Enabled   bool
}

// ExecutionFlagDefinitions groups execution flag definitions.
type ExecutionFlagDefinitions struct {
	DryRun    ExecutionFlagDefinition
	AssumeYes ExecutionFlagDefinition
}

// DefaultExecutionFlagDefinitions returns the dry-run and assume-yes flag
// definitions in their customary shape.
func DefaultExecutionFlagDefinitions() ExecutionFlagDefinitions {
	return ExecutionFlagDefinitions{
		DryRun:    ExecutionFlagDefinition{Name: DryRunFlagName, Usage: DryRunFlagUsage, Enabled: true},
		AssumeYes: ExecutionFlagDefinition{Name: AssumeYesFlagName, Usage: AssumeYesFlagUsage, Shorthand: AssumeYesFlagShorthand, Enabled: true},
	}
}

// BindExecutionFlags attaches standardized execution flags to the provided command using persistent scope.
func BindExecutionFlags(command *cobra.Command, defaults ExecutionDefaults, definitions ExecutionFlagDefinitions) {
	if command == nil {
		return
	}

	persistentFlagSet := command.PersistentFlags()

	bindBoolFlag(persistentFlagSet, definitions.DryRun, defaults.DryRun)
	bindBoolFlag(persistentFlagSet, definitions.AssumeYes, defaults.AssumeYes)
}

func bindBoolFlag(flagSet *pflag.FlagSet, definition ExecutionFlagDefinition, defaultValue bool) {
	if !definition.Enabled || len(definition.Name) == 0 {
		return
	}
	if flagSet.Lookup(definition.Name) != nil {
		return
	}

	var target bool
	AddToggleFlag(flagSet, &target, definition.Name, definition.Shorthand, defaultValue, definition.Usage)
}
