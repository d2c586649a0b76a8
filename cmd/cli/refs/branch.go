package refs

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/references"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	branchGroupUseConstant         = "branch"
	branchGroupShortDescription    = "Manage repository branches"
	branchGroupLongDescription     = "branch groups subcommands that create and delete branches of hub repositories."
	branchCreateUseConstant        = "create <namespace/name> <branch>"
	branchCreateShortDescription   = "Create a branch"
	branchCreateLongDescription    = "create adds a branch, optionally starting from a given revision."
	branchDeleteUseConstant        = "delete <namespace/name> <branch>"
	branchDeleteShortDescription   = "Delete a branch"
	branchDeleteLongDescription    = "delete removes a branch from a hub repository."
	branchExistOKFlagName          = "exist-ok"
	branchExistOKFlagDescription   = "Succeed when the branch already exists"
	branchMissingOKFlagName        = "missing-ok"
	branchMissingOKFlagDescription = "Succeed when the branch does not exist"
	branchArgumentCountConstant    = 2
)

// BranchCommandGroupBuilder assembles the branch command group.
type BranchCommandGroupBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
	PrompterFactory       shared.PrompterFactory
}

// Build constructs the branch command hierarchy.
func (builder *BranchCommandGroupBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   branchGroupUseConstant,
		Short: branchGroupShortDescription,
		Long:  branchGroupLongDescription,
	}

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagutils.DefaultExecutionFlagDefinitions())

	createCommand := &cobra.Command{
		Use:   branchCreateUseConstant,
		Short: branchCreateShortDescription,
		Long:  branchCreateLongDescription,
		Args:  cobra.ExactArgs(branchArgumentCountConstant),
		RunE:  builder.runCreate,
	}
	createCommand.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	createCommand.Flags().String(flagutils.RevisionFlagName, "", flagutils.RevisionFlagUsage)
	createCommand.Flags().Bool(branchExistOKFlagName, false, branchExistOKFlagDescription)
	command.AddCommand(createCommand)

	deleteCommand := &cobra.Command{
		Use:   branchDeleteUseConstant,
		Short: branchDeleteShortDescription,
		Long:  branchDeleteLongDescription,
		Args:  cobra.ExactArgs(branchArgumentCountConstant),
		RunE:  builder.runDelete,
	}
	deleteCommand.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	deleteCommand.Flags().Bool(branchMissingOKFlagName, false, branchMissingOKFlagDescription)
	command.AddCommand(deleteCommand)

	return command, nil
}

func (builder *BranchCommandGroupBuilder) runCreate(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	revision, _ := command.Flags().GetString(flagutils.RevisionFlagName)
	existOK, _ := command.Flags().GetBool(branchExistOKFlagName)

	configuration := resolveConfiguration(builder.ConfigurationProvider)
	logger := shared.ResolveLogger(builder.LoggerProvider)
	client, clientError := resolveClient(builder.ClientFactory, connectionSettings(configuration), logger)
	if clientError != nil {
		return clientError
	}

	service, serviceError := newReferencesService(command, logger, client, builder.PrompterFactory)
	if serviceError != nil {
		return serviceError
	}

	return service.CreateBranch(command.Context(), references.BranchOptions{
		Reference: reference,
		Type:      repositoryType,
		Branch:    arguments[1],
		Revision:  revision,
		ExistOK:   existOK,
		DryRun:    resolveDryRun(command, configuration),
	})
}

func (builder *BranchCommandGroupBuilder) runDelete(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	missingOK, _ := command.Flags().GetBool(branchMissingOKFlagName)

	configuration := resolveConfiguration(builder.ConfigurationProvider)
	logger := shared.ResolveLogger(builder.LoggerProvider)
	client, clientError := resolveClient(builder.ClientFactory, connectionSettings(configuration), logger)
	if clientError != nil {
		return clientError
	}

	service, serviceError := newReferencesService(command, logger, client, builder.PrompterFactory)
	if serviceError != nil {
		return serviceError
	}

	return service.DeleteBranch(command.Context(), references.BranchOptions{
		Reference: reference,
		Type:      repositoryType,
		Branch:    arguments[1],
		MissingOK: missingOK,
		DryRun:    resolveDryRun(command, configuration),
		AssumeYes: resolveAssumeYes(command, configuration),
	})
}
