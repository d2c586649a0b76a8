package refs

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/references"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	tagGroupUseConstant         = "tag"
	tagGroupShortDescription    = "Manage repository tags"
	tagGroupLongDescription     = "tag groups subcommands that create and delete tags of hub repositories."
	tagCreateUseConstant        = "create <namespace/name> <tag>"
	tagCreateShortDescription   = "Create a tag"
	tagCreateLongDescription    = "create tags a revision; without a revision the default branch head is tagged."
	tagDeleteUseConstant        = "delete <namespace/name> <tag>"
	tagDeleteShortDescription   = "Delete a tag"
	tagDeleteLongDescription    = "delete removes a tag from a hub repository."
	tagMessageFlagName          = "message"
	tagMessageFlagDescription   = "Message recorded with the tag"
	tagExistOKFlagName          = "exist-ok"
	tagExistOKFlagDescription   = "Succeed when the tag already exists"
	tagMissingOKFlagName        = "missing-ok"
	tagMissingOKFlagDescription = "Succeed when the tag does not exist"
	tagArgumentCountConstant    = 2
)

// TagCommandGroupBuilder assembles the tag command group.
type TagCommandGroupBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
	PrompterFactory       shared.PrompterFactory
}

// Build constructs the tag command hierarchy.
func (builder *TagCommandGroupBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   tagGroupUseConstant,
		Short: tagGroupShortDescription,
		Long:  tagGroupLongDescription,
	}

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagutils.DefaultExecutionFlagDefinitions())

	createCommand := &cobra.Command{
		Use:   tagCreateUseConstant,
		Short: tagCreateShortDescription,
		Long:  tagCreateLongDescription,
		Args:  cobra.ExactArgs(tagArgumentCountConstant),
		RunE:  builder.runCreate,
	}
	createCommand.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	createCommand.Flags().String(flagutils.RevisionFlagName, "", flagutils.RevisionFlagUsage)
	createCommand.Flags().String(tagMessageFlagName, "", tagMessageFlagDescription)
	createCommand.Flags().Bool(tagExistOKFlagName, false, tagExistOKFlagDescription)
	command.AddCommand(createCommand)

	deleteCommand := &cobra.Command{
		Use:   tagDeleteUseConstant,
		Short: tagDeleteShortDescription,
		Long:  tagDeleteLongDescription,
		Args:  cobra.ExactArgs(tagArgumentCountConstant),
		RunE:  builder.runDelete,
	}
	deleteCommand.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	deleteCommand.Flags().Bool(tagMissingOKFlagName, false, tagMissingOKFlagDescription)
	command.AddCommand(deleteCommand)

	return command, nil
}

func (builder *TagCommandGroupBuilder) runCreate(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	revision, _ := command.Flags().GetString(flagutils.RevisionFlagName)
	tagMessage, _ := command.Flags().GetString(tagMessageFlagName)
	existOK, _ := command.Flags().GetBool(tagExistOKFlagName)

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

	return service.CreateTag(command.Context(), references.TagOptions{
		Reference: reference,
		Type:      repositoryType,
		Tag:       arguments[1],
		Revision:  revision,
		Message:   tagMessage,
		ExistOK:   existOK,
		DryRun:    resolveDryRun(command, configuration),
	})
}

func (builder *TagCommandGroupBuilder) runDelete(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	missingOK, _ := command.Flags().GetBool(tagMissingOKFlagName)

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

	return service.DeleteTag(command.Context(), references.TagOptions{
		Reference: reference,
		Type:      repositoryType,
		Tag:       arguments[1],
		MissingOK: missingOK,
		DryRun:    resolveDryRun(command, configuration),
		AssumeYes: resolveAssumeYes(command, configuration),
	})
}
