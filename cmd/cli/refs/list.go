package refs

import (
	"github.com/spf13/cobra"

	"github.com/temirov/hubx/cmd/cli/shared"
	"github.com/temirov/hubx/internal/references"
	flagutils "github.com/temirov/hubx/internal/utils/flags"
)

const (
	refsGroupUseConstant      = "refs"
	refsGroupShortDescription = "Inspect repository references"
	refsGroupLongDescription  = "refs groups subcommands that inspect the git references of hub repositories."
	listUseConstant           = "list <namespace/name>"
	listShortDescription      = "List branches and tags"
	listLongDescription       = "list prints the branches and tags of a repository with their target commits."
)

// ListCommandGroupBuilder assembles the refs command group.
type ListCommandGroupBuilder struct {
	LoggerProvider        shared.LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ClientFactory         ClientFactory
}

// Build constructs the refs command hierarchy.
func (builder *ListCommandGroupBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   refsGroupUseConstant,
		Short: refsGroupShortDescription,
		Long:  refsGroupLongDescription,
	}

	listCommand := &cobra.Command{
		Use:   listUseConstant,
		Short: listShortDescription,
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.runList,
	}
	listCommand.Flags().String(flagutils.RepositoryTypeFlagName, "", repositoryTypeFlagUsage())
	command.AddCommand(listCommand)

	return command, nil
}

func (builder *ListCommandGroupBuilder) runList(command *cobra.Command, arguments []string) error {
	reference, referenceError := shared.ParseReferenceArgument(arguments[0])
	if referenceError != nil {
		return referenceError
	}

	repositoryType, typeError := repositoryTypeFromFlags(command)
	if typeError != nil {
		return typeError
	}

	configuration := resolveConfiguration(builder.ConfigurationProvider)
	logger := shared.ResolveLogger(builder.LoggerProvider)
	client, clientError := resolveClient(builder.ClientFactory, connectionSettings(configuration), logger)
	if clientError != nil {
		return clientError
	}

	service, serviceError := newReferencesService(command, logger, client, nil)
	if serviceError != nil {
		return serviceError
	}

	return service.List(command.Context(), references.ListOptions{
		Reference: reference,
		Type:      repositoryType,
	})
}
