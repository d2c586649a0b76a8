package references

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/hubx/internal/hubapi"
)

const (
	clientNotConfiguredMessage  = "references service client not configured"
	planBranchCreateMessage     = "PLAN-BRANCH-CREATE: %s in %s\n"
	planBranchDeleteMessage     = "PLAN-BRANCH-DELETE: %s in %s\n"
	planTagCreateMessage        = "PLAN-TAG-CREATE: %s in %s\n"
	planTagDeleteMessage        = "PLAN-TAG-DELETE: %s in %s\n"
	branchDeletePromptTemplate  = "Delete branch '%s' in %s? [y/N] "
	tagDeletePromptTemplate     = "Delete tag '%s' in %s? [y/N] "
	skipMessage                 = "SKIP: %s\n"
	branchCreatedMessage        = "Created branch %s in %s\n"
	branchDeletedMessage        = "Deleted branch %s in %s\n"
	tagCreatedMessage           = "Created tag %s in %s\n"
	tagDeletedMessage           = "Deleted tag %s in %s\n"
	logMessageBranchCreated     = "branch created"
	logMessageBranchDeleted     = "branch deleted"
	logMessageTagCreated        = "tag created"
	logMessageTagDeleted        = "tag deleted"
	logFieldRepositoryConstant  = "repository"
	logFieldBranchNameConstant  = "branch"
	logFieldTagNameConstant     = "tag"
	logFieldRevisionConstant    = "revision"
	csvHeaderKindConstant       = "KIND"
	csvHeaderNameConstant       = "NAME"
	csvHeaderTargetConstant     = "TARGET_COMMIT"
	referenceKindBranchConstant = "branch"
	referenceKindTagConstant    = "tag"
)

// ErrClientNotConfigured indicates the service was constructed without a hub client.
var ErrClientNotConfigured = errors.New(clientNotConfiguredMessage)

// Client exposes the subset of hub API operations used by reference services.
type Client interface {
	CreateBranch(executionContext context.Context, options hubapi.BranchOptions) error
	DeleteBranch(executionContext context.Context, options hubapi.BranchOptions) error
	CreateTag(executionContext context.Context, options hubapi.TagOptions) error
	DeleteTag(executionContext context.Context, options hubapi.TagOptions) error
	ListRepositoryReferences(executionContext context.Context, options hubapi.ListReferencesOptions) (hubapi.RepositoryReferences, error)
}

// Reporter emits formatted service events to an underlying sink.
type Reporter interface {
	Printf(format string, args ...any)
}

// ConfirmationPrompter collects user confirmations prior to destructive actions.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// Service coordinates branch and tag operations.
type Service struct {
	logger       *zap.Logger
	client       Client
	reporter     Reporter
	prompter     ConfirmationPrompter
	outputWriter io.Writer
}

// NewService validates dependencies and constructs a references service. A nil
// output writer defaults to standard output.
func NewService(logger *zap.Logger, client Client, reporter Reporter, prompter ConfirmationPrompter, outputWriter io.Writer) (*Service, error) {
	if client == nil {
		return nil, ErrClientNotConfigured
	}

	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	resolvedWriter := outputWriter
	if resolvedWriter == nil {
		resolvedWriter = os.Stdout
	}

	return &Service{logger: resolvedLogger, client: client, reporter: reporter, prompter: prompter, outputWriter: resolvedWriter}, nil
}

func (service *Service) report(format string, args ...any) {
	if service.reporter != nil {
		service.reporter.Printf(format, args...)
	}
}

// BranchOptions configures branch creation and deletion.
type BranchOptions struct {
	Reference hubapi.RepositoryReference
	Type      hubapi.RepositoryType
	Branch    string
	Revision  string
	ExistOK   bool
	MissingOK bool
	DryRun    bool
	AssumeYes bool
}

// CreateBranch creates a branch, optionally from a starting revision.
func (service *Service) CreateBranch(executionContext context.Context, options BranchOptions) error {
	if options.DryRun {
		service.report(planBranchCreateMessage, options.Branch, options.Reference.String())
		return nil
	}

	creationError := service.client.CreateBranch(executionContext, hubapi.BranchOptions{
		Reference: options.Reference,
		Type:      options.Type,
		Branch:    options.Branch,
		Revision:  options.Revision,
		ExistOK:   options.ExistOK,
	})
	if creationError != nil {
		return creationError
	}

	service.logger.Info(logMessageBranchCreated,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldBranchNameConstant, options.Branch),
		zap.String(logFieldRevisionConstant, options.Revision),
	)
	service.report(branchCreatedMessage, options.Branch, options.Reference.String())

	return nil
}

// DeleteBranch removes a branch after confirmation.
func (service *Service) DeleteBranch(executionContext context.Context, options BranchOptions) error {
	if options.DryRun {
		service.report(planBranchDeleteMessage, options.Branch, options.Reference.String())
		return nil
	}

	if !options.AssumeYes && service.prompter != nil {
		prompt := fmt.Sprintf(branchDeletePromptTemplate, options.Branch, options.Reference.String())
		confirmed, promptError := service.prompter.Confirm(prompt)
		if promptError != nil {
			return promptError
		}
		if !confirmed {
			service.report(skipMessage, options.Branch)
			return nil
		}
	}

	deletionError := service.client.DeleteBranch(executionContext, hubapi.BranchOptions{
		Reference: options.Reference,
		Type:      options.Type,
		Branch:    options.Branch,
		MissingOK: options.MissingOK,
	})
	if deletionError != nil {
		return deletionError
	}

	service.logger.Info(logMessageBranchDeleted,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldBranchNameConstant, options.Branch),
	)
	service.report(branchDeletedMessage, options.Branch, options.Reference.String())

	return nil
}

// TagOptions configures tag creation and deletion.
type TagOptions struct {
	Reference hubapi.RepositoryReference
	Type      hubapi.RepositoryType
	Tag       string
	Revision  string
	Message   string
	ExistOK   bool
	MissingOK bool
	DryRun    bool
	AssumeYes bool
}

// CreateTag tags a revision. An empty revision tags the default branch head.
func (service *Service) CreateTag(executionContext context.Context, options TagOptions) error {
	if options.DryRun {
		service.report(planTagCreateMessage, options.Tag, options.Reference.String())
		return nil
	}

	creationError := service.client.CreateTag(executionContext, hubapi.TagOptions{
		Reference: options.Reference,
		Type:      options.Type,
		Tag:       options.Tag,
		Revision:  options.Revision,
		Message:   options.Message,
		ExistOK:   options.ExistOK,
	})
	if creationError != nil {
		return creationError
	}

	service.logger.Info(logMessageTagCreated,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldTagNameConstant, options.Tag),
		zap.String(logFieldRevisionConstant, options.Revision),
	)
	service.report(tagCreatedMessage, options.Tag, options.Reference.String())

	return nil
}

// DeleteTag removes a tag after confirmation.
func (service *Service) DeleteTag(executionContext context.Context, options TagOptions) error {
	if options.DryRun {
		service.report(planTagDeleteMessage, options.Tag, options.Reference.String())
		return nil
	}

	if !options.AssumeYes && service.prompter != nil {
		prompt := fmt.Sprintf(tagDeletePromptTemplate, options.Tag, options.Reference.String())
		confirmed, promptError := service.prompter.Confirm(prompt)
		if promptError != nil {
			return promptError
		}
		if !confirmed {
			service.report(skipMessage, options.Tag)
			return nil
		}
	}

	deletionError := service.client.DeleteTag(executionContext, hubapi.TagOptions{
		Reference: options.Reference,
		Type:      options.Type,
		Tag:       options.Tag,
		MissingOK: options.MissingOK,
	})
	if deletionError != nil {
		return deletionError
	}

	service.logger.Info(logMessageTagDeleted,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldTagNameConstant, options.Tag),
	)
	service.report(tagDeletedMessage, options.Tag, options.Reference.String())

	return nil
}

// ListOptions configures reference listings.
type ListOptions struct {
	Reference hubapi.RepositoryReference
	Type      hubapi.RepositoryType
}

// List retrieves the branches and tags of a repository and writes them as CSV
// rows with a header.
func (service *Service) List(executionContext context.Context, options ListOptions) error {
	repositoryReferences, listError := service.client.ListRepositoryReferences(executionContext, hubapi.ListReferencesOptions{
		Reference: options.Reference,
		Type:      options.Type,
	})
	if listError != nil {
		return listError
	}

	csvWriter := csv.NewWriter(service.outputWriter)
	header := []string{csvHeaderKindConstant, csvHeaderNameConstant, csvHeaderTargetConstant}
	if writeError := csvWriter.Write(header); writeError != nil {
		return writeError
	}

	for _, branchReference := range repositoryReferences.Branches {
		row := []string{referenceKindBranchConstant, branchReference.Name, branchReference.TargetCommit}
		if writeError := csvWriter.Write(row); writeError != nil {
			return writeError
		}
	}
	for _, tagReference := range repositoryReferences.Tags {
		row := []string{referenceKindTagConstant, tagReference.Name, tagReference.TargetCommit}
		if writeError := csvWriter.Write(row); writeError != nil {
			return writeError
		}
	}

	csvWriter.Flush()

	return csvWriter.Error()
}
