package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/hubx/internal/hubapi"
)

const (
	clientNotConfiguredMessage  = "repository service client not configured"
	planCreateMessage           = "PLAN-CREATE: %s (%s)\n"
	planDeleteMessage           = "PLAN-DELETE: %s (%s)\n"
	planDuplicateMessage        = "PLAN-DUPLICATE: %s → %s\n"
	planMoveMessage             = "PLAN-MOVE: %s → %s (%s)\n"
	planSettingsMessage         = "PLAN-SETTINGS: %s (%s)\n"
	createdMessage              = "Created %s\n"
	deletedMessage              = "Deleted %s (%s)\n"
	duplicatedMessage           = "Duplicated %s → %s\n"
	movedMessage                = "Moved %s → %s\n"
	settingsAppliedMessage      = "Updated settings for %s\n"
	skipMessage                 = "SKIP: %s\n"
	deletePromptTemplate        = "Delete repository '%s' (%s)? This cannot be undone. [y/N] "
	movePromptTemplate          = "Move repository '%s' → '%s'? [y/N] "
	logMessageRepositoryCreated = "repository created"
	logMessageRepositoryDeleted = "repository deleted"
	logMessageSpaceDuplicated   = "space duplicated"
	logMessageRepositoryMoved   = "repository moved"
	logMessageSettingsUpdated   = "repository settings updated"
	logFieldRepositoryConstant  = "repository"
	logFieldRepositoryTypeField = "repository_type"
	logFieldDestinationConstant = "destination"
	logFieldRepositoryURLField  = "repository_url"
)

// ErrClientNotConfigured indicates the service was constructed without a hub client.
var ErrClientNotConfigured = errors.New(clientNotConfiguredMessage)

// Service coordinates repository lifecycle operations.
type Service struct {
	logger   *zap.Logger
	client   Client
	prompter ConfirmationPrompter
	reporter Reporter
}

// NewService validates dependencies and constructs a repository service.
func NewService(logger *zap.Logger, client Client, prompter ConfirmationPrompter, reporter Reporter) (*Service, error) {
	if client == nil {
		return nil, ErrClientNotConfigured
	}

	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	resolvedReporter := reporter
	if resolvedReporter == nil {
		resolvedReporter = NewWriterReporter(nil)
	}

	return &Service{logger: resolvedLogger, client: client, prompter: prompter, reporter: resolvedReporter}, nil
}

// CreateOptions configures repository creation.
type CreateOptions struct {
	Reference       hubapi.RepositoryReference
	Type            hubapi.RepositoryType
	Private         bool
	SDK             string
	ResourceGroupID string
	ExistOK         bool
	DryRun          bool
}

// Create provisions a repository and reports the resulting URL.
func (service *Service) Create(executionContext context.Context, options CreateOptions) error {
	if options.DryRun {
		service.reporter.Printf(planCreateMessage, options.Reference.String(), options.Type.PathSegment())
		return nil
	}

	repositoryURL, createError := service.client.CreateRepository(executionContext, hubapi.CreateRepositoryOptions{
		Reference:       options.Reference,
		Type:            options.Type,
		Private:         options.Private,
		SDK:             options.SDK,
		ResourceGroupID: options.ResourceGroupID,
		ExistOK:         options.ExistOK,
	})
	if createError != nil {
		return createError
	}

	service.logger.Info(logMessageRepositoryCreated,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldRepositoryTypeField, string(options.Type)),
		zap.String(logFieldRepositoryURLField, string(repositoryURL)),
	)
	service.reporter.Printf(createdMessage, string(repositoryURL))

	return nil
}

// DeleteOptions configures repository deletion.
type DeleteOptions struct {
	Reference hubapi.RepositoryReference
	Type      hubapi.RepositoryType
	MissingOK bool
	DryRun    bool
	AssumeYes bool
}

// Delete removes a repository after confirmation. Deletion is irreversible.
func (service *Service) Delete(executionContext context.Context, options DeleteOptions) error {
	if options.DryRun {
		service.reporter.Printf(planDeleteMessage, options.Reference.String(), options.Type.PathSegment())
		return nil
	}

	if !options.AssumeYes && service.prompter != nil {
		prompt := fmt.Sprintf(deletePromptTemplate, options.Reference.String(), options.Type.PathSegment())
		confirmed, promptError := service.prompter.Confirm(prompt)
		if promptError != nil {
			return promptError
		}
		if !confirmed {
			service.reporter.Printf(skipMessage, options.Reference.String())
			return nil
		}
	}

	deleteError := service.client.DeleteRepository(executionContext, hubapi.DeleteRepositoryOptions{
		Reference: options.Reference,
		Type:      options.Type,
		MissingOK: options.MissingOK,
	})
	if deleteError != nil {
		return deleteError
	}

	service.logger.Info(logMessageRepositoryDeleted,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldRepositoryTypeField, string(options.Type)),
	)
	service.reporter.Printf(deletedMessage, options.Reference.String(), options.Type.PathSegment())

	return nil
}

// DuplicateOptions configures space duplication.
type DuplicateOptions struct {
	Source      hubapi.RepositoryReference
	Destination hubapi.RepositoryReference
	Private     *bool
	DryRun      bool
}

// Duplicate copies a space repository and reports the new URL.
func (service *Service) Duplicate(executionContext context.Context, options DuplicateOptions) error {
	if options.DryRun {
		service.reporter.Printf(planDuplicateMessage, options.Source.String(), options.Destination.String())
		return nil
	}

	repositoryURL, duplicateError := service.client.DuplicateSpace(executionContext, hubapi.DuplicateSpaceOptions{
		Source:      options.Source,
		Destination: options.Destination,
		Private:     options.Private,
	})
	if duplicateError != nil {
		return duplicateError
	}

	service.logger.Info(logMessageSpaceDuplicated,
		zap.String(logFieldRepositoryConstant, options.Source.String()),
		zap.String(logFieldDestinationConstant, options.Destination.String()),
		zap.String(logFieldRepositoryURLField, string(repositoryURL)),
	)
	service.reporter.Printf(duplicatedMessage, options.Source.String(), string(repositoryURL))

	return nil
}

// MoveOptions configures repository transfers.
type MoveOptions struct {
	From      hubapi.RepositoryReference
	To        hubapi.RepositoryReference
	Type      hubapi.RepositoryType
	DryRun    bool
	AssumeYes bool
}

// Move transfers a repository identifier after confirmation.
func (service *Service) Move(executionContext context.Context, options MoveOptions) error {
	if options.DryRun {
		service.reporter.Printf(planMoveMessage, options.From.String(), options.To.String(), options.Type.PathSegment())
		return nil
	}

	if !options.AssumeYes && service.prompter != nil {
		prompt := fmt.Sprintf(movePromptTemplate, options.From.String(), options.To.String())
		confirmed, promptError := service.prompter.Confirm(prompt)
		if promptError != nil {
			return promptError
		}
		if !confirmed {
			service.reporter.Printf(skipMessage, options.From.String())
			return nil
		}
	}

	moveError := service.client.MoveRepository(executionContext, hubapi.MoveRepositoryOptions{
		From: options.From,
		To:   options.To,
		Type: options.Type,
	})
	if moveError != nil {
		return moveError
	}

	service.logger.Info(logMessageRepositoryMoved,
		zap.String(logFieldRepositoryConstant, options.From.String()),
		zap.String(logFieldDestinationConstant, options.To.String()),
	)
	service.reporter.Printf(movedMessage, options.From.String(), options.To.String())

	return nil
}

// SettingsOptions configures visibility and gating updates.
type SettingsOptions struct {
	Reference  hubapi.RepositoryReference
	Type       hubapi.RepositoryType
	Visibility *hubapi.Visibility
	Gated      *hubapi.GatedMode
	DryRun     bool
}

// UpdateSettings applies the requested settings fields.
func (service *Service) UpdateSettings(executionContext context.Context, options SettingsOptions) error {
	if options.DryRun {
		service.reporter.Printf(planSettingsMessage, options.Reference.String(), options.Type.PathSegment())
		return nil
	}

	settingsError := service.client.UpdateRepositorySettings(executionContext, hubapi.UpdateSettingsOptions{
		Reference:  options.Reference,
		Type:       options.Type,
		Visibility: options.Visibility,
		Gated:      options.Gated,
	})
	if settingsError != nil {
		return settingsError
	}

	service.logger.Info(logMessageSettingsUpdated,
		zap.String(logFieldRepositoryConstant, options.Reference.String()),
		zap.String(logFieldRepositoryTypeField, string(options.Type)),
	)
	service.reporter.Printf(settingsAppliedMessage, options.Reference.String())

	return nil
}
