package repositories

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/temirov/hubx/internal/hubapi"
)

// Client exposes the subset of hub API operations used by repository services.
type Client interface {
	CreateRepository(executionContext context.Context, options hubapi.CreateRepositoryOptions) (hubapi.RepositoryURL, error)
	DeleteRepository(executionContext context.Context, options hubapi.DeleteRepositoryOptions) error
	DuplicateSpace(executionContext context.Context, options hubapi.DuplicateSpaceOptions) (hubapi.RepositoryURL, error)
	MoveRepository(executionContext context.Context, options hubapi.MoveRepositoryOptions) error
	UpdateRepositorySettings(executionContext context.Context, options hubapi.UpdateSettingsOptions) error
}

// ConfirmationPrompter collects user confirmations prior to destructive actions.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// Reporter emits formatted service events to an underlying sink.
type Reporter interface {
	Printf(format string, args ...any)
}

type writerReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a Reporter that writes to the provided io.Writer.
func NewWriterReporter(writer io.Writer) Reporter {
	if writer == nil || writer == io.Discard {
		writer = os.Stdout
	}
	return writerReporter{writer: writer}
}

func (reporter writerReporter) Printf(format string, args ...any) {
	if reporter.writer == nil {
		return
	}
	fmt.Fprintf(reporter.writer, format, args...)
}
