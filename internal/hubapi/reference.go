package hubapi

import (
	"errors"
	"strings"
)

const (
	referenceSeparatorConstant                = "/"
	referenceEmptyErrorMessageConstant        = "repository reference must be provided"
	referenceSegmentsErrorMessageConstant     = "repository reference must use the namespace/name form"
	referenceEmptySegmentErrorMessageConstant = "repository reference segments must not be empty"
	referenceNamespaceMissingMessageConstant  = "repository reference requires an explicit namespace"
	referenceExpectedSegmentCountConstant     = 2
	referenceSingleSegmentCountConstant       = 1
)

// RepositoryReference identifies a repository by namespace and name. The
// namespace may be empty, in which case the hub resolves it to the
// authenticated account.
type RepositoryReference struct {
	Namespace string
	Name      string
}

// ParseRepositoryReference interprets `name` or `namespace/name` identifiers.
func ParseRepositoryReference(referenceValue string) (RepositoryReference, error) {
	trimmedValue := strings.TrimSpace(referenceValue)
	if len(trimmedValue) == 0 {
		return RepositoryReference{}, errors.New(referenceEmptyErrorMessageConstant)
	}

	segments := strings.Split(trimmedValue, referenceSeparatorConstant)
	switch len(segments) {
	case referenceSingleSegmentCountConstant:
		name := strings.TrimSpace(segments[0])
		if len(name) == 0 {
			return RepositoryReference{}, errors.New(referenceEmptySegmentErrorMessageConstant)
		}
		return RepositoryReference{Name: name}, nil
	case referenceExpectedSegmentCountConstant:
		namespace := strings.TrimSpace(segments[0])
		name := strings.TrimSpace(segments[1])
		if len(namespace) == 0 || len(name) == 0 {
			return RepositoryReference{}, errors.New(referenceEmptySegmentErrorMessageConstant)
		}
		return RepositoryReference{Namespace: namespace, Name: name}, nil
	default:
		return RepositoryReference{}, errors.New(referenceSegmentsErrorMessageConstant)
	}
}

// IsQualified reports whether the reference carries an explicit namespace.
func (reference RepositoryReference) IsQualified() bool {
	return len(strings.TrimSpace(reference.Namespace)) > 0 && len(strings.TrimSpace(reference.Name)) > 0
}

// String renders the canonical identifier form.
func (reference RepositoryReference) String() string {
	if len(reference.Namespace) == 0 {
		return reference.Name
	}
	return reference.Namespace + referenceSeparatorConstant + reference.Name
}

// RequireQualified returns an error when the namespace is absent.
func (reference RepositoryReference) RequireQualified() error {
	if !reference.IsQualified() {
		return errors.New(referenceNamespaceMissingMessageConstant)
	}
	return nil
}
