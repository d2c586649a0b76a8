package hubapi

import (
	"fmt"
	"strings"
)

const (
	repositoryTypeModelValueConstant           RepositoryType = "model"
	repositoryTypeDatasetValueConstant         RepositoryType = "dataset"
	repositoryTypeSpaceValueConstant           RepositoryType = "space"
	modelsPathSegmentConstant                                 = "models"
	datasetsPathSegmentConstant                               = "datasets"
	spacesPathSegmentConstant                                 = "spaces"
	repositoryTypeInvalidTemplateConstant                     = "repository type %q is not supported"
)

// RepositoryType enumerates the repository kinds hosted on the hub.
type RepositoryType string

// ModelRepositoryType identifies model repositories, the hub default.
const ModelRepositoryType RepositoryType = repositoryTypeModelValueConstant

// DatasetRepositoryType identifies dataset repositories.
const DatasetRepositoryType RepositoryType = repositoryTypeDatasetValueConstant

// SpaceRepositoryType identifies space repositories.
const SpaceRepositoryType RepositoryType = repositoryTypeSpaceValueConstant

// ParseRepositoryType normalizes textual repository type values. Empty input
// resolves to the model type.
func ParseRepositoryType(repositoryTypeValue string) (RepositoryType, error) {
	trimmedValue := strings.TrimSpace(repositoryTypeValue)
	if len(trimmedValue) == 0 {
		return ModelRepositoryType, nil
	}

	lowerCasedValue := strings.ToLower(trimmedValue)
	switch RepositoryType(lowerCasedValue) {
	case ModelRepositoryType:
		return ModelRepositoryType, nil
	case DatasetRepositoryType:
		return DatasetRepositoryType, nil
	case SpaceRepositoryType:
		return SpaceRepositoryType, nil
	default:
		return "", fmt.Errorf(repositoryTypeInvalidTemplateConstant, repositoryTypeValue)
	}
}

// PathSegment resolves the REST API segment for the repository type.
func (repositoryType RepositoryType) PathSegment() string {
	switch repositoryType {
	case DatasetRepositoryType:
		return datasetsPathSegmentConstant
	case SpaceRepositoryType:
		return spacesPathSegmentConstant
	default:
		return modelsPathSegmentConstant
	}
}
