package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	httpClientNotConfiguredMessageConstant = "hub api http client not configured"
	baseURLNotConfiguredMessageConstant    = "hub api base url not configured"
	defaultUserAgentConstant               = "hubx"
	authorizationHeaderNameConstant        = "Authorization"
	authorizationHeaderTemplateConstant    = "Bearer %s"
	contentTypeHeaderNameConstant          = "Content-Type"
	userAgentHeaderNameConstant            = "User-Agent"
	jsonContentTypeConstant                = "application/json"
	operationErrorTemplateConstant         = "%s operation failed: %s"
	requestCreationErrorTemplateConstant   = "%s request construction failed: %s"
	payloadEncodingErrorTemplateConstant   = "%s payload encoding failed: %s"
	responseDecodingErrorTemplateConstant  = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant      = "%s: %s"
	apiErrorTemplateConstant               = "hub api responded with status %d: %s"
	apiErrorWithoutMessageTemplateConstant = "hub api responded with status %d"
	referenceFieldNameConstant             = "reference"
	sourceFieldNameConstant                = "source"
	destinationFieldNameConstant           = "destination"
	branchFieldNameConstant                = "branch"
	tagFieldNameConstant                   = "tag"
	settingsFieldNameConstant              = "settings"
	sdkFieldNameConstant                   = "sdk"
	repositoryTypeFieldNameConstant        = "type"
	sdkRequiredMessageConstant             = "space repositories require an sdk"
	sdkNotAllowedMessageConstant           = "sdk applies to space repositories only"
	duplicateSpaceTypeMessageConstant      = "duplication is supported for space repositories only"
	settingsEmptyMessageConstant           = "at least one settings field must be requested"
	requiredValueMessageConstant           = "value required"
	createRepositoryEndpointConstant       = "/api/repos/create"
	deleteRepositoryEndpointConstant       = "/api/repos/delete"
	moveRepositoryEndpointConstant         = "/api/repos/move"
	duplicateSpaceEndpointTemplateConstant = "/api/spaces/%s/%s/duplicate"
	settingsEndpointTemplateConstant       = "/api/%s/%s/%s/settings"
	branchEndpointTemplateConstant         = "/api/%s/%s/%s/branch/%s"
	tagEndpointTemplateConstant            = "/api/%s/%s/%s/tag/%s"
	referencesEndpointTemplateConstant     = "/api/%s/%s/%s/refs"
	logMessageRequestCompletedConstant     = "hub api request completed"
	logFieldOperationConstant              = "operation"
	logFieldMethodConstant                 = "method"
	logFieldPathConstant                   = "path"
	logFieldStatusConstant                 = "status"
	createRepositoryOperationNameConstant  = OperationName("CreateRepository")
	deleteRepositoryOperationNameConstant  = OperationName("DeleteRepository")
	duplicateSpaceOperationNameConstant    = OperationName("DuplicateSpace")
	moveRepositoryOperationNameConstant    = OperationName("MoveRepository")
	updateSettingsOperationNameConstant    = OperationName("UpdateRepositorySettings")
	createBranchOperationNameConstant      = OperationName("CreateBranch")
	deleteBranchOperationNameConstant      = OperationName("DeleteBranch")
	createTagOperationNameConstant         = OperationName("CreateTag")
	deleteTagOperationNameConstant         = OperationName("DeleteTag")
	listReferencesOperationNameConstant    = OperationName("ListRepositoryReferences")
)

// OperationName describes a named hub API workflow supported by the client.
type OperationName string

// HTTPClient abstracts request execution for testability.
type HTTPClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// Configuration captures the connection settings for the hub API.
type Configuration struct {
	BaseURL     string
	AccessToken string
	UserAgent   string
}

// Client issues repository management requests against the hub API.
type Client struct {
	logger        *zap.Logger
	httpClient    HTTPClient
	configuration Configuration
}

var (
	// ErrHTTPClientNotConfigured indicates the client was constructed without an HTTP client.
	ErrHTTPClientNotConfigured = errors.New(httpClientNotConfiguredMessageConstant)
	// ErrBaseURLNotConfigured indicates the client was constructed without a base URL.
	ErrBaseURLNotConfigured = errors.New(baseURLNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// APIError carries a non-success response from the hub.
type APIError struct {
	StatusCode int
	Message    string
}

// Error describes the API failure.
func (apiError APIError) Error() string {
	if len(apiError.Message) == 0 {
		return fmt.Sprintf(apiErrorWithoutMessageTemplateConstant, apiError.StatusCode)
	}
	return fmt.Sprintf(apiErrorTemplateConstant, apiError.StatusCode, apiError.Message)
}

// OperationError wraps request failures for hub API operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the failed operation.
func (operationError OperationError) Error() string {
	return fmt.Sprintf(operationErrorTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// NewClient validates dependencies and constructs a hub API client.
func NewClient(logger *zap.Logger, httpClient HTTPClient, configuration Configuration) (*Client, error) {
	if httpClient == nil {
		return nil, ErrHTTPClientNotConfigured
	}

	trimmedBaseURL := strings.TrimRight(strings.TrimSpace(configuration.BaseURL), referenceSeparatorConstant)
	if len(trimmedBaseURL) == 0 {
		return nil, ErrBaseURLNotConfigured
	}
	configuration.BaseURL = trimmedBaseURL

	if len(strings.TrimSpace(configuration.UserAgent)) == 0 {
		configuration.UserAgent = defaultUserAgentConstant
	}

	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	return &Client{logger: resolvedLogger, httpClient: httpClient, configuration: configuration}, nil
}

// RepositoryURL identifies a repository location reported by the hub.
type RepositoryURL string

// CreateRepositoryOptions configures CreateRepository requests.
type CreateRepositoryOptions struct {
	Reference       RepositoryReference
	Type            RepositoryType
	Private         bool
	SDK             string
	ResourceGroupID string
	ExistOK         bool
}

type createRepositoryPayload struct {
	Type            RepositoryType `json:"type"`
	Name            string         `json:"name"`
	Organization    string         `json:"organization,omitempty"`
	Private         bool           `json:"private"`
	SDK             string         `json:"sdk,omitempty"`
	ResourceGroupID string         `json:"resourceGroupId,omitempty"`
}

type repositoryURLResponse struct {
	URL string `json:"url"`
}

// CreateRepository provisions a repository and returns its URL.
func (client *Client) CreateRepository(executionContext context.Context, options CreateRepositoryOptions) (RepositoryURL, error) {
	if len(strings.TrimSpace(options.Reference.Name)) == 0 {
		return "", InvalidInputError{FieldName: referenceFieldNameConstant, Message: requiredValueMessageConstant}
	}
	if options.Type == SpaceRepositoryType && len(strings.TrimSpace(options.SDK)) == 0 {
		return "", InvalidInputError{FieldName: sdkFieldNameConstant, Message: sdkRequiredMessageConstant}
	}
	if options.Type != SpaceRepositoryType && len(strings.TrimSpace(options.SDK)) > 0 {
		return "", InvalidInputError{FieldName: sdkFieldNameConstant, Message: sdkNotAllowedMessageConstant}
	}

	payload := createRepositoryPayload{
		Type:            options.Type,
		Name:            options.Reference.Name,
		Organization:    options.Reference.Namespace,
		Private:         options.Private,
		SDK:             options.SDK,
		ResourceGroupID: options.ResourceGroupID,
	}

	var response repositoryURLResponse
	tolerated := noToleratedStatus
	if options.ExistOK {
		tolerated = http.StatusConflict
	}

	requestError := client.execute(executionContext, createRepositoryOperationNameConstant, http.MethodPost, createRepositoryEndpointConstant, payload, tolerated, &response)
	if requestError != nil {
		return "", requestError
	}

	return RepositoryURL(response.URL), nil
}

// DeleteRepositoryOptions configures DeleteRepository requests.
type DeleteRepositoryOptions struct {
	Reference RepositoryReference
	Type      RepositoryType
	MissingOK bool
}

type deleteRepositoryPayload struct {
	Type         RepositoryType `json:"type"`
	Name         string         `json:"name"`
	Organization string         `json:"organization,omitempty"`
}

// DeleteRepository removes a repository. The operation is irreversible on the
// hub side.
func (client *Client) DeleteRepository(executionContext context.Context, options DeleteRepositoryOptions) error {
	if len(strings.TrimSpace(options.Reference.Name)) == 0 {
		return InvalidInputError{FieldName: referenceFieldNameConstant, Message: requiredValueMessageConstant}
	}

	payload := deleteRepositoryPayload{
		Type:         options.Type,
		Name:         options.Reference.Name,
		Organization: options.Reference.Namespace,
	}

	tolerated := noToleratedStatus
	if options.MissingOK {
		tolerated = http.StatusNotFound
	}

	return client.execute(executionContext, deleteRepositoryOperationNameConstant, http.MethodDelete, deleteRepositoryEndpointConstant, payload, tolerated, nil)
}

// DuplicateSpaceOptions configures DuplicateSpace requests.
type DuplicateSpaceOptions struct {
	Source      RepositoryReference
	Destination RepositoryReference
	Private     *bool
}

type duplicateSpacePayload struct {
	Repository string `json:"repository,omitempty"`
	Private    *bool  `json:"private,omitempty"`
}

// DuplicateSpace copies a space repository into a new location and returns the
// new repository URL. The destination may omit its namespace to target the
// authenticated account.
func (client *Client) DuplicateSpace(executionContext context.Context, options DuplicateSpaceOptions) (RepositoryURL, error) {
	if qualificationError := options.Source.RequireQualified(); qualificationError != nil {
		return "", InvalidInputError{FieldName: sourceFieldNameConstant, Message: qualificationError.Error()}
	}

	payload := duplicateSpacePayload{Private: options.Private}
	if len(strings.TrimSpace(options.Destination.Name)) > 0 {
		payload.Repository = options.Destination.String()
	}

	endpointPath := fmt.Sprintf(duplicateSpaceEndpointTemplateConstant, options.Source.Namespace, options.Source.Name)

	var response repositoryURLResponse
	requestError := client.execute(executionContext, duplicateSpaceOperationNameConstant, http.MethodPost, endpointPath, payload, noToleratedStatus, &response)
	if requestError != nil {
		return "", requestError
	}

	return RepositoryURL(response.URL), nil
}

// MoveRepositoryOptions configures MoveRepository requests.
type MoveRepositoryOptions struct {
	From RepositoryReference
	To   RepositoryReference
	Type RepositoryType
}

type moveRepositoryPayload struct {
	FromRepository string         `json:"fromRepo"`
	ToRepository   string         `json:"toRepo"`
	Type           RepositoryType `json:"type"`
}

// MoveRepository transfers a repository identifier to a new namespace or
// name. Both references must be fully qualified; the hub rejects transfers
// between different owner kinds.
func (client *Client) MoveRepository(executionContext context.Context, options MoveRepositoryOptions) error {
	if qualificationError := options.From.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: sourceFieldNameConstant, Message: qualificationError.Error()}
	}
	if qualificationError := options.To.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: destinationFieldNameConstant, Message: qualificationError.Error()}
	}

	payload := moveRepositoryPayload{
		FromRepository: options.From.String(),
		ToRepository:   options.To.String(),
		Type:           options.Type,
	}

	return client.execute(executionContext, moveRepositoryOperationNameConstant, http.MethodPost, moveRepositoryEndpointConstant, payload, noToleratedStatus, nil)
}

// UpdateSettingsOptions configures UpdateRepositorySettings requests. Nil
// fields are left untouched on the hub.
type UpdateSettingsOptions struct {
	Reference  RepositoryReference
	Type       RepositoryType
	Visibility *Visibility
	Gated      *GatedMode
}

type updateSettingsPayload struct {
	Private *bool      `json:"private,omitempty"`
	Gated   *GatedMode `json:"gated,omitempty"`
}

// UpdateRepositorySettings toggles visibility and gated access.
func (client *Client) UpdateRepositorySettings(executionContext context.Context, options UpdateSettingsOptions) error {
	if qualificationError := options.Reference.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: referenceFieldNameConstant, Message: qualificationError.Error()}
	}
	if options.Visibility == nil && options.Gated == nil {
		return InvalidInputError{FieldName: settingsFieldNameConstant, Message: settingsEmptyMessageConstant}
	}

	payload := updateSettingsPayload{Gated: options.Gated}
	if options.Visibility != nil {
		privateValue := options.Visibility.IsPrivate()
		payload.Private = &privateValue
	}

	endpointPath := fmt.Sprintf(settingsEndpointTemplateConstant, options.Type.PathSegment(), options.Reference.Namespace, options.Reference.Name)

	return client.execute(executionContext, updateSettingsOperationNameConstant, http.MethodPut, endpointPath, payload, noToleratedStatus, nil)
}

// BranchOptions configures branch creation and deletion requests.
type BranchOptions struct {
	Reference RepositoryReference
	Type      RepositoryType
	Branch    string
	Revision  string
	ExistOK   bool
	MissingOK bool
}

type createBranchPayload struct {
	StartingPoint string `json:"startingPoint,omitempty"`
}

// CreateBranch creates a branch, optionally from a starting revision.
func (client *Client) CreateBranch(executionContext context.Context, options BranchOptions) error {
	if qualificationError := options.Reference.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: referenceFieldNameConstant, Message: qualificationError.Error()}
	}
	if len(strings.TrimSpace(options.Branch)) == 0 {
		return InvalidInputError{FieldName: branchFieldNameConstant, Message: requiredValueMessageConstant}
	}

	payload := createBranchPayload{StartingPoint: options.Revision}
	endpointPath := fmt.Sprintf(branchEndpointTemplateConstant, options.Type.PathSegment(), options.Reference.Namespace, options.Reference.Name, options.Branch)

	tolerated := noToleratedStatus
	if options.ExistOK {
		tolerated = http.StatusConflict
	}

	return client.execute(executionContext, createBranchOperationNameConstant, http.MethodPost, endpointPath, payload, tolerated, nil)
}

// DeleteBranch removes a branch.
func (client *Client) DeleteBranch(executionContext context.Context, options BranchOptions) error {
	if qualificationError := options.Reference.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: referenceFieldNameConstant, Message: qualificationError.Error()}
	}
	if len(strings.TrimSpace(options.Branch)) == 0 {
		return InvalidInputError{FieldName: branchFieldNameConstant, Message: requiredValueMessageConstant}
	}

	endpointPath := fmt.Sprintf(branchEndpointTemplateConstant, options.Type.PathSegment(), options.Reference.Namespace, options.Reference.Name, options.Branch)

	tolerated := noToleratedStatus
	if options.MissingOK {
		tolerated = http.StatusNotFound
	}

	return client.execute(executionContext, deleteBranchOperationNameConstant, http.MethodDelete, endpointPath, nil, tolerated, nil)
}

// TagOptions configures tag creation and deletion requests.
type TagOptions struct {
	Reference RepositoryReference
	Type      RepositoryType
	Tag       string
	Revision  string
	Message   string
	ExistOK   bool
	MissingOK bool
}

type createTagPayload struct {
	Tag     string `json:"tag"`
	Message string `json:"message,omitempty"`
}

// CreateTag tags a revision. An empty revision tags the default branch head.
func (client *Client) CreateTag(executionContext context.Context, options TagOptions) error {
	if qualificationError := options.Reference.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: referenceFieldNameConstant, Message: qualificationError.Error()}
	}
	if len(strings.TrimSpace(options.Tag)) == 0 {
		return InvalidInputError{FieldName: tagFieldNameConstant, Message: requiredValueMessageConstant}
	}

	revision := strings.TrimSpace(options.Revision)
	if len(revision) == 0 {
		revision = defaultRevisionConstant
	}

	payload := createTagPayload{Tag: options.Tag, Message: options.Message}
	endpointPath := fmt.Sprintf(tagEndpointTemplateConstant, options.Type.PathSegment(), options.Reference.Namespace, options.Reference.Name, revision)

	tolerated := noToleratedStatus
	if options.ExistOK {
		tolerated = http.StatusConflict
	}

	return client.execute(executionContext, createTagOperationNameConstant, http.MethodPost, endpointPath, payload, tolerated, nil)
}

// DeleteTag removes a tag.
func (client *Client) DeleteTag(executionContext context.Context, options TagOptions) error {
	if qualificationError := options.Reference.RequireQualified(); qualificationError != nil {
		return InvalidInputError{FieldName: referenceFieldNameConstant, Message: qualificationError.Error()}
	}
	if len(strings.TrimSpace(options.Tag)) == 0 {
		return InvalidInputError{FieldName: tagFieldNameConstant, Message: requiredValueMessageConstant}
	}

	endpointPath := fmt.Sprintf(tagEndpointTemplateConstant, options.Type.PathSegment(), options.Reference.Namespace, options.Reference.Name, options.Tag)

	tolerated := noToleratedStatus
	if options.MissingOK {
		tolerated = http.StatusNotFound
	}

	return client.execute(executionContext, deleteTagOperationNameConstant, http.MethodDelete, endpointPath, nil, tolerated, nil)
}

// ListReferencesOptions configures ListRepositoryReferences requests.
type ListReferencesOptions struct {
	Reference RepositoryReference
	Type      RepositoryType
}

// ListRepositoryReferences retrieves the branches and tags of a repository.
func (client *Client) ListRepositoryReferences(executionContext context.Context, options ListReferencesOptions) (RepositoryReferences, error) {
	if qualificationError := options.Reference.RequireQualified(); qualificationError != nil {
		return RepositoryReferences{}, InvalidInputError{FieldName: referenceFieldNameConstant, Message: qualificationError.Error()}
	}

	endpointPath := fmt.Sprintf(referencesEndpointTemplateConstant, options.Type.PathSegment(), options.Reference.Namespace, options.Reference.Name)

	var references RepositoryReferences
	requestError := client.execute(executionContext, listReferencesOperationNameConstant, http.MethodGet, endpointPath, nil, noToleratedStatus, &references)
	if requestError != nil {
		return RepositoryReferences{}, requestError
	}

	return references, nil
}

const (
	noToleratedStatus       = 0
	defaultRevisionConstant = "main"
)

type apiErrorResponse struct {
	Error string `json:"error"`
}

func (client *Client) execute(executionContext context.Context, operation OperationName, method string, endpointPath string, payload any, toleratedStatus int, decodeTarget any) error {
	var requestBody io.Reader
	if payload != nil {
		encodedPayload, encodingError := json.Marshal(payload)
		if encodingError != nil {
			return OperationError{Operation: operation, Cause: fmt.Errorf(payloadEncodingErrorTemplateConstant, operation, encodingError)}
		}
		requestBody = bytes.NewReader(encodedPayload)
	}

	requestURL := client.configuration.BaseURL + endpointPath
	request, requestError := http.NewRequestWithContext(executionContext, method, requestURL, requestBody)
	if requestError != nil {
		return OperationError{Operation: operation, Cause: fmt.Errorf(requestCreationErrorTemplateConstant, operation, requestError)}
	}

	request.Header.Set(userAgentHeaderNameConstant, client.configuration.UserAgent)
	if payload != nil {
		request.Header.Set(contentTypeHeaderNameConstant, jsonContentTypeConstant)
	}
	if len(client.configuration.AccessToken) > 0 {
		request.Header.Set(authorizationHeaderNameConstant, fmt.Sprintf(authorizationHeaderTemplateConstant, client.configuration.AccessToken))
	}

	response, executionError := client.httpClient.Do(request)
	if executionError != nil {
		return OperationError{Operation: operation, Cause: executionError}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}()

	client.logger.Debug(logMessageRequestCompletedConstant,
		zap.String(logFieldOperationConstant, string(operation)),
		zap.String(logFieldMethodConstant, method),
		zap.String(logFieldPathConstant, endpointPath),
		zap.Int(logFieldStatusConstant, response.StatusCode),
	)

	if response.StatusCode == toleratedStatus {
		return nil
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return OperationError{Operation: operation, Cause: decodeAPIError(response)}
	}

	if decodeTarget != nil {
		if decodingError := json.NewDecoder(response.Body).Decode(decodeTarget); decodingError != nil {
			return OperationError{Operation: operation, Cause: fmt.Errorf(responseDecodingErrorTemplateConstant, operation, decodingError)}
		}
	}

	return nil
}

func decodeAPIError(response *http.Response) APIError {
	apiError := APIError{StatusCode: response.StatusCode}

	var errorResponse apiErrorResponse
	if decodingError := json.NewDecoder(response.Body).Decode(&errorResponse); decodingError == nil {
		apiError.Message = strings.TrimSpace(errorResponse.Error)
	}

	return apiError
}
