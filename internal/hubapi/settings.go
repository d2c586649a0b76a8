package hubapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	visibilityPublicValueConstant      Visibility = "public"
	visibilityPrivateValueConstant     Visibility = "private"
	visibilityInvalidTemplateConstant             = "visibility %q is not supported"
	gatedModeDisabledValueConstant     GatedMode  = "disabled"
	gatedModeManualValueConstant       GatedMode  = "manual"
	gatedModeAutoValueConstant         GatedMode  = "auto"
	gatedModeInvalidTemplateConstant              = "gated mode %q is not supported"
)

// Visibility enumerates the repository visibility states.
type Visibility string

// PublicVisibility marks repositories readable by anyone.
const PublicVisibility Visibility = visibilityPublicValueConstant

// PrivateVisibility marks repositories readable only by their owners.
const PrivateVisibility Visibility = visibilityPrivateValueConstant

// ParseVisibility normalizes textual visibility values.
func ParseVisibility(visibilityValue string) (Visibility, error) {
	lowerCasedValue := strings.ToLower(strings.TrimSpace(visibilityValue))
	switch Visibility(lowerCasedValue) {
	case PublicVisibility:
		return PublicVisibility, nil
	case PrivateVisibility:
		return PrivateVisibility, nil
	default:
		return "", fmt.Errorf(visibilityInvalidTemplateConstant, visibilityValue)
	}
}

// IsPrivate reports whether the visibility restricts read access.
func (visibility Visibility) IsPrivate() bool {
	return visibility == PrivateVisibility
}

// GatedMode enumerates the gated access states for a repository. Gated
// repositories require users to accept access terms before retrieving
// contents; manual mode routes requests through owner review while auto mode
// grants access immediately after acceptance.
type GatedMode string

// DisabledGatedMode turns gating off.
const DisabledGatedMode GatedMode = gatedModeDisabledValueConstant

// ManualGatedMode requires owner approval for each access request.
const ManualGatedMode GatedMode = gatedModeManualValueConstant

// AutoGatedMode grants access automatically once terms are accepted.
const AutoGatedMode GatedMode = gatedModeAutoValueConstant

// ParseGatedMode normalizes textual gated mode values.
func ParseGatedMode(gatedModeValue string) (GatedMode, error) {
	lowerCasedValue := strings.ToLower(strings.TrimSpace(gatedModeValue))
	switch GatedMode(lowerCasedValue) {
	case DisabledGatedMode:
		return DisabledGatedMode, nil
	case ManualGatedMode:
		return ManualGatedMode, nil
	case AutoGatedMode:
		return AutoGatedMode, nil
	default:
		return "", fmt.Errorf(gatedModeInvalidTemplateConstant, gatedModeValue)
	}
}

// MarshalJSON renders the wire form expected by the hub: gating is either the
// literal false or the mode name.
func (gatedMode GatedMode) MarshalJSON() ([]byte, error) {
	if gatedMode == DisabledGatedMode {
		return json.Marshal(false)
	}
	return json.Marshal(string(gatedMode))
}

// UnmarshalJSON accepts both the boolean and string wire forms.
func (gatedMode *GatedMode) UnmarshalJSON(data []byte) error {
	var booleanValue bool
	if unmarshalError := json.Unmarshal(data, &booleanValue); unmarshalError == nil {
		if booleanValue {
			*gatedMode = ManualGatedMode
		} else {
			*gatedMode = DisabledGatedMode
		}
		return nil
	}

	var textValue string
	if unmarshalError := json.Unmarshal(data, &textValue); unmarshalError != nil {
		return unmarshalError
	}

	parsedMode, parseError := ParseGatedMode(textValue)
	if parseError != nil {
		return parseError
	}

	*gatedMode = parsedMode
	return nil
}
