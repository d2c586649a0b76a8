package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue               = "true"
	toggleFalseCanonicalValue              = "false"
	toggleParseErrorTemplate               = "invalid toggle value %q"
	toggleArgumentTruePlaceholderConstant  = "<YES|no>"
	toggleArgumentFalsePlaceholderConstant = "<yes|NO>"
	toggleFlagTypeName                     = "bool"
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {},
		"yes":                    {},
		"on":                     {},
		"1":                      {},
		"t":                      {},
		"y":                      {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {},
		"no":                      {},
		"off":                     {},
		"0":                       {},
		"f":                       {},
		"n":                       {},
	}
)

// AddToggleFlag registers a boolean toggle flag that accepts yes/no style values.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil {
		return
	}
	if len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	if len(shorthand) > 0 {
		flagSet.VarP(toggleValue, name, shorthand, usage)
	} else {
		flagSet.Var(toggleValue, name, usage)
	}

	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueCanonicalValue
	flag.Usage = formatToggleUsage(usage, defaultValue)
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleArgumentFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleArgumentTruePlaceholderConstant
	}
	trimmed := strings.TrimSpace(description)
	if len(trimmed) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmed)
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}

	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil {
		return toggleFalseCanonicalValue
	}
	if value.currentValue {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return toggleFlagTypeName
}

func parseToggleValue(rawValue string) (bool, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValue
	}

	normalizedValue := strings.ToLower(trimmedValue)
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}

	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}
