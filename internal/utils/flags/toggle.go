package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValueConstant  = "true"
	toggleFalseCanonicalValueConstant = "false"
	toggleTypeNameConstant            = "bool"
	toggleParseErrorTemplateConstant  = "invalid toggle value %q"
	toggleUsageTemplateConstant       = "`%s` %s"
	toggleTruePlaceholderConstant     = "<SI|no>"
	toggleFalsePlaceholderConstant    = "<si|NO>"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"yes":   true,
	"y":     true,
	"si":    true,
	"sí":    true,
	"s":     true,
	"on":    true,
	"1":     true,
	"false": false,
	"no":    false,
	"n":     false,
	"off":   false,
	"0":     false,
}

type toggleValue struct {
	target *bool
}

// AddToggleFlag registers a boolean flag that also accepts yes/no answers in English and Spanish. A bare flag
// means true; explicit values use the --flag=value form.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) *pflag.Flag {
	if flagSet == nil || target == nil || len(name) == 0 {
		return nil
	}

	*target = defaultValue
	flagSet.Var(&toggleValue{target: target}, name, formatToggleUsage(usage, defaultValue))

	flag := flagSet.Lookup(name)
	flag.NoOptDefVal = toggleTrueCanonicalValueConstant
	return flag
}

// ParseToggle interprets a yes/no literal.
func ParseToggle(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}
	parsedValue, known := toggleLiterals[normalizedValue]
	if !known {
		return false, fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
	}
	return parsedValue, nil
}

func (value *toggleValue) Set(rawValue string) error {
	parsedValue, parseError := ParseToggle(rawValue)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedValue
	return nil
}

func (value *toggleValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return toggleFalseCanonicalValueConstant
	}
	return toggleTrueCanonicalValueConstant
}

func (value *toggleValue) Type() string {
	return toggleTypeNameConstant
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleTruePlaceholderConstant
	}
	return strings.TrimSpace(fmt.Sprintf(toggleUsageTemplateConstant, placeholder, strings.TrimSpace(description)))
}
