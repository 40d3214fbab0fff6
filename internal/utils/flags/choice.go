package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choiceTypeNameConstant            = "string"
	choicePlaceholderTemplateConstant = "<%s>"
	choiceSeparatorConstant           = "|"
	choiceUsageTemplateConstant       = "`%s` %s"
	choiceRejectedTemplateConstant    = "invalid value %q: expected one of %s"
)

type choiceValue struct {
	target  *string
	choices []string
}

// AddChoiceFlag registers a string flag restricted to choices. Values are matched case-insensitively and stored
// lower-cased. highlightedChoice is shown upper-cased in the usage text as the effective default.
func AddChoiceFlag(flagSet *pflag.FlagSet, target *string, name string, highlightedChoice string, choices []string, usage string) *pflag.Flag {
	if flagSet == nil || target == nil || len(name) == 0 {
		return nil
	}

	normalizedChoices := normalizeChoices(choices)
	flagSet.Var(&choiceValue{target: target, choices: normalizedChoices}, name, FormatChoiceUsage(highlightedChoice, normalizedChoices, usage))
	return flagSet.Lookup(name)
}

// FormatChoiceUsage builds usage text whose placeholder lists the choices with the highlighted one upper-cased.
func FormatChoiceUsage(highlightedChoice string, choices []string, description string) string {
	normalizedHighlight := strings.ToLower(strings.TrimSpace(highlightedChoice))
	displayedChoices := make([]string, 0, len(choices))
	for _, choice := range normalizeChoices(choices) {
		if choice == normalizedHighlight {
			choice = strings.ToUpper(choice)
		}
		displayedChoices = append(displayedChoices, choice)
	}

	placeholder := fmt.Sprintf(choicePlaceholderTemplateConstant, strings.Join(displayedChoices, choiceSeparatorConstant))
	return strings.TrimSpace(fmt.Sprintf(choiceUsageTemplateConstant, placeholder, strings.TrimSpace(description)))
}

func (value *choiceValue) Set(rawValue string) error {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, choice := range value.choices {
		if choice == normalizedValue {
			*value.target = normalizedValue
			return nil
		}
	}
	return fmt.Errorf(choiceRejectedTemplateConstant, rawValue, strings.Join(value.choices, choiceSeparatorConstant))
}

func (value *choiceValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return *value.target
}

func (value *choiceValue) Type() string {
	return choiceTypeNameConstant
}

func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		normalizedChoice := strings.ToLower(strings.TrimSpace(choice))
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, duplicate := seen[normalizedChoice]; duplicate {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		normalized = append(normalized, normalizedChoice)
	}
	return normalized
}
