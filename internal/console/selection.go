package console

import (
	"errors"
	"strconv"
	"strings"
)

const selectionNotNumericMessageConstant = "selection is not a number"

// ErrSelectionNotNumeric indicates a menu answer could not be read as an integer.
var ErrSelectionNotNumeric = errors.New(selectionNotNumericMessageConstant)

// ParseSelection reads a menu answer as an integer, ignoring surrounding whitespace.
func ParseSelection(input string) (int, error) {
	selection, parseError := strconv.Atoi(strings.TrimSpace(input))
	if parseError != nil {
		return 0, ErrSelectionNotNumeric
	}
	return selection, nil
}

// NormalizeKey trims a menu answer and upper-cases it for keyed menus.
func NormalizeKey(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}
