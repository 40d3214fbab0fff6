package browser

import (
	"strings"

	"github.com/temirov/scriptdash/internal/console"
	pathutils "github.com/temirov/scriptdash/internal/utils/path"
)

const (
	defaultBaseDirectoryConstant   = "."
	defaultScriptExtensionConstant = ".py"
	defaultFirstUnitKeyConstant    = "1"
	defaultFirstUnitNameConstant   = "Unidad 1"
	defaultSecondUnitKeyConstant   = "2"
	defaultSecondUnitNameConstant  = "Unidad 2"
)

// Unit maps a main menu key to a directory of course material.
type Unit struct {
	Key       string `mapstructure:"key"`
	Name      string `mapstructure:"name"`
	Directory string `mapstructure:"directory"`
}

// Configuration captures the dashboard layout.
type Configuration struct {
	BaseDirectory    string `mapstructure:"base_directory"`
	ScriptExtension  string `mapstructure:"script_extension"`
	PauseAfterAction bool   `mapstructure:"pause_after_action"`
	Units            []Unit `mapstructure:"units"`
}

// DefaultConfiguration returns the two-unit layout rooted at the working directory.
func DefaultConfiguration() Configuration {
	return Configuration{
		BaseDirectory:    defaultBaseDirectoryConstant,
		ScriptExtension:  defaultScriptExtensionConstant,
		PauseAfterAction: true,
		Units: []Unit{
			{Key: defaultFirstUnitKeyConstant, Name: defaultFirstUnitNameConstant, Directory: defaultFirstUnitNameConstant},
			{Key: defaultSecondUnitKeyConstant, Name: defaultSecondUnitNameConstant, Directory: defaultSecondUnitNameConstant},
		},
	}
}

// Sanitize trims values, expands the home directory in paths, and upper-cases unit keys. Units without a key,
// units reusing a reserved or earlier key, and units without a name or directory are dropped.
func (configuration Configuration) Sanitize() Configuration {
	homeExpander := pathutils.NewHomeExpander()
	sanitized := configuration

	sanitized.BaseDirectory = homeExpander.Expand(strings.TrimSpace(configuration.BaseDirectory))
	if len(sanitized.BaseDirectory) == 0 {
		sanitized.BaseDirectory = defaultBaseDirectoryConstant
	}
	sanitized.ScriptExtension = strings.TrimSpace(configuration.ScriptExtension)
	if len(sanitized.ScriptExtension) == 0 {
		sanitized.ScriptExtension = defaultScriptExtensionConstant
	}

	seenKeys := map[string]struct{}{
		tasksKeyConstant: {},
		exitKeyConstant:  {},
	}
	sanitized.Units = make([]Unit, 0, len(configuration.Units))
	for _, unit := range configuration.Units {
		key := console.NormalizeKey(unit.Key)
		name := strings.TrimSpace(unit.Name)
		directory := strings.TrimSpace(unit.Directory)
		if len(directory) == 0 {
			directory = name
		}
		if len(name) == 0 {
			name = directory
		}
		if len(key) == 0 || len(directory) == 0 {
			continue
		}
		if _, duplicate := seenKeys[key]; duplicate {
			continue
		}
		seenKeys[key] = struct{}{}
		sanitized.Units = append(sanitized.Units, Unit{Key: key, Name: name, Directory: directory})
	}

	return sanitized
}

// UnitDirectory resolves the unit directory against the base directory.
func (configuration Configuration) UnitDirectory(unit Unit) string {
	return pathutils.NewHomeExpander().ResolveWithin(configuration.BaseDirectory, unit.Directory)
}
