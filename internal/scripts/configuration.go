package scripts

import (
	"path/filepath"
	"strings"

	"github.com/temirov/scriptdash/internal/execshell"
)

const (
	windowsOperatingSystemConstant      = "windows"
	windowsTerminalConstant             = "cmd"
	windowsTerminalArgumentConstant     = "/k"
	windowsInterpreterConstant          = "python"
	defaultTerminalConstant             = "xterm"
	defaultTerminalHoldArgumentConstant = "-hold"
	defaultTerminalExecArgumentConstant = "-e"
	defaultInterpreterConstant          = "python3"
)

// LaunchStrategy describes how a script is opened in a new terminal window.
type LaunchStrategy struct {
	Terminal    string   `mapstructure:"terminal"`
	Arguments   []string `mapstructure:"arguments"`
	Interpreter string   `mapstructure:"interpreter"`
}

// LauncherConfiguration selects a launch strategy per operating system family.
type LauncherConfiguration struct {
	Windows LaunchStrategy `mapstructure:"windows"`
	Default LaunchStrategy `mapstructure:"default"`
}

// DefaultLauncherConfiguration opens scripts with cmd on Windows and xterm elsewhere.
func DefaultLauncherConfiguration() LauncherConfiguration {
	return LauncherConfiguration{
		Windows: LaunchStrategy{
			Terminal:    windowsTerminalConstant,
			Arguments:   []string{windowsTerminalArgumentConstant},
			Interpreter: windowsInterpreterConstant,
		},
		Default: LaunchStrategy{
			Terminal:    defaultTerminalConstant,
			Arguments:   []string{defaultTerminalHoldArgumentConstant, defaultTerminalExecArgumentConstant},
			Interpreter: defaultInterpreterConstant,
		},
	}
}

// Sanitize trims every value and falls back to the defaults for strategies without a terminal.
func (configuration LauncherConfiguration) Sanitize() LauncherConfiguration {
	defaults := DefaultLauncherConfiguration()
	return LauncherConfiguration{
		Windows: configuration.Windows.sanitize(defaults.Windows),
		Default: configuration.Default.sanitize(defaults.Default),
	}
}

// StrategyFor returns the strategy for a runtime.GOOS value.
func (configuration LauncherConfiguration) StrategyFor(operatingSystem string) LaunchStrategy {
	if strings.EqualFold(strings.TrimSpace(operatingSystem), windowsOperatingSystemConstant) {
		return configuration.Windows
	}
	return configuration.Default
}

// BuildCommand assembles the terminal invocation for scriptPath, run from the script's own folder.
// Relative paths are made absolute first so the interpreter still finds the script from that folder.
func (strategy LaunchStrategy) BuildCommand(scriptPath string) execshell.ShellCommand {
	if absoluteScriptPath, absoluteError := filepath.Abs(scriptPath); absoluteError == nil {
		scriptPath = absoluteScriptPath
	}

	arguments := append([]string{}, strategy.Arguments...)
	if len(strategy.Interpreter) > 0 {
		arguments = append(arguments, strategy.Interpreter)
	}
	arguments = append(arguments, scriptPath)

	return execshell.ShellCommand{
		Name:    execshell.CommandName(strategy.Terminal),
		Details: execshell.CommandDetails{Arguments: arguments, WorkingDirectory: filepath.Dir(scriptPath)},
	}
}

func (strategy LaunchStrategy) sanitize(fallback LaunchStrategy) LaunchStrategy {
	terminal := strings.TrimSpace(strategy.Terminal)
	if len(terminal) == 0 {
		return fallback
	}

	arguments := make([]string, 0, len(strategy.Arguments))
	for _, argument := range strategy.Arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		arguments = append(arguments, trimmedArgument)
	}

	return LaunchStrategy{
		Terminal:    terminal,
		Arguments:   arguments,
		Interpreter: strings.TrimSpace(strategy.Interpreter),
	}
}
