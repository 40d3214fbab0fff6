package scripts

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"

	"go.uber.org/zap"

	"github.com/temirov/scriptdash/internal/execshell"
	"github.com/temirov/scriptdash/internal/filesystem"
	"github.com/temirov/scriptdash/internal/ui"
)

const (
	scriptHeaderTemplateConstant        = "\n--- Código de %s ---\n"
	scriptNotFoundMessageConstant       = "El archivo no se encontró."
	scriptReadErrorTemplateConstant     = "Ocurrió un error al leer el archivo: %v"
	scriptNotFoundErrorTemplateConstant = "%w: %s"
	scriptMissingMessageConstant        = "script not found"
	launcherMissingMessageConstant      = "detached launcher not configured"
	scriptShownLogMessageConstant       = "script displayed"
	scriptReadFailedLogMessageConstant  = "script could not be read"
	logFieldScriptPathConstant          = "script_path"
	logFieldScriptSizeConstant          = "bytes"
)

var (
	// ErrScriptNotFound indicates the selected script disappeared before it could be shown.
	ErrScriptNotFound = errors.New(scriptMissingMessageConstant)
	// ErrLauncherNotConfigured indicates the Launcher was created without a detached launcher.
	ErrLauncherNotConfigured = errors.New(launcherMissingMessageConstant)
)

// DetachedLauncher starts fire-and-forget processes.
type DetachedLauncher interface {
	Launch(command execshell.ShellCommand) execshell.LaunchResult
}

// LauncherDependencies enumerates the collaborators of a Launcher.
type LauncherDependencies struct {
	FileSystem      filesystem.FileSystem
	Detached        DetachedLauncher
	Configuration   LauncherConfiguration
	OperatingSystem string
	Output          io.Writer
	Logger          *zap.Logger
}

// Launcher prints scripts and opens them in a new terminal.
type Launcher struct {
	fileSystem filesystem.FileSystem
	detached   DetachedLauncher
	strategy   LaunchStrategy
	output     io.Writer
	theme      ui.Theme
	formatter  ui.LaunchMessageFormatter
	logger     *zap.Logger
}

// NewLauncher validates the dependencies and constructs a Launcher. A blank OperatingSystem selects runtime.GOOS.
func NewLauncher(dependencies LauncherDependencies) (*Launcher, error) {
	if dependencies.Detached == nil {
		return nil, ErrLauncherNotConfigured
	}
	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	operatingSystem := dependencies.OperatingSystem
	if len(operatingSystem) == 0 {
		operatingSystem = runtime.GOOS
	}

	return &Launcher{
		fileSystem: fileSystem,
		detached:   dependencies.Detached,
		strategy:   dependencies.Configuration.Sanitize().StrategyFor(operatingSystem),
		output:     output,
		theme:      ui.NewTheme(output),
		formatter:  ui.LaunchMessageFormatter{},
		logger:     logger,
	}, nil
}

// Show prints a header followed by the script text and returns the text. Read failures are reported on the
// output and returned.
func (launcher *Launcher) Show(scriptPath string) (string, error) {
	content, readError := launcher.fileSystem.ReadFile(scriptPath)
	if readError != nil {
		launcher.logger.Debug(scriptReadFailedLogMessageConstant, zap.String(logFieldScriptPathConstant, scriptPath), zap.Error(readError))
		if errors.Is(readError, fs.ErrNotExist) {
			fmt.Fprintln(launcher.output, launcher.theme.Warning(scriptNotFoundMessageConstant))
			return "", fmt.Errorf(scriptNotFoundErrorTemplateConstant, ErrScriptNotFound, scriptPath)
		}
		fmt.Fprintln(launcher.output, launcher.theme.Warning(fmt.Sprintf(scriptReadErrorTemplateConstant, readError)))
		return "", readError
	}

	text := string(content)
	fmt.Fprintln(launcher.output, fmt.Sprintf(scriptHeaderTemplateConstant, scriptPath))
	fmt.Fprintln(launcher.output, text)
	launcher.logger.Debug(scriptShownLogMessageConstant, zap.String(logFieldScriptPathConstant, scriptPath), zap.Int(logFieldScriptSizeConstant, len(content)))
	return text, nil
}

// Run opens scriptPath in a new terminal without waiting for it and reports the outcome on the output.
func (launcher *Launcher) Run(scriptPath string) execshell.LaunchResult {
	result := launcher.detached.Launch(launcher.strategy.BuildCommand(scriptPath))

	message := launcher.formatter.BuildResultMessage(result)
	if !result.Launched() {
		message = launcher.theme.Warning(message)
	}
	fmt.Fprintln(launcher.output, message)
	return result
}
