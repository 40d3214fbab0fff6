package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/scriptdash/internal/execshell"
)

const (
	launchStartedMessageTemplateConstant           = "Abriendo %s"
	launchSucceededMessageTemplateConstant         = "Script iniciado en una nueva terminal: %s"
	launchMissingExecutableMessageTemplateConstant = "Error: No se encontró el ejecutable de la terminal (%s). Asegúrate de que esté en tu PATH."
	launchFailureMessageTemplateConstant           = "Ocurrió un error al ejecutar el código: %s"
	unknownFailureMessageConstant                  = "error desconocido"
	logFieldLaunchedConstant                       = "launched"
)

// LaunchMessageFormatter builds user-facing messages for detached launches.
type LaunchMessageFormatter struct{}

// BuildStartedMessage describes a launch about to happen.
func (formatter LaunchMessageFormatter) BuildStartedMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(launchStartedMessageTemplateConstant, command.CommandLine())
}

// BuildResultMessage describes the outcome of a launch.
func (formatter LaunchMessageFormatter) BuildResultMessage(result execshell.LaunchResult) string {
	if result.Launched() {
		return fmt.Sprintf(launchSucceededMessageTemplateConstant, formatter.scriptLabel(result.Command))
	}
	if result.ExecutableMissing {
		return fmt.Sprintf(launchMissingExecutableMessageTemplateConstant, result.Command.Name)
	}
	reason := strings.TrimSpace(result.FailureReason)
	if len(reason) == 0 {
		reason = unknownFailureMessageConstant
	}
	return fmt.Sprintf(launchFailureMessageTemplateConstant, reason)
}

func (formatter LaunchMessageFormatter) scriptLabel(command execshell.ShellCommand) string {
	if argumentCount := len(command.Details.Arguments); argumentCount > 0 {
		return command.Details.Arguments[argumentCount-1]
	}
	return string(command.Name)
}

// ConsoleLaunchEventLogger renders launch lifecycle events through a human-readable zap logger.
type ConsoleLaunchEventLogger struct {
	logger    *zap.Logger
	formatter LaunchMessageFormatter
}

// NewConsoleLaunchEventLogger constructs a launch event logger backed by the provided zap logger.
func NewConsoleLaunchEventLogger(logger *zap.Logger) *ConsoleLaunchEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleLaunchEventLogger{logger: logger, formatter: LaunchMessageFormatter{}}
}

// LaunchStarted implements execshell.LaunchEventObserver.
func (eventLogger *ConsoleLaunchEventLogger) LaunchStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Debug(eventLogger.formatter.BuildStartedMessage(command))
}

// LaunchCompleted implements execshell.LaunchEventObserver.
func (eventLogger *ConsoleLaunchEventLogger) LaunchCompleted(result execshell.LaunchResult) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Debug(eventLogger.formatter.BuildResultMessage(result), zap.Bool(logFieldLaunchedConstant, result.Launched()))
}
