package execshell

import (
	"errors"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant         = "logger not configured"
	processStarterNotConfiguredMessageConstant = "process starter not configured"
	executableNotFoundReasonTemplateConstant   = "%s was not found in PATH"
	launchStartedLogMessageConstant            = "starting detached process"
	launchSucceededLogMessageConstant          = "detached process started"
	launchFailedLogMessageConstant             = "detached process failed to start"
	logFieldCommandConstant                    = "command"
	logFieldWorkingDirectoryConstant           = "working_directory"
	logFieldProcessIdentifierConstant          = "pid"
	logFieldReasonConstant                     = "reason"
)

// ErrLoggerNotConfigured indicates the launcher was created without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrProcessStarterNotConfigured indicates the launcher was created without a process starter.
var ErrProcessStarterNotConfigured = errors.New(processStarterNotConfiguredMessageConstant)

// ProcessStarter starts a program and returns without waiting for it.
type ProcessStarter interface {
	Start(command ShellCommand) (StartedProcess, error)
}

// DetachedLauncher starts fire-and-forget processes and reports the outcome.
type DetachedLauncher struct {
	logger    *zap.Logger
	starter   ProcessStarter
	observers []LaunchEventObserver
}

// NewDetachedLauncher validates the dependencies and constructs a DetachedLauncher.
func NewDetachedLauncher(logger *zap.Logger, starter ProcessStarter, observers ...LaunchEventObserver) (*DetachedLauncher, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if starter == nil {
		return nil, ErrProcessStarterNotConfigured
	}

	registeredObservers := make([]LaunchEventObserver, 0, len(observers))
	for _, observer := range observers {
		if observer != nil {
			registeredObservers = append(registeredObservers, observer)
		}
	}
	if len(registeredObservers) == 0 {
		registeredObservers = append(registeredObservers, noopLaunchEventObserver{})
	}

	return &DetachedLauncher{logger: logger, starter: starter, observers: registeredObservers}, nil
}

// Launch starts the command. Spawn errors are folded into the returned LaunchResult.
func (launcher *DetachedLauncher) Launch(command ShellCommand) LaunchResult {
	launcher.logger.Debug(
		launchStartedLogMessageConstant,
		zap.String(logFieldCommandConstant, command.CommandLine()),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)
	for _, observer := range launcher.observers {
		observer.LaunchStarted(command)
	}

	startedProcess, startError := launcher.starter.Start(command)

	var result LaunchResult
	if startError != nil {
		result = launcher.buildFailureResult(command, startError)
		launcher.logger.Debug(
			launchFailedLogMessageConstant,
			zap.String(logFieldCommandConstant, command.CommandLine()),
			zap.String(logFieldReasonConstant, result.FailureReason),
			zap.Error(startError),
		)
	} else {
		result = LaunchResult{Outcome: LaunchOutcomeLaunched, Command: command, ProcessID: startedProcess.ProcessID}
		launcher.logger.Info(
			launchSucceededLogMessageConstant,
			zap.String(logFieldCommandConstant, command.CommandLine()),
			zap.Int(logFieldProcessIdentifierConstant, startedProcess.ProcessID),
		)
	}

	for _, observer := range launcher.observers {
		observer.LaunchCompleted(result)
	}

	return result
}

func (launcher *DetachedLauncher) buildFailureResult(command ShellCommand, startError error) LaunchResult {
	result := LaunchResult{
		Outcome:       LaunchOutcomeSpawnFailed,
		Command:       command,
		FailureReason: startError.Error(),
	}
	if errors.Is(startError, exec.ErrNotFound) {
		result.ExecutableMissing = true
		result.FailureReason = fmt.Sprintf(executableNotFoundReasonTemplateConstant, command.Name)
	}
	return result
}
