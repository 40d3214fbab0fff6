package execshell_test

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/scriptdash/internal/execshell"
)

const (
	testLoggerInitializationCaseNameConstant     = "logger_validation"
	testStarterInitializationCaseNameConstant    = "starter_validation"
	testSuccessfulInitializationCaseNameConstant = "successful_initialization"
	testTerminalNameConstant                     = "xterm"
	testScriptPathConstant                       = "/cursos/Unidad 1/Semana 1/hola.py"
)

type recordingProcessStarter struct {
	startedProcess  execshell.StartedProcess
	startError      error
	recordedCommand []execshell.ShellCommand
}

func (starter *recordingProcessStarter) Start(command execshell.ShellCommand) (execshell.StartedProcess, error) {
	starter.recordedCommand = append(starter.recordedCommand, command)
	return starter.startedProcess, starter.startError
}

type recordingLaunchObserver struct {
	started   []execshell.ShellCommand
	completed []execshell.LaunchResult
}

func (observer *recordingLaunchObserver) LaunchStarted(command execshell.ShellCommand) {
	observer.started = append(observer.started, command)
}

func (observer *recordingLaunchObserver) LaunchCompleted(result execshell.LaunchResult) {
	observer.completed = append(observer.completed, result)
}

func testCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name:    execshell.CommandName(testTerminalNameConstant),
		Details: execshell.CommandDetails{Arguments: []string{"-hold", "-e", "python3", testScriptPathConstant}},
	}
}

func TestDetachedLauncherInitializationValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logger        *zap.Logger
		starter       execshell.ProcessStarter
		expectError   error
		expectSuccess bool
	}{
		{
			name:        testLoggerInitializationCaseNameConstant,
			starter:     &recordingProcessStarter{},
			expectError: execshell.ErrLoggerNotConfigured,
		},
		{
			name:        testStarterInitializationCaseNameConstant,
			logger:      zap.NewNop(),
			expectError: execshell.ErrProcessStarterNotConfigured,
		},
		{
			name:          testSuccessfulInitializationCaseNameConstant,
			logger:        zap.NewNop(),
			starter:       &recordingProcessStarter{},
			expectSuccess: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			launcher, creationError := execshell.NewDetachedLauncher(testCase.logger, testCase.starter)
			if testCase.expectSuccess {
				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, launcher)
				return
			}
			require.ErrorIs(testInstance, creationError, testCase.expectError)
		})
	}
}

func TestDetachedLauncherLaunchOutcomes(testInstance *testing.T) {
	notFoundError := &exec.Error{Name: testTerminalNameConstant, Err: exec.ErrNotFound}

	testCases := []struct {
		name                    string
		starter                 *recordingProcessStarter
		expectedOutcome         execshell.LaunchOutcome
		expectedProcessID       int
		expectExecutableMissing bool
		expectedReason          string
		expectedLogLevel        zapcore.Level
	}{
		{
			name:              "launched",
			starter:           &recordingProcessStarter{startedProcess: execshell.StartedProcess{ProcessID: 4242}},
			expectedOutcome:   execshell.LaunchOutcomeLaunched,
			expectedProcessID: 4242,
			expectedLogLevel:  zapcore.InfoLevel,
		},
		{
			name:                    "terminal_missing",
			starter:                 &recordingProcessStarter{startError: notFoundError},
			expectedOutcome:         execshell.LaunchOutcomeSpawnFailed,
			expectExecutableMissing: true,
			expectedReason:          fmt.Sprintf("%s was not found in PATH", testTerminalNameConstant),
			expectedLogLevel:        zapcore.DebugLevel,
		},
		{
			name:             "spawn_error",
			starter:          &recordingProcessStarter{startError: errors.New("permission denied")},
			expectedOutcome:  execshell.LaunchOutcomeSpawnFailed,
			expectedReason:   "permission denied",
			expectedLogLevel: zapcore.DebugLevel,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			launchObserver := &recordingLaunchObserver{}

			launcher, creationError := execshell.NewDetachedLauncher(zap.New(observerCore), testCase.starter, launchObserver)
			require.NoError(testInstance, creationError)

			result := launcher.Launch(testCommand())

			require.Equal(testInstance, testCase.expectedOutcome, result.Outcome)
			require.Equal(testInstance, testCase.expectedOutcome == execshell.LaunchOutcomeLaunched, result.Launched())
			require.Equal(testInstance, testCase.expectedProcessID, result.ProcessID)
			require.Equal(testInstance, testCase.expectExecutableMissing, result.ExecutableMissing)
			require.Equal(testInstance, testCase.expectedReason, result.FailureReason)
			require.Equal(testInstance, testCommand(), result.Command)

			require.Len(testInstance, testCase.starter.recordedCommand, 1)
			require.Len(testInstance, launchObserver.started, 1)
			require.Len(testInstance, launchObserver.completed, 1)
			require.Equal(testInstance, result, launchObserver.completed[0])

			loggedEntries := observedLogs.All()
			require.Len(testInstance, loggedEntries, 2)
			require.Equal(testInstance, zapcore.DebugLevel, loggedEntries[0].Level)
			require.Equal(testInstance, testCase.expectedLogLevel, loggedEntries[1].Level)
		})
	}
}

func TestShellCommandCommandLine(testInstance *testing.T) {
	require.Equal(testInstance, "xterm -hold -e python3 "+testScriptPathConstant, testCommand().CommandLine())
}
