package execshell

import "strings"

// CommandName identifies the executable to start.
type CommandName string

// CommandDetails describes the arguments and working directory of a started program.
type CommandDetails struct {
	Arguments        []string
	WorkingDirectory string
}

// ShellCommand combines an executable with its details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// CommandLine renders the command as a single space separated line for messages and logs.
func (command ShellCommand) CommandLine() string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, " ")
}

// StartedProcess identifies a process that was started and released.
type StartedProcess struct {
	ProcessID int
}

// LaunchOutcome enumerates the results of a detached launch.
type LaunchOutcome string

// Supported launch outcomes.
const (
	LaunchOutcomeLaunched    LaunchOutcome = LaunchOutcome("launched")
	LaunchOutcomeSpawnFailed LaunchOutcome = LaunchOutcome("spawn_failed")
)

// LaunchResult reports whether a detached process was started.
type LaunchResult struct {
	Outcome           LaunchOutcome
	Command           ShellCommand
	ProcessID         int
	FailureReason     string
	ExecutableMissing bool
}

// Launched reports whether the process was started.
func (result LaunchResult) Launched() bool {
	return result.Outcome == LaunchOutcomeLaunched
}
