package execshell

import (
	"os/exec"
)

// OSProcessStarter starts programs using the operating system facilities without waiting for them.
type OSProcessStarter struct{}

// NewOSProcessStarter constructs a starter backed by os/exec.
func NewOSProcessStarter() *OSProcessStarter {
	return &OSProcessStarter{}
}

// Start launches the command with no standard streams attached and releases the process handle.
func (starter *OSProcessStarter) Start(command ShellCommand) (StartedProcess, error) {
	commandArguments := append([]string{}, command.Details.Arguments...)
	executable := exec.Command(string(command.Name), commandArguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		executable.Dir = command.Details.WorkingDirectory
	}

	if startError := executable.Start(); startError != nil {
		return StartedProcess{}, startError
	}

	startedProcess := StartedProcess{ProcessID: executable.Process.Pid}
	_ = executable.Process.Release()

	return startedProcess, nil
}
