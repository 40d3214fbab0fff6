package execshell

// LaunchEventObserver receives lifecycle notifications for detached launches.
type LaunchEventObserver interface {
	// LaunchStarted notifies observers that a process is about to be started.
	LaunchStarted(command ShellCommand)
	// LaunchCompleted reports the outcome of the attempt.
	LaunchCompleted(result LaunchResult)
}

type noopLaunchEventObserver struct{}

func (noopLaunchEventObserver) LaunchStarted(ShellCommand) {}

func (noopLaunchEventObserver) LaunchCompleted(LaunchResult) {}
