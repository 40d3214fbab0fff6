// Package execshell starts external programs on behalf of the dashboard.
//
// DetachedLauncher wraps a ProcessStarter with logging and lifecycle
// notifications, and reports every attempt as a LaunchResult so callers never
// block on the child process or treat a spawn failure as fatal. OSProcessStarter
// is the default starter backed by os/exec.
package execshell
