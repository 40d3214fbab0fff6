// Package tasks persists the to-do list and drives the task manager menu.
//
// FileStore reads and rewrites the whole JSON task file, Service applies the
// add and complete operations with typed outcomes and write-through
// persistence, Manager runs the interactive menu as an explicit state
// machine, and CommandBuilder exposes the same operations as subcommands.
package tasks
