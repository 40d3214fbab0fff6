// Package cli constructs the scriptdash command-line interface. The root command
// opens the interactive dashboard; the tasks subcommand manages the to-do list.
// It wires the Cobra command hierarchy, the Viper configuration loader, and the
// zap logger shared by every command.
package cli
