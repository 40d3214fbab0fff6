// Package flags provides pflag values shared by the dashboard commands.
package flags
