package tasks

import "strings"

const defaultTaskFileNameConstant = "tareas_poo.json"

// CommandConfiguration captures persistent settings for the task list.
type CommandConfiguration struct {
	FilePath string `mapstructure:"file"`
	Title    string `mapstructure:"title"`
}

// DefaultCommandConfiguration returns baseline configuration values for the task list.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		FilePath: defaultTaskFileNameConstant,
		Title:    defaultManagerTitleConstant,
	}
}

// Sanitize trims whitespace and restores defaults for blank values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	defaults := DefaultCommandConfiguration()

	sanitized.FilePath = strings.TrimSpace(configuration.FilePath)
	if len(sanitized.FilePath) == 0 {
		sanitized.FilePath = defaults.FilePath
	}
	sanitized.Title = strings.TrimSpace(configuration.Title)
	if len(sanitized.Title) == 0 {
		sanitized.Title = defaults.Title
	}

	return sanitized
}
