package tasks

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/scriptdash/internal/console"
	"github.com/temirov/scriptdash/internal/filesystem"
	"github.com/temirov/scriptdash/internal/ui"
	pathutils "github.com/temirov/scriptdash/internal/utils/path"
)

const (
	commandUseConstant                      = "tasks"
	commandShortDescriptionConstant         = "Manage the persisted to-do list"
	commandLongDescriptionConstant          = "tasks opens the interactive task menu. The list, add, and complete subcommands operate on the task file directly."
	listCommandUseConstant                  = "list"
	listCommandShortDescriptionConstant     = "Print every task with its status"
	addCommandUseConstant                   = "add <description...>"
	addCommandShortDescriptionConstant      = "Append a pending task"
	completeCommandUseConstant              = "complete <number>"
	completeCommandShortDescriptionConstant = "Mark the task at a 1-based position as completed"
	completeArgumentMissingMessageConstant  = "complete requires exactly one task number"
	taskCommandFailureTemplateConstant      = "task command failed: %w"
	taskAddRejectedMessageConstant          = "task description must not be empty"
	taskCompleteRejectedTemplateConstant    = "task %d could not be completed: %s"
	unexpectedArgumentsMessageConstant      = "tasks does not accept positional arguments"
)

var (
	errCompleteArgumentMissing = errors.New(completeArgumentMissingMessageConstant)
	errTaskDescriptionBlank    = errors.New(taskAddRejectedMessageConstant)
	errUnexpectedArguments     = errors.New(unexpectedArgumentsMessageConstant)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the resolved task configuration.
type ConfigurationProvider func() CommandConfiguration

// BaseDirectoryProvider supplies the directory relative task file paths resolve against.
type BaseDirectoryProvider func() string

// CommandBuilder assembles the tasks cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	BaseDirectoryProvider BaseDirectoryProvider
	FileSystem            filesystem.FileSystem
	PromptOptions         func() console.Options
}

// Build constructs the tasks command with its subcommands.
func (builder *CommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.runInteractive,
	}

	command.AddCommand(&cobra.Command{
		Use:   listCommandUseConstant,
		Short: listCommandShortDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.runList,
	})
	command.AddCommand(&cobra.Command{
		Use:   addCommandUseConstant,
		Short: addCommandShortDescriptionConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.runAdd,
	})
	command.AddCommand(&cobra.Command{
		Use:   completeCommandUseConstant,
		Short: completeCommandShortDescriptionConstant,
		RunE:  builder.runComplete,
	})

	return command
}

// BuildManager builds a task manager that shares the caller's prompter and output.
func (builder *CommandBuilder) BuildManager(prompter console.Prompter, output io.Writer) (*Manager, error) {
	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return nil, serviceError
	}

	return NewManager(ManagerDependencies{
		Service:  service,
		Prompter: prompter,
		Output:   output,
		Title:    builder.resolveConfiguration().Title,
	})
}

func (builder *CommandBuilder) runInteractive(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	output := command.OutOrStdout()
	prompter := console.NewLinePrompter(command.InOrStdin(), output, builder.resolvePromptOptions())
	manager, managerError := builder.BuildManager(prompter, output)
	if managerError != nil {
		return managerError
	}
	if runError := manager.Run(command.Context()); runError != nil {
		return fmt.Errorf(taskCommandFailureTemplateConstant, runError)
	}
	return nil
}

func (builder *CommandBuilder) runList(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.loadService(command.ErrOrStderr())
	if serviceError != nil {
		return serviceError
	}

	output := command.OutOrStdout()
	theme := ui.NewTheme(output)
	if service.Count() == 0 {
		fmt.Fprintln(output, strings.TrimLeft(emptyListMessageConstant, "\n"))
		return nil
	}
	for taskIndex, task := range service.Tasks() {
		fmt.Fprintln(output, theme.TaskLine(taskIndex+1, task.Completed, task.Description))
	}
	return nil
}

func (builder *CommandBuilder) runAdd(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.loadService(command.ErrOrStderr())
	if serviceError != nil {
		return serviceError
	}

	outcome, addError := service.Add(strings.Join(arguments, " "))
	if addError != nil {
		return fmt.Errorf(taskCommandFailureTemplateConstant, addError)
	}
	if outcome == AddOutcomeRejectedBlank {
		return errTaskDescriptionBlank
	}

	fmt.Fprintln(command.OutOrStdout(), addSucceededMessageConstant)
	return nil
}

func (builder *CommandBuilder) runComplete(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errCompleteArgumentMissing
	}
	position, parseError := console.ParseSelection(arguments[0])
	if parseError != nil {
		return parseError
	}

	service, serviceError := builder.loadService(command.ErrOrStderr())
	if serviceError != nil {
		return serviceError
	}

	outcome, completeError := service.Complete(position)
	if completeError != nil {
		return fmt.Errorf(taskCommandFailureTemplateConstant, completeError)
	}

	message := describeCompleteOutcome(outcome)
	switch outcome {
	case CompleteOutcomeCompleted, CompleteOutcomeAlreadyCompleted:
		fmt.Fprintln(command.OutOrStdout(), message)
		return nil
	default:
		return fmt.Errorf(taskCompleteRejectedTemplateConstant, position, message)
	}
}

func (builder *CommandBuilder) loadService(warningOutput io.Writer) (*Service, error) {
	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return nil, serviceError
	}

	if loadError := service.Load(); loadError != nil {
		var corruptError *CorruptTaskFileError
		if !errors.As(loadError, &corruptError) {
			return nil, fmt.Errorf(taskLoadErrorTemplateConstant, loadError)
		}
		fmt.Fprintln(warningOutput, fmt.Sprintf(corruptTaskFileWarningTemplateConstant, corruptError.FilePath))
	}
	return service, nil
}

func (builder *CommandBuilder) resolveService() (*Service, error) {
	configuration := builder.resolveConfiguration()
	baseDirectory := ""
	if builder.BaseDirectoryProvider != nil {
		baseDirectory = builder.BaseDirectoryProvider()
	}
	taskFilePath := pathutils.NewHomeExpander().ResolveWithin(baseDirectory, configuration.FilePath)

	store, storeError := NewFileStore(taskFilePath, builder.FileSystem, builder.resolveLogger())
	if storeError != nil {
		return nil, storeError
	}
	return NewService(store)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolvePromptOptions() console.Options {
	if builder.PromptOptions == nil {
		return console.Options{PauseAfterAction: true}
	}
	return builder.PromptOptions()
}
