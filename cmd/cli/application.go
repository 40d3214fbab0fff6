package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/scriptdash/internal/browser"
	"github.com/temirov/scriptdash/internal/console"
	"github.com/temirov/scriptdash/internal/execshell"
	"github.com/temirov/scriptdash/internal/filesystem"
	"github.com/temirov/scriptdash/internal/scripts"
	"github.com/temirov/scriptdash/internal/tasks"
	"github.com/temirov/scriptdash/internal/ui"
	"github.com/temirov/scriptdash/internal/utils"
	flagutils "github.com/temirov/scriptdash/internal/utils/flags"
)

const (
	applicationNameConstant                 = "scriptdash"
	applicationShortDescriptionConstant     = "Console dashboard for browsing course scripts and tracking tasks"
	applicationLongDescriptionConstant      = "scriptdash browses unit, subfolder, and script directories, shows or launches the selected script in a new terminal, and keeps a persisted to-do list."
	versionTemplateConstant                 = "{{.Name}} version: {{.Version}}\n"
	developmentVersionConstant              = "dev"
	buildInfoDevelopmentVersionConstant     = "(devel)"
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	baseDirectoryFlagNameConstant           = "base-dir"
	baseDirectoryFlagUsageConstant          = "Directory containing the unit folders."
	tasksFileFlagNameConstant               = "tasks-file"
	tasksFileFlagUsageConstant              = "Task list file, relative to the base directory unless absolute."
	pauseFlagNameConstant                   = "pause"
	pauseFlagUsageConstant                  = "Wait for Enter after each menu action."
	commonLogLevelConfigKeyConstant         = "common.log_level"
	commonLogFormatConfigKeyConstant        = "common.log_format"
	environmentPrefixConstant               = "SCRIPTDASH"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	defaultConfigurationSearchPathConstant  = "."
	configurationInitializedMessageConstant = "configuration initialized"
	dashboardStartedMessageConstant         = "dashboard started"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	logFieldBaseDirectoryConstant           = "base_directory"
	logFieldTaskFileConstant                = "task_file"
	logFieldUnitCountConstant               = "units"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	dashboardSetupErrorTemplateConstant     = "unable to start dashboard: %w"
	unexpectedArgumentsMessageConstant      = "scriptdash does not accept positional arguments"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

//go:embed default_config.yaml
var embeddedDefaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the embedded default configuration and its type.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte{}, embeddedDefaultConfigurationContent...), configurationTypeConstant
}

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common    ApplicationCommonConfiguration `mapstructure:"common"`
	Dashboard browser.Configuration          `mapstructure:"dashboard"`
	Tasks     tasks.CommandConfiguration     `mapstructure:"tasks"`
	Launcher  scripts.LauncherConfiguration  `mapstructure:"launcher"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type flagValues struct {
	configurationFilePath string
	logLevel              string
	logFormat             string
	baseDirectory         string
	tasksFile             string
	pauseAfterAction      bool
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	flags                 flagValues
	processStarter        execshell.ProcessStarter
	fileSystem            filesystem.FileSystem
	taskCommandBuilder    *tasks.CommandBuilder
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	embeddedDefaults, _ := EmbeddedDefaultConfiguration()
	configurationLoader.SetEmbeddedDefaults(embeddedDefaults)

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
		processStarter:      execshell.NewOSProcessStarter(),
		fileSystem:          filesystem.OSFileSystem{},
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Version:       resolveVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runDashboard(command, arguments)
		},
	}
	cobraCommand.SetVersionTemplate(versionTemplateConstant)
	cobraCommand.SetContext(context.Background())

	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.flags.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	flagutils.AddChoiceFlag(persistentFlags, &application.flags.logLevel, logLevelFlagNameConstant, string(utils.LogLevelWarn), []string{
		string(utils.LogLevelDebug), string(utils.LogLevelInfo), string(utils.LogLevelWarn), string(utils.LogLevelError),
	}, logLevelFlagUsageConstant)
	flagutils.AddChoiceFlag(persistentFlags, &application.flags.logFormat, logFormatFlagNameConstant, string(utils.LogFormatConsole), []string{
		string(utils.LogFormatStructured), string(utils.LogFormatConsole),
	}, logFormatFlagUsageConstant)
	persistentFlags.StringVar(&application.flags.baseDirectory, baseDirectoryFlagNameConstant, "", baseDirectoryFlagUsageConstant)
	persistentFlags.StringVar(&application.flags.tasksFile, tasksFileFlagNameConstant, "", tasksFileFlagUsageConstant)
	flagutils.AddToggleFlag(persistentFlags, &application.flags.pauseAfterAction, pauseFlagNameConstant, true, pauseFlagUsageConstant)

	application.taskCommandBuilder = &tasks.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() tasks.CommandConfiguration {
			return application.configuration.Tasks
		},
		BaseDirectoryProvider: func() string {
			return application.configuration.Dashboard.Sanitize().BaseDirectory
		},
		FileSystem: application.fileSystem,
		PromptOptions: func() console.Options {
			return console.Options{PauseAfterAction: application.configuration.Dashboard.PauseAfterAction}
		},
	}
	cobraCommand.AddCommand(application.taskCommandBuilder.Build())

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.flags.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}
	application.configurationMetadata = loadedConfiguration
	application.applyFlagOverrides(command)

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) applyFlagOverrides(command *cobra.Command) {
	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.flags.logLevel
	}
	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.flags.logFormat
	}
	if application.persistentFlagChanged(command, baseDirectoryFlagNameConstant) {
		application.configuration.Dashboard.BaseDirectory = application.flags.baseDirectory
	}
	if application.persistentFlagChanged(command, tasksFileFlagNameConstant) {
		application.configuration.Tasks.FilePath = application.flags.tasksFile
	}
	if application.persistentFlagChanged(command, pauseFlagNameConstant) {
		application.configuration.Dashboard.PauseAfterAction = application.flags.pauseAfterAction
	}
}

func (application *Application) runDashboard(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	output := utils.NewFlushingWriter(command.OutOrStdout())
	dashboard, setupError := application.buildDashboard(command.InOrStdin(), output)
	if setupError != nil {
		return fmt.Errorf(dashboardSetupErrorTemplateConstant, setupError)
	}

	return dashboard.Run(command.Context())
}

func (application *Application) buildDashboard(input io.Reader, output io.Writer) (*browser.Browser, error) {
	dashboardConfiguration := application.configuration.Dashboard.Sanitize()
	taskConfiguration := application.configuration.Tasks.Sanitize()

	detachedLauncher, launcherError := execshell.NewDetachedLauncher(application.logger, application.processStarter, ui.NewConsoleLaunchEventLogger(application.logger))
	if launcherError != nil {
		return nil, launcherError
	}

	scriptLauncher, scriptLauncherError := scripts.NewLauncher(scripts.LauncherDependencies{
		FileSystem:    application.fileSystem,
		Detached:      detachedLauncher,
		Configuration: application.configuration.Launcher,
		Output:        output,
		Logger:        application.logger,
	})
	if scriptLauncherError != nil {
		return nil, scriptLauncherError
	}

	application.logger.Debug(
		dashboardStartedMessageConstant,
		zap.String(logFieldBaseDirectoryConstant, dashboardConfiguration.BaseDirectory),
		zap.String(logFieldTaskFileConstant, taskConfiguration.FilePath),
		zap.Int(logFieldUnitCountConstant, len(dashboardConfiguration.Units)),
	)

	return browser.New(browser.Dependencies{
		Configuration: dashboardConfiguration,
		Catalog:       scripts.NewCatalog(application.fileSystem, dashboardConfiguration.ScriptExtension),
		Launcher:      scriptLauncher,
		TaskManagerFactory: func(prompter console.Prompter, managerOutput io.Writer) (browser.TaskManager, error) {
			return application.taskCommandBuilder.BuildManager(prompter, managerOutput)
		},
		Prompter: console.NewLinePrompter(input, output, console.Options{PauseAfterAction: dashboardConfiguration.PauseAfterAction}),
		Output:   output,
		Logger:   application.logger,
	})
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}
	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}
	return false
}

func resolveVersion() string {
	buildInformation, available := debug.ReadBuildInfo()
	if !available {
		return developmentVersionConstant
	}
	version := strings.TrimSpace(buildInformation.Main.Version)
	if len(version) == 0 || version == buildInfoDevelopmentVersionConstant {
		return developmentVersionConstant
	}
	return version
}
