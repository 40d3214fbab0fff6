package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/scriptdash/internal/console"
	"github.com/temirov/scriptdash/internal/execshell"
	"github.com/temirov/scriptdash/internal/scripts"
	"github.com/temirov/scriptdash/internal/ui"
)

const (
	dependencyMissingTemplateConstant  = "dashboard dependency missing: %s"
	taskManagerFailureTemplateConstant = "task manager failed: %w"
	stateChangedLogMessageConstant     = "dashboard state changed"
	directoryListedLogMessageConstant  = "directory enumerated"
	logFieldFromStateConstant          = "from"
	logFieldToStateConstant            = "to"
	logFieldEventConstant              = "event"
	logFieldDirectoryConstant          = "directory"
	logFieldEntryCountConstant         = "entries"
)

// DirectoryCatalog enumerates subfolders and scripts.
type DirectoryCatalog interface {
	ListSubfolders(directory string) ([]string, error)
	ListScripts(directory string) ([]string, error)
}

// ScriptLauncher shows and runs a selected script.
type ScriptLauncher interface {
	Show(scriptPath string) (string, error)
	Run(scriptPath string) execshell.LaunchResult
}

// TaskManager runs the interactive task menu until the user returns.
type TaskManager interface {
	Run(executionContext context.Context) error
}

// TaskManagerFactory builds a task manager sharing the dashboard prompter and output.
type TaskManagerFactory func(prompter console.Prompter, output io.Writer) (TaskManager, error)

// Dependencies enumerates the collaborators of a Browser.
type Dependencies struct {
	Configuration      Configuration
	Catalog            DirectoryCatalog
	Launcher           ScriptLauncher
	TaskManagerFactory TaskManagerFactory
	Prompter           console.Prompter
	Output             io.Writer
	Logger             *zap.Logger
}

// Browser drives the dashboard menus.
type Browser struct {
	configuration      Configuration
	catalog            DirectoryCatalog
	launcher           ScriptLauncher
	taskManagerFactory TaskManagerFactory
	prompter           console.Prompter
	output             io.Writer
	theme              ui.Theme
	logger             *zap.Logger

	selectedUnit       Unit
	unitDirectory      string
	subfolders         []string
	subfolderDirectory string
	scripts            []string
}

// New validates the dependencies and constructs a Browser.
func New(dependencies Dependencies) (*Browser, error) {
	if dependencies.Catalog == nil {
		return nil, fmt.Errorf(dependencyMissingTemplateConstant, "catalog")
	}
	if dependencies.Launcher == nil {
		return nil, fmt.Errorf(dependencyMissingTemplateConstant, "launcher")
	}
	if dependencies.TaskManagerFactory == nil {
		return nil, fmt.Errorf(dependencyMissingTemplateConstant, "task manager factory")
	}
	if dependencies.Prompter == nil {
		return nil, fmt.Errorf(dependencyMissingTemplateConstant, "prompter")
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Browser{
		configuration:      dependencies.Configuration.Sanitize(),
		catalog:            dependencies.Catalog,
		launcher:           dependencies.Launcher,
		taskManagerFactory: dependencies.TaskManagerFactory,
		prompter:           dependencies.Prompter,
		output:             output,
		theme:              ui.NewTheme(output),
		logger:             logger,
	}, nil
}

// Run shows the main menu and follows the user's choices until they exit or the input ends. Task storage
// failures are returned.
func (browser *Browser) Run(executionContext context.Context) error {
	currentState := StateMainMenu
	entering := true

	for currentState != StateExit {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		event, handleError := browser.handle(executionContext, currentState, entering)
		if errors.Is(handleError, console.ErrInputClosed) {
			break
		}
		if handleError != nil {
			return handleError
		}

		nextState, _ := Transition(currentState, event)
		browser.logger.Debug(
			stateChangedLogMessageConstant,
			zap.String(logFieldFromStateConstant, string(currentState)),
			zap.String(logFieldToStateConstant, string(nextState)),
			zap.String(logFieldEventConstant, string(event)),
		)
		entering = nextState != currentState
		currentState = nextState
	}

	browser.println(exitMessageConstant)
	return nil
}

func (browser *Browser) handle(executionContext context.Context, currentState State, entering bool) (Event, error) {
	switch currentState {
	case StateMainMenu:
		return browser.handleMainMenu()
	case StateSubfolderMenu:
		return browser.handleSubfolderMenu(entering)
	case StateScriptMenu:
		return browser.handleScriptMenu(entering)
	case StateTaskManager:
		return browser.handleTaskManager(executionContext)
	default:
		return EventInvalid, nil
	}
}

func (browser *Browser) handleMainMenu() (Event, error) {
	browser.println(browser.theme.Heading(mainMenuHeadingConstant))
	for _, unit := range browser.configuration.Units {
		browser.println(browser.theme.MenuOption(unit.Key, unit.Name))
	}
	browser.println(browser.theme.MenuOption(tasksKeyConstant, mainMenuTasksLabelConstant))
	browser.println(browser.theme.MenuOption(exitKeyConstant, mainMenuExitLabelConstant))

	answer, askError := browser.prompter.Ask(mainMenuPromptConstant)
	if askError != nil {
		return EventInvalid, askError
	}

	normalizedAnswer := console.NormalizeKey(answer)
	switch normalizedAnswer {
	case exitKeyConstant:
		return EventBack, nil
	case tasksKeyConstant:
		return EventTasks, nil
	}

	for _, unit := range browser.configuration.Units {
		if unit.Key == normalizedAnswer {
			browser.selectedUnit = unit
			browser.unitDirectory = browser.configuration.UnitDirectory(unit)
			return EventSelect, nil
		}
	}

	browser.println(browser.theme.Warning(invalidOptionMessageConstant))
	return EventInvalid, browser.prompter.Pause(mainMenuPausePromptConstant)
}

func (browser *Browser) handleSubfolderMenu(entering bool) (Event, error) {
	if entering {
		subfolders, listError := browser.catalog.ListSubfolders(browser.unitDirectory)
		if listError != nil {
			browser.reportDirectoryError(unitDirectoryMissingTemplateConstant, browser.unitDirectory, listError)
			return EventBack, browser.prompter.Pause(mainMenuPausePromptConstant)
		}
		browser.logDirectory(browser.unitDirectory, len(subfolders))
		browser.subfolders = subfolders
	}

	browser.println(browser.theme.Heading(fmt.Sprintf(subfolderHeadingTemplateConstant, browser.selectedUnit.Name)))
	if len(browser.subfolders) == 0 {
		browser.println(subfolderEmptyMessageConstant)
	}
	for subfolderIndex, subfolder := range browser.subfolders {
		browser.println(browser.theme.NumberedOption(subfolderIndex+1, subfolder))
	}
	browser.println(browser.theme.MenuOption(backKeyConstant, subfolderBackLabelConstant))

	answer, askError := browser.prompter.Ask(subfolderPromptConstant)
	if askError != nil {
		return EventInvalid, askError
	}
	if strings.TrimSpace(answer) == backKeyConstant {
		return EventBack, nil
	}

	position, recognized := browser.parsePosition(answer, len(browser.subfolders))
	if !recognized {
		return EventInvalid, browser.prompter.Pause(subfolderPausePromptConstant)
	}
	browser.subfolderDirectory = filepath.Join(browser.unitDirectory, browser.subfolders[position-1])
	return EventSelect, nil
}

func (browser *Browser) handleScriptMenu(entering bool) (Event, error) {
	if entering {
		scriptNames, listError := browser.catalog.ListScripts(browser.subfolderDirectory)
		if listError != nil {
			browser.reportDirectoryError(folderMissingTemplateConstant, browser.subfolderDirectory, listError)
			return EventBack, browser.prompter.Pause(subfolderPausePromptConstant)
		}
		browser.logDirectory(browser.subfolderDirectory, len(scriptNames))
		browser.scripts = scriptNames
	}

	browser.println(browser.theme.Heading(fmt.Sprintf(scriptHeadingTemplateConstant, filepath.Base(browser.subfolderDirectory))))
	if len(browser.scripts) == 0 {
		browser.println(fmt.Sprintf(scriptEmptyTemplateConstant, scripts.NormalizeExtension(browser.configuration.ScriptExtension)))
	}
	for scriptIndex, scriptName := range browser.scripts {
		browser.println(browser.theme.NumberedOption(scriptIndex+1, scriptName))
	}
	browser.println(browser.theme.MenuOption(backKeyConstant, scriptBackLabelConstant))
	browser.println(browser.theme.MenuOption(homeKeyConstant, scriptHomeLabelConstant))

	answer, askError := browser.prompter.Ask(scriptPromptConstant)
	if askError != nil {
		return EventInvalid, askError
	}
	switch strings.TrimSpace(answer) {
	case backKeyConstant:
		return EventBack, nil
	case homeKeyConstant:
		return EventHome, nil
	}

	position, recognized := browser.parsePosition(answer, len(browser.scripts))
	if !recognized {
		return EventInvalid, browser.prompter.Pause(scriptPausePromptConstant)
	}

	if offerError := browser.showAndOfferRun(filepath.Join(browser.subfolderDirectory, browser.scripts[position-1])); offerError != nil {
		return EventSelect, offerError
	}
	return EventSelect, browser.prompter.Pause(scriptPausePromptConstant)
}

func (browser *Browser) showAndOfferRun(scriptPath string) error {
	if _, showError := browser.launcher.Show(scriptPath); showError != nil {
		return nil
	}

	answer, askError := browser.prompter.Ask(runConfirmationPromptConstant)
	if askError != nil {
		return askError
	}
	switch strings.TrimSpace(answer) {
	case runConfirmKeyConstant:
		browser.launcher.Run(scriptPath)
	case runDeclineKeyConstant:
		browser.println(runDeclinedMessageConstant)
	default:
		browser.println(browser.theme.Warning(runInvalidAnswerMessageConstant))
	}
	return nil
}

func (browser *Browser) handleTaskManager(executionContext context.Context) (Event, error) {
	manager, managerError := browser.taskManagerFactory(browser.prompter, browser.output)
	if managerError != nil {
		return EventBack, fmt.Errorf(taskManagerFailureTemplateConstant, managerError)
	}
	if runError := manager.Run(executionContext); runError != nil {
		return EventBack, fmt.Errorf(taskManagerFailureTemplateConstant, runError)
	}
	return EventBack, browser.prompter.Pause(mainMenuPausePromptConstant)
}

// parsePosition converts a 1-based answer into a list position, reporting invalid answers on the output.
func (browser *Browser) parsePosition(answer string, itemCount int) (int, bool) {
	position, parseError := console.ParseSelection(answer)
	if parseError != nil {
		browser.println(browser.theme.Warning(invalidNumberMessageConstant))
		return 0, false
	}
	if position < 1 || position > itemCount {
		browser.println(browser.theme.Warning(invalidOptionMessageConstant))
		return 0, false
	}
	return position, true
}

func (browser *Browser) reportDirectoryError(missingTemplate string, directory string, listError error) {
	if errors.Is(listError, scripts.ErrDirectoryNotFound) {
		browser.println(browser.theme.Warning(fmt.Sprintf(missingTemplate, directory)))
		return
	}
	browser.println(browser.theme.Warning(fmt.Sprintf(directoryReadFailureTemplateConstant, directory, listError)))
}

func (browser *Browser) logDirectory(directory string, entryCount int) {
	browser.logger.Debug(directoryListedLogMessageConstant, zap.String(logFieldDirectoryConstant, directory), zap.Int(logFieldEntryCountConstant, entryCount))
}

func (browser *Browser) println(message string) {
	fmt.Fprintln(browser.output, message)
}
