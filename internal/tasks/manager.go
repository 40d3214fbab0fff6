package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/scriptdash/internal/console"
	"github.com/temirov/scriptdash/internal/ui"
)

// State names a node of the task manager state machine.
type State string

// Task manager states.
const (
	StateMenu       State = State("menu")
	StateListing    State = State("listing")
	StateAdding     State = State("adding")
	StateCompleting State = State("completing")
	StateExit       State = State("exit")
)

// TransitionTable maps a state and a menu answer to the next state. The "*" key matches any answer.
var TransitionTable = map[State]map[string]State{
	StateMenu: {
		menuOptionListKeyConstant:     StateListing,
		menuOptionAddKeyConstant:      StateAdding,
		menuOptionCompleteKeyConstant: StateCompleting,
		menuOptionExitKeyConstant:     StateExit,
	},
	StateListing:    {anyInputTransitionKeyConstant: StateMenu},
	StateAdding:     {anyInputTransitionKeyConstant: StateMenu},
	StateCompleting: {anyInputTransitionKeyConstant: StateMenu},
	StateExit:       {anyInputTransitionKeyConstant: StateExit},
}

// Transition returns the state that follows current for the given answer. Unknown answers keep the current
// state and report false.
func Transition(current State, input string) (State, bool) {
	stateTransitions, stateKnown := TransitionTable[current]
	if !stateKnown {
		return current, false
	}
	if nextState, matched := stateTransitions[strings.TrimSpace(input)]; matched {
		return nextState, true
	}
	if nextState, matched := stateTransitions[anyInputTransitionKeyConstant]; matched {
		return nextState, true
	}
	return current, false
}

// ManagerDependencies enumerates the collaborators of the task manager.
type ManagerDependencies struct {
	Service  *Service
	Prompter console.Prompter
	Output   io.Writer
	Theme    *ui.Theme
	Title    string
}

// Manager runs the interactive task menu.
type Manager struct {
	service  *Service
	prompter console.Prompter
	output   io.Writer
	theme    ui.Theme
	title    string
}

// NewManager validates the dependencies and constructs a Manager.
func NewManager(dependencies ManagerDependencies) (*Manager, error) {
	if dependencies.Service == nil {
		return nil, fmt.Errorf(managerDependencyMissingTemplateConstant, "service")
	}
	if dependencies.Prompter == nil {
		return nil, fmt.Errorf(managerDependencyMissingTemplateConstant, "prompter")
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}
	theme := ui.NewTheme(output)
	if dependencies.Theme != nil {
		theme = *dependencies.Theme
	}
	title := strings.TrimSpace(dependencies.Title)
	if len(title) == 0 {
		title = defaultManagerTitleConstant
	}
	return &Manager{
		service:  dependencies.Service,
		prompter: dependencies.Prompter,
		output:   output,
		theme:    theme,
		title:    title,
	}, nil
}

// Run loads the task list and loops until the user returns to the caller or the input ends.
// Storage write failures are returned.
func (manager *Manager) Run(executionContext context.Context) error {
	if loadError := manager.service.Load(); loadError != nil {
		var corruptError *CorruptTaskFileError
		if !errors.As(loadError, &corruptError) {
			return fmt.Errorf(taskLoadErrorTemplateConstant, loadError)
		}
		manager.println(manager.theme.Warning(fmt.Sprintf(corruptTaskFileWarningTemplateConstant, corruptError.FilePath)))
	}

	currentState := StateMenu
	for currentState != StateExit {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		nextState, stepError := manager.step(currentState)
		if errors.Is(stepError, console.ErrInputClosed) {
			break
		}
		if stepError != nil {
			return stepError
		}
		currentState = nextState
	}

	manager.println(exitMessageConstant)
	return nil
}

func (manager *Manager) step(currentState State) (State, error) {
	var actionError error
	switch currentState {
	case StateMenu:
		return manager.showMenu()
	case StateListing:
		manager.listTasks()
	case StateAdding:
		actionError = manager.addTask()
	case StateCompleting:
		actionError = manager.completeTask()
	}
	if actionError != nil {
		return currentState, actionError
	}

	if pauseError := manager.prompter.Pause(pausePromptConstant); pauseError != nil {
		return currentState, pauseError
	}
	nextState, _ := Transition(currentState, "")
	return nextState, nil
}

func (manager *Manager) showMenu() (State, error) {
	manager.println(manager.theme.Heading(manager.title))
	manager.println(manager.theme.MenuOption(menuOptionListKeyConstant, menuOptionListLabelConstant))
	manager.println(manager.theme.MenuOption(menuOptionAddKeyConstant, menuOptionAddLabelConstant))
	manager.println(manager.theme.MenuOption(menuOptionCompleteKeyConstant, menuOptionCompleteLabelConstant))
	manager.println(manager.theme.MenuOption(menuOptionExitKeyConstant, menuOptionExitLabelConstant))

	answer, askError := manager.prompter.Ask(menuPromptConstant)
	if askError != nil {
		return StateMenu, askError
	}

	nextState, recognized := Transition(StateMenu, answer)
	if !recognized {
		manager.println(manager.theme.Warning(invalidOptionMessageConstant))
		if pauseError := manager.prompter.Pause(pausePromptConstant); pauseError != nil {
			return StateMenu, pauseError
		}
	}
	return nextState, nil
}

func (manager *Manager) listTasks() {
	if manager.service.Count() == 0 {
		manager.println(emptyListMessageConstant)
		return
	}
	manager.println(manager.theme.Heading(listHeadingConstant))
	manager.printTasks()
}

func (manager *Manager) addTask() error {
	description, askError := manager.prompter.Ask(addPromptConstant)
	if askError != nil {
		return askError
	}

	outcome, addError := manager.service.Add(description)
	if addError != nil {
		return addError
	}
	manager.println(describeAddOutcome(outcome))
	return nil
}

func (manager *Manager) completeTask() error {
	if manager.service.Count() == 0 {
		manager.println(nothingToCompleteMessageConstant)
		return nil
	}

	manager.println(manager.theme.Heading(completeHeadingConstant))
	manager.printTasks()

	answer, askError := manager.prompter.Ask(completePromptConstant)
	if askError != nil {
		return askError
	}

	position, parseError := console.ParseSelection(answer)
	if parseError != nil {
		manager.println(manager.theme.Warning(completeNotNumericMessageConstant))
		return nil
	}

	outcome, completeError := manager.service.Complete(position)
	if completeError != nil {
		return completeError
	}

	message := describeCompleteOutcome(outcome)
	if outcome == CompleteOutcomeOutOfRange {
		message = manager.theme.Warning(message)
	}
	manager.println(message)
	return nil
}

func (manager *Manager) printTasks() {
	for taskIndex, task := range manager.service.Tasks() {
		manager.println(manager.theme.TaskLine(taskIndex+1, task.Completed, task.Description))
	}
}

func (manager *Manager) println(message string) {
	fmt.Fprintln(manager.output, message)
}

func describeAddOutcome(outcome AddOutcome) string {
	if outcome == AddOutcomeAdded {
		return addSucceededMessageConstant
	}
	return addRejectedMessageConstant
}

func describeCompleteOutcome(outcome CompleteOutcome) string {
	switch outcome {
	case CompleteOutcomeCompleted:
		return completeSucceededMessageConstant
	case CompleteOutcomeAlreadyCompleted:
		return completeAlreadyDoneMessageConstant
	case CompleteOutcomeCancelled:
		return completeCancelledMessageConstant
	case CompleteOutcomeNothingToComplete:
		return nothingToCompleteMessageConstant
	default:
		return completeOutOfRangeMessageConstant
	}
}
