package browser

// State names a node of the dashboard state machine.
type State string

// Dashboard states.
const (
	StateMainMenu      State = State("main_menu")
	StateSubfolderMenu State = State("subfolder_menu")
	StateScriptMenu    State = State("script_menu")
	StateTaskManager   State = State("task_manager")
	StateExit          State = State("exit")
)

// Event names what a menu answer asks for.
type Event string

// Dashboard events.
const (
	EventSelect  Event = Event("select")
	EventBack    Event = Event("back")
	EventHome    Event = Event("home")
	EventTasks   Event = Event("tasks")
	EventInvalid Event = Event("invalid")
)

// TransitionTable maps a state and an event to the next state.
var TransitionTable = map[State]map[Event]State{
	StateMainMenu: {
		EventSelect:  StateSubfolderMenu,
		EventTasks:   StateTaskManager,
		EventBack:    StateExit,
		EventInvalid: StateMainMenu,
	},
	StateSubfolderMenu: {
		EventSelect:  StateScriptMenu,
		EventBack:    StateMainMenu,
		EventInvalid: StateSubfolderMenu,
	},
	StateScriptMenu: {
		EventSelect:  StateScriptMenu,
		EventBack:    StateSubfolderMenu,
		EventHome:    StateMainMenu,
		EventInvalid: StateScriptMenu,
	},
	StateTaskManager: {
		EventBack: StateMainMenu,
	},
}

// Transition returns the state reached from current on event. Unknown pairs keep the current state and
// report false.
func Transition(current State, event Event) (State, bool) {
	nextState, known := TransitionTable[current][event]
	if !known {
		return current, false
	}
	return nextState, true
}
