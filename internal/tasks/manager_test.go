package tasks_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/scriptdash/internal/console"
	"github.com/temirov/scriptdash/internal/tasks"
)

const (
	testManagerSubtestTemplate        = "%d_%s"
	testExitMessageConstant           = "Volviendo al menú principal..."
	testInvalidOptionMessageConstant  = "Opción no válida. Por favor, intenta de nuevo."
	testEmptyListMessageConstant      = "Actualmente no tienes tareas registradas."
	testPausePromptConstant           = "Presiona Enter para continuar..."
	testCorruptWarningTemplate        = "Advertencia: El archivo %s está corrupto o vacío. Se creará uno nuevo."
	testAddedMessageConstant          = "Tarea añadida con éxito."
	testBlankRejectedMessageConstant  = "La descripción de la tarea no puede estar vacía."
	testCompletedMessageConstant      = "Tarea marcada como completada."
	testNotNumericMessageConstant     = "Entrada no válida. Por favor, ingresa un número."
	testNothingToCompleteConstant     = "No hay tareas para marcar como completadas."
	testInvalidPositionConstant       = "Número de tarea no válido."
	testCancelledMessageConstant      = "Operación cancelada."
	testMenuTitleHeadingConstant      = "--- Mi Dashboard de Tareas de POO ---"
	testListHeadingConstant           = "--- Listado de Tareas ---"
	testPendingStudyRecursionConstant = "1. [PENDIENTE] Study recursion"
)

func TestTransitionTable(testInstance *testing.T) {
	testCases := []struct {
		name            string
		currentState    tasks.State
		input           string
		expectedState   tasks.State
		expectRecognize bool
	}{
		{name: "menu_list", currentState: tasks.StateMenu, input: "1", expectedState: tasks.StateListing, expectRecognize: true},
		{name: "menu_add", currentState: tasks.StateMenu, input: " 2 ", expectedState: tasks.StateAdding, expectRecognize: true},
		{name: "menu_complete", currentState: tasks.StateMenu, input: "3", expectedState: tasks.StateCompleting, expectRecognize: true},
		{name: "menu_exit", currentState: tasks.StateMenu, input: "0", expectedState: tasks.StateExit, expectRecognize: true},
		{name: "menu_unknown", currentState: tasks.StateMenu, input: "7", expectedState: tasks.StateMenu, expectRecognize: false},
		{name: "listing_returns", currentState: tasks.StateListing, input: "", expectedState: tasks.StateMenu, expectRecognize: true},
		{name: "adding_returns", currentState: tasks.StateAdding, input: "", expectedState: tasks.StateMenu, expectRecognize: true},
		{name: "completing_returns", currentState: tasks.StateCompleting, input: "", expectedState: tasks.StateMenu, expectRecognize: true},
		{name: "unknown_state", currentState: tasks.State("bogus"), input: "1", expectedState: tasks.State("bogus"), expectRecognize: false},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testManagerSubtestTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			nextState, recognized := tasks.Transition(testCase.currentState, testCase.input)
			require.Equal(testInstance, testCase.expectedState, nextState)
			require.Equal(testInstance, testCase.expectRecognize, recognized)
		})
	}
}

func TestManagerRunScenarios(testInstance *testing.T) {
	testCases := []struct {
		name             string
		seededContents   *string
		input            string
		pauseAfterAction bool
		expectedOutputs  []string
		expectedTasks    []tasks.Task
	}{
		{
			name:            "add_list_complete",
			input:           "2\nStudy recursion\n1\n3\n1\n0\n",
			expectedOutputs: []string{testMenuTitleHeadingConstant, testAddedMessageConstant, testListHeadingConstant, testPendingStudyRecursionConstant, testCompletedMessageConstant, testExitMessageConstant},
			expectedTasks:   []tasks.Task{{Description: "Study recursion", Completed: true}},
		},
		{
			name:             "empty_list_with_pause",
			input:            "1\n\n0\n",
			pauseAfterAction: true,
			expectedOutputs:  []string{testEmptyListMessageConstant, testPausePromptConstant, testExitMessageConstant},
			expectedTasks:    []tasks.Task{},
		},
		{
			name:            "invalid_menu_option",
			input:           "9\n0\n",
			expectedOutputs: []string{testInvalidOptionMessageConstant, testExitMessageConstant},
			expectedTasks:   []tasks.Task{},
		},
		{
			name:            "blank_description_rejected",
			input:           "2\n   \n0\n",
			expectedOutputs: []string{testBlankRejectedMessageConstant},
			expectedTasks:   []tasks.Task{},
		},
		{
			name:            "nothing_to_complete",
			input:           "3\n0\n",
			expectedOutputs: []string{testNothingToCompleteConstant},
			expectedTasks:   []tasks.Task{},
		},
		{
			name:            "non_numeric_completion",
			seededContents:  stringPointer(`[{"descripcion": "A", "completada": false}]`),
			input:           "3\nabc\n0\n",
			expectedOutputs: []string{testNotNumericMessageConstant},
			expectedTasks:   []tasks.Task{{Description: "A", Completed: false}},
		},
		{
			name:            "out_of_range_and_cancel",
			seededContents:  stringPointer(`[{"descripcion": "A", "completada": false}]`),
			input:           "3\n5\n3\n0\n0\n",
			expectedOutputs: []string{testInvalidPositionConstant, testCancelledMessageConstant},
			expectedTasks:   []tasks.Task{{Description: "A", Completed: false}},
		},
		{
			name:            "input_closed_at_prompt",
			input:           "2\n",
			expectedOutputs: []string{testExitMessageConstant},
			expectedTasks:   []tasks.Task{},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testManagerSubtestTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			taskFilePath := filepath.Join(testInstance.TempDir(), testTaskFileNameConstant)
			if testCase.seededContents != nil {
				require.NoError(testInstance, os.WriteFile(taskFilePath, []byte(*testCase.seededContents), 0o600))
			}

			manager, store, outputBuffer := newTestManager(testInstance, taskFilePath, testCase.input, testCase.pauseAfterAction)
			require.NoError(testInstance, manager.Run(context.Background()))

			output := outputBuffer.String()
			for _, expectedOutput := range testCase.expectedOutputs {
				require.Contains(testInstance, output, expectedOutput)
			}

			persistedTasks, loadError := store.Load()
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expectedTasks, persistedTasks)
		})
	}
}

func TestManagerRunWarnsAboutCorruptFile(testInstance *testing.T) {
	taskFilePath := filepath.Join(testInstance.TempDir(), testTaskFileNameConstant)
	require.NoError(testInstance, os.WriteFile(taskFilePath, []byte("{bad"), 0o600))

	manager, _, outputBuffer := newTestManager(testInstance, taskFilePath, "2\nNueva\n0\n", false)
	require.NoError(testInstance, manager.Run(context.Background()))

	output := outputBuffer.String()
	require.Contains(testInstance, output, fmt.Sprintf(testCorruptWarningTemplate, taskFilePath))

	content, readError := os.ReadFile(taskFilePath)
	require.NoError(testInstance, readError)
	require.True(testInstance, strings.Contains(string(content), `"descripcion": "Nueva"`))
}

func TestManagerRunReturnsPersistenceFailures(testInstance *testing.T) {
	store, storeError := tasks.NewFileStore(testTaskFileNameConstant, &stubFileSystem{writeError: errors.New(testWriteFailureMessage)}, nil)
	require.NoError(testInstance, storeError)
	service, serviceError := tasks.NewService(store)
	require.NoError(testInstance, serviceError)

	outputBuffer := &bytes.Buffer{}
	manager, managerError := tasks.NewManager(tasks.ManagerDependencies{
		Service:  service,
		Prompter: console.NewLinePrompter(strings.NewReader("2\nx\n0\n"), outputBuffer, console.Options{}),
		Output:   outputBuffer,
	})
	require.NoError(testInstance, managerError)

	runError := manager.Run(context.Background())
	require.ErrorContains(testInstance, runError, testWriteFailureMessage)
}

func TestManagerRunStopsOnCancelledContext(testInstance *testing.T) {
	manager, _, _ := newTestManager(testInstance, filepath.Join(testInstance.TempDir(), testTaskFileNameConstant), "1\n", false)

	cancelledContext, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(testInstance, manager.Run(cancelledContext), context.Canceled)
}

func TestNewManagerValidatesDependencies(testInstance *testing.T) {
	_, missingServiceError := tasks.NewManager(tasks.ManagerDependencies{Prompter: console.NewLinePrompter(strings.NewReader(""), nil, console.Options{})})
	require.Error(testInstance, missingServiceError)

	service, serviceError := tasks.NewService(&memoryStore{})
	require.NoError(testInstance, serviceError)
	_, missingPrompterError := tasks.NewManager(tasks.ManagerDependencies{Service: service})
	require.Error(testInstance, missingPrompterError)
}

func newTestManager(testInstance *testing.T, taskFilePath string, input string, pauseAfterAction bool) (*tasks.Manager, *tasks.FileStore, *bytes.Buffer) {
	testInstance.Helper()

	store, storeError := tasks.NewFileStore(taskFilePath, nil, nil)
	require.NoError(testInstance, storeError)
	service, serviceError := tasks.NewService(store)
	require.NoError(testInstance, serviceError)

	outputBuffer := &bytes.Buffer{}
	manager, managerError := tasks.NewManager(tasks.ManagerDependencies{
		Service:  service,
		Prompter: console.NewLinePrompter(strings.NewReader(input), outputBuffer, console.Options{PauseAfterAction: pauseAfterAction}),
		Output:   outputBuffer,
	})
	require.NoError(testInstance, managerError)
	return manager, store, outputBuffer
}
