package tasks_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/scriptdash/internal/filesystem"
	"github.com/temirov/scriptdash/internal/tasks"
)

const (
	testTaskFileNameConstant      = "tareas_poo.json"
	testStoreSubtestTemplate      = "%d_%s"
	testWriteFailureMessage       = "disk full"
	testReadFailureMessage        = "permission denied"
	testExpectedSavedFileContents = "[\n    {\n        \"descripcion\": \"Study <recursion> & ñ\",\n        \"completada\": false\n    },\n    {\n        \"descripcion\": \"Revisar Herencia\",\n        \"completada\": true\n    }\n]"
)

type stubFileSystem struct {
	filesystem.OSFileSystem
	readError  error
	writeError error
	written    map[string][]byte
}

func (stub *stubFileSystem) ReadFile(path string) ([]byte, error) {
	if stub.readError != nil {
		return nil, stub.readError
	}
	if content, exists := stub.written[path]; exists {
		return content, nil
	}
	return nil, fs.ErrNotExist
}

func (stub *stubFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	if stub.writeError != nil {
		return stub.writeError
	}
	if stub.written == nil {
		stub.written = map[string][]byte{}
	}
	stub.written[path] = append([]byte{}, data...)
	return nil
}

func TestFileStoreLoad(testInstance *testing.T) {
	testCases := []struct {
		name          string
		fileContents  *string
		expectedTasks []tasks.Task
		expectCorrupt bool
	}{
		{
			name:          "missing_file",
			expectedTasks: []tasks.Task{},
		},
		{
			name:          "empty_array",
			fileContents:  stringPointer("[]"),
			expectedTasks: []tasks.Task{},
		},
		{
			name:         "valid_tasks",
			fileContents: stringPointer(`[{"descripcion": "Leer POO", "completada": true}, {"descripcion": "Practicar", "completada": false}]`),
			expectedTasks: []tasks.Task{
				{Description: "Leer POO", Completed: true},
				{Description: "Practicar", Completed: false},
			},
		},
		{
			name:          "empty_file",
			fileContents:  stringPointer(""),
			expectedTasks: []tasks.Task{},
			expectCorrupt: true,
		},
		{
			name:          "invalid_json",
			fileContents:  stringPointer("{not json"),
			expectedTasks: []tasks.Task{},
			expectCorrupt: true,
		},
		{
			name:          "object_instead_of_array",
			fileContents:  stringPointer(`{"descripcion": "x", "completada": false}`),
			expectedTasks: []tasks.Task{},
			expectCorrupt: true,
		},
		{
			name:          "missing_completion_flag",
			fileContents:  stringPointer(`[{"descripcion": "x"}]`),
			expectedTasks: []tasks.Task{},
			expectCorrupt: true,
		},
		{
			name:          "blank_description",
			fileContents:  stringPointer(`[{"descripcion": "   ", "completada": false}]`),
			expectedTasks: []tasks.Task{},
			expectCorrupt: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testStoreSubtestTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			taskFilePath := filepath.Join(testInstance.TempDir(), testTaskFileNameConstant)
			if testCase.fileContents != nil {
				require.NoError(testInstance, os.WriteFile(taskFilePath, []byte(*testCase.fileContents), 0o600))
			}

			store, storeError := tasks.NewFileStore(taskFilePath, nil, nil)
			require.NoError(testInstance, storeError)

			loadedTasks, loadError := store.Load()
			require.Equal(testInstance, testCase.expectedTasks, loadedTasks)
			if !testCase.expectCorrupt {
				require.NoError(testInstance, loadError)
				return
			}

			var corruptError *tasks.CorruptTaskFileError
			require.ErrorAs(testInstance, loadError, &corruptError)
			require.Equal(testInstance, taskFilePath, corruptError.FilePath)
		})
	}
}

func TestFileStoreLoadPropagatesReadFailures(testInstance *testing.T) {
	fileSystem := &stubFileSystem{readError: errors.New(testReadFailureMessage)}
	store, storeError := tasks.NewFileStore(testTaskFileNameConstant, fileSystem, nil)
	require.NoError(testInstance, storeError)

	loadedTasks, loadError := store.Load()
	require.Error(testInstance, loadError)
	require.Nil(testInstance, loadedTasks)

	var corruptError *tasks.CorruptTaskFileError
	require.False(testInstance, errors.As(loadError, &corruptError))
	require.ErrorContains(testInstance, loadError, testReadFailureMessage)
}

func TestFileStoreSaveWritesIndentedUnescapedJSON(testInstance *testing.T) {
	taskFilePath := filepath.Join(testInstance.TempDir(), testTaskFileNameConstant)
	store, storeError := tasks.NewFileStore(taskFilePath, filesystem.OSFileSystem{}, nil)
	require.NoError(testInstance, storeError)

	savedTasks := []tasks.Task{
		{Description: "Study <recursion> & ñ", Completed: false},
		{Description: "Revisar Herencia", Completed: true},
	}
	require.NoError(testInstance, store.Save(savedTasks))

	content, readError := os.ReadFile(taskFilePath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testExpectedSavedFileContents, string(content))

	reloadedTasks, loadError := store.Load()
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, savedTasks, reloadedTasks)
}

func TestFileStoreSaveEmptyListWritesEmptyArray(testInstance *testing.T) {
	fileSystem := &stubFileSystem{}
	store, storeError := tasks.NewFileStore(testTaskFileNameConstant, fileSystem, nil)
	require.NoError(testInstance, storeError)

	require.NoError(testInstance, store.Save(nil))
	require.Equal(testInstance, "[]", string(fileSystem.written[testTaskFileNameConstant]))
}

func TestFileStoreSaveReportsWriteFailures(testInstance *testing.T) {
	fileSystem := &stubFileSystem{writeError: errors.New(testWriteFailureMessage)}
	store, storeError := tasks.NewFileStore(testTaskFileNameConstant, fileSystem, nil)
	require.NoError(testInstance, storeError)

	saveError := store.Save([]tasks.Task{{Description: "x"}})
	require.ErrorContains(testInstance, saveError, testWriteFailureMessage)
	require.ErrorContains(testInstance, saveError, testTaskFileNameConstant)
}

func TestNewFileStoreRequiresPath(testInstance *testing.T) {
	store, storeError := tasks.NewFileStore("  ", nil, nil)
	require.ErrorIs(testInstance, storeError, tasks.ErrTaskFilePathRequired)
	require.Nil(testInstance, store)
}

func stringPointer(value string) *string {
	return &value
}

func TestFileStoreLogsCorruptFileAtDebugLevel(testInstance *testing.T) {
	filePath := filepath.Join(testInstance.TempDir(), testTaskFileNameConstant)
	require.NoError(testInstance, os.WriteFile(filePath, []byte("{not json"), 0o644))

	observerCore, observedLogs := observer.New(zapcore.DebugLevel)
	store, storeError := tasks.NewFileStore(filePath, filesystem.OSFileSystem{}, zap.New(observerCore))
	require.NoError(testInstance, storeError)

	_, loadError := store.Load()
	var corruptError *tasks.CorruptTaskFileError
	require.ErrorAs(testInstance, loadError, &corruptError)

	loggedEntries := observedLogs.All()
	require.Len(testInstance, loggedEntries, 1)
	require.Equal(testInstance, zapcore.DebugLevel, loggedEntries[0].Level)
}
