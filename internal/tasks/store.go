package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/scriptdash/internal/filesystem"
)

const (
	taskFilePermissionsConstant          fs.FileMode = 0o644
	taskFileIndentConstant                           = "    "
	taskFilePathRequiredMessageConstant              = "task file path must be provided"
	taskFileReadErrorTemplateConstant                = "failed to read task file %s: %w"
	taskFileEncodeErrorTemplateConstant              = "failed to encode tasks: %w"
	taskFileWriteErrorTemplateConstant               = "failed to write task file %s: %w"
	corruptTaskFileErrorTemplateConstant             = "task file %s is corrupt or empty: %v"
	corruptTaskFileLogMessageConstant                = "task file is corrupt; starting with an empty list"
	taskFileMissingLogMessageConstant                = "task file not found; starting with an empty list"
	taskFileLoadedLogMessageConstant                 = "task file loaded"
	taskFileSavedLogMessageConstant                  = "task file saved"
	logFieldTaskFileConstant                         = "task_file"
	logFieldTaskCountConstant                        = "task_count"
)

// ErrTaskFilePathRequired indicates the store was created without a file path.
var ErrTaskFilePathRequired = errors.New(taskFilePathRequiredMessageConstant)

// Task is a single to-do item. Its identity is its position in the list.
type Task struct {
	Description string `json:"descripcion"`
	Completed   bool   `json:"completada"`
}

// CorruptTaskFileError reports a task file that could not be decoded or did not match the task file schema.
type CorruptTaskFileError struct {
	FilePath string
	Cause    error
}

func (corruptError *CorruptTaskFileError) Error() string {
	return fmt.Sprintf(corruptTaskFileErrorTemplateConstant, corruptError.FilePath, corruptError.Cause)
}

// Unwrap returns the decoding or validation failure.
func (corruptError *CorruptTaskFileError) Unwrap() error {
	return corruptError.Cause
}

// Store loads and saves the ordered task list.
type Store interface {
	Load() ([]Task, error)
	Save(tasks []Task) error
}

// FileStore keeps the task list in a single pretty-printed JSON file.
type FileStore struct {
	filePath   string
	fileSystem filesystem.FileSystem
	validator  *taskFileValidator
	logger     *zap.Logger
}

// NewFileStore constructs a FileStore for filePath.
func NewFileStore(filePath string, fileSystem filesystem.FileSystem, logger *zap.Logger) (*FileStore, error) {
	trimmedFilePath := strings.TrimSpace(filePath)
	if len(trimmedFilePath) == 0 {
		return nil, ErrTaskFilePathRequired
	}
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	validator, validatorError := newTaskFileValidator()
	if validatorError != nil {
		return nil, validatorError
	}

	return &FileStore{filePath: trimmedFilePath, fileSystem: fileSystem, validator: validator, logger: logger}, nil
}

// Load returns the persisted tasks. A missing file yields an empty list. A corrupt file yields an empty list
// together with a *CorruptTaskFileError that callers report as a warning.
func (store *FileStore) Load() ([]Task, error) {
	content, readError := store.fileSystem.ReadFile(store.filePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			store.logger.Debug(taskFileMissingLogMessageConstant, zap.String(logFieldTaskFileConstant, store.filePath))
			return []Task{}, nil
		}
		return nil, fmt.Errorf(taskFileReadErrorTemplateConstant, store.filePath, readError)
	}

	if validationError := store.validator.Validate(content); validationError != nil {
		store.logger.Debug(corruptTaskFileLogMessageConstant, zap.String(logFieldTaskFileConstant, store.filePath), zap.Error(validationError))
		return []Task{}, &CorruptTaskFileError{FilePath: store.filePath, Cause: validationError}
	}

	var tasks []Task
	if decodeError := json.Unmarshal(content, &tasks); decodeError != nil {
		store.logger.Debug(corruptTaskFileLogMessageConstant, zap.String(logFieldTaskFileConstant, store.filePath), zap.Error(decodeError))
		return []Task{}, &CorruptTaskFileError{FilePath: store.filePath, Cause: decodeError}
	}
	if tasks == nil {
		tasks = []Task{}
	}

	store.logger.Debug(taskFileLoadedLogMessageConstant, zap.String(logFieldTaskFileConstant, store.filePath), zap.Int(logFieldTaskCountConstant, len(tasks)))
	return tasks, nil
}

// Save overwrites the backing file with the full task list, indented with four spaces.
func (store *FileStore) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", taskFileIndentConstant)
	if encodeError := encoder.Encode(tasks); encodeError != nil {
		return fmt.Errorf(taskFileEncodeErrorTemplateConstant, encodeError)
	}

	content := bytes.TrimRight(buffer.Bytes(), "\n")
	if writeError := store.fileSystem.WriteFile(store.filePath, content, taskFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(taskFileWriteErrorTemplateConstant, store.filePath, writeError)
	}

	store.logger.Debug(taskFileSavedLogMessageConstant, zap.String(logFieldTaskFileConstant, store.filePath), zap.Int(logFieldTaskCountConstant, len(tasks)))
	return nil
}
