package tasks

import (
	"errors"
	"fmt"
	"strings"
)

const (
	storeNotConfiguredMessageConstant = "task store not configured"
	taskPersistErrorTemplateConstant  = "failed to persist tasks: %w"
)

// ErrStoreNotConfigured indicates the service was created without a store.
var ErrStoreNotConfigured = errors.New(storeNotConfiguredMessageConstant)

// AddOutcome enumerates the results of adding a task.
type AddOutcome string

// Supported add outcomes.
const (
	AddOutcomeAdded         AddOutcome = AddOutcome("added")
	AddOutcomeRejectedBlank AddOutcome = AddOutcome("rejected_blank")
)

// CompleteOutcome enumerates the results of completing a task.
type CompleteOutcome string

// Supported complete outcomes.
const (
	CompleteOutcomeCompleted         CompleteOutcome = CompleteOutcome("completed")
	CompleteOutcomeAlreadyCompleted  CompleteOutcome = CompleteOutcome("already_completed")
	CompleteOutcomeCancelled         CompleteOutcome = CompleteOutcome("cancelled")
	CompleteOutcomeOutOfRange        CompleteOutcome = CompleteOutcome("out_of_range")
	CompleteOutcomeNothingToComplete CompleteOutcome = CompleteOutcome("nothing_to_complete")
)

// Service holds the in-memory task list and writes it through to the store after every mutation.
type Service struct {
	store Store
	tasks []Task
}

// NewService constructs a Service backed by store. The list starts empty until Load is called.
func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreNotConfigured
	}
	return &Service{store: store, tasks: []Task{}}, nil
}

// Load replaces the in-memory list with the stored one. A *CorruptTaskFileError leaves the list empty and is
// returned so the caller can warn; any other error is fatal.
func (service *Service) Load() error {
	loadedTasks, loadError := service.store.Load()
	if loadError != nil {
		service.tasks = []Task{}
		return loadError
	}
	service.tasks = append([]Task{}, loadedTasks...)
	return nil
}

// Tasks returns a copy of the ordered task list.
func (service *Service) Tasks() []Task {
	return append([]Task{}, service.tasks...)
}

// Count returns the number of tasks.
func (service *Service) Count() int {
	return len(service.tasks)
}

// Add appends a pending task with the trimmed description. Blank descriptions leave the list unchanged.
func (service *Service) Add(description string) (AddOutcome, error) {
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return AddOutcomeRejectedBlank, nil
	}

	updatedTasks := append(service.Tasks(), Task{Description: trimmedDescription, Completed: false})
	if persistError := service.persist(updatedTasks); persistError != nil {
		return "", persistError
	}
	return AddOutcomeAdded, nil
}

// Complete marks the task at the 1-based position as completed. Position 0 cancels the operation.
func (service *Service) Complete(position int) (CompleteOutcome, error) {
	if len(service.tasks) == 0 {
		return CompleteOutcomeNothingToComplete, nil
	}
	if position == 0 {
		return CompleteOutcomeCancelled, nil
	}
	if position < 1 || position > len(service.tasks) {
		return CompleteOutcomeOutOfRange, nil
	}

	taskIndex := position - 1
	if service.tasks[taskIndex].Completed {
		return CompleteOutcomeAlreadyCompleted, nil
	}

	updatedTasks := service.Tasks()
	updatedTasks[taskIndex].Completed = true
	if persistError := service.persist(updatedTasks); persistError != nil {
		return "", persistError
	}
	return CompleteOutcomeCompleted, nil
}

func (service *Service) persist(updatedTasks []Task) error {
	if saveError := service.store.Save(updatedTasks); saveError != nil {
		return fmt.Errorf(taskPersistErrorTemplateConstant, saveError)
	}
	service.tasks = updatedTasks
	return nil
}
