package tasks

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	taskFileSchemaURLConstant               = "https://github.com/temirov/scriptdash/schemas/task_file.schema.json"
	schemaRegistrationErrorTemplateConstant = "failed to register task file schema: %w"
	schemaCompilationErrorTemplateConstant  = "failed to compile task file schema: %w"
	documentDecodeErrorTemplateConstant     = "invalid JSON: %w"
)

//go:embed task_file.schema.json
var taskFileSchemaContent []byte

type taskFileValidator struct {
	schema *jsonschema.Schema
}

func newTaskFileValidator() (*taskFileValidator, error) {
	compiler := jsonschema.NewCompiler()
	if registrationError := compiler.AddResource(taskFileSchemaURLConstant, bytes.NewReader(taskFileSchemaContent)); registrationError != nil {
		return nil, fmt.Errorf(schemaRegistrationErrorTemplateConstant, registrationError)
	}

	schema, compilationError := compiler.Compile(taskFileSchemaURLConstant)
	if compilationError != nil {
		return nil, fmt.Errorf(schemaCompilationErrorTemplateConstant, compilationError)
	}

	return &taskFileValidator{schema: schema}, nil
}

// Validate checks that content is a JSON array of task records with non-blank descriptions.
func (validator *taskFileValidator) Validate(content []byte) error {
	var document any
	if decodeError := json.Unmarshal(content, &document); decodeError != nil {
		return fmt.Errorf(documentDecodeErrorTemplateConstant, decodeError)
	}
	return validator.schema.Validate(document)
}
