// Package console reads line based answers from the user for the interactive menus.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const inputClosedMessageConstant = "console input closed"

// ErrInputClosed indicates the input stream ended before a line was read.
var ErrInputClosed = errors.New(inputClosedMessageConstant)

// Prompter asks questions and waits for acknowledgement on a line based console.
type Prompter interface {
	// Ask writes the prompt and returns the next input line without its line terminator.
	Ask(prompt string) (string, error)
	// Pause writes the prompt and waits for the user to press Enter when pausing is enabled.
	Pause(prompt string) error
}

// Options tune the prompter behavior.
type Options struct {
	PauseAfterAction bool
}

// LinePrompter reads answers from an io.Reader and writes prompts to an io.Writer.
type LinePrompter struct {
	reader  *bufio.Reader
	writer  io.Writer
	options Options
}

// NewLinePrompter constructs a prompter from the provided reader and writer.
func NewLinePrompter(input io.Reader, output io.Writer, options Options) *LinePrompter {
	if output == nil {
		output = io.Discard
	}
	return &LinePrompter{reader: bufio.NewReader(input), writer: output, options: options}
}

// Ask writes the prompt and reads a single line. ErrInputClosed is returned once the input is exhausted.
func (prompter *LinePrompter) Ask(prompt string) (string, error) {
	if _, writeError := io.WriteString(prompter.writer, prompt); writeError != nil {
		return "", writeError
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil {
		if !errors.Is(readError, io.EOF) {
			return "", readError
		}
		if len(response) == 0 {
			return "", ErrInputClosed
		}
	}

	return strings.TrimRight(response, "\r\n"), nil
}

// Pause waits for Enter. It is a no-op when pausing is disabled.
func (prompter *LinePrompter) Pause(prompt string) error {
	if !prompter.options.PauseAfterAction {
		return nil
	}
	_, askError := prompter.Ask(prompt)
	return askError
}
