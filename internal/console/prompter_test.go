package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/scriptdash/internal/console"
)

func TestLinePrompterAsk(testInstance *testing.T) {
	testCases := []struct {
		name             string
		input            string
		expectedResponse string
		expectedError    error
	}{
		{name: "unix_line", input: "3\n", expectedResponse: "3"},
		{name: "windows_line", input: "t\r\n", expectedResponse: "t"},
		{name: "keeps_inner_spaces", input: "  Revisar Herencia  \n", expectedResponse: "  Revisar Herencia  "},
		{name: "unterminated_last_line", input: "0", expectedResponse: "0"},
		{name: "closed_input", input: "", expectedError: console.ErrInputClosed},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			output := &bytes.Buffer{}
			prompter := console.NewLinePrompter(strings.NewReader(testCase.input), output, console.Options{})

			response, askError := prompter.Ask("Elige una opción: ")
			require.Equal(testInstance, "Elige una opción: ", output.String())
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, askError, testCase.expectedError)
				return
			}
			require.NoError(testInstance, askError)
			require.Equal(testInstance, testCase.expectedResponse, response)
		})
	}
}

func TestLinePrompterPause(testInstance *testing.T) {
	testInstance.Run("enabled_consumes_a_line", func(testInstance *testing.T) {
		output := &bytes.Buffer{}
		prompter := console.NewLinePrompter(strings.NewReader("\nnext\n"), output, console.Options{PauseAfterAction: true})

		require.NoError(testInstance, prompter.Pause("Presiona Enter para continuar..."))
		require.Contains(testInstance, output.String(), "Presiona Enter")

		response, askError := prompter.Ask("")
		require.NoError(testInstance, askError)
		require.Equal(testInstance, "next", response)
	})

	testInstance.Run("disabled_leaves_input_untouched", func(testInstance *testing.T) {
		output := &bytes.Buffer{}
		prompter := console.NewLinePrompter(strings.NewReader("next\n"), output, console.Options{})

		require.NoError(testInstance, prompter.Pause("Presiona Enter para continuar..."))
		require.Empty(testInstance, output.String())

		response, askError := prompter.Ask("")
		require.NoError(testInstance, askError)
		require.Equal(testInstance, "next", response)
	})
}
